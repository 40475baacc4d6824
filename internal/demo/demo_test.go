package demo

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func collectSession(t *testing.T) (*Session, *[]Update) {
	t.Helper()
	var updates []Update
	s := NewSession(discardLogger(), func(u Update) error {
		updates = append(updates, u)
		return nil
	})
	t.Cleanup(s.Close)
	return s, &updates
}

func targets(updates []Update) []string {
	var out []string
	for _, u := range updates {
		out = append(out, u.Target)
	}
	return out
}

func TestSessionPushesOnlyChangedSlices(t *testing.T) {
	s, updates := collectSession(t)

	if err := s.HandleEvent(Event{Field: "first", Value: "Ada"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := targets(*updates)
	if len(got) != 2 || got[0] != "first" || got[1] != "full" {
		t.Errorf("expected updates for [first full], got %v", got)
	}
	for _, u := range *updates {
		if u.Value != "Ada" {
			t.Errorf("update %s: expected %q, got %q", u.Target, "Ada", u.Value)
		}
	}

	if p := s.Profile(); p.First != "Ada" || p.Last != "" {
		t.Errorf("expected {Ada }, got %+v", p)
	}
}

func TestSessionMergesAcrossEvents(t *testing.T) {
	s, updates := collectSession(t)

	s.HandleEvent(Event{Field: "first", Value: "Ada"})
	s.HandleEvent(Event{Field: "last", Value: "Lovelace"})

	if p := s.Profile(); p.First != "Ada" || p.Last != "Lovelace" {
		t.Errorf("expected merged profile, got %+v", p)
	}

	got := targets(*updates)
	want := []string{"first", "full", "last", "full"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expected updates %v, got %v", want, got)
	}
}

func TestSessionSameValueIsSilent(t *testing.T) {
	s, updates := collectSession(t)

	s.HandleEvent(Event{Field: "first", Value: "Ada"})
	before := len(*updates)

	// Re-sending the same value notifies the store but no projection
	// changes, so nothing reaches the client.
	s.HandleEvent(Event{Field: "first", Value: "Ada"})

	if len(*updates) != before {
		t.Errorf("expected no updates for unchanged value, got %v", targets((*updates)[before:]))
	}
}

func TestSessionUnknownField(t *testing.T) {
	s, updates := collectSession(t)

	if err := s.HandleEvent(Event{Field: "middle", Value: "x"}); err == nil {
		t.Error("expected error for unknown field")
	}
	if len(*updates) != 0 {
		t.Errorf("unknown field produced updates: %v", targets(*updates))
	}
}

func TestSessionCloseDetachesBindings(t *testing.T) {
	var updates []Update
	s := NewSession(discardLogger(), func(u Update) error {
		updates = append(updates, u)
		return nil
	})

	s.Close()
	s.Close() // idempotent

	s.HandleEvent(Event{Field: "first", Value: "Ada"})
	if len(updates) != 0 {
		t.Errorf("closed session pushed updates: %v", targets(updates))
	}
}

func TestServerIndex(t *testing.T) {
	srv := NewServer(Config{Logger: discardLogger()})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Substrate Demo") {
		t.Error("index page missing title")
	}
	if !strings.Contains(body, "/ws") {
		t.Error("index page missing websocket wiring")
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := NewServer(Config{Logger: discardLogger()})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}
