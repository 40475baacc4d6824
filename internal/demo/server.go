package demo

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/substrate-ui/substrate/pkg/middleware"
)

// Config configures the demo server.
type Config struct {
	// Address to listen on (default ":8780").
	Address string

	// Logger for server events (default slog.Default()).
	Logger *slog.Logger

	// CheckOrigin overrides the WebSocket origin check. Nil allows only
	// same-origin requests (gorilla's default).
	CheckOrigin func(r *http.Request) bool
}

// Server serves the demo page, the per-session WebSocket endpoint, and
// the Prometheus metrics endpoint.
type Server struct {
	addr     string
	log      *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader

	mu   sync.Mutex
	http *http.Server
}

// NewServer builds the router and middleware chain.
func NewServer(cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = ":8780"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		addr: cfg.Address,
		log:  cfg.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: cfg.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(req *http.Request) bool {
			return req.URL.Path != "/metrics"
		}),
	))

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.log.Info("demo server listening", "addr", s.addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		s.log.Warn("index write failed", "error", err)
	}
}

// handleWebSocket upgrades the connection and runs one session until the
// client goes away. All writes to the profile store for this session
// happen on this goroutine, so updates reach the client in commit order.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		middleware.RecordWebSocketError("upgrade")
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := NewSession(s.log, func(u Update) error {
		return conn.WriteJSON(u)
	})
	defer session.Close()

	s.log.Info("session started", "remote", conn.RemoteAddr().String())

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				middleware.RecordWebSocketError("read")
				s.log.Warn("websocket read failed", "error", err)
			}
			return
		}

		_, span := middleware.StartEventSpan(r.Context(), "profile.set",
			attribute.String("field", ev.Field),
		)
		err := session.HandleEvent(ev)
		middleware.RecordSpanError(span, err)
		span.End()

		if err != nil {
			s.log.Warn("event rejected", "field", ev.Field, "error", err)
		}
	}
}
