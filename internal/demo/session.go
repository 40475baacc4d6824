package demo

import (
	"fmt"
	"log/slog"

	"github.com/substrate-ui/substrate/pkg/middleware"
	"github.com/substrate-ui/substrate/pkg/substrate"
)

// Event is a field edit sent by the browser.
type Event struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Update is a targeted refresh pushed to the browser when a bound
// projection changed.
type Update struct {
	Target string `json:"target"`
	Value  string `json:"value"`
}

// Session owns one scope and one profile store for a single connected
// client. Three bindings (first, last, full name) forward change signals
// as Updates through the send function; a binding whose projection is
// untouched by an edit sends nothing.
type Session struct {
	scope *substrate.Scope
	store *substrate.Store[Profile]
	send  func(Update) error
	log   *slog.Logger
}

// NewSession builds the session scope, provides a fresh store, and
// attaches the field bindings. send delivers updates to the client and is
// called synchronously from store writes.
func NewSession(log *slog.Logger, send func(Update) error) *Session {
	s := &Session{
		scope: substrate.NewScope(nil),
		store: substrate.New(Profile{}),
		send:  send,
		log:   log,
	}

	substrate.Provide(s.scope, s.store)

	substrate.WithScope(s.scope, func() {
		substrate.UseSelector(SelectFirst, s.push("first"))
		substrate.UseSelector(SelectLast, s.push("last"))
		substrate.UseSelector(SelectFullName, s.push("full"))
	})

	middleware.RecordSessionStart()
	return s
}

// push builds an onChange handler forwarding a changed projection to the
// client under the given target id.
func (s *Session) push(target string) func(string) {
	return func(value string) {
		middleware.RecordChangeSignal()
		if err := s.send(Update{Target: target, Value: value}); err != nil {
			s.log.Warn("push failed", "target", target, "error", err)
		}
	}
}

// HandleEvent applies a field edit to the session store. Unknown fields
// are client programming errors and reported back as such.
func (s *Session) HandleEvent(ev Event) error {
	var patch substrate.Patch[Profile]
	switch ev.Field {
	case "first":
		patch = SetFirst(ev.Value)
	case "last":
		patch = SetLast(ev.Value)
	default:
		return fmt.Errorf("unknown field %q", ev.Field)
	}

	middleware.RecordStoreWrite()
	s.store.Set(patch)
	middleware.RecordNotifications(s.store.Subscribers())
	return nil
}

// Profile returns the session's current state snapshot.
func (s *Session) Profile() Profile {
	return s.store.Get()
}

// Close disposes the session scope, which detaches every binding. Safe to
// call more than once.
func (s *Session) Close() {
	if s.scope.IsDisposed() {
		return
	}
	s.scope.Dispose()
	middleware.RecordSessionEnd()
}
