package stest

import (
	"sync"
	"testing"

	"github.com/substrate-ui/substrate/pkg/substrate"
)

// Recorder counts notifications from a store. It subscribes on creation
// and keeps counting until Stop.
type Recorder struct {
	mu    sync.Mutex
	count int
	stop  func()
}

// NewRecorder subscribes a counting callback to the store.
func NewRecorder[S any](store *substrate.Store[S]) *Recorder {
	r := &Recorder{}
	r.stop = store.Subscribe(func() {
		r.mu.Lock()
		r.count++
		r.mu.Unlock()
	})
	return r
}

// Count returns the number of notifications received so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Stop unsubscribes the recorder. Safe to call more than once.
func (r *Recorder) Stop() {
	r.stop()
}

// Probe is a fake reactive consumer: a binding whose change signals are
// recorded for assertion.
type Probe[S, V any] struct {
	binding *substrate.Binding[S, V]

	mu      sync.Mutex
	initial V
	changes []V
}

// NewProbe binds a selector to the store and attaches immediately.
func NewProbe[S, V any](store *substrate.Store[S], selector substrate.Selector[S, V]) *Probe[S, V] {
	p := &Probe[S, V]{
		binding: substrate.Bind(store, selector),
	}
	p.initial = p.binding.Attach(func(v V) {
		p.mu.Lock()
		p.changes = append(p.changes, v)
		p.mu.Unlock()
	})
	return p
}

// Initial returns the projection observed at attach time.
func (p *Probe[S, V]) Initial() V {
	return p.initial
}

// Changes returns a copy of all change signals received so far.
func (p *Probe[S, V]) Changes() []V {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]V, len(p.changes))
	copy(out, p.changes)
	return out
}

// Last returns the most recent change signal and whether one was received.
func (p *Probe[S, V]) Last() (V, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.changes) == 0 {
		var zero V
		return zero, false
	}
	return p.changes[len(p.changes)-1], true
}

// Read re-derives the projection from the store's latest state.
func (p *Probe[S, V]) Read() V {
	return p.binding.Read()
}

// Detach detaches the underlying binding. Idempotent.
func (p *Probe[S, V]) Detach() {
	p.binding.Detach()
}

// ExpectNotifications asserts the recorder saw exactly want notifications.
func ExpectNotifications(t *testing.T, r *Recorder, want int) {
	t.Helper()
	if got := r.Count(); got != want {
		t.Errorf("expected %d notifications, got %d", want, got)
	}
}

// ExpectChanges asserts the probe received exactly the given change
// signals, in order.
func ExpectChanges[S, V any](t *testing.T, p *Probe[S, V], want ...V) {
	t.Helper()
	got := p.Changes()
	if len(got) != len(want) {
		t.Errorf("expected %d change signals, got %d (%v)", len(want), len(got), got)
		return
	}
	for i := range want {
		if !substrate.Equal(got[i], want[i]) {
			t.Errorf("change %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// ExpectSilent asserts the probe received no change signals.
func ExpectSilent[S, V any](t *testing.T, p *Probe[S, V]) {
	t.Helper()
	if got := p.Changes(); len(got) != 0 {
		t.Errorf("expected no change signals, got %v", got)
	}
}
