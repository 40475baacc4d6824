package substrate

import "sync"

// Patch is a partial update applied to a copy of the current state.
// Fields the patch does not touch keep their prior values, so a Set call
// is a merge, never a wholesale replacement.
type Patch[S any] func(*S)

// subscriber is one registration in a Store's notification list.
// Each Subscribe call gets its own entry with a unique id, so registering
// the same function twice produces two independently removable entries.
type subscriber struct {
	id uint64
	fn func()
}

// Store is an external mutable state container. It owns exactly one live
// state value at a time and a list of notification callbacks invoked, in
// registration order, after every successful update.
type Store[S any] struct {
	// mu guards both the state value and the subscriber list so that Get
	// never observes a partially-merged state.
	mu sync.RWMutex

	state S

	// subs preserves registration order. Removal splices rather than
	// swap-deletes: notification order must stay deterministic.
	subs []subscriber
}

// New creates a store holding the given initial state.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns a snapshot of the current state. It never blocks beyond the
// read lock and always reflects the most recently committed Set.
func (s *Store[S]) Get() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set merges the given patches into the current state and notifies every
// registered subscriber, synchronously and in registration order.
//
// The merge copies the current state, applies each patch to the copy, and
// swaps the copy in atomically. Calling Set with no patches still swaps in
// a value-equal state and still notifies: the engine performs no
// deep-equality short-circuit, leaving memoization to bindings.
//
// The subscriber list is snapshotted before callbacks run and the lock is
// released, so a callback may call Set reentrantly (processed as an
// ordinary sequential update) and may subscribe or unsubscribe without
// affecting the current notification round.
func (s *Store[S]) Set(patches ...Patch[S]) {
	s.mu.Lock()
	next := s.state
	for _, patch := range patches {
		if patch != nil {
			patch(&next)
		}
	}
	s.state = next

	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Replace swaps in a complete new state. Equivalent to a patch that
// overwrites every field.
func (s *Store[S]) Replace(state S) {
	s.Set(func(next *S) { *next = state })
}

// Subscribe registers a notification callback and returns a function that
// removes exactly that registration. Each call creates an independent
// registration, even for the same callback value. The returned function is
// idempotent: calling it twice is a no-op and never removes a neighboring
// subscriber.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	id := nextID()

	s.mu.Lock()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live registrations.
func (s *Store[S]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
