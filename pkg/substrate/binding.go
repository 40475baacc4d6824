package substrate

import "sync"

// Selector is a pure projection from full state to a derived value.
// It must not capture or mutate store internals.
type Selector[S, V any] func(S) V

// Binding bridges a consumer's interest in a projection of the state to a
// Store's notification stream. On every notification it recomputes the
// projection from the latest committed state and invokes the consumer's
// onChange callback only when the projection differs from the last one
// delivered, so consumers whose slice is unaffected by an update stay
// quiet.
//
// A binding moves through exactly one lifecycle:
//
//	Unbound --Attach--> Bound --Detach--> Unbound (terminal)
//
// Each lifecycle performs exactly one subscribe/unsubscribe pair. A
// detached binding is finished; create a new one to re-attach.
type Binding[S, V any] struct {
	id       uint64
	store    *Store[S]
	selector Selector[S, V]
	equal    func(V, V) bool

	mu sync.Mutex

	// last is the projection most recently delivered to the consumer,
	// either via Attach, Read, or an onChange signal. It is the baseline
	// for change detection.
	last V

	bound    bool
	detached bool

	onChange    func(V)
	unsubscribe func()
}

// Bind creates an unbound binding for the given store and selector.
func Bind[S, V any](store *Store[S], selector Selector[S, V]) *Binding[S, V] {
	return &Binding[S, V]{
		id:       nextID(),
		store:    store,
		selector: selector,
	}
}

// WithEquals configures a custom equality for change detection and returns
// the binding. Useful when the default (value equality for primitives,
// reflect.DeepEqual for composites) is too expensive or has the wrong
// semantics for the projected type.
func (b *Binding[S, V]) WithEquals(fn func(V, V) bool) *Binding[S, V] {
	b.equal = fn
	return b
}

// ID returns the unique identifier for this binding.
func (b *Binding[S, V]) ID() uint64 {
	return b.id
}

// Attach subscribes the binding to its store, evaluates the selector
// against the current state, and returns the initial projection. onChange
// fires on every subsequent store notification whose recomputed projection
// differs from the last delivered one.
//
// Attach panics if the binding is already bound or has been detached: a
// binding instance supports exactly one attach/detach lifecycle.
func (b *Binding[S, V]) Attach(onChange func(V)) V {
	b.mu.Lock()
	if b.bound || b.detached {
		b.mu.Unlock()
		panic("substrate: binding already attached; create a new binding per lifecycle")
	}
	b.bound = true
	b.onChange = onChange

	initial := b.selector(b.store.Get())
	b.last = initial
	b.unsubscribe = b.store.Subscribe(b.notified)
	b.mu.Unlock()

	return initial
}

// Read re-derives the projection from the latest committed state and
// records it as the last delivered value. It never returns a cached
// pre-notification projection: after a notification has fired for an
// update, Read reflects state at least as new as that update.
func (b *Binding[S, V]) Read() V {
	value := b.selector(b.store.Get())

	b.mu.Lock()
	b.last = value
	b.mu.Unlock()

	return value
}

// Detach unsubscribes the binding from its store. Idempotent; a detached
// binding never signals its consumer again.
func (b *Binding[S, V]) Detach() {
	b.mu.Lock()
	if b.detached {
		b.mu.Unlock()
		return
	}
	b.detached = true
	b.bound = false
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.onChange = nil
	b.mu.Unlock()
}

// notified is the store notification callback: recompute from the latest
// state, signal the consumer only on a changed projection.
func (b *Binding[S, V]) notified() {
	// Read the store before taking the binding lock; onChange handlers may
	// call Read or Detach, which take it too.
	value := b.selector(b.store.Get())

	b.mu.Lock()
	if b.detached || !b.bound {
		b.mu.Unlock()
		return
	}
	if b.equals(b.last, value) {
		b.mu.Unlock()
		return
	}
	b.last = value
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange(value)
	}
}

func (b *Binding[S, V]) equals(a, c V) bool {
	if b.equal != nil {
		return b.equal(a, c)
	}
	return Equal(a, c)
}
