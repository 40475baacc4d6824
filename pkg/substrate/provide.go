package substrate

import "fmt"

// storeKey keys a provided store by its state type, so one scope can hold
// at most one store per state type and lookups need no string names.
type storeKey[S any] struct{}

// Provide injects a store into the scope. The store becomes reachable from
// the scope and all its descendants via From, Lookup, and UseStore.
func Provide[S any](sc *Scope, store *Store[S]) {
	sc.SetValue(storeKey[S]{}, store)
}

// Lookup returns the store for state type S from the scope chain, or false
// when no provider is reachable.
func Lookup[S any](sc *Scope) (*Store[S], bool) {
	if sc == nil {
		return nil, false
	}
	store, ok := sc.Value(storeKey[S]{}).(*Store[S])
	return store, ok
}

// From returns the store for state type S from the scope chain. Reaching
// for a store outside any provider's scope is a programming error, not a
// recoverable condition: From panics with a descriptive message rather
// than silently falling back to a default instance.
func From[S any](sc *Scope) *Store[S] {
	store, ok := Lookup[S](sc)
	if !ok {
		var zero S
		panic(fmt.Sprintf("substrate: no store for %T provided in scope; wrap the consumer in a scope that calls Provide", zero))
	}
	return store
}

// UseStore returns the store for state type S from the goroutine's current
// scope. Panics when called outside WithScope or when no provider is
// reachable.
func UseStore[S any]() *Store[S] {
	sc := CurrentScope()
	if sc == nil {
		panic("substrate: UseStore called outside WithScope")
	}
	return From[S](sc)
}

// UseSelector attaches a binding for the selector against the current
// scope's store and returns the initial projection along with the binding.
// The binding is detached automatically when the scope is disposed;
// calling Detach earlier is safe and idempotent.
//
// onChange fires only when a store update actually changes the projected
// value under the binding's equality.
func UseSelector[S, V any](selector Selector[S, V], onChange func(V)) (V, *Binding[S, V]) {
	sc := CurrentScope()
	if sc == nil {
		panic("substrate: UseSelector called outside WithScope")
	}

	binding := Bind(From[S](sc), selector)
	initial := binding.Attach(onChange)
	sc.OnCleanup(binding.Detach)

	return initial, binding
}
