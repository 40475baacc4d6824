// Package substrate provides an external mutable store with fine-grained,
// selector-based subscription for reactive Go UIs.
//
// A Store owns a single state value and a set of notification callbacks.
// Writers apply partial updates through Set; every registered callback is
// then invoked synchronously, in registration order. Consumers that only
// care about a slice of the state attach a Binding, which re-derives its
// projection on every notification and signals the consumer only when the
// projection actually changed.
//
// # Core Types
//
// Store[S] holds the current state and the subscriber set:
//
//	store := substrate.New(Profile{})
//	store.Set(func(p *Profile) { p.First = "Ada" })  // partial merge + notify
//	current := store.Get()                           // snapshot read
//	stop := store.Subscribe(func() { ... })          // notification callback
//	stop()                                           // idempotent removal
//
// Binding[S, V] scopes a consumer's interest to a projection of the state:
//
//	first := substrate.Bind(store, func(p Profile) string { return p.First })
//	initial := first.Attach(func(v string) { rerender(v) })
//	...
//	first.Detach()
//
// Attach evaluates the selector against the current state and returns the
// initial projection. From then on, every store notification recomputes the
// projection from the latest Get; the onChange callback fires only when the
// new projection differs from the last one delivered, so a consumer bound
// to one field never refreshes because a different field changed.
//
// Read always re-derives from the latest committed state. It never returns
// a value cached before a notification, which is what keeps concurrent
// readers tear-free: after a notification has been delivered for an update,
// no read observes state older than that update.
//
// # Scoping
//
// Stores are injected into a Scope rather than held as process globals, so
// independent instances stay testable in isolation:
//
//	scope := substrate.NewScope(nil)
//	substrate.Provide(scope, store)
//
//	substrate.WithScope(scope, func() {
//	    store := substrate.UseStore[Profile]()
//	    name, _ := substrate.UseSelector(selectFirst, onChange)
//	    ...
//	})
//
// Reading a store outside any provider's scope is a programming error and
// panics immediately rather than falling back to a hidden default.
//
// # Update Semantics
//
// Set does not compare the merged state against the previous one: an empty
// patch list produces a value-equal state and still notifies every
// subscriber. Memoization is the responsibility of bindings, not the
// engine. Callbacks may call Set reentrantly and may subscribe or
// unsubscribe during notification; notification always iterates a stable
// snapshot of the subscriber set taken at the start of the round.
//
// # Thread Safety
//
// Store and Binding are safe for concurrent use. Get never observes a
// partially-merged state. The current scope is tracked per goroutine, so
// spawning goroutines requires explicit propagation via WithScope.
package substrate
