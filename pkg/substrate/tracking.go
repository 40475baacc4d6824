package substrate

import (
	"runtime"
	"sync"
)

// currentScopes stores the active scope per goroutine. Consumer code runs
// inside WithScope, and hooks like UseStore resolve against the goroutine's
// current scope, so concurrent consumers never see each other's providers.
var currentScopes sync.Map

// goroutineID extracts a unique identifier for the current goroutine from
// the runtime stack header ("goroutine <id> ..."). Implementation detail;
// not exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// CurrentScope returns the scope set by the innermost WithScope on this
// goroutine, or nil when none is active.
func CurrentScope() *Scope {
	if sc, ok := currentScopes.Load(goroutineID()); ok {
		return sc.(*Scope)
	}
	return nil
}

// setCurrentScope sets the goroutine's current scope and returns the
// previous one so it can be restored.
func setCurrentScope(sc *Scope) *Scope {
	gid := goroutineID()

	var old *Scope
	if prev, ok := currentScopes.Load(gid); ok {
		old = prev.(*Scope)
	}

	if sc == nil {
		currentScopes.Delete(gid)
	} else {
		currentScopes.Store(gid, sc)
	}
	return old
}

// WithScope runs fn with the given scope as the goroutine's current scope.
// Scopes do not cross goroutine boundaries implicitly: a spawned goroutine
// that needs the scope must call WithScope itself.
//
// Example:
//
//	go func() {
//	    substrate.WithScope(scope, func() {
//	        store := substrate.UseStore[Profile]()
//	        ...
//	    })
//	}()
func WithScope(sc *Scope, fn func()) {
	old := setCurrentScope(sc)
	defer setCurrentScope(old)
	fn()
}
