package substrate

import (
	"sync"
	"sync/atomic"
)

// Scope is a provider boundary for stores. Scopes form a hierarchy that
// mirrors the consumer tree: a store provided on a scope is visible to that
// scope and its descendants, never to siblings or ancestors. Disposing a
// scope disposes its children and runs registered cleanups, which is how
// bindings attached within the scope get detached.
type Scope struct {
	id uint64

	// parent is nil for a root scope.
	parent *Scope

	children   []*Scope
	childrenMu sync.Mutex

	// values holds provided stores (and any other scoped values), looked
	// up through the parent chain.
	values   map[any]any
	valuesMu sync.RWMutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool
}

// NewScope creates a scope with the given parent. The new scope registers
// itself as a child of the parent. A nil parent creates a root scope.
func NewScope(parent *Scope) *Scope {
	sc := &Scope{
		id:     nextID(),
		parent: parent,
	}

	if parent != nil {
		parent.addChild(sc)
	}

	return sc
}

// ID returns the unique identifier for this scope.
func (sc *Scope) ID() uint64 {
	return sc.id
}

// Parent returns the parent scope, or nil for a root scope.
func (sc *Scope) Parent() *Scope {
	return sc.parent
}

// IsDisposed reports whether Dispose has run.
func (sc *Scope) IsDisposed() bool {
	return sc.disposed.Load()
}

func (sc *Scope) addChild(child *Scope) {
	sc.childrenMu.Lock()
	defer sc.childrenMu.Unlock()
	sc.children = append(sc.children, child)
}

func (sc *Scope) removeChild(child *Scope) {
	sc.childrenMu.Lock()
	defer sc.childrenMu.Unlock()

	for i, c := range sc.children {
		if c == child {
			sc.children = append(sc.children[:i], sc.children[i+1:]...)
			return
		}
	}
}

// SetValue stores a value on this scope, visible to this scope and its
// descendants via Value.
func (sc *Scope) SetValue(key, value any) {
	sc.valuesMu.Lock()
	defer sc.valuesMu.Unlock()

	if sc.values == nil {
		sc.values = make(map[any]any)
	}
	sc.values[key] = value
}

// Value retrieves a value from this scope or the nearest ancestor that has
// it. Returns nil when no scope in the chain holds the key.
func (sc *Scope) Value(key any) any {
	sc.valuesMu.RLock()
	if sc.values != nil {
		if val, ok := sc.values[key]; ok {
			sc.valuesMu.RUnlock()
			return val
		}
	}
	sc.valuesMu.RUnlock()

	if sc.parent != nil {
		return sc.parent.Value(key)
	}

	return nil
}

// OnCleanup registers a function to run when this scope is disposed.
// If the scope is already disposed the function runs immediately.
func (sc *Scope) OnCleanup(fn func()) {
	if sc.disposed.Load() {
		fn()
		return
	}

	sc.cleanupsMu.Lock()
	defer sc.cleanupsMu.Unlock()
	sc.cleanups = append(sc.cleanups, fn)
}

// Dispose tears down this scope: children are disposed in reverse creation
// order, then cleanups run in reverse registration order. Disposing twice
// is a no-op.
func (sc *Scope) Dispose() {
	if sc.disposed.Swap(true) {
		return
	}

	if sc.parent != nil {
		sc.parent.removeChild(sc)
	}

	sc.childrenMu.Lock()
	children := make([]*Scope, len(sc.children))
	copy(children, sc.children)
	sc.children = nil
	sc.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	sc.cleanupsMu.Lock()
	cleanups := sc.cleanups
	sc.cleanups = nil
	sc.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
