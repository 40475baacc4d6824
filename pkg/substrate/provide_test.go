package substrate

import (
	"strings"
	"sync"
	"testing"
)

func TestProvideAndFrom(t *testing.T) {
	scope := NewScope(nil)
	store := New(profile{First: "Ada"})

	Provide(scope, store)

	if got := From[profile](scope); got != store {
		t.Error("From returned a different store than provided")
	}

	child := NewScope(scope)
	if got := From[profile](child); got != store {
		t.Error("child scope could not reach parent's store")
	}
}

func TestLookupMissing(t *testing.T) {
	scope := NewScope(nil)

	if _, ok := Lookup[profile](scope); ok {
		t.Error("Lookup reported a store in an empty scope")
	}
	if _, ok := Lookup[profile](nil); ok {
		t.Error("Lookup on nil scope reported a store")
	}
}

func TestFromPanicsOutsideProviderScope(t *testing.T) {
	scope := NewScope(nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when no store is provided")
		}
		if !strings.Contains(r.(string), "no store") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	From[profile](scope)
}

func TestStoresKeyedByStateType(t *testing.T) {
	type settings struct {
		Theme string
	}

	scope := NewScope(nil)
	profiles := New(profile{})
	prefs := New(settings{Theme: "dark"})

	Provide(scope, profiles)
	Provide(scope, prefs)

	if got := From[profile](scope); got != profiles {
		t.Error("profile store lookup mismatch")
	}
	if got := From[settings](scope); got != prefs {
		t.Error("settings store lookup mismatch")
	}
}

func TestUseStoreWithinScope(t *testing.T) {
	scope := NewScope(nil)
	store := New(profile{})
	Provide(scope, store)

	WithScope(scope, func() {
		if got := UseStore[profile](); got != store {
			t.Error("UseStore returned a different store")
		}
		if CurrentScope() != scope {
			t.Error("CurrentScope mismatch inside WithScope")
		}
	})

	if CurrentScope() != nil {
		t.Error("scope leaked outside WithScope")
	}
}

func TestUseStorePanicsOutsideWithScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic outside WithScope")
		}
	}()
	UseStore[profile]()
}

func TestWithScopeIsGoroutineLocal(t *testing.T) {
	scopeA := NewScope(nil)
	scopeB := NewScope(nil)
	Provide(scopeA, New(profile{First: "A"}))
	Provide(scopeB, New(profile{First: "B"}))

	var wg sync.WaitGroup
	for _, tc := range []struct {
		scope *Scope
		want  string
	}{
		{scopeA, "A"},
		{scopeB, "B"},
	} {
		tc := tc
		wg.Add(1)
		go func() {
			defer wg.Done()
			WithScope(tc.scope, func() {
				got := UseStore[profile]().Get().First
				if got != tc.want {
					t.Errorf("goroutine saw store %q, want %q", got, tc.want)
				}
			})
		}()
	}
	wg.Wait()
}

func TestWithScopeNesting(t *testing.T) {
	outer := NewScope(nil)
	inner := NewScope(outer)

	WithScope(outer, func() {
		WithScope(inner, func() {
			if CurrentScope() != inner {
				t.Error("inner scope not current")
			}
		})
		if CurrentScope() != outer {
			t.Error("outer scope not restored after nested WithScope")
		}
	})
}

func TestUseSelectorLifecycle(t *testing.T) {
	scope := NewScope(nil)
	store := New(profile{First: "Ada"})
	Provide(scope, store)

	var changes []string
	var initial string

	WithScope(scope, func() {
		initial, _ = UseSelector(selectFirst, func(v string) {
			changes = append(changes, v)
		})
	})

	if initial != "Ada" {
		t.Errorf("expected initial %q, got %q", "Ada", initial)
	}

	store.Set(setFirst("Grace"))
	if len(changes) != 1 || changes[0] != "Grace" {
		t.Errorf("expected change signal %q, got %v", "Grace", changes)
	}

	// Disposing the scope detaches the binding.
	scope.Dispose()
	store.Set(setFirst("Edsger"))
	if len(changes) != 1 {
		t.Errorf("binding signaled after scope dispose: %v", changes)
	}
	if got := store.Subscribers(); got != 0 {
		t.Errorf("expected 0 subscriptions after dispose, got %d", got)
	}
}

func TestUseSelectorManualDetachBeforeDispose(t *testing.T) {
	scope := NewScope(nil)
	store := New(profile{})
	Provide(scope, store)

	var binding *Binding[profile, string]
	WithScope(scope, func() {
		_, binding = UseSelector(selectFirst, func(string) {})
	})

	binding.Detach()
	scope.Dispose() // runs Detach again; must stay a no-op
}

func TestUseSelectorPanicsOutsideWithScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic outside WithScope")
		}
	}()
	UseSelector(selectFirst, nil)
}
