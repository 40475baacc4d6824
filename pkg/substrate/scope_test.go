package substrate

import "testing"

func TestScopeValueLookup(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	root.SetValue("theme", "dark")

	if got := child.Value("theme"); got != "dark" {
		t.Errorf("expected child to see parent value, got %v", got)
	}
	if got := root.Value("missing"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestScopeChildShadowsParent(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	root.SetValue("theme", "dark")
	child.SetValue("theme", "light")

	if got := child.Value("theme"); got != "light" {
		t.Errorf("expected nearest provider to win, got %v", got)
	}
	if got := root.Value("theme"); got != "dark" {
		t.Errorf("child value leaked into parent, got %v", got)
	}
}

func TestScopeSiblingIsolation(t *testing.T) {
	root := NewScope(nil)
	a := NewScope(root)
	b := NewScope(root)

	a.SetValue("store", 1)

	if got := b.Value("store"); got != nil {
		t.Errorf("sibling scope saw value %v", got)
	}
}

func TestScopeDisposeRunsCleanupsInReverse(t *testing.T) {
	sc := NewScope(nil)

	var order []int
	sc.OnCleanup(func() { order = append(order, 1) })
	sc.OnCleanup(func() { order = append(order, 2) })

	sc.Dispose()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected reverse cleanup order [2 1], got %v", order)
	}
	if !sc.IsDisposed() {
		t.Error("scope not marked disposed")
	}

	// Double dispose is a no-op.
	sc.Dispose()
	if len(order) != 2 {
		t.Errorf("cleanups ran again on double dispose: %v", order)
	}
}

func TestScopeDisposeCascadesToChildren(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)
	grandchild := NewScope(child)

	disposed := 0
	child.OnCleanup(func() { disposed++ })
	grandchild.OnCleanup(func() { disposed++ })

	root.Dispose()

	if disposed != 2 {
		t.Errorf("expected 2 child cleanups, got %d", disposed)
	}
	if !grandchild.IsDisposed() {
		t.Error("grandchild not disposed")
	}
}

func TestScopeCleanupAfterDisposeRunsImmediately(t *testing.T) {
	sc := NewScope(nil)
	sc.Dispose()

	ran := false
	sc.OnCleanup(func() { ran = true })

	if !ran {
		t.Error("cleanup registered after dispose did not run immediately")
	}
}

func TestScopeParent(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	if root.Parent() != nil {
		t.Error("root scope has a parent")
	}
	if child.Parent() != root {
		t.Error("child scope parent mismatch")
	}
	if root.ID() == child.ID() {
		t.Error("scope IDs collide")
	}
}
