package scene

import (
	"testing"
	"time"

	"github.com/fogleman/ease"

	"github.com/gogpu/leash"
)

func TestWindowImplementsAnimatable(t *testing.T) {
	g := NewGraph()
	w := NewWindow(g, "app", 100, 80, nil)

	if w.Surface() != leash.Surface(w.Node()) {
		t.Error("Surface() does not return the window node")
	}
	if w.ParentSurface() != leash.Surface(g.Root()) {
		t.Error("ParentSurface() does not return the real parent")
	}
	if w.SurfaceWidth() != 100 || w.SurfaceHeight() != 80 {
		t.Errorf("surface size = %dx%d, want 100x80", w.SurfaceWidth(), w.SurfaceHeight())
	}
	if !w.Node().Visible() {
		t.Error("new window not visible")
	}

	// The pending transaction is stable across calls and commits drain it.
	p1 := w.PendingTransaction()
	p2 := w.PendingTransaction()
	if p1 != p2 {
		t.Error("PendingTransaction() not stable across calls")
	}
	p1.Hide(w.Node())
	w.CommitPendingTransaction()
	if w.Node().Visible() {
		t.Error("pending transaction was not applied on commit")
	}
}

// An animation moves the window node onto a leash under the real parent and,
// once finished, restores the original parenting with the leash destroyed.
func TestWindowLeashLifecycleOnGraph(t *testing.T) {
	g := NewGraph()
	w := NewWindow(g, "app", 100, 100, nil)

	runner := leash.NewFrameRunner(func() leash.Transaction {
		return g.NewTransaction()
	}, leash.WithFrameInterval(5*time.Millisecond))
	defer runner.Close()

	spec := leash.NewBoundsChangeSpec(
		leash.Rectangle(0, 0, 100, 100),
		leash.Rectangle(0, 0, 200, 200),
		40*time.Millisecond,
		leash.WithEasing(ease.Linear),
	)

	finished := make(chan struct{})
	animator := leash.NewAnimator(w, func() { close(finished) })

	tx := g.NewTransaction()
	animator.StartAnimation(tx, leash.NewLocalAdapter(spec, runner), false)
	tx.Apply()

	// While animating, the node hangs off the leash, which hangs off the
	// real parent.
	leashNode := w.Node().Parent()
	if leashNode == nil || leashNode == g.Root() {
		t.Fatal("window node not reparented onto a leash")
	}
	if leashNode.Parent() != g.Root() {
		t.Error("leash not attached to the real parent")
	}
	if !leashNode.Visible() {
		t.Error("leash not shown for a visible container")
	}
	if w, h := leashNode.Size(); w != 100 || h != 100 {
		t.Errorf("leash size = %dx%d, want 100x100", w, h)
	}
	if !animator.HasLeash() {
		t.Error("HasLeash() = false while animating")
	}

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("animation did not finish")
	}
	w.CommitPendingTransaction()

	if got := w.Node().Parent(); got != g.Root() {
		t.Errorf("node parent after finish = %v, want root", got)
	}
	if !leashNode.Removed() {
		t.Error("leash not destroyed after finish")
	}
	if animator.HasLeash() {
		t.Error("HasLeash() = true after finish")
	}
}

func TestWindowCancelRestoresParent(t *testing.T) {
	g := NewGraph()
	w := NewWindow(g, "app", 50, 50, nil)

	runner := leash.NewFrameRunner(func() leash.Transaction {
		return g.NewTransaction()
	}, leash.WithFrameInterval(5*time.Millisecond))
	defer runner.Close()

	spec := leash.NewBoundsChangeSpec(
		leash.Rectangle(0, 0, 50, 50),
		leash.Rectangle(0, 0, 150, 150),
		time.Hour, // would run forever without the cancel
	)
	animator := leash.NewAnimator(w, nil)

	tx := g.NewTransaction()
	animator.StartAnimation(tx, leash.NewLocalAdapter(spec, runner), false)
	tx.Apply()
	leashNode := w.Node().Parent()

	animator.CancelAnimation()

	if got := w.Node().Parent(); got != g.Root() {
		t.Errorf("node parent after cancel = %v, want root", got)
	}
	if !leashNode.Removed() {
		t.Error("leash not destroyed after cancel")
	}
	if animator.IsAnimating() {
		t.Error("IsAnimating() = true after cancel")
	}
}
