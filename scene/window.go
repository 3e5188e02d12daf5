package scene

import (
	"sync"

	"github.com/gogpu/leash"
)

// Window is a [Graph] node bound to the [leash.Animatable] contract, so it
// can be animated by a [leash.Animator]. It remembers its real parent
// across leashing, which is the animatable's job: while an animation is in
// flight the node's tree parent is the leash, not the real parent.
type Window struct {
	graph      *Graph
	node       *Node
	realParent *Node

	mu      sync.Mutex
	pending *Transaction
}

// NewWindow creates a visible window node of the given size under parent
// (root if nil) and returns its animatable binding.
func NewWindow(g *Graph, name string, width, height int, parent *Node) *Window {
	if parent == nil {
		parent = g.Root()
	}
	b := g.NewSurfaceBuilder(parent)
	b.SetName(name)
	b.SetSize(width, height)
	node := b.BuildNode()
	t := g.NewTransaction()
	t.Show(node)
	t.Apply()
	return &Window{
		graph:      g,
		node:       node,
		realParent: parent,
	}
}

// Node returns the window's surface node.
func (w *Window) Node() *Node { return w.node }

// PendingTransaction implements [leash.Animatable].
func (w *Window) PendingTransaction() leash.Transaction {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		w.pending = w.graph.NewTransaction()
	}
	return w.pending
}

// CommitPendingTransaction implements [leash.Animatable].
func (w *Window) CommitPendingTransaction() {
	w.mu.Lock()
	pending := w.pending
	w.mu.Unlock()
	if pending != nil {
		pending.Apply()
	}
}

// OnLeashCreated implements [leash.Animatable]. The leash inherits the
// window's stacking position so the subtree keeps its z-order while
// animated.
func (w *Window) OnLeashCreated(t leash.Transaction, l leash.Surface) {
	t.SetLayer(l, w.node.Layer())
}

// OnLeashDestroyed implements [leash.Animatable]. The reparent carried by t
// already restores everything this window changed in OnLeashCreated.
func (w *Window) OnLeashDestroyed(t leash.Transaction) {}

// MakeLeash implements [leash.Animatable]. The leash attaches where the
// window is attached, under its real parent.
func (w *Window) MakeLeash() leash.SurfaceBuilder {
	return w.graph.NewSurfaceBuilder(w.realParent)
}

// Surface implements [leash.Animatable]. Returns nil once the node was
// removed from the graph: there is nothing left to animate.
func (w *Window) Surface() leash.Surface {
	if w.node == nil || w.node.Removed() {
		return nil
	}
	return w.node
}

// ParentSurface implements [leash.Animatable].
func (w *Window) ParentSurface() leash.Surface {
	if w.realParent == nil {
		return nil
	}
	return w.realParent
}

// SurfaceWidth implements [leash.Animatable].
func (w *Window) SurfaceWidth() int {
	width, _ := w.node.Size()
	return width
}

// SurfaceHeight implements [leash.Animatable].
func (w *Window) SurfaceHeight() int {
	_, height := w.node.Size()
	return height
}
