package scene

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/leash"
)

// Node is one surface in a [Graph]. It implements [leash.Surface]. A node
// has at most one parent, changed only through [Transaction.Reparent], and
// an ordered set of children stacked by layer.
//
// Accessors lock the owning graph, so they are safe to call concurrently
// with transaction application from other goroutines.
type Node struct {
	graph *Graph
	name  string

	parent   *Node
	children []*Node

	width, height int
	visible       bool
	layer         int
	matrix        leash.Matrix
	alpha         float32
	crop          leash.Rect
	color         colorful.Color
	hasColor      bool
	removed       bool
}

// Name implements [leash.Surface].
func (n *Node) Name() string { return n.name }

// Parent returns the node's current parent, or nil for the root and for
// removed nodes.
func (n *Node) Parent() *Node {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.parent
}

// Children returns the node's children sorted by layer, bottom first.
// The returned slice is a copy.
func (n *Node) Children() []*Node {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	sort.SliceStable(out, func(i, j int) bool { return out[i].layer < out[j].layer })
	return out
}

// Size returns the node's width and height.
func (n *Node) Size() (width, height int) {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.width, n.height
}

// Visible reports whether the node is shown.
func (n *Node) Visible() bool {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.visible
}

// Layer returns the node's stacking order among its siblings.
func (n *Node) Layer() int {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.layer
}

// Matrix returns the node's transform.
func (n *Node) Matrix() leash.Matrix {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.matrix
}

// Alpha returns the node's opacity.
func (n *Node) Alpha() float32 {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.alpha
}

// Crop returns the node's crop rectangle. An empty rectangle means the
// node is uncropped.
func (n *Node) Crop() leash.Rect {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.crop
}

// Color returns the node's fill color and whether one was set.
func (n *Node) Color() (colorful.Color, bool) {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.color, n.hasColor
}

// Removed reports whether the node was destroyed by a transaction.
func (n *Node) Removed() bool {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	return n.removed
}

// detachLocked removes n from its parent's child list.
func (n *Node) detachLocked() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// attachLocked appends n to parent's child list.
func (n *Node) attachLocked(parent *Node) {
	n.parent = parent
	parent.children = append(parent.children, n)
}

// removeLocked marks n and its subtree removed and detaches n.
func (n *Node) removeLocked() {
	n.detachLocked()
	var mark func(*Node)
	mark = func(m *Node) {
		m.removed = true
		for _, c := range m.children {
			mark(c)
		}
		m.children = nil
	}
	mark(n)
}
