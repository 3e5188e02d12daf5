package scene

import "github.com/gogpu/leash"

// Builder constructs a new [Node] and implements [leash.SurfaceBuilder].
// New nodes start hidden, with identity transform and full opacity, and
// attach under the builder's parent immediately on Build.
type Builder struct {
	graph  *Graph
	parent *Node

	name          string
	width, height int
}

// SetName implements [leash.SurfaceBuilder].
func (b *Builder) SetName(name string) leash.SurfaceBuilder {
	b.name = name
	return b
}

// SetSize implements [leash.SurfaceBuilder].
func (b *Builder) SetSize(width, height int) leash.SurfaceBuilder {
	b.width = width
	b.height = height
	return b
}

// Build implements [leash.SurfaceBuilder].
func (b *Builder) Build() leash.Surface {
	return b.BuildNode()
}

// BuildNode is like Build but returns the concrete node type.
func (b *Builder) BuildNode() *Node {
	g := b.graph
	n := &Node{
		graph:  g,
		name:   b.name,
		width:  b.width,
		height: b.height,
		matrix: leash.Identity(),
		alpha:  1,
	}
	g.mu.Lock()
	n.attachLocked(b.parent)
	g.mu.Unlock()
	return n
}
