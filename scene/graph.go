// Package scene provides an in-process retained surface tree implementing
// the compositor-client contracts of package leash: surfaces with an
// ownership-exclusive parent pointer, and transactions that batch mutations
// and commit them atomically.
//
// The package is the reference compositor for tests, examples and headless
// use; a real compositor backend satisfies the same interfaces.
package scene

import (
	"sync"

	"github.com/gogpu/leash"
)

// Graph is a retained surface tree. All reads and mutations synchronize on
// the graph's lock; mutations only happen through [Transaction.Apply], so
// observers never see a half-applied batch.
type Graph struct {
	mu      sync.Mutex
	root    *Node
	version uint64
}

// NewGraph creates a graph with a visible root node of zero size.
func NewGraph() *Graph {
	g := &Graph{}
	g.root = &Node{
		graph:   g,
		name:    "root",
		visible: true,
		matrix:  leash.Identity(),
		alpha:   1,
	}
	return g
}

// Root returns the root node of the graph.
func (g *Graph) Root() *Node { return g.root }

// Version returns a counter incremented by every applied transaction.
// Useful for change detection and cache invalidation.
func (g *Graph) Version() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.version
}

// NewTransaction creates an empty transaction against this graph.
func (g *Graph) NewTransaction() *Transaction {
	return &Transaction{graph: g}
}

// NewSurfaceBuilder returns a builder for a new surface under parent.
// A nil parent attaches the new surface to the root.
func (g *Graph) NewSurfaceBuilder(parent *Node) *Builder {
	if parent == nil {
		parent = g.root
	}
	return &Builder{graph: g, parent: parent, name: "surface"}
}
