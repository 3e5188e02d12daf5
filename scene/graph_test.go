package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/leash"
)

func buildNode(g *Graph, name string, parent *Node) *Node {
	b := g.NewSurfaceBuilder(parent)
	b.SetName(name)
	b.SetSize(10, 10)
	return b.BuildNode()
}

func childNames(n *Node) []string {
	var names []string
	for _, c := range n.Children() {
		names = append(names, c.Name())
	}
	return names
}

func TestBuilderAttachesHiddenNode(t *testing.T) {
	g := NewGraph()
	n := buildNode(g, "a", nil)

	if n.Parent() != g.Root() {
		t.Error("new node not attached to root")
	}
	if n.Visible() {
		t.Error("new node visible, want hidden until shown by a transaction")
	}
	if w, h := n.Size(); w != 10 || h != 10 {
		t.Errorf("Size() = %dx%d, want 10x10", w, h)
	}
	if !n.Matrix().IsIdentity() {
		t.Error("new node transform not identity")
	}
	if got := n.Alpha(); got != 1 {
		t.Errorf("Alpha() = %v, want 1", got)
	}
}

func TestTransactionAppliesAtomically(t *testing.T) {
	g := NewGraph()
	n := buildNode(g, "a", nil)

	tx := g.NewTransaction()
	tx.Show(n)
	tx.SetLayer(n, 4)
	tx.SetAlpha(n, 0.5)
	tx.SetCrop(n, leash.Rectangle(0, 0, 5, 5))
	tx.SetMatrix(n, leash.Translate(3, 4))
	tx.SetColor(n, colorful.Color{R: 1})

	// Nothing is visible before Apply.
	if n.Visible() || n.Layer() != 0 || n.Alpha() != 1 {
		t.Fatal("transaction mutated the graph before Apply")
	}
	version := g.Version()

	tx.Apply()

	if g.Version() != version+1 {
		t.Errorf("Version() = %d, want %d", g.Version(), version+1)
	}
	if !n.Visible() {
		t.Error("node not shown")
	}
	if got := n.Layer(); got != 4 {
		t.Errorf("Layer() = %d, want 4", got)
	}
	if got := n.Alpha(); got != 0.5 {
		t.Errorf("Alpha() = %v, want 0.5", got)
	}
	if got := n.Crop(); got != leash.Rectangle(0, 0, 5, 5) {
		t.Errorf("Crop() = %v, want [0,0][5,5]", got)
	}
	if got := n.Matrix(); got != leash.Translate(3, 4) {
		t.Errorf("Matrix() = %+v, want translation", got)
	}
	c, ok := n.Color()
	if !ok || c != (colorful.Color{R: 1}) {
		t.Errorf("Color() = %v, %t, want red, true", c, ok)
	}

	// Apply drains the transaction for reuse.
	if got := tx.Pending(); got != 0 {
		t.Errorf("Pending() = %d after Apply, want 0", got)
	}
}

func TestTransactionReparent(t *testing.T) {
	g := NewGraph()
	a := buildNode(g, "a", nil)
	b := buildNode(g, "b", nil)
	child := buildNode(g, "child", a)

	tx := g.NewTransaction()
	tx.Reparent(child, b)
	tx.Apply()

	if child.Parent() != b {
		t.Errorf("parent = %v, want b", child.Parent().Name())
	}
	if got := childNames(a); len(got) != 0 {
		t.Errorf("a still has children %v", got)
	}
	if diff := cmp.Diff([]string{"child"}, childNames(b)); diff != "" {
		t.Errorf("b children mismatch (-want +got):\n%s", diff)
	}

	// Detach with a nil parent.
	tx.Reparent(child, nil)
	tx.Apply()
	if child.Parent() != nil {
		t.Error("detached node still has a parent")
	}
}

func TestChildrenOrderedByLayer(t *testing.T) {
	g := NewGraph()
	a := buildNode(g, "a", nil)
	b := buildNode(g, "b", nil)
	c := buildNode(g, "c", nil)

	tx := g.NewTransaction()
	tx.SetLayer(a, 5)
	tx.SetLayer(b, -1)
	tx.SetLayer(c, 2)
	tx.Apply()

	want := []string{"b", "c", "a"}
	if diff := cmp.Diff(want, childNames(g.Root())); diff != "" {
		t.Errorf("stacking order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveDestroysSubtree(t *testing.T) {
	g := NewGraph()
	a := buildNode(g, "a", nil)
	child := buildNode(g, "child", a)

	tx := g.NewTransaction()
	tx.Remove(a)
	tx.Apply()

	if !a.Removed() || !child.Removed() {
		t.Error("subtree not marked removed")
	}
	if got := childNames(g.Root()); len(got) != 0 {
		t.Errorf("root still has children %v", got)
	}

	// Ops against removed nodes are dropped, not applied.
	tx.Show(child)
	tx.Apply()
	if child.Visible() {
		t.Error("op on a removed node was applied")
	}
}

func TestOpsOnNilSurfaceIgnored(t *testing.T) {
	g := NewGraph()
	tx := g.NewTransaction()
	tx.Show(nil)
	tx.Reparent(nil, g.Root())
	tx.SetLayer(nil, 1)
	if got := tx.Pending(); got != 0 {
		t.Errorf("Pending() = %d, want 0 (nil targets dropped at enqueue)", got)
	}
	tx.Apply()
}

func TestOpsOnForeignGraphIgnored(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	n2 := buildNode(g2, "other", nil)

	tx := g1.NewTransaction()
	tx.Show(n2)
	tx.Apply()

	if n2.Visible() {
		t.Error("transaction of one graph mutated a node of another")
	}
}
