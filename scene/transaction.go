package scene

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/leash"
)

// opKind identifies one mutation command in a transaction.
type opKind uint8

const (
	opReparent opKind = iota
	opShow
	opHide
	opSetLayer
	opSetCrop
	opSetMatrix
	opSetAlpha
	opSetColor
	opRemove
)

// op is one enqueued mutation. target and parent hold *Node values; ops on
// nil or foreign surfaces are dropped at apply time.
type op struct {
	kind   opKind
	target leash.Surface
	parent leash.Surface
	layer  int
	crop   leash.Rect
	matrix leash.Matrix
	alpha  float32
	color  colorful.Color
}

// Transaction batches mutations against a [Graph] and implements
// [leash.Transaction]. Mutations take effect only on Apply, which commits
// the whole batch atomically under the graph lock and resets the
// transaction for reuse.
//
// A Transaction may be shared across goroutines; enqueueing and Apply
// synchronize on the transaction's own lock.
type Transaction struct {
	graph *Graph

	mu  sync.Mutex
	ops []op
}

// enqueue appends o unless its target is nil.
func (t *Transaction) enqueue(o op) {
	if o.target == nil {
		return
	}
	t.mu.Lock()
	t.ops = append(t.ops, o)
	t.mu.Unlock()
}

// Reparent implements [leash.Transaction].
func (t *Transaction) Reparent(s, newParent leash.Surface) {
	t.enqueue(op{kind: opReparent, target: s, parent: newParent})
}

// Show implements [leash.Transaction].
func (t *Transaction) Show(s leash.Surface) {
	t.enqueue(op{kind: opShow, target: s})
}

// Hide implements [leash.Transaction].
func (t *Transaction) Hide(s leash.Surface) {
	t.enqueue(op{kind: opHide, target: s})
}

// SetLayer implements [leash.Transaction].
func (t *Transaction) SetLayer(s leash.Surface, layer int) {
	t.enqueue(op{kind: opSetLayer, target: s, layer: layer})
}

// SetCrop implements [leash.Transaction].
func (t *Transaction) SetCrop(s leash.Surface, crop leash.Rect) {
	t.enqueue(op{kind: opSetCrop, target: s, crop: crop})
}

// SetMatrix implements [leash.Transaction].
func (t *Transaction) SetMatrix(s leash.Surface, m leash.Matrix) {
	t.enqueue(op{kind: opSetMatrix, target: s, matrix: m})
}

// SetAlpha implements [leash.Transaction].
func (t *Transaction) SetAlpha(s leash.Surface, alpha float32) {
	t.enqueue(op{kind: opSetAlpha, target: s, alpha: alpha})
}

// SetColor implements [leash.Transaction].
func (t *Transaction) SetColor(s leash.Surface, c colorful.Color) {
	t.enqueue(op{kind: opSetColor, target: s, color: c})
}

// Remove implements [leash.Transaction].
func (t *Transaction) Remove(s leash.Surface) {
	t.enqueue(op{kind: opRemove, target: s})
}

// Pending returns the number of enqueued, not yet applied mutations.
func (t *Transaction) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ops)
}

// Apply implements [leash.Transaction]. Ops are applied in enqueue order;
// ops targeting removed nodes or nodes of another graph are dropped.
func (t *Transaction) Apply() {
	t.mu.Lock()
	ops := t.ops
	t.ops = nil
	t.mu.Unlock()

	g := t.graph
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, o := range ops {
		n := t.node(o.target)
		if n == nil || n.removed {
			continue
		}
		switch o.kind {
		case opReparent:
			n.detachLocked()
			if p := t.node(o.parent); p != nil && !p.removed {
				n.attachLocked(p)
			}
		case opShow:
			n.visible = true
		case opHide:
			n.visible = false
		case opSetLayer:
			n.layer = o.layer
		case opSetCrop:
			n.crop = o.crop
		case opSetMatrix:
			n.matrix = o.matrix
		case opSetAlpha:
			n.alpha = clampAlpha(o.alpha)
		case opSetColor:
			n.color = o.color
			n.hasColor = true
		case opRemove:
			n.removeLocked()
		}
	}
	g.version++
}

// node converts a surface back to the graph's node type.
func (t *Transaction) node(s leash.Surface) *Node {
	n, ok := s.(*Node)
	if !ok || n == nil || n.graph != t.graph {
		return nil
	}
	return n
}

// clampAlpha clamps alpha to [0, 1] range.
func clampAlpha(alpha float32) float32 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
