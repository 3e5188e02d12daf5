package leash

import "github.com/lucasb-eyer/go-colorful"

// Surface is an opaque handle to a node in a retained compositor scene
// graph. A surface has an ownership-exclusive parent pointer, mutated only
// through [Transaction.Reparent], and an explicit size. The animation engine
// never deletes surfaces except leashes it created itself.
//
// Implementations must be comparable (pointer types are); the engine relies
// on identity comparison to detect stale animation callbacks.
type Surface interface {
	// Name returns a human-readable identifier for the surface,
	// used in leash naming and log output.
	Name() string
}

// SurfaceBuilder constructs a new surface. Obtained from
// [Animatable.MakeLeash] so the new surface shares the stacking context of
// the animatable's children. Setters return the builder for chaining.
type SurfaceBuilder interface {
	SetName(name string) SurfaceBuilder
	SetSize(width, height int) SurfaceBuilder

	// Build creates the surface. New surfaces start hidden; callers show
	// them through a transaction.
	Build() Surface
}

// Transaction is a batch of scene-graph mutation commands that commits
// atomically. Mutations enqueued on a transaction have no effect until
// Apply; the engine itself never applies transactions it did not create,
// leaving commit scheduling to the caller.
//
// All mutation methods must tolerate a nil surface by doing nothing, so
// that half-torn-down animation state never panics mid-teardown.
type Transaction interface {
	// Reparent moves s under newParent. A nil newParent detaches s from
	// the tree without destroying it.
	Reparent(s, newParent Surface)

	// Show makes s visible.
	Show(s Surface)

	// Hide makes s invisible.
	Hide(s Surface)

	// SetLayer sets the stacking order of s relative to its siblings.
	SetLayer(s Surface, layer int)

	// SetCrop sets the crop rectangle of s in its own coordinate space.
	// An empty rectangle clears the crop.
	SetCrop(s Surface, crop Rect)

	// SetMatrix sets the transform applied to s and its subtree.
	SetMatrix(s Surface, m Matrix)

	// SetAlpha sets the opacity of s in [0, 1].
	SetAlpha(s Surface, alpha float32)

	// SetColor sets a solid fill color for s. Used for backdrop surfaces
	// behind an animation.
	SetColor(s Surface, c colorful.Color)

	// Remove destroys s and its subtree when the transaction applies.
	Remove(s Surface)

	// Apply commits all enqueued mutations atomically and resets the
	// transaction for reuse.
	Apply()
}
