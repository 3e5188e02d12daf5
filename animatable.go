package leash

// Animatable is the contract an animated scene-graph object (a window, a
// task) must satisfy to be driven by an [Animator]. An Animator holds
// exactly one Animatable, bound at construction for the lifetime of the
// Animator.
//
// The hook methods are invoked synchronously from inside the engine and
// must not call back into the owning Animator.
type Animatable interface {
	// PendingTransaction returns the transaction that will be committed on
	// the next composited frame. Never nil.
	PendingTransaction() Transaction

	// CommitPendingTransaction schedules the pending transaction for
	// application.
	CommitPendingTransaction()

	// OnLeashCreated is invoked when a leash was created and the surface
	// reparented onto it, so the animatable can propagate state onto the
	// leash (stacking position, corner rounding).
	OnLeashCreated(t Transaction, leash Surface)

	// OnLeashDestroyed is invoked during leash teardown, after the surface
	// was reparented back to the original parent on t, so the animatable
	// can restore anything it mutated in OnLeashCreated.
	OnLeashDestroyed(t Transaction)

	// MakeLeash returns a builder for a new surface with the same stacking
	// context as the animatable's children.
	MakeLeash() SurfaceBuilder

	// Surface returns the surface to animate. A nil return means there is
	// nothing to animate; the engine treats that as an immediate no-op,
	// not an error.
	Surface() Surface

	// ParentSurface returns the real (non-leash) parent to restore on
	// teardown. May be nil. The real parent is remembered by the
	// Animatable, never by the engine.
	ParentSurface() Surface

	// SurfaceWidth returns the width of the surface to animate.
	SurfaceWidth() int

	// SurfaceHeight returns the height of the surface to animate.
	SurfaceHeight() int
}
