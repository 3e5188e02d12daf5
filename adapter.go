package leash

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// FinishedCallback is passed to [Adapter.StartAnimation] and invoked by the
// component running the animation once it completes. The adapter passes
// itself as the argument; the engine uses it to discard callbacks from an
// adapter that has since been cancelled or superseded.
type FinishedCallback func(anim Adapter)

// Adapter describes an animation and bridges the animation start to the
// component responsible for running it. The engine holds at most one active
// adapter at a time; starting a new animation cancels the previous adapter
// first.
//
// Adapters must be pointer types so the engine can compare them by identity.
type Adapter interface {
	// DetachWallpaper reports whether the wallpaper should be detached for
	// the duration of the animation. The engine does not act on this; it
	// only exposes it through [Animator.Animation] for wallpaper-visibility
	// collaborators.
	DetachWallpaper() bool

	// BackgroundColor returns the static backdrop color to show behind the
	// animation for its duration.
	BackgroundColor() colorful.Color

	// StartAnimation requests to start the animation. The adapter now owns
	// driving leash through its own transactions until it invokes
	// onFinished. t carries the initial frame of the animation. The leash
	// must not be touched after onFinished was invoked or after
	// OnCancelled returned.
	StartAnimation(leash Surface, t Transaction, onFinished FinishedCallback)

	// OnCancelled is called when the animation started with StartAnimation
	// was cancelled by the engine before the adapter reported completion.
	// The adapter must stop all mutation of leash before returning; the
	// leash may be destroyed immediately after.
	OnCancelled(leash Surface)

	// DurationHint returns the approximate duration of the animation.
	// Advisory only; the engine's correctness does not depend on it.
	DurationHint() time.Duration
}
