package leash

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// AnimationSpec describes the per-frame behavior of an animation that is
// driven locally by a [FrameRunner]. A spec is a pure description: it holds
// the numeric parameters of the animation and computes frames from a play
// time, but owns no leash and runs no goroutine.
type AnimationSpec interface {
	// Duration returns the total length of the animation.
	Duration() time.Duration

	// Apply writes the frame for the given play time onto t. playTime is
	// clamped by the runner to [0, Duration].
	Apply(t Transaction, leash Surface, playTime time.Duration)
}

// LocalAdapter is an [Adapter] that runs an [AnimationSpec] on a
// [FrameRunner] in this process, as opposed to delegating the animation to
// a remote component.
type LocalAdapter struct {
	spec   AnimationSpec
	runner *FrameRunner

	background      colorful.Color
	detachWallpaper bool
}

// LocalAdapterOption configures a LocalAdapter during creation.
type LocalAdapterOption func(*LocalAdapter)

// WithBackgroundColor sets the backdrop color reported by the adapter.
func WithBackgroundColor(c colorful.Color) LocalAdapterOption {
	return func(a *LocalAdapter) {
		a.background = c
	}
}

// WithDetachWallpaper marks the animation as one the wallpaper should be
// detached for.
func WithDetachWallpaper() LocalAdapterOption {
	return func(a *LocalAdapter) {
		a.detachWallpaper = true
	}
}

// NewLocalAdapter creates an adapter that drives spec on runner.
func NewLocalAdapter(spec AnimationSpec, runner *FrameRunner, opts ...LocalAdapterOption) *LocalAdapter {
	a := &LocalAdapter{
		spec:   spec,
		runner: runner,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DetachWallpaper implements [Adapter].
func (a *LocalAdapter) DetachWallpaper() bool { return a.detachWallpaper }

// BackgroundColor implements [Adapter].
func (a *LocalAdapter) BackgroundColor() colorful.Color { return a.background }

// DurationHint implements [Adapter].
func (a *LocalAdapter) DurationHint() time.Duration { return a.spec.Duration() }

// StartAnimation implements [Adapter]. The initial frame is written onto t
// so the handoff transaction already carries a consistent first state; the
// runner takes over from there.
func (a *LocalAdapter) StartAnimation(leash Surface, t Transaction, onFinished FinishedCallback) {
	a.spec.Apply(t, leash, 0)
	a.runner.Start(a.spec, leash, func() { onFinished(a) })
}

// OnCancelled implements [Adapter]. Stops the runner's frame production for
// the leash before returning, after which the leash may be destroyed.
func (a *LocalAdapter) OnCancelled(leash Surface) {
	a.runner.Cancel(leash)
}
