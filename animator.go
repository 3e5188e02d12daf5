package leash

import (
	"fmt"
	"sync"
)

// Animator runs animations on objects that own a surface subtree. It does
// so by reparenting the object's surface onto a new, temporary surface
// called the leash, attached where the surface used to be. The leash is
// handed to the component running the animation, specified by an [Adapter].
// When the animation completes, the adapter invokes the finish callback and
// the Animator reparents the surface back to its original parent and
// destroys the leash.
//
// An Animator guards its state with its own mutex; calls into it may come
// from any goroutine, including an adapter's animation loop delivering the
// finish callback. Adapter and completion callbacks are delivered after the
// internal state was reset and the mutex released, so callbacks may safely
// call back into the Animator and will observe it idle.
type Animator struct {
	mu sync.Mutex

	animatable Animatable

	// onFinished is the caller-supplied completion callback. Invoked on
	// natural completion and on explicit cancellation, but not on a cancel
	// that restarts into a new animation. May be nil.
	onFinished func()

	// innerFinished is handed to every adapter; it validates the reporting
	// adapter is still current before tearing down.
	innerFinished FinishedCallback

	adapter Adapter
	leash   Surface

	// startDelayed stalls the adapter handoff of the next StartAnimation
	// until EndDelayingAnimationStart.
	startDelayed bool
}

// NewAnimator creates an Animator bound to animatable for its lifetime.
// onFinished is invoked whenever an animation has finished running or was
// cancelled externally; it may be nil.
func NewAnimator(animatable Animatable, onFinished func()) *Animator {
	a := &Animator{
		animatable: animatable,
		onFinished: onFinished,
	}
	a.innerFinished = a.finishAnimation
	return a
}

// StartAnimation starts an animation, cancelling any animation that is
// already running or pending (restart semantics: no queuing, no merging).
//
// adapter bridges the Animator with the component responsible for running
// the animation; it receives the leash once the hierarchy has been set up.
// hidden controls whether the leash starts hidden, for containers that are
// not currently visible.
//
// If the animatable has no surface there is nothing to animate: no leash is
// created, the adapter is never started, and the completion path fires
// through cancel semantics.
func (a *Animator) StartAnimation(t Transaction, adapter Adapter, hidden bool) {
	a.mu.Lock()
	notify := a.cancelLocked(t, true)
	a.mu.Unlock()
	// The superseded animation is torn down and notified before the new one
	// exists, so a reentrant call from its OnCancelled observes an idle
	// engine rather than the replacement animation.
	a.deliver(notify)

	a.mu.Lock()
	// A reentrant start during the notifications above is superseded like
	// any other running animation.
	notify = a.cancelLocked(t, true)
	a.adapter = adapter
	surface := a.animatable.Surface()
	if surface == nil {
		logger().Warn("unable to start animation, surface is nil")
		notify = append(notify, a.cancelLocked(a.animatable.PendingTransaction(), false)...)
		a.mu.Unlock()
		a.deliver(notify)
		a.animatable.CommitPendingTransaction()
		return
	}
	a.leash = a.createLeashLocked(surface, t, a.animatable.SurfaceWidth(),
		a.animatable.SurfaceHeight(), hidden)
	a.animatable.OnLeashCreated(t, a.leash)
	delayed := a.startDelayed
	if delayed {
		logger().Info("animation start delayed", "surface", surface.Name())
	}
	leash := a.leash
	cb := a.innerFinished
	a.mu.Unlock()
	a.deliver(notify)
	if delayed {
		return
	}
	// The notifications above, or a cancel racing on another goroutine, may
	// have torn this animation down already; hand off only if still current.
	a.mu.Lock()
	current := a.adapter == adapter
	a.mu.Unlock()
	if current {
		adapter.StartAnimation(leash, t, cb)
	}
}

// StartDelayingAnimationStart begins delaying animation starts. Any
// subsequent StartAnimation call sets up the leash but does not hand it to
// the adapter until EndDelayingAnimationStart is called. While a start is
// delayed, the Animator is considered animating already.
//
// Only effective while no animation is running or pending.
func (a *Animator) StartDelayingAnimationStart() {
	a.mu.Lock()
	if a.adapter == nil {
		a.startDelayed = true
	}
	a.mu.Unlock()
}

// EndDelayingAnimationStart hands a delayed animation to its adapter, using
// the animatable's pending transaction, and commits it. No-op if no start
// was delayed.
func (a *Animator) EndDelayingAnimationStart() {
	a.mu.Lock()
	delayed := a.startDelayed
	a.startDelayed = false
	adapter := a.adapter
	leash := a.leash
	cb := a.innerFinished
	a.mu.Unlock()
	if delayed && adapter != nil {
		adapter.StartAnimation(leash, a.animatable.PendingTransaction(), cb)
		a.animatable.CommitPendingTransaction()
	}
}

// IsAnimating reports whether an animation is currently running, or pending
// behind a delayed start.
func (a *Animator) IsAnimating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adapter != nil
}

// Animation returns the current adapter if an animation is running or
// pending, or nil otherwise.
func (a *Animator) Animation() Adapter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adapter
}

// HasLeash reports whether the surface is currently attached to a leash.
func (a *Animator) HasLeash() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.leash != nil
}

// CancelAnimation cancels any currently running or pending animation,
// tearing down the leash on the animatable's pending transaction and
// committing it. The adapter is notified through [Adapter.OnCancelled]
// unless the animation never started (delayed), and the caller completion
// callback fires.
func (a *Animator) CancelAnimation() {
	a.mu.Lock()
	notify := a.cancelLocked(a.animatable.PendingTransaction(), false)
	a.mu.Unlock()
	a.deliver(notify)
	a.animatable.CommitPendingTransaction()
}

// SetLayer sets the stacking order of the animated surface. While a leash
// exists the layer is set on the leash instead, so callers never need to
// know whether an animation is in flight.
func (a *Animator) SetLayer(t Transaction, layer int) {
	t.SetLayer(a.surfaceToManipulate(), layer)
}

// Reparent moves the animated surface under newParent, redirecting to the
// leash if one exists.
//
// See [Animator.SetLayer].
func (a *Animator) Reparent(t Transaction, newParent Surface) {
	t.Reparent(a.surfaceToManipulate(), newParent)
}

// String describes the current animation state, for diagnostics.
func (a *Animator) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	leashName := "<nil>"
	if a.leash != nil {
		leashName = a.leash.Name()
	}
	return fmt.Sprintf("Animator{adapter=%v leash=%s delayed=%t}",
		a.adapter, leashName, a.startDelayed)
}

// surfaceToManipulate returns the leash if one exists, else the real
// surface.
func (a *Animator) surfaceToManipulate() Surface {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.leash != nil {
		return a.leash
	}
	return a.animatable.Surface()
}

// finishAnimation is the callback handed to adapters. A callback from an
// adapter that is no longer current (superseded by a restart, or already
// cancelled) is ignored; this is the guard that makes late completion
// notifications safe.
func (a *Animator) finishAnimation(anim Adapter) {
	a.mu.Lock()
	if anim != a.adapter {
		// Callback was from another animation - ignore.
		a.mu.Unlock()
		return
	}
	t := a.animatable.PendingTransaction()
	a.resetLocked(t)
	a.mu.Unlock()
	if a.onFinished != nil {
		a.onFinished()
	}
	a.animatable.CommitPendingTransaction()
}

// cancelLocked tears down the current animation, if any. Internal state is
// reset before anyone is notified, so reentrant calls observe an idle
// Animator. The returned callbacks must be invoked by the caller after
// releasing the mutex.
//
// The adapter is notified of the cancellation unless its start was still
// delayed, in which case it never saw the animation begin. The caller
// completion callback fires only for external cancels; a cancel issued to
// restart into a new animation is silent to it.
func (a *Animator) cancelLocked(t Transaction, restarting bool) []func() {
	leash := a.leash
	adapter := a.adapter
	delayed := a.startDelayed
	if adapter != nil {
		logger().Info("cancelling animation", "restarting", restarting)
	}
	a.resetLocked(t)

	var notify []func()
	if adapter != nil {
		if !delayed {
			notify = append(notify, func() { adapter.OnCancelled(leash) })
		}
		if !restarting && a.onFinished != nil {
			notify = append(notify, a.onFinished)
		}
	}
	if !restarting {
		a.startDelayed = false
	}
	return notify
}

// resetLocked reparents the surface back to its real parent and destroys
// the leash. Every step is defensive: if the surface or its parent is
// already gone, the reparent and the leash-destroyed hook are skipped and
// only the internal state is cleared. The leash is removed exactly once,
// on the same transaction as the reparent.
func (a *Animator) resetLocked(t Transaction) {
	surface := a.animatable.Surface()
	parent := a.animatable.ParentSurface()

	// If the surface was destroyed, we don't care to reparent it back.
	destroy := a.leash != nil && surface != nil && parent != nil
	if destroy {
		logger().Debug("reparenting to original parent", "surface", surface.Name())
		t.Reparent(surface, parent)
	}
	leash := a.leash
	a.leash = nil
	a.adapter = nil

	// Inform the animatable after the surface was reclaimed from the leash.
	if destroy {
		a.animatable.OnLeashDestroyed(t)
		t.Remove(leash)
	}
}

// createLeashLocked builds the leash, shows it unless the container is
// hidden, and moves the surface onto it.
func (a *Animator) createLeashLocked(surface Surface, t Transaction, width, height int, hidden bool) Surface {
	logger().Debug("reparenting to leash", "surface", surface.Name())
	leash := a.animatable.MakeLeash().
		SetName(surface.Name() + " - animation leash").
		SetSize(width, height).
		Build()
	if !hidden {
		t.Show(leash)
	}
	t.Reparent(surface, leash)
	return leash
}

// deliver invokes queued notifications in order. Must be called without the
// mutex held.
func (a *Animator) deliver(notify []func()) {
	for _, fn := range notify {
		fn()
	}
}
