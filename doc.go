// Package leash animates compositor surfaces through a temporary
// intermediary surface, the leash.
//
// # Overview
//
// leash is a pure Go surface-animation library designed to integrate with
// the GoGPU ecosystem. To animate an object that owns a surface subtree,
// the [Animator] reparents the object's surface onto a newly created leash
// surface attached where the surface used to be, and hands the leash to a
// pluggable [Adapter] that drives its transform, crop and alpha frame by
// frame. When the animation finishes or is cancelled, the Animator
// reparents the surface back to its real parent and destroys the leash -
// exactly once, regardless of how the animation terminated.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/leash"
//	    "github.com/gogpu/leash/scene"
//	)
//
//	graph := scene.NewGraph()
//	win := scene.NewWindow(graph, "app", 100, 100, graph.Root())
//
//	runner := leash.NewFrameRunner(func() leash.Transaction {
//	    return graph.NewTransaction()
//	})
//	defer runner.Close()
//
//	spec := leash.NewBoundsChangeSpec(
//	    leash.Rectangle(0, 0, 100, 100),
//	    leash.Rectangle(0, 0, 200, 200),
//	    300*time.Millisecond,
//	)
//	animator := leash.NewAnimator(win, func() { /* animation done */ })
//
//	t := graph.NewTransaction()
//	animator.StartAnimation(t, leash.NewLocalAdapter(spec, runner), false)
//	t.Apply()
//
// # Architecture
//
// The library is organized into:
//   - Engine: Animator owns the leash lifecycle (creation, handoff,
//     delayed start, cancellation, guaranteed teardown)
//   - Strategies: Adapter and AnimationSpec describe how to animate;
//     BoundsChangeSpec is the built-in bounds interpolation
//   - Driving: FrameRunner ticks running specs and applies one atomic
//     transaction per frame
//   - Compositor client: the Surface, SurfaceBuilder and Transaction
//     interfaces; package scene provides an in-process implementation
//
// # Concurrency
//
// Every Animator serializes its own state transitions behind an internal
// mutex. Completion callbacks may arrive from a different goroutine than
// the one that started the animation (typically the FrameRunner loop); the
// engine validates that a callback still belongs to the current animation
// before acting on it, so late callbacks from a superseded animation are
// harmless.
package leash

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
