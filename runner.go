package leash

import (
	"sync"
	"time"
)

// defaultFrameInterval is the frame period used when none is configured,
// matching a 60 Hz composition clock.
const defaultFrameInterval = 16 * time.Millisecond

// FrameRunner drives [AnimationSpec] instances frame by frame on its own
// goroutine. Each tick it collects one transaction carrying the current
// frame of every running animation and applies it atomically.
//
// Finish callbacks are invoked from the runner goroutine, outside the
// runner's own lock; the receiving [Animator] re-acquires its lock there,
// which is why completion may arrive on a different goroutine than the one
// that started the animation.
type FrameRunner struct {
	newTransaction func() Transaction
	interval       time.Duration

	mu      sync.Mutex
	running map[Surface]*runningAnimation
	closed  bool

	stop chan struct{}
	done chan struct{}
}

// runningAnimation is one spec being driven on one leash.
type runningAnimation struct {
	spec       AnimationSpec
	start      time.Time
	onFinished func()
}

// FrameRunnerOption configures a FrameRunner during creation.
type FrameRunnerOption func(*FrameRunner)

// WithFrameInterval sets the frame period. Defaults to 16ms.
func WithFrameInterval(d time.Duration) FrameRunnerOption {
	return func(r *FrameRunner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// NewFrameRunner creates a runner producing frame transactions from
// newTransaction and starts its animation loop. Callers must Close the
// runner when done with it.
func NewFrameRunner(newTransaction func() Transaction, opts ...FrameRunnerOption) *FrameRunner {
	r := &FrameRunner{
		newTransaction: newTransaction,
		interval:       defaultFrameInterval,
		running:        make(map[Surface]*runningAnimation),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.loop()
	return r
}

// Start begins driving spec on leash. onFinished is invoked once, from the
// runner goroutine, after the final frame was applied. Starting a new spec
// on a leash that is already driven replaces the old spec without
// finishing it.
func (r *FrameRunner) Start(spec AnimationSpec, leash Surface, onFinished func()) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		logger().Warn("frame runner is closed, dropping animation", "leash", leash.Name())
		return
	}
	r.running[leash] = &runningAnimation{
		spec:       spec,
		start:      time.Now(),
		onFinished: onFinished,
	}
	r.mu.Unlock()
	logger().Debug("animation scheduled", "leash", leash.Name(), "duration", spec.Duration())
}

// Cancel stops frame production for leash without invoking its finish
// callback. When Cancel returns, no further transaction will touch leash.
func (r *FrameRunner) Cancel(leash Surface) {
	r.mu.Lock()
	delete(r.running, leash)
	r.mu.Unlock()
}

// Close stops the animation loop. Animations still running stop receiving
// frames and never finish. Close blocks until the loop has exited.
func (r *FrameRunner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()
	close(r.stop)
	<-r.done
}

// loop is the animation loop. It holds the runner lock across transaction
// construction and application so that Cancel, once it returns, excludes
// any further mutation of the cancelled leash.
func (r *FrameRunner) loop() {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			for _, fn := range r.tick(now) {
				fn()
			}
		}
	}
}

// tick applies one frame for every running animation and returns the
// finish callbacks of animations that completed this frame.
func (r *FrameRunner) tick(now time.Time) []func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.running) == 0 {
		return nil
	}
	t := r.newTransaction()
	var finished []func()
	for leash, anim := range r.running {
		playTime := now.Sub(anim.start)
		if playTime < 0 {
			playTime = 0
		}
		if playTime >= anim.spec.Duration() {
			anim.spec.Apply(t, leash, anim.spec.Duration())
			finished = append(finished, anim.onFinished)
			delete(r.running, leash)
		} else {
			anim.spec.Apply(t, leash, playTime)
		}
	}
	t.Apply()
	return finished
}
