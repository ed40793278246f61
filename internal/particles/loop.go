package particles

import (
	"context"
	"sync/atomic"
	"time"
)

// Loop drives a Field once per frame-ready signal until it is stopped.
// All field access happens on the goroutine calling Run or Frame; Stop and
// RequestResize are safe from any goroutine.
type Loop struct {
	field   *Field
	surface Surface

	stopped       atomic.Bool
	resizePending atomic.Bool
	frames        atomic.Uint64
}

// NewLoop binds f to s and returns a loop ready to run.
func NewLoop(f *Field, s Surface) *Loop {
	f.Initialize(s)
	return &Loop{field: f, surface: s}
}

// Run ticks the field for every value received on frames. It returns nil
// when Stop is called or frames is closed, and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			if !l.Frame() {
				return nil
			}
		}
	}
}

// Frame advances a single frame. It reports false once the loop is stopped.
func (l *Loop) Frame() bool {
	if l.stopped.Load() {
		return false
	}
	if l.resizePending.Swap(false) {
		l.field.Resize(l.surface)
	}
	l.field.Tick()
	l.frames.Add(1)
	return true
}

// RequestResize asks for the surface size to be re-read before the next
// frame. Requests made while one is already pending are absorbed.
func (l *Loop) RequestResize() {
	l.resizePending.Store(true)
}

// Stop ends the loop; the frame in progress, if any, completes.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Frames returns the number of frames ticked so far.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}
