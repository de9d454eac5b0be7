package game

import (
	"context"

	"go.uber.org/atomic"
)

// Loop runs one frame callback at a time until stopped. The stop flag is checked before
// every frame, so no frame starts once Stop has returned on the loop's goroutine.
type Loop struct {
	stopped atomic.Bool
	frames  atomic.Uint64
}

// Stop may be called from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Frames is the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Run calls frame until it returns false, ctx is done, or Stop is called.
func (l *Loop) Run(ctx context.Context, frame func() bool) {
	for {
		if l.stopped.Load() || ctx.Err() != nil {
			return
		}
		if !frame() {
			l.stopped.Store(true)
			return
		}
		l.frames.Inc()
	}
}
