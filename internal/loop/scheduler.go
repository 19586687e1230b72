package loop

import (
	"context"
	"time"
)

// FrameFunc runs one frame. elapsed is the time since the previous frame
// started, zero for the first frame. Returning true stops the scheduler.
type FrameFunc func(elapsed time.Duration) (done bool)

// Scheduler runs frames at a fixed cadence. Frames never overlap: after each
// one it sleeps whatever is left of Interval.
type Scheduler struct {
	Interval time.Duration
	Clock    Clock
}

// NewScheduler returns a scheduler on the system clock.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{Interval: interval, Clock: SystemClock{}}
}

// Run calls frame until it returns true, then returns nil. If ctx is
// cancelled first, Run returns ctx.Err() without starting another frame.
func (s *Scheduler) Run(ctx context.Context, frame FrameFunc) error {
	clock := s.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	var last time.Time
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := clock.Now()
		var elapsed time.Duration
		if !first {
			elapsed = start.Sub(last)
		}
		first = false
		last = start

		if frame(elapsed) {
			return nil
		}

		// Sleep to maintain target frame rate
		wait := s.Interval - clock.Now().Sub(start)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(wait):
		}
	}
}
