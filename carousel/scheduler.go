package carousel

import "time"

// FrameCallback receives the frame timestamp measured from an arbitrary fixed origin
type FrameCallback func(ts time.Duration)

// FrameScheduler arms a single callback for the next display frame
type FrameScheduler interface {
	ScheduleNextFrame(cb FrameCallback)
}

// ManualScheduler delivers frames only when stepped, with synthetic timestamps
type ManualScheduler struct {
	now     time.Duration
	pending FrameCallback
	frames  int
}

// NewManualScheduler starts the synthetic clock at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) ScheduleNextFrame(cb FrameCallback) { s.pending = cb }

// Pending reports whether a callback is armed
func (s *ManualScheduler) Pending() bool { return s.pending != nil }

// Now returns the synthetic clock
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Frames returns the number of delivered frames
func (s *ManualScheduler) Frames() int { return s.frames }

// Step delivers the armed callback at the current time, false if none was armed
func (s *ManualScheduler) Step() bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	s.frames++
	cb(s.now)
	return true
}

// Advance moves the clock by d and delivers one frame
func (s *ManualScheduler) Advance(d time.Duration) bool {
	s.now += d
	return s.Step()
}

// Run delivers n frames spaced d apart, stopping early if the chain breaks
func (s *ManualScheduler) Run(n int, d time.Duration) int {
	for i := 0; i < n; i++ {
		if !s.Advance(d) {
			return i
		}
	}
	return n
}
