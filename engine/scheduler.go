package engine

import (
	"time"

	"github.com/lixenwraith/carousel/carousel"
)

// TickerScheduler arms one frame callback that the app loop fires on its ticker
type TickerScheduler struct {
	pending carousel.FrameCallback
	fired   uint64
}

// NewTickerScheduler creates an empty scheduler
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

func (s *TickerScheduler) ScheduleNextFrame(cb carousel.FrameCallback) { s.pending = cb }

// Fire runs the armed callback at ts and reports whether one was armed
// The slot is cleared before the call so the callback can re-arm itself
func (s *TickerScheduler) Fire(ts time.Duration) bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	s.fired++
	cb(ts)
	return true
}

// Fired returns the number of delivered frames
func (s *TickerScheduler) Fired() uint64 { return s.fired }
