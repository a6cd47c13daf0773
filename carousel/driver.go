package carousel

import (
	"time"

	"github.com/lixenwraith/carousel/strip"
)

// Driver advances the offset once per frame
// It reads Playing but never writes it
type Driver struct {
	state *State
	track *strip.Track
	speed float64
	sched FrameScheduler

	last    time.Duration
	hasLast bool

	onWrap  func()
	metrics *metrics
}

// NewDriver binds a driver to shared state; speed is in cells per second
func NewDriver(state *State, track *strip.Track, speed float64, sched FrameScheduler) *Driver {
	return &Driver{state: state, track: track, speed: speed, sched: sched}
}

// Start arms the first frame
func (d *Driver) Start() {
	d.sched.ScheduleNextFrame(d.tick)
}

func (d *Driver) tick(ts time.Duration) {
	d.Step(ts)
	// Re-armed unconditionally, paused frames keep the timestamp chain alive
	d.sched.ScheduleNextFrame(d.tick)
}

// Step applies one frame at ts
func (d *Driver) Step(ts time.Duration) {
	if !d.hasLast {
		d.last = ts
		d.hasLast = true
	}
	dt := (ts - d.last).Seconds()
	d.last = ts
	if dt < 0 {
		dt = 0
	}
	if d.metrics != nil {
		d.metrics.frames.Add(1)
	}

	if !d.state.Playing || d.state.LoopWidth <= 0 {
		return
	}

	next := d.state.Offset + d.speed*dt
	wrapped := next >= d.state.LoopWidth
	d.state.Offset = wrap(next, d.state.LoopWidth)
	d.track.Translate(-d.state.Offset)

	if wrapped {
		if d.metrics != nil {
			d.metrics.wraps.Add(1)
		}
		if d.onWrap != nil {
			d.onWrap()
		}
	}
}
