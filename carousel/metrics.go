package carousel

import (
	"sync/atomic"

	"github.com/lixenwraith/carousel/status"
)

// Metric keys published to the status registry
const (
	MetricFrames     = "frames"
	MetricWraps      = "wraps"
	MetricClones     = "clone_cycles"
	MetricReconciles = "reconciles"
	MetricLoopWidth  = "loop_width"
	MetricOffset     = "offset"
	MetricPlaying    = "playing"
	MetricPausedBy   = "paused_by"
)

// metrics caches registry pointers so frame updates skip map lookups
type metrics struct {
	frames     *atomic.Int64
	wraps      *atomic.Int64
	clones     *atomic.Int64
	reconciles *atomic.Int64
	loopWidth  *status.Gauge
	offset     *status.Gauge
	playing    *atomic.Bool
	pausedBy   *status.Label
}

func newMetrics(reg *status.Registry) *metrics {
	return &metrics{
		frames:     reg.Counts.Get(MetricFrames),
		wraps:      reg.Counts.Get(MetricWraps),
		clones:     reg.Counts.Get(MetricClones),
		reconciles: reg.Counts.Get(MetricReconciles),
		loopWidth:  reg.Gauges.Get(MetricLoopWidth),
		offset:     reg.Gauges.Get(MetricOffset),
		playing:    reg.Flags.Get(MetricPlaying),
		pausedBy:   reg.Labels.Get(MetricPausedBy),
	}
}

// publish copies the shared state into the gauges
func (m *metrics) publish(s *State, reasons PauseReasons) {
	m.loopWidth.Set(s.LoopWidth)
	m.offset.Set(s.Offset)
	m.playing.Store(s.Playing)
	m.pausedBy.Store(reasons.String())
}
