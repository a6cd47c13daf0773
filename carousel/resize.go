package carousel

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/carousel/strip"
)

// DefaultDebounce is the quiet period before a resize is reconciled
const DefaultDebounce = 120 * time.Millisecond

// Debouncer fires once after triggers stop for the quiet period
// Each Trigger cancels the pending deadline and arms a new one
type Debouncer struct {
	quiet    time.Duration
	deadline time.Duration
	armed    bool
}

// NewDebouncer falls back to DefaultDebounce for non-positive periods
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultDebounce
	}
	return &Debouncer{quiet: quiet}
}

func (d *Debouncer) Trigger(now time.Duration) {
	d.deadline = now + d.quiet
	d.armed = true
}

func (d *Debouncer) Cancel()     { d.armed = false }
func (d *Debouncer) Armed() bool { return d.armed }

// Fire reports true exactly once when the deadline passed, disarming the debouncer
func (d *Debouncer) Fire(now time.Duration) bool {
	if !d.armed || now < d.deadline {
		return false
	}
	d.armed = false
	return true
}

// Reconciler re-measures the loop after layout changes and keeps the scroll
// position at the same fraction of a cycle
type Reconciler struct {
	state     *State
	container *strip.Container
	debounce  *Debouncer
	metrics   *metrics
}

// NewReconciler binds a reconciler to shared state and the container it measures
func NewReconciler(state *State, container *strip.Container, quiet time.Duration) *Reconciler {
	return &Reconciler{state: state, container: container, debounce: NewDebouncer(quiet)}
}

// Request records a size change signal
func (r *Reconciler) Request(now time.Duration) { r.debounce.Trigger(now) }

// Poll reconciles if the quiet period elapsed since the last request
func (r *Reconciler) Poll(now time.Duration) bool {
	if !r.debounce.Fire(now) {
		return false
	}
	return r.Reconcile()
}

// Reconcile runs immediately
// Returns false without touching state until the first measurement completed
func (r *Reconciler) Reconcile() bool {
	if !r.state.Measured {
		return false
	}
	track := r.container.Track()

	prev := r.state.LoopWidth
	r.state.LoopWidth = MeasureLoop(track)
	if prev > 0 {
		r.state.Offset = math.Mod(r.state.Offset/prev, 1) * r.state.LoopWidth
	}
	r.state.Offset = wrap(r.state.Offset, r.state.LoopWidth)

	added := EnsureClones(track, TargetWidth(r.state.LoopWidth, r.container.Width()))
	track.Translate(-r.state.Offset)

	if r.metrics != nil {
		r.metrics.reconciles.Add(1)
		r.metrics.clones.Add(int64(added))
	}
	log.Printf("carousel: reconciled loop %.0f -> %.0f, offset %.1f, +%d cycles",
		prev, r.state.LoopWidth, r.state.Offset, added)
	return true
}
