// Package carousel is the loop-continuity engine of an infinitely scrolling strip.
//
// Startup order:
//   - WaitForMedia: every image settles (loaded and decoded, or failed)
//   - MeasureLoop: width of one pass through the base items
//   - EnsureClones: whole cycles of copies until the strip outruns the viewport
//   - Driver: frame-driven offset, wrapped with a single modulo
//
// PauseController and Reconciler run alongside the driver on the same goroutine.
// Nothing in this package locks: callers deliver events and frames serially.
package carousel

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/carousel/status"
	"github.com/lixenwraith/carousel/strip"
)

// DefaultSpeed in cells per second
const DefaultSpeed = 60.0

// ErrNoContainer is returned by New when there is nothing to animate
var ErrNoContainer = errors.New("carousel: no container")

// Options configures a Carousel
type Options struct {
	// Speed in cells per second; invalid values fall back to DefaultSpeed
	Speed float64
	// ReducedMotion is sampled once and keeps the strip paused
	ReducedMotion bool
	// Debounce is the resize quiet period, DefaultDebounce when zero
	Debounce time.Duration
	// OnWrap runs on the frame that completes a cycle
	OnWrap func()
	// Metrics receives counters and gauges; a private registry is used when nil
	Metrics *status.Registry
}

// SanitizeSpeed returns v when it is a positive finite number, DefaultSpeed otherwise
func SanitizeSpeed(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultSpeed
	}
	return v
}

// Carousel owns the shared state and wires the components to one container
type Carousel struct {
	container *strip.Container
	state     State
	speed     float64

	pause      *PauseController
	reconciler *Reconciler
	driver     *Driver

	onWrap  func()
	metrics *metrics
}

// New validates the container and prepares the pause controller and reconciler
// The strip does not move until Begin
func New(container *strip.Container, opts Options) (*Carousel, error) {
	if container == nil || container.Track() == nil {
		return nil, ErrNoContainer
	}
	reg := opts.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}

	c := &Carousel{
		container: container,
		speed:     SanitizeSpeed(opts.Speed),
		onWrap:    opts.OnWrap,
		metrics:   newMetrics(reg),
	}
	c.pause = NewPauseController(&c.state, opts.ReducedMotion)
	c.pause.onChange = func(playing bool, reasons PauseReasons) {
		if playing {
			log.Printf("carousel: playing")
		} else {
			log.Printf("carousel: paused (%s)", reasons)
		}
	}
	c.reconciler = NewReconciler(&c.state, container, opts.Debounce)
	c.reconciler.metrics = c.metrics
	c.publish()
	return c, nil
}

// Prepare blocks until every media item settled
// It only touches media items, so it may run on another goroutine while the caller
// leaves the track alone
func (c *Carousel) Prepare(ctx context.Context) error {
	media := MediaIn(c.container.Track())
	if err := WaitForMedia(ctx, media); err != nil {
		return errors.Wrap(err, "wait for media")
	}
	log.Printf("carousel: %d media ready", len(media))
	return nil
}

// Begin measures the loop, seeds clones, normalizes media and arms the first frame
// Calling Begin again is a no-op
func (c *Carousel) Begin(sched FrameScheduler) {
	if c.driver != nil {
		return
	}
	track := c.container.Track()

	c.state.LoopWidth = MeasureLoop(track)
	c.state.Measured = true
	added := EnsureClones(track, TargetWidth(c.state.LoopWidth, c.container.Width()))
	normalized := track.Normalize()
	c.state.Offset = wrap(c.state.Offset, c.state.LoopWidth)
	track.Translate(-c.state.Offset)
	c.metrics.clones.Add(int64(added))

	c.driver = NewDriver(&c.state, track, c.speed, sched)
	c.driver.metrics = c.metrics
	c.driver.onWrap = c.onWrap
	c.driver.Start()
	c.publish()

	log.Printf("carousel: loop %.0f, +%d cycles, %d items, %d normalized, speed %.1f",
		c.state.LoopWidth, added, track.Len(), normalized, c.speed)
}

// Start runs Prepare then Begin on the calling goroutine
func (c *Carousel) Start(ctx context.Context, sched FrameScheduler) error {
	if err := c.Prepare(ctx); err != nil {
		return err
	}
	c.Begin(sched)
	return nil
}

// Started reports whether Begin ran
func (c *Carousel) Started() bool { return c.driver != nil }

// State returns a copy of the shared state
func (c *Carousel) State() State { return c.state }

// Speed returns the effective speed in cells per second
func (c *Carousel) Speed() float64 { return c.speed }

// Container returns the animated container
func (c *Carousel) Container() *strip.Container { return c.container }

// Pause returns the controller that owns the play state
func (c *Carousel) Pause() *PauseController { return c.pause }

// Resize signals a layout size change at now
func (c *Carousel) Resize(now time.Duration) { c.reconciler.Request(now) }

// Poll runs a due reconciliation and refreshes the published gauges
func (c *Carousel) Poll(now time.Duration) bool {
	ok := c.reconciler.Poll(now)
	c.publish()
	return ok
}

func (c *Carousel) publish() { c.metrics.publish(&c.state, c.pause.Reasons()) }
