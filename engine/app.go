package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/carousel/carousel"
	"github.com/lixenwraith/carousel/config"
	"github.com/lixenwraith/carousel/render"
	"github.com/lixenwraith/carousel/status"
	"github.com/lixenwraith/carousel/strip"
)

// App runs one carousel on a tcell screen
// Events, frames and drawing all happen on the Run goroutine; only media
// preparation runs elsewhere, and the track is left alone until it reports back
type App struct {
	screen    tcell.Screen
	cfg       *config.Config
	container *strip.Container
	carousel  *carousel.Carousel
	renderer  *render.Renderer
	sched     *TickerScheduler
	metrics   *status.Registry

	start time.Time
	now   func() time.Time

	ready    bool
	hidden   bool
	hovering bool
	// last pointer position, valid once a mouse event arrived
	pointerX   int
	pointerY   int
	hasPointer bool

	width  int
	height int
}

// NewApp builds the strip from cfg
// carousel.ErrNoContainer is returned unchanged when cfg has no items
func NewApp(screen tcell.Screen, cfg *config.Config, onWrap func()) (*App, error) {
	w, h := screen.Size()
	container := Build(cfg, w, h)
	if container == nil {
		return nil, carousel.ErrNoContainer
	}

	reg := status.NewRegistry()
	c, err := carousel.New(container, carousel.Options{
		Speed:         cfg.Speed,
		ReducedMotion: cfg.ReducedMotion,
		Debounce:      time.Duration(cfg.DebounceMS) * time.Millisecond,
		OnWrap:        onWrap,
		Metrics:       reg,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		screen:    screen,
		cfg:       cfg,
		container: container,
		carousel:  c,
		renderer:  render.New(screen),
		sched:     NewTickerScheduler(),
		metrics:   reg,
		now:       time.Now,
		width:     w,
		height:    h,
	}, nil
}

// Carousel returns the hosted engine
func (a *App) Carousel() *carousel.Carousel { return a.carousel }

// Metrics returns the registry shown on the status line
func (a *App) Metrics() *status.Registry { return a.metrics }

// Ready reports whether media settled and the strip started
func (a *App) Ready() bool { return a.ready }

// Run blocks until ctx is done, the user quits or the screen closes
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	a.screen.HideCursor()
	a.start = a.now()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	prepared := make(chan error, 1)
	go func() { prepared <- a.carousel.Prepare(ctx) }()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-prepared:
			if err != nil {
				return err
			}
			a.begin()

		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return nil
			}

		case <-ticker.C:
			a.frame(a.elapsed())
		}
	}
}

func (a *App) elapsed() time.Duration { return a.now().Sub(a.start) }

// begin starts the strip once media settled and applies a size that arrived meanwhile
func (a *App) begin() {
	if a.ready {
		return
	}
	a.ready = true
	a.relayout()
	a.carousel.Begin(a.sched)
	// Normalization can change the strip height, re-anchor the row
	a.relayout()
	a.updateVisibility()
}

// relayout places the container for the current screen size and track height
func (a *App) relayout() {
	a.container.SetRect(Layout(a.cfg, a.width, a.height, a.container.Track().Height()))
}

// frame fires the armed callback and repaints
func (a *App) frame(now time.Duration) {
	a.screen.Clear()
	if a.ready {
		a.carousel.Poll(now)
		a.sched.Fire(now)
		a.renderer.Draw(a.container)
	} else {
		a.drawLoading()
	}
	if a.cfg.ShowStatus {
		a.renderer.DrawStatus(a.metrics, a.height-1)
	}
	a.screen.Show()
}

func (a *App) drawLoading() {
	y := Layout(a.cfg, a.width, a.height, 1).Y
	x := a.cfg.Margin
	for _, ch := range "loading…" {
		a.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Dim(true))
		x++
	}
}

// handle applies one event, false means quit
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.screen.Sync()
		if !a.ready {
			// Applied by begin, which measures against the latest size
			return true
		}
		a.relayout()
		a.updateVisibility()
		// The strip may have moved out from under a still pointer
		a.updateHover()
		a.carousel.Resize(a.elapsed())

	case *tcell.EventFocus:
		a.hidden = !ev.Focused
		if a.ready {
			a.updateVisibility()
		}

	case *tcell.EventMouse:
		if a.ready {
			a.handleMouse(ev)
		}

	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.pointerX, a.pointerY, a.hasPointer = x, y, true
	inside := a.updateHover()

	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	if inside && a.container.FocusAt(x) {
		a.carousel.Pause().FocusIn()
	} else if a.container.ClearFocus() {
		a.carousel.Pause().FocusOut()
	}
}

// updateHover compares the last pointer position with the current bounds and
// reports whether the pointer is over the strip
func (a *App) updateHover() bool {
	inside := a.hasPointer && a.container.Bounds().Contains(a.pointerX, a.pointerY)
	if inside != a.hovering {
		a.hovering = inside
		if inside {
			a.carousel.Pause().PointerEnter()
		} else {
			a.carousel.Pause().PointerLeave()
		}
	}
	return inside
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	case tcell.KeyTab, tcell.KeyBacktab:
		if !a.ready {
			return true
		}
		step := a.container.FocusNext
		if ev.Key() == tcell.KeyBacktab {
			step = a.container.FocusPrev
		}
		if step() {
			a.carousel.Pause().FocusIn()
		}
	case tcell.KeyEscape:
		if a.ready && a.container.ClearFocus() {
			a.carousel.Pause().FocusOut()
		}
	}
	return true
}

// updateVisibility reports offscreen when the strip leaves the screen or the terminal loses focus
func (a *App) updateVisibility() {
	screen := strip.Rect{Width: a.width, Height: a.height}
	visible := !a.hidden && a.container.Bounds().Intersects(screen)
	a.carousel.Pause().SetVisible(visible)
	log.Printf("engine: visible=%v (%dx%d)", visible, a.width, a.height)
}
