package carousel

import "strings"

// PauseReasons holds every independent pausing condition
type PauseReasons struct {
	Hover     bool
	Focus     bool
	Offscreen bool
	// ReducedMotion is a startup snapshot and never clears
	ReducedMotion bool
}

// ShouldPause is the OR of all conditions
func (r PauseReasons) ShouldPause() bool {
	return r.Hover || r.Focus || r.Offscreen || r.ReducedMotion
}

// String joins active reasons with '+', empty when playing
func (r PauseReasons) String() string {
	var parts []string
	if r.ReducedMotion {
		parts = append(parts, "reduced-motion")
	}
	if r.Hover {
		parts = append(parts, "hover")
	}
	if r.Focus {
		parts = append(parts, "focus")
	}
	if r.Offscreen {
		parts = append(parts, "offscreen")
	}
	return strings.Join(parts, "+")
}

// PauseController owns State.Playing
type PauseController struct {
	state   *State
	reasons PauseReasons
	// onChange observes Playing transitions
	onChange func(playing bool, reasons PauseReasons)
}

// NewPauseController sets the initial play state: paused only under reduced motion
func NewPauseController(state *State, reducedMotion bool) *PauseController {
	p := &PauseController{state: state, reasons: PauseReasons{ReducedMotion: reducedMotion}}
	state.Playing = !p.reasons.ShouldPause()
	return p
}

// Reasons returns the current conditions
func (p *PauseController) Reasons() PauseReasons { return p.reasons }

func (p *PauseController) PointerEnter() { p.set(func(r *PauseReasons) { r.Hover = true }) }
func (p *PauseController) PointerLeave() { p.set(func(r *PauseReasons) { r.Hover = false }) }
func (p *PauseController) FocusIn()      { p.set(func(r *PauseReasons) { r.Focus = true }) }
func (p *PauseController) FocusOut()     { p.set(func(r *PauseReasons) { r.Focus = false }) }

// SetVisible records whether any cell of the container is on screen
func (p *PauseController) SetVisible(visible bool) {
	p.set(func(r *PauseReasons) { r.Offscreen = !visible })
}

func (p *PauseController) set(mutate func(*PauseReasons)) {
	mutate(&p.reasons)
	playing := !p.reasons.ShouldPause()
	if playing == p.state.Playing {
		return
	}
	p.state.Playing = playing
	if p.onChange != nil {
		p.onChange(playing, p.reasons)
	}
}
