package carousel

import (
	"math"

	"github.com/lixenwraith/carousel/strip"
)

// MarginCycles is the number of whole cycles seeded beyond the viewport width
const MarginCycles = 3

// MeasureLoop returns the advance of one pass through the base items: each item's
// rendered width plus the gap that follows it, so the first clone starts exactly one
// loop width after the first base item
// The trailing gap is counted too (n gaps for n items, not n-1); without it every
// wrap would jump back by one gap and show a seam
// The result is rounded and never below MinLoopWidth
func MeasureLoop(t *strip.Track) float64 {
	gap := float64(t.Gap())
	w := 0.0
	for _, it := range t.Base() {
		w += float64(it.Width()) + gap
	}
	return math.Max(MinLoopWidth, math.Round(w))
}

// TargetWidth is the minimum track width for a seamless wrap at the given viewport
func TargetWidth(loopWidth float64, viewport int) float64 {
	return loopWidth*MarginCycles + float64(viewport)
}

// EnsureClones appends whole cycles of base item copies until the track is at least
// minWidth wide and returns the number of cycles appended
// A track whose cycle has no width is left untouched
func EnsureClones(t *strip.Track, minWidth float64) int {
	if t.CycleWidth() <= 0 {
		return 0
	}
	cycles := 0
	for float64(t.ScrollWidth()) < minWidth {
		t.AppendCycle()
		cycles++
	}
	return cycles
}
