package carousel

import "math"

// MinLoopWidth guards every division and modulo by the loop width
const MinLoopWidth = 1.0

// State is the scroll state shared by the driver, the pause controller and the reconciler
// The driver writes Offset during frames, the reconciler writes Offset and LoopWidth
// during reconciliation, the pause controller writes Playing
type State struct {
	LoopWidth float64
	Offset    float64
	Playing   bool
	// Measured is set once the first loop measurement completed
	Measured bool
}

// wrap reduces v into [0, w) with a single modulo so arbitrarily large advances collapse in one step
// Non-finite results reset to 0
func wrap(v, w float64) float64 {
	if w <= 0 {
		return v
	}
	r := math.Mod(v, w)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r < 0 {
		r += w
	}
	// r+w can round up to w for tiny negative r
	if r >= w {
		r = 0
	}
	return r
}
