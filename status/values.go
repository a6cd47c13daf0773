package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64, zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }
func (g *Gauge) Get() float64  { return math.Float64frombits(g.bits.Load()) }

// MaxLabelLen bounds label values so the status line stays on one row
const MaxLabelLen = 24

// Label is an atomic short string, zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store truncates to MaxLabelLen bytes
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.ptr.Store(&s)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
