// Package audio plays the optional cycle chime through beep's speaker
// Every operation degrades to a no-op when no audio device is available
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultFreq is the chime pitch in Hz
	DefaultFreq = 880.0
	// DefaultLength is the audible duration of one chime
	DefaultLength = 120 * time.Millisecond
)

// bell is a sine tone with exponential decay
type bell struct {
	freq     float64
	phase    float64
	position int
	length   int
	decay    float64
	rate     beep.SampleRate
}

// newBell creates a decaying tone lasting length
func newBell(freq float64, length time.Duration, rate beep.SampleRate) *bell {
	n := rate.N(length)
	return &bell{
		freq:   freq,
		length: n,
		// Amplitude falls to ~1% by the last sample
		decay: math.Log(100) / float64(max(n, 1)),
		rate:  rate,
	}
}

func (b *bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.length {
			return i, i > 0
		}
		amp := 0.3 * math.Exp(-b.decay*float64(b.position))
		v := amp * math.Sin(2*math.Pi*b.phase)
		samples[i][0], samples[i][1] = v, v

		b.phase += b.freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *bell) Err() error { return nil }

// Chime mixes short bell tones into the speaker
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	freq        float64
	length      time.Duration
	initialized bool
	played      int
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}, freq: DefaultFreq, length: DefaultLength}
}

// Initialize opens the speaker; repeated calls are no-ops
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one bell; ignored before Initialize
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(newBell(c.freq, c.length, sampleRate))
	speaker.Unlock()
	c.played++
}

// Played returns the number of bells queued since Initialize
func (c *Chime) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close silences pending bells
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
