package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestChimeWithoutDevice(t *testing.T) {
	c := NewChime()
	assert.NotPanics(t, func() {
		c.Play()
		c.Close()
	})
	assert.Zero(t, c.Played())
}

func TestChimeInitialize(t *testing.T) {
	c := NewChime()
	if err := c.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer c.Close()

	assert.NoError(t, c.Initialize(), "second call is a no-op")
	c.Play()
	assert.Equal(t, 1, c.Played())
}

func TestBellLengthAndDecay(t *testing.T) {
	rate := beep.SampleRate(1000)
	b := newBell(100, 50*time.Millisecond, rate)

	buf := make([][2]float64, 40)
	n, ok := b.Stream(buf)
	assert.Equal(t, 40, n)
	assert.True(t, ok)

	peakEarly := 0.0
	for _, s := range buf[:10] {
		peakEarly = max(peakEarly, s[0])
	}

	n, ok = b.Stream(buf)
	assert.Equal(t, 10, n)
	assert.True(t, ok)
	peakLate := 0.0
	for _, s := range buf[:n] {
		peakLate = max(peakLate, s[0])
	}
	assert.Less(t, peakLate, peakEarly)

	n, ok = b.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, b.Err())
}
