package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsSamePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Counts.Get("frames")
	b := r.Counts.Get("frames")
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Counts.Len())
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counts.Get("wraps").Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Counts.Get("wraps").Load())
}

func TestSnapshotSortedAndFormatted(t *testing.T) {
	r := NewRegistry()
	r.Counts.Get("frames").Store(42)
	r.Gauges.Get("offset").Set(12.345)
	r.Flags.Get("playing").Store(true)
	r.Labels.Get("paused_by").Store("hover+focus")

	assert.Equal(t, []Entry{
		{"frames", "42"},
		{"offset", "12.3"},
		{"paused_by", "hover+focus"},
		{"playing", "true"},
	}, r.Snapshot())
}

func TestLabelTruncates(t *testing.T) {
	var l Label
	assert.Equal(t, "", l.Load())
	l.Store("abcdefghijklmnopqrstuvwxyz0123")
	assert.Len(t, l.Load(), MaxLabelLen)
}
