package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/carousel/status"
	"github.com/lixenwraith/carousel/strip"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.Screen, y, x0, x1 int) string {
	var b strings.Builder
	for x := x0; x < x1; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func labels(gap int, ls ...string) *strip.Track {
	items := make([]strip.Item, len(ls))
	for i, l := range ls {
		items[i] = strip.NewText(l, tcell.StyleDefault)
	}
	return strip.NewTrack(gap, items...)
}

func TestDrawClipsToContainer(t *testing.T) {
	s := newScreen(t, 20, 5)
	s.SetContent(1, 1, 'X', nil, tcell.StyleDefault)
	s.SetContent(8, 1, 'X', nil, tcell.StyleDefault)

	c := strip.NewContainer(labels(1, "abc", "def"), strip.Rect{X: 2, Y: 1, Width: 6})
	New(s).Draw(c)
	s.Show()

	assert.Equal(t, "abc de", row(s, 1, 2, 8))
	assert.Equal(t, "X", row(s, 1, 1, 2))
	assert.Equal(t, "X", row(s, 1, 8, 9), "'f' falls outside the viewport")
}

func TestDrawAppliesTranslation(t *testing.T) {
	s := newScreen(t, 20, 5)
	c := strip.NewContainer(labels(1, "abc", "def"), strip.Rect{X: 2, Y: 1, Width: 6})
	c.Track().Translate(-2.7)

	New(s).Draw(c)
	s.Show()

	// floor(-2.7) = -3 shifts the strip three cells left
	assert.Equal(t, " def  ", row(s, 1, 2, 8))
}

func TestDrawReversesFocusedItem(t *testing.T) {
	s := newScreen(t, 20, 5)
	c := strip.NewContainer(labels(1, "ab", "cd"), strip.Rect{Width: 10})
	require.True(t, c.FocusNext())
	require.True(t, c.FocusNext())

	New(s).Draw(c)

	_, _, st, _ := s.GetContent(0, 0)
	_, _, attrs := st.Decompose()
	assert.Zero(t, attrs&tcell.AttrReverse)

	_, _, st, _ = s.GetContent(3, 0)
	_, _, attrs = st.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)
}

func TestDrawOffscreenContainerIsNoop(t *testing.T) {
	s := newScreen(t, 10, 3)
	s.SetContent(0, 2, 'X', nil, tcell.StyleDefault)
	c := strip.NewContainer(labels(0, "abc"), strip.Rect{Y: 5, Width: 10})

	New(s).Draw(c)

	r, _, _, _ := s.GetContent(0, 2)
	assert.Equal(t, 'X', r)
}

func TestStatusLine(t *testing.T) {
	reg := status.NewRegistry()
	reg.Counts.Get("frames").Store(3)
	reg.Flags.Get("playing").Store(true)
	reg.Labels.Get("paused_by")

	assert.Equal(t, "frames=3  playing=true", StatusLine(reg))

	s := newScreen(t, 12, 2)
	New(s).DrawStatus(reg, 1)
	assert.Equal(t, " frames=3  …", row(s, 1, 0, 12))
}
