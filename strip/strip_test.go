package strip

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordCanvas struct {
	cells map[[2]int]rune
}

func (r *recordCanvas) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	if r.cells == nil {
		r.cells = make(map[[2]int]rune)
	}
	r.cells[[2]int{x, y}] = mainc
}

func TestTextWidthCountsCells(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"日本", 4},
		{"e\u0301te", 3}, // combining acute folds into the first cluster
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NewText(tt.label, tcell.StyleDefault).Width())
		})
	}
}

func TestTextDrawAdvancesByClusterWidth(t *testing.T) {
	var c recordCanvas
	NewText("a日b", tcell.StyleDefault).Draw(&c, 10, 2)

	assert.Equal(t, 'a', c.cells[[2]int{10, 2}])
	assert.Equal(t, '日', c.cells[[2]int{11, 2}])
	assert.Equal(t, 'b', c.cells[[2]int{13, 2}])
}

func TestTextCloneIsDeep(t *testing.T) {
	orig := NewText("abc", tcell.StyleDefault)
	clone := orig.Clone().(*Text)
	require.NotSame(t, orig, clone)

	clone.clusters[0].runes[0] = 'z'
	assert.Equal(t, 'a', orig.clusters[0].runes[0])
	assert.Equal(t, orig.Width(), clone.Width())
}

func TestStyleFromHex(t *testing.T) {
	st, err := StyleFromHex("#ff0000")
	require.NoError(t, err)
	fg, _, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)

	_, err = StyleFromHex("red")
	assert.Error(t, err)

	st, err = StyleFromHex("")
	require.NoError(t, err)
	assert.Equal(t, tcell.StyleDefault, st)
}

func newLabels(labels ...string) []Item {
	out := make([]Item, len(labels))
	for i, l := range labels {
		out[i] = NewText(l, tcell.StyleDefault)
	}
	return out
}

func TestTrackWidths(t *testing.T) {
	tr := NewTrack(2, newLabels("abc", "de")...)

	assert.Equal(t, 3+2+2+2, tr.CycleWidth())
	assert.Equal(t, 3+2+2, tr.ScrollWidth())

	tr.AppendCycle()
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 2, len(tr.Base()))
	assert.Equal(t, 2*tr.CycleWidth()-2, tr.ScrollWidth())
}

func TestTrackEmpty(t *testing.T) {
	tr := NewTrack(-3)
	assert.Equal(t, 0, tr.Gap())
	assert.Equal(t, 0, tr.ScrollWidth())
	assert.Equal(t, 0, tr.CycleWidth())
	assert.Equal(t, 0, tr.Height())
}

func TestTrackBaseIsImmutable(t *testing.T) {
	tr := NewTrack(1, newLabels("a", "b")...)
	base := tr.Base()
	base[0] = NewText("zzz", tcell.StyleDefault)

	assert.Equal(t, "a", tr.Base()[0].(*Text).Label())

	tr.AppendCycle()
	assert.Equal(t, "a", tr.Items()[2].(*Text).Label())
	assert.NotSame(t, tr.Items()[0], tr.Items()[2])
}

func TestTrackEachPositions(t *testing.T) {
	tr := NewTrack(1, newLabels("aa", "bbb", "c")...)
	var xs []int
	tr.Each(func(_ int, _ Item, x int) bool {
		xs = append(xs, x)
		return true
	})
	assert.Equal(t, []int{0, 3, 7}, xs)
}

func TestRectIntersects(t *testing.T) {
	screen := Rect{0, 0, 80, 24}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{10, 5, 20, 3}, true},
		{"single cell overlap", Rect{79, 23, 10, 10}, true},
		{"below", Rect{0, 24, 80, 3}, false},
		{"left of", Rect{-10, 0, 10, 3}, false},
		{"zero height", Rect{0, 0, 80, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Intersects(screen))
		})
	}
}

type sizedItem struct {
	w, relayouts int
}

func (s *sizedItem) Width() int            { return s.w }
func (s *sizedItem) Height() int           { return 1 }
func (s *sizedItem) Clone() Item           { c := *s; return &c }
func (s *sizedItem) Draw(Canvas, int, int) {}

func (s *sizedItem) Relayout(containerWidth int) {
	s.w = containerWidth / 4
	s.relayouts++
}

func TestContainerRelayoutOnWidthChange(t *testing.T) {
	it := &sizedItem{}
	c := NewContainer(NewTrack(0, it), Rect{0, 0, 40, 0})
	assert.Equal(t, 10, it.Width())
	assert.Equal(t, 1, c.Bounds().Height)

	c.SetRect(Rect{0, 3, 40, 0})
	assert.Equal(t, 1, it.relayouts)

	c.SetRect(Rect{0, 3, 80, 0})
	assert.Equal(t, 2, it.relayouts)
	assert.Equal(t, 20, it.Width())
}

func TestContainerFocusCyclesVisibleItems(t *testing.T) {
	tr := NewTrack(1, newLabels("aaaa", "bbbb", "cccc", "dddd")...)
	c := NewContainer(tr, Rect{0, 0, 8, 1})

	// Items start at 0, 5, 10, 15; viewport shows 0..7
	require.True(t, c.FocusNext())
	assert.Equal(t, 0, c.Focused())
	require.True(t, c.FocusNext())
	assert.Equal(t, 1, c.Focused())
	require.True(t, c.FocusNext())
	assert.Equal(t, 0, c.Focused())
	require.True(t, c.FocusPrev())
	assert.Equal(t, 1, c.Focused())

	tr.Translate(-6)
	c.ClearFocus()
	require.True(t, c.FocusNext())
	assert.Equal(t, 1, c.Focused())

	assert.True(t, c.ClearFocus())
	assert.False(t, c.ClearFocus())
}

func TestContainerFocusAt(t *testing.T) {
	tr := NewTrack(1, newLabels("aaaa", "bbbb")...)
	c := NewContainer(tr, Rect{2, 0, 20, 1})

	require.True(t, c.FocusAt(8))
	assert.Equal(t, 1, c.Focused())
	assert.False(t, c.FocusAt(6), "gap column")

	tr.Translate(-5)
	require.True(t, c.FocusAt(3))
	assert.Equal(t, 1, c.Focused())
}
