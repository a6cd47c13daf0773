package strip

// Track is the ordered row of items: the base set captured at construction
// followed by any appended clones
type Track struct {
	gap       int
	base      []Item
	items     []Item
	translate float64
}

// NewTrack captures items as the immutable base set
// Negative gaps are treated as zero
func NewTrack(gap int, items ...Item) *Track {
	if gap < 0 {
		gap = 0
	}
	base := make([]Item, len(items))
	copy(base, items)
	all := make([]Item, len(items))
	copy(all, items)
	return &Track{gap: gap, base: base, items: all}
}

// Gap returns the spacing between adjacent items in cells
func (t *Track) Gap() int { return t.gap }

// Base returns a copy of the base item slice
func (t *Track) Base() []Item {
	out := make([]Item, len(t.base))
	copy(out, t.base)
	return out
}

// Items returns the live item slice, callers must not modify it
func (t *Track) Items() []Item { return t.items }

// Len returns the total number of items including clones
func (t *Track) Len() int { return len(t.items) }

// AppendCycle appends one deep copy of every base item in order
func (t *Track) AppendCycle() {
	for _, it := range t.base {
		t.items = append(t.items, it.Clone())
	}
}

// CycleWidth is the advance of one base cycle: every base item plus the gap that follows it
func (t *Track) CycleWidth() int {
	w := 0
	for _, it := range t.base {
		w += it.Width() + t.gap
	}
	return w
}

// ScrollWidth is the rendered width of the whole track, gaps only between items
func (t *Track) ScrollWidth() int {
	if len(t.items) == 0 {
		return 0
	}
	w := t.gap * (len(t.items) - 1)
	for _, it := range t.items {
		w += it.Width()
	}
	return w
}

// Height returns the tallest item height
func (t *Track) Height() int {
	h := 0
	for _, it := range t.items {
		if ih := it.Height(); ih > h {
			h = ih
		}
	}
	return h
}

// Translate sets the horizontal displacement applied when drawing
func (t *Track) Translate(x float64) { t.translate = x }

// Translation returns the current horizontal displacement
func (t *Track) Translation() float64 { return t.translate }

// Each calls fn with every item and its left edge relative to the untranslated track start
// Iteration stops when fn returns false
func (t *Track) Each(fn func(i int, it Item, x int) bool) {
	x := 0
	for i, it := range t.items {
		if !fn(i, it, x) {
			return
		}
		x += it.Width() + t.gap
	}
}

// Relayout forwards a container width change to every responsive item, clones included
func (t *Track) Relayout(containerWidth int) {
	for _, it := range t.items {
		if r, ok := it.(Responsive); ok {
			r.Relayout(containerWidth)
		}
	}
}

// Normalize applies the one-time display normalization to every item that needs it
func (t *Track) Normalize() int {
	n := 0
	for _, it := range t.items {
		if nz, ok := it.(Normalizer); ok {
			nz.Normalize()
			n++
		}
	}
	return n
}
