package strip

import "math"

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and o share at least one cell
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Container clips a track to a viewport and tracks keyboard focus among its items
type Container struct {
	track *Track
	rect  Rect
	focus int
}

// NewContainer places track at rect, the rect height is ignored in favour of the track height
func NewContainer(track *Track, rect Rect) *Container {
	c := &Container{track: track, focus: -1}
	c.SetRect(rect)
	return c
}

// Track returns the owned track
func (c *Container) Track() *Track { return c.track }

// Width is the visible viewport width
func (c *Container) Width() int { return c.rect.Width }

// Bounds returns the container rectangle sized to the current track height
func (c *Container) Bounds() Rect {
	r := c.rect
	r.Height = c.track.Height()
	return r
}

// SetRect moves the container; a width change is forwarded to responsive items
func (c *Container) SetRect(r Rect) {
	if r.Width < 0 {
		r.Width = 0
	}
	widthChanged := r.Width != c.rect.Width
	c.rect = r
	if widthChanged {
		c.track.Relayout(r.Width)
	}
}

// Focused returns the index of the focused item or -1
func (c *Container) Focused() int { return c.focus }

// HasFocus reports whether any item holds focus
func (c *Container) HasFocus() bool { return c.focus >= 0 }

// ClearFocus drops focus, reports whether focus was held
func (c *Container) ClearFocus() bool {
	had := c.focus >= 0
	c.focus = -1
	return had
}

// visible returns indices of items with at least one cell inside the viewport, in track order
func (c *Container) visible() []int {
	shift := int(math.Floor(c.track.Translation()))
	var out []int
	c.track.Each(func(i int, it Item, x int) bool {
		left := x + shift
		if left >= c.rect.Width {
			return false
		}
		if left+it.Width() > 0 && it.Width() > 0 {
			out = append(out, i)
		}
		return true
	})
	return out
}

// FocusNext moves focus to the next visible item, wrapping to the first
// Returns false when no item is visible
func (c *Container) FocusNext() bool { return c.step(1) }

// FocusPrev moves focus to the previous visible item, wrapping to the last
func (c *Container) FocusPrev() bool { return c.step(-1) }

func (c *Container) step(dir int) bool {
	vis := c.visible()
	if len(vis) == 0 {
		return false
	}
	pos := -1
	for i, idx := range vis {
		if idx == c.focus {
			pos = i
			break
		}
	}
	switch {
	case pos < 0 && dir > 0:
		pos = 0
	case pos < 0:
		pos = len(vis) - 1
	default:
		pos = (pos + dir + len(vis)) % len(vis)
	}
	c.focus = vis[pos]
	return true
}

// FocusAt focuses the item under screen column x, reports whether an item was hit
func (c *Container) FocusAt(x int) bool {
	col := x - c.rect.X - int(math.Floor(c.track.Translation()))
	hit := -1
	c.track.Each(func(i int, it Item, left int) bool {
		if col < left {
			return false
		}
		if col < left+it.Width() {
			hit = i
			return false
		}
		return true
	})
	if hit < 0 {
		return false
	}
	c.focus = hit
	return true
}
