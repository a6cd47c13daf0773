// Package render draws a carousel container onto a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/carousel/strip"
)

// Screen is the subset of tcell.Screen the renderer writes to
type Screen interface {
	strip.Canvas
	Size() (width, height int)
}

// clip drops writes outside rect and optionally reverses the style
type clip struct {
	dst     strip.Canvas
	rect    strip.Rect
	reverse bool
}

func (c clip) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if !c.rect.Contains(x, y) {
		return
	}
	if c.reverse {
		style = style.Reverse(true)
	}
	c.dst.SetContent(x, y, mainc, combc, style)
}

// Renderer paints the visible slice of a track
type Renderer struct {
	screen Screen
	bg     tcell.Style
}

// New creates a renderer writing to screen
func New(screen Screen) *Renderer {
	return &Renderer{screen: screen, bg: tcell.StyleDefault}
}

// Draw clears the container area and paints every item that overlaps the viewport
// at its translated position; the focused item is drawn reversed
func (r *Renderer) Draw(c *strip.Container) {
	bounds := c.Bounds()
	if bounds.Empty() {
		return
	}
	sw, sh := r.screen.Size()
	area := intersect(bounds, strip.Rect{Width: sw, Height: sh})
	if area.Empty() {
		return
	}
	r.fill(area)

	track := c.Track()
	shift := int(math.Floor(track.Translation()))
	focused := c.Focused()

	track.Each(func(i int, it strip.Item, x int) bool {
		left := bounds.X + x + shift
		if left >= bounds.X+bounds.Width {
			return false
		}
		if left+it.Width() <= bounds.X {
			return true
		}
		it.Draw(clip{dst: r.screen, rect: area, reverse: i == focused}, left, bounds.Y)
		return true
	})
}

func (r *Renderer) fill(area strip.Rect) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.bg)
		}
	}
}

func intersect(a, b strip.Rect) strip.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return strip.Rect{}
	}
	return strip.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
