package media

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// quadrants maps 4-bit coverage patterns to quadrant glyphs
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// charAspect compensates for terminal cells being about twice as tall as wide
const charAspect = 0.5

// Cell is one converted terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Glyphs is an image converted to a grid of cells, row-major
type Glyphs struct {
	Cells  []Cell
	Width  int
	Height int
}

func (g *Glyphs) clone() *Glyphs {
	c := &Glyphs{Width: g.Width, Height: g.Height, Cells: make([]Cell, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// Convert renders img into cols columns of quadrant glyphs, preserving aspect ratio
// Each cell covers a 2x2 block of the pre-scaled image
func Convert(img image.Image, cols int) *Glyphs {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || cols <= 0 {
		return &Glyphs{}
	}

	rows := int(float64(cols) * float64(b.Dy()) / float64(b.Dx()) * charAspect)
	if rows < 1 {
		rows = 1
	}

	scaled := resize.Resize(uint(cols*2), uint(rows*2), img, resize.NearestNeighbor)
	sb := scaled.Bounds()

	g := &Glyphs{Width: cols, Height: rows, Cells: make([]Cell, cols*rows)}
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var px [4]colorful.Color
			for i, off := range offsets {
				px[i] = toColorful(scaled.At(sb.Min.X+x*2+off[0], sb.Min.Y+y*2+off[1]))
			}
			r, fg, bg := bestQuadrant(px)
			g.Cells[y*cols+x] = Cell{
				Rune:  r,
				Style: tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg)),
			}
		}
	}
	return g
}

// bestQuadrant searches all 16 patterns for the split with the least colour error
func bestQuadrant(px [4]colorful.Color) (rune, colorful.Color, colorful.Color) {
	bestErr := -1.0
	best := 0
	var bestFg, bestBg colorful.Color

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, e := patternColors(px, pattern)
		if bestErr < 0 || e < bestErr {
			bestErr, best, bestFg, bestBg = e, pattern, fg, bg
		}
	}
	return quadrants[best], bestFg, bestBg
}

// patternColors averages the foreground and background groups and sums squared distance
func patternColors(px [4]colorful.Color, pattern int) (fg, bg colorful.Color, errSum float64) {
	var fgSum, bgSum colorful.Color
	var nFg, nBg float64
	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgSum = add(fgSum, px[i])
			nFg++
		} else {
			bgSum = add(bgSum, px[i])
			nBg++
		}
	}
	if nFg > 0 {
		fg = scale(fgSum, 1/nFg)
	}
	if nBg > 0 {
		bg = scale(bgSum, 1/nBg)
	}
	// Single-group patterns still need both colours set
	if nFg == 0 {
		fg = bg
	}
	if nBg == 0 {
		bg = fg
	}

	for i := 0; i < 4; i++ {
		ref := bg
		if pattern&(1<<i) != 0 {
			ref = fg
		}
		d := px[i].DistanceRgb(ref)
		errSum += d * d
	}
	return fg, bg, errSum
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// toColorful maps fully transparent pixels to black
func toColorful(c color.Color) colorful.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return cc
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
