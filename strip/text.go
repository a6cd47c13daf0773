package strip

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cluster is one grapheme with its cell width
type cluster struct {
	runes []rune
	width int
}

// Text is a single-line label item
type Text struct {
	label    string
	style    tcell.Style
	clusters []cluster
	width    int
}

// NewText segments label into grapheme clusters and caches their widths
func NewText(label string, style tcell.Style) *Text {
	t := &Text{label: label, style: style}
	g := uniseg.NewGraphemes(label)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			// Zero-width clusters (lone combining marks, controls) are dropped
			continue
		}
		t.clusters = append(t.clusters, cluster{runes: g.Runes(), width: w})
		t.width += w
	}
	return t
}

// StyleFromHex builds a foreground style from a "#rrggbb" colour
// Empty input yields the default style
func StyleFromHex(hex string) (tcell.Style, error) {
	if hex == "" {
		return tcell.StyleDefault, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.StyleDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))), nil
}

// Label returns the source string
func (t *Text) Label() string { return t.label }

func (t *Text) Width() int  { return t.width }
func (t *Text) Height() int { return 1 }

func (t *Text) Clone() Item {
	c := &Text{
		label:    t.label,
		style:    t.style,
		width:    t.width,
		clusters: make([]cluster, len(t.clusters)),
	}
	for i, cl := range t.clusters {
		c.clusters[i] = cluster{runes: append([]rune(nil), cl.runes...), width: cl.width}
	}
	return c
}

func (t *Text) Draw(c Canvas, x, y int) {
	for _, cl := range t.clusters {
		c.SetContent(x, y, cl.runes[0], cl.runes[1:], t.style)
		x += cl.width
	}
}
