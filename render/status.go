package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/carousel/status"
)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

// StatusLine formats a registry snapshot as "key=value" pairs
func StatusLine(reg *status.Registry) string {
	entries := reg.Snapshot()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Value == "" {
			continue
		}
		parts = append(parts, e.Key+"="+e.Value)
	}
	return strings.Join(parts, "  ")
}

// DrawStatus paints the registry on row y, truncated to the screen width
func (r *Renderer) DrawStatus(reg *status.Registry, y int) {
	w, h := r.screen.Size()
	if y < 0 || y >= h || w <= 0 {
		return
	}
	line := runewidth.FillRight(runewidth.Truncate(" "+StatusLine(reg), w, "…"), w)
	x := 0
	for _, ch := range line {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x += runewidth.RuneWidth(ch)
	}
}
