package media

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// WriteANSI prints the cells as 24-bit SGR sequences, one line per row
// Colours are only re-emitted when they change within a row
func (g *Glyphs) WriteANSI(out io.Writer) error {
	w := bufio.NewWriter(out)

	for y := 0; y < g.Height; y++ {
		var lastFg, lastBg tcell.Color
		lastValid := false
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y*g.Width+x]
			fg, bg, _ := cell.Style.Decompose()
			if !lastValid || fg != lastFg || bg != lastBg {
				w.WriteString("\x1b[0")
				if fg.Valid() {
					r, gr, b := fg.RGB()
					fmt.Fprintf(w, ";38;2;%d;%d;%d", r, gr, b)
				}
				if bg.Valid() {
					r, gr, b := bg.RGB()
					fmt.Fprintf(w, ";48;2;%d;%d;%d", r, gr, b)
				}
				w.WriteByte('m')
				lastFg, lastBg, lastValid = fg, bg, true
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			w.WriteRune(r)
		}
		w.WriteString("\x1b[0m\n")
	}
	return w.Flush()
}
