// Package strip holds the structural model of a carousel: items, the track that
// lays them out in a single row, and the container that clips the track to a
// viewport on screen.
package strip

import "github.com/gdamore/tcell/v2"

// Canvas receives cell writes, tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Item is a single element of the track
// Width and Height are the rendered size in cells
type Item interface {
	Width() int
	Height() int
	// Clone returns a deep structural copy sharing no mutable state with the receiver
	Clone() Item
	// Draw writes the item with its top-left corner at (x, y)
	Draw(c Canvas, x, y int)
}

// Responsive is implemented by items whose size depends on the container width
type Responsive interface {
	Relayout(containerWidth int)
}

// Normalizer is implemented by items that need a one-time display normalization
// before measurements are stable
type Normalizer interface {
	Normalize()
}
