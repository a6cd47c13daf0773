// Package engine hosts a carousel inside a tcell screen
package engine

import (
	"log"

	"github.com/lixenwraith/carousel/config"
	"github.com/lixenwraith/carousel/media"
	"github.com/lixenwraith/carousel/strip"
)

// Build creates the track described by cfg and places it on a w x h screen
// Returns nil when cfg has no items
func Build(cfg *config.Config, w, h int) *strip.Container {
	if len(cfg.Items) == 0 {
		return nil
	}
	items := make([]strip.Item, 0, len(cfg.Items))
	for _, it := range cfg.Items {
		if it.IsImage() {
			items = append(items, media.Load(it.Image, media.Size{Cols: it.Cols, Percent: it.Percent}))
			continue
		}
		style, err := strip.StyleFromHex(it.Color)
		if err != nil {
			log.Printf("engine: item %q: %v", it.Text, err)
		}
		items = append(items, strip.NewText(it.Text, style))
	}
	track := strip.NewTrack(cfg.Gap, items...)
	return strip.NewContainer(track, Layout(cfg, w, h, 1))
}

// Layout computes the container rectangle for a strip of the given height
// A negative row anchors the strip bottom that many rows above the screen bottom
func Layout(cfg *config.Config, w, h, height int) strip.Rect {
	height = max(height, 1)
	y := cfg.Row
	if y < 0 {
		y = h + y - (height - 1)
	}
	y = max(min(y, h-1), 0)
	return strip.Rect{
		X:      cfg.Margin,
		Y:      y,
		Width:  max(w-2*cfg.Margin, 0),
		Height: height,
	}
}
