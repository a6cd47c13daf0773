package carousel

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/carousel/strip"
)

// Media is an item whose intrinsic size is only known after loading and decoding
type Media interface {
	// Complete reports whether loading already finished, successfully or not
	Complete() bool
	// Done is closed when loading finishes
	Done() <-chan struct{}
	// Err is the load error once Done is closed
	Err() error
	Decode() error
}

// MediaIn returns every item of the track that is Media, clones included
func MediaIn(t *strip.Track) []Media {
	var out []Media
	for _, it := range t.Items() {
		if m, ok := it.(Media); ok {
			out = append(out, m)
		}
	}
	return out
}

// WaitForMedia returns once every media item failed to load or loaded and finished decoding
// Load and decode failures count as completions; only ctx cancellation is an error
func WaitForMedia(ctx context.Context, items []Media) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, m := range items {
		g.Go(func() error {
			return settle(gctx, m)
		})
	}
	return g.Wait()
}

func settle(ctx context.Context, m Media) error {
	if !m.Complete() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.Done():
		}
	}
	// A failed load settles without decoding, whether it failed before or during the wait
	if err := m.Err(); err != nil {
		log.Printf("media: load failed: %v", err)
		return nil
	}
	if err := m.Decode(); err != nil {
		log.Printf("media: decode failed: %v", err)
	}
	return nil
}
