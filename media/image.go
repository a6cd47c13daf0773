// Package media provides image items for the carousel track
// Images load asynchronously, decode into quadrant-glyph art and have no
// intrinsic size until decoded
package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/carousel/strip"
)

// DefaultCols is the image width when neither Cols nor Percent is set
const DefaultCols = 16

// ErrNotLoaded is returned by Decode before the source bytes arrived
var ErrNotLoaded = errors.New("media: not loaded")

// Size selects the rendered width of an image
// Percent, when positive, is relative to the container width and wins over Cols
type Size struct {
	Cols    int
	Percent float64
}

func (s Size) columns(containerWidth int) int {
	if s.Percent > 0 {
		c := int(math.Round(s.Percent / 100 * float64(containerWidth)))
		return max(c, 1)
	}
	if s.Cols > 0 {
		return s.Cols
	}
	return DefaultCols
}

// Resolve completes a pending image with its bytes or a load error
type Resolve func(data []byte, err error)

// Image is a track item backed by encoded image bytes
type Image struct {
	name string
	size Size
	cols int

	done chan struct{}
	data []byte
	err  error

	decoded   bool
	decodeErr error
	src       image.Image
	glyphs    *Glyphs

	// block drops the baseline row that inline images reserve below the art
	block bool
}

// NewPending creates an image whose bytes arrive later through the returned Resolve
// Only the first Resolve call has effect
func NewPending(name string, size Size) (*Image, Resolve) {
	m := &Image{
		name: name,
		size: size,
		cols: size.columns(0),
		done: make(chan struct{}),
	}
	var once sync.Once
	return m, func(data []byte, err error) {
		once.Do(func() {
			m.data, m.err = data, err
			close(m.done)
		})
	}
}

// Load starts reading path in the background
func Load(path string, size Size) *Image {
	m, resolve := NewPending(path, size)
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			resolve(nil, errors.Wrapf(err, "load image %s", path))
			return
		}
		resolve(data, nil)
	}()
	return m
}

// FromBytes creates an image that is already loaded
func FromBytes(name string, data []byte, size Size) *Image {
	m, resolve := NewPending(name, size)
	resolve(data, nil)
	return m
}

// Name returns the source path or label
func (m *Image) Name() string { return m.name }

// Complete reports whether loading finished, successfully or not
func (m *Image) Complete() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// Done is closed when loading finishes
func (m *Image) Done() <-chan struct{} { return m.done }

// Err returns the load error, valid once Done is closed
func (m *Image) Err() error { return m.err }

// Decode parses the loaded bytes and renders glyphs at the current column count
// Repeated calls return the first result
func (m *Image) Decode() error {
	if !m.Complete() {
		return ErrNotLoaded
	}
	if m.err != nil {
		return m.err
	}
	if m.decoded {
		return m.decodeErr
	}
	m.decoded = true

	src, _, err := image.Decode(bytes.NewReader(m.data))
	if err != nil {
		m.decodeErr = errors.Wrapf(err, "decode image %s", m.name)
		return m.decodeErr
	}
	m.src = src
	m.glyphs = Convert(src, m.cols)
	return nil
}

// Width is zero until decoded
func (m *Image) Width() int {
	if m.glyphs == nil {
		return 0
	}
	return m.glyphs.Width
}

// Height includes the baseline row until normalized
func (m *Image) Height() int {
	if m.glyphs == nil {
		return 0
	}
	if m.block {
		return m.glyphs.Height
	}
	return m.glyphs.Height + 1
}

// Glyphs returns the rendered cells, nil until decoded
func (m *Image) Glyphs() *Glyphs { return m.glyphs }

// Normalize switches the image to block display
func (m *Image) Normalize() { m.block = true }

// Relayout recomputes the column count for percentage sized images
func (m *Image) Relayout(containerWidth int) {
	cols := m.size.columns(containerWidth)
	if cols == m.cols {
		return
	}
	m.cols = cols
	if m.src != nil {
		m.glyphs = Convert(m.src, cols)
	}
}

// Clone copies the rendered cells; the decoded source is shared read-only
func (m *Image) Clone() strip.Item {
	done := make(chan struct{})
	close(done)
	c := &Image{
		name:      m.name,
		size:      m.size,
		cols:      m.cols,
		done:      done,
		decoded:   m.decoded,
		decodeErr: m.decodeErr,
		src:       m.src,
		block:     m.block,
	}
	if m.Complete() {
		c.data, c.err = m.data, m.err
	} else {
		// A clone of a pending image never resolves, treat it as failed
		c.err = ErrNotLoaded
	}
	if m.glyphs != nil {
		c.glyphs = m.glyphs.clone()
	}
	return c
}

func (m *Image) Draw(c strip.Canvas, x, y int) {
	if m.glyphs == nil {
		return
	}
	for cy := 0; cy < m.glyphs.Height; cy++ {
		row := m.glyphs.Cells[cy*m.glyphs.Width : (cy+1)*m.glyphs.Width]
		for cx, cell := range row {
			c.SetContent(x+cx, y+cy, cell.Rune, nil, cell.Style)
		}
	}
}
