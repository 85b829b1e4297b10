// Package raster holds the fixed-resolution pixel buffer that brush strokes are
// rasterised into.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"SketchBoard/internal/state"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Buffer is an RGBA raster addressed in logical units. A logical unit covers
// Density pixels along each axis.
type Buffer struct {
	img        *image.RGBA
	dc         *gg.Context
	width      int // logical
	height     int // logical
	density    float64
	background color.Color
}

// NewBuffer allocates a width×height logical buffer filled with background.
func NewBuffer(width, height int, density float64, background color.Color) *Buffer {
	if density <= 0 {
		density = 1
	}
	pw := int(math.Round(float64(width) * density))
	ph := int(math.Round(float64(height) * density))
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))

	dc := gg.NewContextForRGBA(img)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	b := &Buffer{
		img:        img,
		dc:         dc,
		width:      width,
		height:     height,
		density:    density,
		background: background,
	}
	b.Clear()
	return b
}

func (b *Buffer) Width() int              { return b.width }
func (b *Buffer) Height() int             { return b.height }
func (b *Buffer) Density() float64        { return b.density }
func (b *Buffer) Background() color.Color { return b.background }

// Image exposes the live pixels. Callers must treat it as read-only.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Clear fills the whole buffer with the background colour.
func (b *Buffer) Clear() {
	b.dc.SetColor(b.background)
	b.dc.Clear()
}

// Dot fills a circle of the given diameter centred on p.
func (b *Buffer) Dot(p state.Point, diameter float64, c color.Color) {
	b.dc.SetColor(c)
	b.dc.DrawCircle(p.X*b.density, p.Y*b.density, diameter*b.density/2)
	b.dc.Fill()
}

// Curve strokes a quadratic Bézier from -> ctrl -> to with round caps.
func (b *Buffer) Curve(from, ctrl, to state.Point, width float64, c color.Color) {
	d := b.density
	b.dc.SetColor(c)
	b.dc.SetLineWidth(width * d)
	b.dc.MoveTo(from.X*d, from.Y*d)
	b.dc.QuadraticTo(ctrl.X*d, ctrl.Y*d, to.X*d, to.Y*d)
	b.dc.Stroke()
}

// Snapshot copies the current pixels.
func (b *Buffer) Snapshot() []byte {
	return append([]byte(nil), b.img.Pix...)
}

// Restore overwrites the pixels with a snapshot taken from this buffer.
func (b *Buffer) Restore(snap []byte) error {
	if len(snap) != len(b.img.Pix) {
		return fmt.Errorf("snapshot size %d does not match buffer size %d", len(snap), len(b.img.Pix))
	}
	copy(b.img.Pix, snap)
	return nil
}

// PixelRect converts logical bounds to the enclosing pixel rectangle, clamped
// to the buffer. Empty bounds give an empty rectangle.
func (b *Buffer) PixelRect(bounds state.Bounds) image.Rectangle {
	if bounds.Empty() {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(bounds.MinX*b.density)),
		int(math.Floor(bounds.MinY*b.density)),
		int(math.Ceil(bounds.MaxX*b.density)),
		int(math.Ceil(bounds.MaxY*b.density)),
	)
	// a single point still covers one pixel
	if r.Dx() == 0 {
		r.Max.X++
	}
	if r.Dy() == 0 {
		r.Max.Y++
	}
	return r.Intersect(b.img.Bounds())
}

// Crop copies r onto a fresh opaque image filled with the background first.
func (b *Buffer) Crop(r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	dc := gg.NewContextForRGBA(out)
	dc.SetColor(b.background)
	dc.Clear()
	draw.Draw(out, out.Bounds(), b.img, r.Min, draw.Over)
	return out
}
