package state

import "math"

const (
	MinScale = 0.1
	MaxScale = 3.0
)

// Viewport maps buffer space to screen space: screen = buffer*Scale + Offset.
type Viewport struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// NewViewport returns the identity transform.
func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

// BufferToScreen applies the render transform (translate-then-scale).
func (v Viewport) BufferToScreen(p Point) Point {
	return Point{
		X: p.X*v.Scale + v.OffsetX,
		Y: p.Y*v.Scale + v.OffsetY,
	}
}

// ScreenToBuffer is the inverse of BufferToScreen.
func (v Viewport) ScreenToBuffer(p Point) Point {
	return Point{
		X: (p.X - v.OffsetX) / v.Scale,
		Y: (p.Y - v.OffsetY) / v.Scale,
	}
}

// Pan shifts the offset by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAround changes the scale by step, clamped to [MinScale, MaxScale], keeping
// the buffer point under the screen point c fixed. It reports whether the scale
// changed.
func (v *Viewport) ZoomAround(c Point, step float64) bool {
	next := ClampScale(v.Scale + step)
	if next == v.Scale {
		return false
	}
	anchor := v.ScreenToBuffer(c)
	v.Scale = next
	v.OffsetX = c.X - anchor.X*next
	v.OffsetY = c.Y - anchor.Y*next
	return true
}

// Center places a w×h buffer in the middle of a viewW×viewH view at the current scale.
func (v *Viewport) Center(w, h, viewW, viewH float64) {
	v.OffsetX = (viewW - w*v.Scale) / 2
	v.OffsetY = (viewH - h*v.Scale) / 2
}

// ClampScale limits s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}
