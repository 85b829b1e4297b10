package state

import "math"

// Bounds is the axis-aligned box around every point folded into it. The zero
// value is not empty; use EmptyBounds.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBounds returns the sentinel that contains nothing.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Empty reports whether nothing has been folded in yet.
func (b Bounds) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Include grows b so it contains p.
func (b *Bounds) Include(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

// Union grows b so it contains o.
func (b *Bounds) Union(o Bounds) {
	if o.Empty() {
		return
	}
	b.Include(Point{X: o.MinX, Y: o.MinY})
	b.Include(Point{X: o.MaxX, Y: o.MaxY})
}

// Expand returns b grown by margin on every side. Empty bounds stay empty.
func (b Bounds) Expand(margin float64) Bounds {
	if b.Empty() {
		return b
	}
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

func (b Bounds) Width() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}
