package state

import (
	"image/color"
	"time"

	"github.com/google/uuid"
)

// Point is a position in logical buffer units (or screen units, depending on
// who holds it).
type Point struct{ X, Y float64 }

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Mode selects what a pointer gesture does on the board.
type Mode int

const (
	ModeDraw Mode = iota
	ModePan
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModePan:
		return "pan"
	default:
		return "unknown"
	}
}

// Tool is the current brush configuration.
type Tool struct {
	Color color.NRGBA
	Width float64 // brush diameter in logical units
	Mode  Mode
}

// SetWidth updates the brush width. Non-positive widths are ignored.
func (t *Tool) SetWidth(w float64) bool {
	if w <= 0 {
		return false
	}
	t.Width = w
	return true
}

// SetColor stores c as a non-premultiplied colour.
func (t *Tool) SetColor(c color.Color) {
	t.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Stroke describes one finished pointer-down-to-pointer-up gesture.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.NRGBA
	Width  float64
	Bounds Bounds
	Time   time.Time
}

// NewStroke starts a stroke at p using the tool's brush.
func NewStroke(p Point, t Tool, now time.Time) *Stroke {
	s := &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{p},
		Color:  t.Color,
		Width:  t.Width,
		Bounds: EmptyBounds(),
		Time:   now,
	}
	s.Bounds.Include(p)
	return s
}

// Add appends a sample to the stroke.
func (s *Stroke) Add(p Point) {
	s.Points = append(s.Points, p)
	s.Bounds.Include(p)
}
