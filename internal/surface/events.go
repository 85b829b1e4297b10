package surface

import (
	"math"

	"SketchBoard/internal/state"
)

// EventKind identifies an input event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	Wheel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case Wheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Event is one input event in view coordinates. Delta is only used by Wheel:
// positive values zoom in, negative values zoom out.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Delta float64
}

// Handle applies ev to the surface.
func (s *Surface) Handle(ev Event) {
	p := state.Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case PointerDown:
		s.pointerDown(p)
	case PointerMove:
		s.pointerMove(p)
	case PointerUp, PointerLeave:
		s.endGesture(true)
	case Wheel:
		switch {
		case ev.Delta > 0:
			s.ZoomIn()
		case ev.Delta < 0:
			s.ZoomOut()
		}
	}
}

func (s *Surface) pointerDown(screen state.Point) {
	s.endGesture(true)

	if s.tool.Mode == state.ModePan {
		s.panning = true
		s.last = screen
		return
	}

	p := s.view.ScreenToBuffer(screen)
	s.stroking = true
	s.last = p
	s.lastMid = p
	s.stroke = state.NewStroke(p, s.tool, s.opts.Now())
	s.buf.Dot(p, s.tool.Width, s.tool.Color)
	if s.reaches(p) {
		s.bounds.Include(s.clamp(p))
		s.touched = true
	}
}

func (s *Surface) pointerMove(screen state.Point) {
	switch {
	case s.panning:
		s.view.Pan(screen.X-s.last.X, screen.Y-s.last.Y)
		s.last = screen
	case s.stroking:
		p := s.view.ScreenToBuffer(screen)
		mid := s.last.Mid(p)
		s.buf.Curve(s.lastMid, s.last, mid, s.tool.Width, s.tool.Color)
		s.stroke.Add(p)
		if s.reaches(s.lastMid, s.last, mid) {
			// the previous sample is missing when the stroke entered from outside
			s.bounds.Include(s.clamp(s.last))
			s.bounds.Include(s.clamp(p))
			s.touched = true
		}
		s.last = p
		s.lastMid = mid
	}
}

// endGesture finishes a stroke or pan. When commit is false a stroke in
// progress is dropped without touching history.
func (s *Surface) endGesture(commit bool) {
	s.panning = false
	if !s.stroking {
		return
	}
	if s.last != s.lastMid {
		// Close the gap between the last midpoint and the final sample.
		s.buf.Curve(s.lastMid, s.last, s.last, s.tool.Width, s.tool.Color)
		if s.reaches(s.lastMid, s.last) {
			s.bounds.Include(s.clamp(s.last))
			s.touched = true
		}
	}
	stroke := s.stroke
	touched := s.touched
	s.stroking = false
	s.stroke = nil
	s.touched = false

	if !commit || !touched {
		return
	}
	s.history.Push(s.buf.Snapshot())
	s.logger.Debug("stroke", "id", stroke.ID, "points", len(stroke.Points), "history", s.history.Len())
	if s.OnStroke != nil {
		s.OnStroke(*stroke)
	}
}

// reaches reports whether the brush swept through pts (the hull of a segment
// and its control point) can paint any buffer pixel.
func (s *Surface) reaches(pts ...state.Point) bool {
	b := state.EmptyBounds()
	for _, p := range pts {
		b.Include(p)
	}
	b = b.Expand(s.tool.Width / 2)
	return b.MaxX > 0 && b.MaxY > 0 &&
		b.MinX < float64(s.buf.Width()) && b.MinY < float64(s.buf.Height())
}

// clamp limits p to the buffer extent.
func (s *Surface) clamp(p state.Point) state.Point {
	return state.Point{
		X: math.Max(0, math.Min(float64(s.buf.Width()), p.X)),
		Y: math.Max(0, math.Min(float64(s.buf.Height()), p.Y)),
	}
}
