// Package script replays recorded input steps against a drawing surface.
//
// A script is a JSON document:
//
//	{"steps": [
//	  {"op": "color", "color": "#ef4444"},
//	  {"op": "down", "x": 120, "y": 80},
//	  {"op": "move", "x": 180, "y": 95},
//	  {"op": "up"}
//	]}
package script

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"SketchBoard/internal/config"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"
)

// Op names a step.
type Op string

const (
	OpView    Op = "view"
	OpDown    Op = "down"
	OpMove    Op = "move"
	OpUp      Op = "up"
	OpLeave   Op = "leave"
	OpWheel   Op = "wheel"
	OpZoomIn  Op = "zoom_in"
	OpZoomOut Op = "zoom_out"
	OpUndo    Op = "undo"
	OpRedo    Op = "redo"
	OpReset   Op = "reset"
	OpColor   Op = "color"
	OpWidth   Op = "width"
	OpMode    Op = "mode"
)

// Step is one scripted action. Fields not used by Op are ignored.
type Step struct {
	Op    Op      `json:"op"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Delta float64 `json:"delta,omitempty"`
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Mode  string  `json:"mode,omitempty"`
}

// Script is a decoded script file.
type Script struct {
	Steps []Step `json:"steps"`
}

// Decode reads a script from r.
func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	return Decode(f)
}

// StepError reports the step that could not be applied.
type StepError struct {
	Index int
	Op    Op
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Run applies every step to s in order and stops at the first invalid one.
func Run(s *surface.Surface, steps []Step) error {
	for i, st := range steps {
		if err := apply(s, st); err != nil {
			return &StepError{Index: i, Op: st.Op, Err: err}
		}
	}
	return nil
}

func apply(s *surface.Surface, st Step) error {
	switch st.Op {
	case OpView:
		if st.W <= 0 || st.H <= 0 {
			return fmt.Errorf("view size %vx%v must be positive", st.W, st.H)
		}
		s.SetViewSize(st.W, st.H)
		s.Recenter()
	case OpDown:
		s.Handle(surface.Event{Kind: surface.PointerDown, X: st.X, Y: st.Y})
	case OpMove:
		s.Handle(surface.Event{Kind: surface.PointerMove, X: st.X, Y: st.Y})
	case OpUp:
		s.Handle(surface.Event{Kind: surface.PointerUp, X: st.X, Y: st.Y})
	case OpLeave:
		s.Handle(surface.Event{Kind: surface.PointerLeave, X: st.X, Y: st.Y})
	case OpWheel:
		s.Handle(surface.Event{Kind: surface.Wheel, Delta: st.Delta})
	case OpZoomIn:
		s.ZoomIn()
	case OpZoomOut:
		s.ZoomOut()
	case OpUndo:
		s.Undo()
	case OpRedo:
		s.Redo()
	case OpReset:
		s.Reset()
	case OpColor:
		c, err := config.ParseColor(st.Color)
		if err != nil {
			return err
		}
		s.SetColor(c)
	case OpWidth:
		if st.Width <= 0 {
			return fmt.Errorf("brush width %v must be positive", st.Width)
		}
		s.SetBrushWidth(st.Width)
	case OpMode:
		switch st.Mode {
		case state.ModeDraw.String():
			s.SetMode(state.ModeDraw)
		case state.ModePan.String():
			s.SetMode(state.ModePan)
		default:
			return fmt.Errorf("unknown mode %q", st.Mode)
		}
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
