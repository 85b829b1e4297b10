package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"steps": [
  {"op": "color", "color": "#ef4444"},
  {"op": "width", "width": 10},
  {"op": "down", "x": 50, "y": 60},
  {"op": "move", "x": 80, "y": 70},
  {"op": "move", "x": 120, "y": 65},
  {"op": "up"},
  {"op": "down", "x": 150, "y": 150},
  {"op": "leave"},
  {"op": "undo"},
  {"op": "redo"},
  {"op": "wheel", "delta": 1},
  {"op": "mode", "mode": "pan"},
  {"op": "down", "x": 0, "y": 0},
  {"op": "move", "x": 5, "y": 5},
  {"op": "up"}
]}`

func TestDecodeAndRun(t *testing.T) {
	sc, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sc.Steps, 15)

	s := surface.New(surface.DefaultOptions())
	require.NoError(t, Run(s, sc.Steps))

	assert.Equal(t, state.Bounds{MinX: 50, MinY: 60, MaxX: 150, MaxY: 150}, s.Bounds())
	assert.Equal(t, 3, s.History().Len())
	assert.Equal(t, 2, s.History().Index())
	assert.Equal(t, 10.0, s.Tool().Width)
	assert.Equal(t, state.ModePan, s.Mode())
	assert.InDelta(t, 1.1, s.Viewport().Scale, 1e-9)
}

func TestRunReportsStep(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		index int
	}{
		{"unknown op", []Step{{Op: OpUndo}, {Op: "spin"}}, 1},
		{"bad colour", []Step{{Op: OpColor, Color: "red"}}, 0},
		{"bad width", []Step{{Op: OpDown}, {Op: OpUp}, {Op: OpWidth}}, 2},
		{"bad mode", []Step{{Op: OpMode, Mode: "erase"}}, 0},
		{"bad view", []Step{{Op: OpView, W: 10}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(surface.New(surface.DefaultOptions()), tt.steps)
			var stepErr *StepError
			require.True(t, errors.As(err, &stepErr))
			assert.Equal(t, tt.index, stepErr.Index)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"steps": [{"op": "down", "z": 1}]}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 15)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestViewRecenters(t *testing.T) {
	s := surface.New(surface.DefaultOptions())
	require.NoError(t, Run(s, []Step{{Op: OpView, W: 800, H: 700}}))
	assert.Equal(t, state.Viewport{OffsetX: 100, OffsetY: 50, Scale: 1}, s.Viewport())
}
