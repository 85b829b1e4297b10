package ui

import (
	"testing"

	"SketchBoard/internal/config"
	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	a := test.NewTempApp(t)
	h, err := NewHost(a, config.Default(), nil)
	require.NoError(t, err)
	t.Cleanup(h.Window.Close)
	return h
}

// strokeAt draws a short stroke through buffer point p, whatever the view.
func strokeAt(h *Host, p state.Point) {
	var start, end state.Point
	h.Board.read(func(s *surface.Surface) {
		start = s.BufferToScreen(p)
		end = s.BufferToScreen(state.Point{X: p.X + 30, Y: p.Y + 10})
	})
	h.Board.MouseDown(mouse(float32(start.X), float32(start.Y), desktop.MouseButtonPrimary))
	h.Board.Dragged(drag(float32(end.X), float32(end.Y)))
	h.Board.MouseUp(mouse(float32(end.X), float32(end.Y), desktop.MouseButtonPrimary))
}

func TestHostCurrentImage(t *testing.T) {
	h := newTestHost(t)
	assert.Nil(t, h.CurrentImage())

	strokeAt(h, state.Point{X: 300, Y: 300})
	assert.NotEmpty(t, h.CurrentImage())
	assert.Equal(t, "Stroke with 2 points", h.status.Text)
}

func TestHostControlsFollowHistory(t *testing.T) {
	h := newTestHost(t)
	assert.True(t, h.undo.Disabled())
	assert.True(t, h.redo.Disabled())

	strokeAt(h, state.Point{X: 100, Y: 100})
	assert.False(t, h.undo.Disabled())

	h.Board.Undo()
	assert.True(t, h.undo.Disabled())
	assert.False(t, h.redo.Disabled())
}

func TestHostModeButton(t *testing.T) {
	h := newTestHost(t)
	assert.Equal(t, "Draw", h.modeButton.Text)
	test.Tap(h.modeButton)
	assert.Equal(t, "Pan", h.modeButton.Text)
	test.Tap(h.modeButton)
	assert.Equal(t, "Draw", h.modeButton.Text)
}

func TestHostSelectorsDriveBoard(t *testing.T) {
	h := newTestHost(t)
	palette, err := config.Default().Palette()
	require.NoError(t, err)

	h.colors.Select(palette[2])
	h.sizes.Select(20)

	tool := h.Board.Tool()
	assert.Equal(t, 20.0, tool.Width)
	r, g, b, _ := palette[2].RGBA()
	tr, tg, tb, _ := tool.Color.RGBA()
	assert.Equal(t, []uint32{r, g, b}, []uint32{tr, tg, tb})
}

func TestHostSaveWithNothingDrawn(t *testing.T) {
	h := newTestHost(t)
	h.SavePNG()
	assert.Equal(t, "Nothing to export", h.status.Text)
}
