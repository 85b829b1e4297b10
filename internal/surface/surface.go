// Package surface implements the drawing surface: an owned state object that
// is mutated one input event at a time and rendered as a pure read.
//
// A Surface is not safe for concurrent use.
package surface

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"SketchBoard/internal/export"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"github.com/charmbracelet/log"
)

// ErrNothingToExport is returned by the export functions when no stroke has
// touched the buffer since the last reset.
var ErrNothingToExport = errors.New("nothing to export")

// Options configures a Surface. Zero fields take the defaults from
// DefaultOptions, except ExportMargin: zero there crops tight to the bounds.
type Options struct {
	Width, Height int     // logical buffer size
	Density       float64 // pixels per logical unit
	Background    color.Color
	Surround      color.Color // drawn around the buffer by Render
	Color         color.Color
	BrushWidth    float64
	ZoomStep      float64
	ExportMargin  float64 // logical units added around the stroke bounds
	HistoryLimit  int
	Logger        *log.Logger
	Now           func() time.Time
}

// DefaultOptions returns the stock 600×600 white board with a black 4-unit brush.
func DefaultOptions() Options {
	return Options{
		Width:        600,
		Height:       600,
		Density:      1,
		Background:   color.White,
		Surround:     color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		Color:        color.Black,
		BrushWidth:   4,
		ZoomStep:     0.1,
		ExportMargin: 20,
		HistoryLimit: state.DefaultHistoryLimit,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.Density <= 0 {
		o.Density = d.Density
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Surround == nil {
		o.Surround = d.Surround
	}
	if o.Color == nil {
		o.Color = d.Color
	}
	if o.BrushWidth <= 0 {
		o.BrushWidth = d.BrushWidth
	}
	if o.ZoomStep <= 0 {
		o.ZoomStep = d.ZoomStep
	}
	if o.ExportMargin < 0 {
		o.ExportMargin = 0
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = d.HistoryLimit
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Surface owns the pixel buffer, viewport, stroke bounds and history.
type Surface struct {
	opts   Options
	logger *log.Logger

	buf      *raster.Buffer
	view     state.Viewport
	bounds   state.Bounds
	history  *state.History
	tool     state.Tool
	viewW    float64
	viewH    float64
	stroking bool
	panning  bool
	last     state.Point // previous sample: buffer space when stroking, screen space when panning
	lastMid  state.Point
	stroke   *state.Stroke
	touched  bool

	// OnStroke is called after a finished stroke has been committed to history.
	OnStroke func(s state.Stroke)
}

// New builds a surface in its freshly reset state.
func New(opts Options) *Surface {
	opts = opts.withDefaults()
	s := &Surface{
		opts:   opts,
		logger: opts.Logger.WithPrefix("surface"),
		buf:    raster.NewBuffer(opts.Width, opts.Height, opts.Density, opts.Background),
		viewW:  float64(opts.Width),
		viewH:  float64(opts.Height),
	}
	s.tool.SetColor(opts.Color)
	s.tool.SetWidth(opts.BrushWidth)
	s.tool.Mode = state.ModeDraw
	s.history = state.NewHistory(s.buf.Snapshot(), opts.HistoryLimit)
	s.Reset()
	return s
}

// Reset clears the drawing and returns the transform, bounds and history to
// their initial values. Tool settings are kept.
func (s *Surface) Reset() {
	s.endGesture(false)
	s.buf.Clear()
	s.view = state.NewViewport()
	s.Recenter()
	s.bounds = state.EmptyBounds()
	s.history.Reset(s.buf.Snapshot())
	s.logger.Debug("reset")
}

// SetViewSize records the size of the area the surface is displayed in.
func (s *Surface) SetViewSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.viewW, s.viewH = w, h
}

// ViewSize returns the size last given to SetViewSize.
func (s *Surface) ViewSize() (w, h float64) { return s.viewW, s.viewH }

// Recenter moves the pan offset so the buffer sits in the middle of the view.
func (s *Surface) Recenter() {
	s.view.Center(float64(s.buf.Width()), float64(s.buf.Height()), s.viewW, s.viewH)
}

func (s *Surface) Viewport() state.Viewport { return s.view }
func (s *Surface) Bounds() state.Bounds     { return s.bounds }
func (s *Surface) History() *state.History  { return s.history }
func (s *Surface) Tool() state.Tool         { return s.tool }
func (s *Surface) Mode() state.Mode         { return s.tool.Mode }
func (s *Surface) Buffer() *raster.Buffer   { return s.buf }

// Drawing reports whether a stroke is in progress.
func (s *Surface) Drawing() bool { return s.stroking }

// SetColor sets the brush colour for the next stroke.
func (s *Surface) SetColor(c color.Color) {
	if c == nil {
		return
	}
	s.tool.SetColor(c)
}

// SetBrushWidth sets the brush diameter for the next stroke. Non-positive
// widths are ignored.
func (s *Surface) SetBrushWidth(w float64) {
	s.tool.SetWidth(w)
}

// SetMode switches between drawing and panning, ending any gesture in progress.
func (s *Surface) SetMode(m state.Mode) {
	if m == s.tool.Mode {
		return
	}
	s.endGesture(true)
	s.tool.Mode = m
}

// ToggleMode flips between drawing and panning and returns the new mode.
func (s *Surface) ToggleMode() state.Mode {
	if s.tool.Mode == state.ModeDraw {
		s.SetMode(state.ModePan)
	} else {
		s.SetMode(state.ModeDraw)
	}
	return s.tool.Mode
}

// ScreenToBuffer maps a view position to logical buffer coordinates.
func (s *Surface) ScreenToBuffer(p state.Point) state.Point {
	return s.view.ScreenToBuffer(p)
}

// BufferToScreen maps logical buffer coordinates to a view position.
func (s *Surface) BufferToScreen(p state.Point) state.Point {
	return s.view.BufferToScreen(p)
}

// ZoomIn increases the scale by the configured step around the view centre.
func (s *Surface) ZoomIn() bool { return s.ZoomBy(s.opts.ZoomStep) }

// ZoomOut decreases the scale by the configured step around the view centre.
func (s *Surface) ZoomOut() bool { return s.ZoomBy(-s.opts.ZoomStep) }

// ZoomBy adds step to the scale, clamped to [state.MinScale, state.MaxScale],
// keeping the buffer point at the view centre fixed.
func (s *Surface) ZoomBy(step float64) bool {
	c := state.Point{X: s.viewW / 2, Y: s.viewH / 2}
	if !s.view.ZoomAround(c, step) {
		return false
	}
	s.logger.Debug("zoom", "scale", s.view.Scale)
	return true
}

// Undo restores the previous snapshot. It is a no-op at the start of history.
func (s *Surface) Undo() bool {
	s.endGesture(true)
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debug("undo", "index", s.history.Index())
	return true
}

// Redo re-applies the next snapshot. It is a no-op at the end of history.
func (s *Surface) Redo() bool {
	s.endGesture(true)
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debug("redo", "index", s.history.Index())
	return true
}

func (s *Surface) restore(snap []byte) {
	// Snapshots always come from this buffer, so the sizes match.
	if err := s.buf.Restore(snap); err != nil {
		s.logger.Error("restore snapshot", "err", err)
	}
}

// ExportRect returns the pixel rectangle an export would cover: the stroke
// bounds grown by the export margin and clamped to the buffer.
func (s *Surface) ExportRect() (image.Rectangle, error) {
	if s.bounds.Empty() {
		return image.Rectangle{}, ErrNothingToExport
	}
	r := s.buf.PixelRect(s.bounds.Expand(s.opts.ExportMargin))
	if r.Empty() {
		return image.Rectangle{}, ErrNothingToExport
	}
	return r, nil
}

// ExportImage returns the trimmed drawing over an opaque background.
func (s *Surface) ExportImage() (*image.RGBA, error) {
	r, err := s.ExportRect()
	if err != nil {
		return nil, err
	}
	return s.buf.Crop(r), nil
}

// Export writes the trimmed drawing to w as PNG.
func (s *Surface) Export(w io.Writer) error {
	img, err := s.ExportImage()
	if err != nil {
		return err
	}
	if err := export.WritePNG(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	s.logger.Debug("export", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// ExportPNG is Export into a byte slice.
func (s *Surface) ExportPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
