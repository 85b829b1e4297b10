package ui

import (
	"errors"
	"image"
	"image/color"
	"io"
	"sync"

	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
)

// BoardWidget displays a drawing surface and feeds it pointer and wheel input.
type BoardWidget struct {
	widget.BaseWidget

	mu      sync.Mutex
	surface *surface.Surface
	raster  *canvas.Raster
	logger  *log.Logger
	sized   bool

	// OnChanged fires after any action that changes what undo, redo, mode or
	// zoom controls should show.
	OnChanged func()
	// OnStroke fires after a stroke has been committed to history.
	OnStroke func(s state.Stroke)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(opts surface.Options, logger *log.Logger) *BoardWidget {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.Logger = logger
	b := &BoardWidget{
		surface: surface.New(opts),
		logger:  logger.WithPrefix("board"),
	}
	b.surface.OnStroke = b.strokeDone
	b.raster = canvas.NewRaster(b.draw)
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) strokeDone(s state.Stroke) {
	b.logger.Infof("stroke %s committed: %d points, width %.0f", s.ID[:8], len(s.Points), s.Width)
	if b.OnStroke != nil {
		b.OnStroke(s)
	}
}

// update runs fn against the surface under the lock, then redraws.
func (b *BoardWidget) update(fn func(s *surface.Surface)) {
	b.mu.Lock()
	fn(b.surface)
	b.mu.Unlock()

	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// read runs fn against the surface under the lock.
func (b *BoardWidget) read(fn func(s *surface.Surface)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.surface)
}

func (b *BoardWidget) handle(ev surface.Event) {
	b.update(func(s *surface.Surface) { s.Handle(ev) })
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.read(func(s *surface.Surface) { s.SetColor(c) })
}

func (b *BoardWidget) SetStroke(w float64) {
	b.read(func(s *surface.Surface) { s.SetBrushWidth(w) })
}

func (b *BoardWidget) ToggleMode() state.Mode {
	var m state.Mode
	b.update(func(s *surface.Surface) { m = s.ToggleMode() })
	return m
}

func (b *BoardWidget) Mode() (m state.Mode) {
	b.read(func(s *surface.Surface) { m = s.Mode() })
	return m
}

func (b *BoardWidget) Tool() (t state.Tool) {
	b.read(func(s *surface.Surface) { t = s.Tool() })
	return t
}

func (b *BoardWidget) Scale() (scale float64) {
	b.read(func(s *surface.Surface) { scale = s.Viewport().Scale })
	return scale
}

func (b *BoardWidget) ZoomIn()  { b.update(func(s *surface.Surface) { s.ZoomIn() }) }
func (b *BoardWidget) ZoomOut() { b.update(func(s *surface.Surface) { s.ZoomOut() }) }

func (b *BoardWidget) Undo() { b.update(func(s *surface.Surface) { s.Undo() }) }
func (b *BoardWidget) Redo() { b.update(func(s *surface.Surface) { s.Redo() }) }

func (b *BoardWidget) CanUndo() (ok bool) {
	b.read(func(s *surface.Surface) { ok = s.History().CanUndo() })
	return ok
}

func (b *BoardWidget) CanRedo() (ok bool) {
	b.read(func(s *surface.Surface) { ok = s.History().CanRedo() })
	return ok
}

// Reset clears the board back to its freshly opened state.
func (b *BoardWidget) Reset() {
	b.update(func(s *surface.Surface) { s.Reset() })
	b.logger.Info("board reset")
}

// ExportImage returns the trimmed drawing, or surface.ErrNothingToExport.
func (b *BoardWidget) ExportImage() (img *image.RGBA, err error) {
	b.read(func(s *surface.Surface) { img, err = s.ExportImage() })
	return img, err
}

// ExportPNG returns the trimmed drawing encoded as PNG.
func (b *BoardWidget) ExportPNG() (data []byte, err error) {
	b.read(func(s *surface.Surface) { data, err = s.ExportPNG() })
	return data, err
}

// CurrentImage returns the exported PNG, or nil when nothing has been drawn.
func (b *BoardWidget) CurrentImage() []byte {
	data, err := b.ExportPNG()
	if err != nil {
		if !errors.Is(err, surface.ErrNothingToExport) {
			b.logger.Error("export failed", "err", err)
		}
		return nil
	}
	return data
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handle(surface.Event{Kind: surface.PointerDown, X: float64(e.Position.X), Y: float64(e.Position.Y)})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.handle(surface.Event{Kind: surface.PointerUp, X: float64(e.Position.X), Y: float64(e.Position.Y)})
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.handle(surface.Event{Kind: surface.PointerMove, X: float64(e.Position.X), Y: float64(e.Position.Y)})
}

func (b *BoardWidget) DragEnd() {
	b.handle(surface.Event{Kind: surface.PointerUp})
}

func (b *BoardWidget) MouseOut() {
	b.handle(surface.Event{Kind: surface.PointerLeave})
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.handle(surface.Event{Kind: surface.Wheel, Delta: float64(e.Scrolled.DY)})
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// draw is the raster generator; w and h are in output pixels.
func (b *BoardWidget) draw(w, h int) image.Image {
	ratio := 1.0
	if size := b.Size(); size.Width > 0 {
		ratio = float64(w) / float64(size.Width)
	}
	var img image.Image
	b.read(func(s *surface.Surface) { img = s.Render(w, h, ratio) })
	return img
}

func (b *BoardWidget) layout(size fyne.Size) {
	b.read(func(s *surface.Surface) {
		s.SetViewSize(float64(size.Width), float64(size.Height))
		if !b.sized {
			s.Recenter()
			b.sized = true
		}
	})
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.layout(size)
	r.board.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
