package ui

import (
	"fmt"
	"io"

	"SketchBoard/internal/config"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
)

const appID = "io.sketchboard.app"

// Host is the page that mounts the board and its controls.
type Host struct {
	Window fyne.Window
	Board  *BoardWidget

	cfg        config.Config
	logger     *log.Logger
	status     *widget.Label
	modeButton *widget.Button
	undo       *widget.Button
	redo       *widget.Button
	colors     *ColorSelector
	sizes      *BrushSizeSelector
}

// NewHost builds the window content on a.
func NewHost(a fyne.App, cfg config.Config, logger *log.Logger) (*Host, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts, err := cfg.SurfaceOptions()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	h := &Host{
		Window: a.NewWindow("SketchBoard"),
		Board:  NewBoardWidget(opts, logger),
		cfg:    cfg,
		logger: logger.WithPrefix("host"),
		status: widget.NewLabel("Ready"),
	}
	h.Window.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+200, float32(cfg.Canvas.Height)+120))

	h.colors = NewColorSelector(palette, opts.Color, h.Board.SetColor)
	h.sizes = NewBrushSizeSelector(cfg.Brush.Sizes, cfg.Brush.Size, h.Board.SetStroke)
	h.modeButton = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() { h.Board.ToggleMode() })
	h.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), h.Board.Undo)
	h.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), h.Board.Redo)

	h.Board.OnChanged = h.refreshControls
	h.Board.OnStroke = func(s state.Stroke) {
		h.setStatus(fmt.Sprintf("Stroke with %d points", len(s.Points)))
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), h.Board.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), h.Board.ZoomOut),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), h.Board.Reset),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), h.SavePNG),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), h.SavePDF),
	)

	top := container.NewHBox(
		h.modeButton,
		widget.NewSeparator(),
		h.colors,
		h.sizes,
		widget.NewSeparator(),
		h.undo,
		h.redo,
		tb,
		layout.NewSpacer(),
		h.status,
	)
	h.Window.SetContent(container.NewBorder(top, nil, nil, nil, h.Board))
	h.addShortcuts()
	h.refreshControls()
	return h, nil
}

func (h *Host) addShortcuts() {
	c := h.Window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { h.Board.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
		func(fyne.Shortcut) { h.Board.Redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { h.SavePNG() })
}

func (h *Host) refreshControls() {
	if h.Board.Mode() == state.ModePan {
		h.modeButton.SetText("Pan")
		h.modeButton.SetIcon(theme.ViewRestoreIcon())
	} else {
		h.modeButton.SetText("Draw")
		h.modeButton.SetIcon(theme.DocumentCreateIcon())
	}
	setEnabled(h.undo, h.Board.CanUndo())
	setEnabled(h.redo, h.Board.CanRedo())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (h *Host) setStatus(text string) {
	h.status.SetText(text)
}

// CurrentImage returns the exported drawing as PNG, or nil if nothing is drawn.
func (h *Host) CurrentImage() []byte {
	return h.Board.CurrentImage()
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg config.Config, logger *log.Logger) error {
	a := app.NewWithID(appID)
	h, err := NewHost(a, cfg, logger)
	if err != nil {
		return err
	}
	h.logger.Info("window ready", "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
	h.Window.ShowAndRun()
	return nil
}
