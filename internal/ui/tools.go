package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Dropdown popup shared by the selectors ---

// dropdown is a non-modal popup shown below an anchor. Tapping outside it
// closes it.
type dropdown struct {
	popup *widget.PopUp
}

func (d *dropdown) show(anchor fyne.CanvasObject, content func() fyne.CanvasObject) {
	drv := fyne.CurrentApp().Driver()
	c := drv.CanvasForObject(anchor)
	if c == nil {
		return
	}
	if d.popup == nil {
		d.popup = widget.NewPopUp(content(), c)
	}
	pos := drv.AbsolutePositionForObject(anchor).AddXY(0, anchor.Size().Height)
	d.popup.ShowAtPosition(pos)
}

func (d *dropdown) hide() {
	if d.popup != nil {
		d.popup.Hide()
	}
}

func (d *dropdown) open() bool {
	return d.popup != nil && d.popup.Visible()
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// ColorSelector is a button that opens a fixed palette below itself.
type ColorSelector struct {
	widget.BaseWidget

	OnChanged func(color.Color)

	options  []color.Color
	selected color.Color
	preview  *canvas.Rectangle
	button   *widget.Button
	menu     dropdown
}

func NewColorSelector(options []color.Color, selected color.Color, changed func(color.Color)) *ColorSelector {
	s := &ColorSelector{
		OnChanged: changed,
		options:   options,
		selected:  selected,
	}
	s.preview = canvas.NewRectangle(selected)
	s.preview.SetMinSize(fyne.NewSize(18, 18))
	s.preview.StrokeColor = color.Gray{Y: 150}
	s.preview.StrokeWidth = 1
	s.button = widget.NewButton("Colour", s.Open)
	s.ExtendBaseWidget(s)
	return s
}

func (s *ColorSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, container.NewCenter(s.preview), nil, s.button))
}

// Open shows the palette below the selector.
func (s *ColorSelector) Open() {
	s.menu.show(s, func() fyne.CanvasObject {
		swatches := make([]fyne.CanvasObject, 0, len(s.options))
		for _, c := range s.options {
			swatches = append(swatches, newColorSwatch(c, s.Select))
		}
		return container.NewGridWithColumns(5, swatches...)
	})
}

// Close hides the palette without changing the selection.
func (s *ColorSelector) Close() { s.menu.hide() }

func (s *ColorSelector) IsOpen() bool { return s.menu.open() }

func (s *ColorSelector) Selected() color.Color { return s.selected }

// Select makes c current, closes the palette and reports the change.
func (s *ColorSelector) Select(c color.Color) {
	s.selected = c
	s.preview.FillColor = c
	s.preview.Refresh()
	s.Close()
	if s.OnChanged != nil {
		s.OnChanged(c)
	}
}

// sizeSwatch shows a brush width as a filled dot with its value.
type sizeSwatch struct {
	widget.BaseWidget
	Size     float64
	OnTapped func(float64)
}

func newSizeSwatch(size float64, tapped func(float64)) *sizeSwatch {
	s := &sizeSwatch{Size: size, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *sizeSwatch) CreateRenderer() fyne.WidgetRenderer {
	d := float32(s.Size)
	if d > 32 {
		d = 32
	}
	dot := canvas.NewRectangle(theme.Color(theme.ColorNameForeground))
	dot.SetMinSize(fyne.NewSize(d, d))
	dot.CornerRadius = d / 2

	slot := canvas.NewRectangle(color.Transparent)
	slot.SetMinSize(fyne.NewSize(36, 36))

	label := widget.NewLabel(fmt.Sprintf("%g px", s.Size))
	return widget.NewSimpleRenderer(container.NewHBox(container.NewStack(slot, container.NewCenter(dot)), label))
}

func (s *sizeSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Size)
	}
}

// BrushSizeSelector is a button that opens a fixed list of brush widths.
type BrushSizeSelector struct {
	widget.BaseWidget

	OnChanged func(float64)

	options  []float64
	selected float64
	button   *widget.Button
	menu     dropdown
}

func NewBrushSizeSelector(options []float64, selected float64, changed func(float64)) *BrushSizeSelector {
	s := &BrushSizeSelector{
		OnChanged: changed,
		options:   options,
		selected:  selected,
	}
	s.button = widget.NewButton(sizeLabel(selected), s.Open)
	s.ExtendBaseWidget(s)
	return s
}

func sizeLabel(size float64) string {
	return fmt.Sprintf("Size: %g", size)
}

func (s *BrushSizeSelector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.button)
}

// Open shows the width list below the selector.
func (s *BrushSizeSelector) Open() {
	s.menu.show(s, func() fyne.CanvasObject {
		items := make([]fyne.CanvasObject, 0, len(s.options))
		for _, size := range s.options {
			items = append(items, newSizeSwatch(size, s.Select))
		}
		return container.NewVBox(items...)
	})
}

// Close hides the width list without changing the selection.
func (s *BrushSizeSelector) Close() { s.menu.hide() }

func (s *BrushSizeSelector) IsOpen() bool { return s.menu.open() }

func (s *BrushSizeSelector) Selected() float64 { return s.selected }

// Select makes size current, closes the list and reports the change.
func (s *BrushSizeSelector) Select(size float64) {
	s.selected = size
	s.button.SetText(sizeLabel(size))
	s.Close()
	if s.OnChanged != nil {
		s.OnChanged(size)
	}
}
