package ui

import (
	"errors"
	"fmt"
	"image"

	"SketchBoard/internal/export"
	"SketchBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// SavePNG asks where to save the trimmed drawing as PNG.
func (h *Host) SavePNG() {
	h.save(export.FormatPNG, h.cfg.Export.Filename)
}

// SavePDF asks where to save the trimmed drawing as a one-page PDF.
func (h *Host) SavePDF() {
	h.save(export.FormatPDF, export.DefaultPDFName)
}

func (h *Host) save(format export.Format, name string) {
	img, err := h.Board.ExportImage()
	if errors.Is(err, surface.ErrNothingToExport) {
		dialog.ShowInformation("Nothing to export", "Draw something on the board before saving.", h.Window)
		h.setStatus("Nothing to export")
		return
	}
	if err != nil {
		h.logger.Error("export failed", "err", err)
		dialog.ShowError(err, h.Window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, h.Window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		h.writeExport(writer, img, format)
	}, h.Window)
	d.SetFileName(name)
	d.Show()
}

func (h *Host) writeExport(writer fyne.URIWriteCloser, img *image.RGBA, format export.Format) {
	defer func() {
		if err := writer.Close(); err != nil {
			h.logger.Error("close export", "uri", writer.URI(), "err", err)
		}
	}()

	if err := export.Write(writer, img, format); err != nil {
		h.logger.Error("write export", "uri", writer.URI(), "err", err)
		h.setStatus("Error writing file")
		dialog.ShowError(err, h.Window)
		return
	}
	h.logger.Info("saved drawing", "uri", writer.URI(), "format", format)
	h.setStatus(fmt.Sprintf("Saved %s", writer.URI().Name()))
}
