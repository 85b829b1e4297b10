// Package export writes exported drawings to files in the supported formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
)

// Format is an output file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

const (
	DefaultPNGName = "drawing.png"
	DefaultPDFName = "drawing.pdf"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (want .png or .pdf)", filepath.Ext(path))
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img *image.RGBA) error {
	return gg.NewContextForRGBA(img).EncodePNG(w)
}

// WritePDF places img on a single page sized to the image, one point per pixel.
func WritePDF(w io.Writer, img *image.RGBA) error {
	var png bytes.Buffer
	if err := WritePNG(&png, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}

	wd := float64(img.Bounds().Dx())
	ht := float64(img.Bounds().Dy())
	// "L" would swap Wd and Ht, so the page is always declared portrait.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("drawing", opts, &png)
	p.ImageOptions("drawing", 0, 0, wd, ht, false, opts, 0, "")
	if err := p.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return p.Output(w)
}

// Write encodes img in the given format.
func Write(w io.Writer, img *image.RGBA, f Format) error {
	switch f {
	case FormatPNG:
		return WritePNG(w, img)
	case FormatPDF:
		return WritePDF(w, img)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteFile encodes img into path, choosing the format from its extension.
func WriteFile(path string, img *image.RGBA) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, img, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
