package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	img.Set(w/2, h/2, color.Black)
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"drawing.png", FormatPNG, false},
		{"/tmp/OUT.PDF", FormatPDF, false},
		{"drawing.jpg", "", true},
		{"drawing", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testImage(30, 20)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, testImage(120, 80)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{DefaultPNGName, DefaultPDFName} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, testImage(10, 10)))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	assert.Error(t, WriteFile(filepath.Join(dir, "x.gif"), testImage(1, 1)))
	assert.Error(t, Write(&bytes.Buffer{}, testImage(1, 1), Format("bmp")))
}
