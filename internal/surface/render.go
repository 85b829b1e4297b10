package surface

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Render draws the buffer through the viewport into a fresh w×h image.
// pixelRatio is the number of output pixels per view unit; values <= 0 mean 1.
// Render does not modify the surface.
func (s *Surface) Render(w, h int, pixelRatio float64) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.opts.Surround), image.Point{}, draw.Src)

	// buffer pixel -> logical unit -> view unit -> output pixel
	a := s.view.Scale * pixelRatio / s.buf.Density()
	m := f64.Aff3{
		a, 0, s.view.OffsetX * pixelRatio,
		0, a, s.view.OffsetY * pixelRatio,
	}
	src := s.buf.Image()
	if a >= 1 {
		draw.NearestNeighbor.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	} else {
		draw.ApproxBiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	}
	return dst
}
