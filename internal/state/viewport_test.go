package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var zeroTime time.Time

func TestViewportRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
	}{
		{"identity", NewViewport()},
		{"min scale", Viewport{OffsetX: 13.5, OffsetY: -40, Scale: MinScale}},
		{"max scale", Viewport{OffsetX: -250, OffsetY: 7, Scale: MaxScale}},
		{"odd scale", Viewport{OffsetX: 0.3, OffsetY: 999.25, Scale: 1.7}},
	}
	screens := []Point{{0, 0}, {300, 300}, {-12.25, 640.5}, {1e3, 3}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range screens {
				got := tt.v.BufferToScreen(tt.v.ScreenToBuffer(s))
				assert.InDelta(t, s.X, got.X, 1e-9)
				assert.InDelta(t, s.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestViewportPan(t *testing.T) {
	v := NewViewport()
	v.Pan(10, -5)
	v.Pan(2, 2)
	assert.Equal(t, Viewport{OffsetX: 12, OffsetY: -3, Scale: 1}, v)
}

func TestViewportZoomKeepsCenter(t *testing.T) {
	v := Viewport{OffsetX: 40, OffsetY: 20, Scale: 1}
	c := Point{300, 200}
	before := v.ScreenToBuffer(c)

	assert.True(t, v.ZoomAround(c, 0.5))
	assert.InDelta(t, 1.5, v.Scale, 1e-12)
	after := v.BufferToScreen(before)
	assert.InDelta(t, c.X, after.X, 1e-9)
	assert.InDelta(t, c.Y, after.Y, 1e-9)

	assert.True(t, v.ZoomAround(c, -0.5))
	assert.InDelta(t, 1.0, v.Scale, 1e-12)
	assert.InDelta(t, 40, v.OffsetX, 1e-9)
	assert.InDelta(t, 20, v.OffsetY, 1e-9)
}

func TestViewportZoomClamps(t *testing.T) {
	v := Viewport{Scale: 2.95}
	assert.True(t, v.ZoomAround(Point{}, 0.1))
	assert.Equal(t, MaxScale, v.Scale)
	assert.False(t, v.ZoomAround(Point{}, 0.1))

	v = Viewport{Scale: 0.15}
	assert.True(t, v.ZoomAround(Point{}, -0.1))
	assert.Equal(t, MinScale, v.Scale)
	assert.False(t, v.ZoomAround(Point{}, -1))
}

func TestViewportCenter(t *testing.T) {
	v := NewViewport()
	v.Center(600, 600, 800, 700)
	assert.Equal(t, 100.0, v.OffsetX)
	assert.Equal(t, 50.0, v.OffsetY)
}
