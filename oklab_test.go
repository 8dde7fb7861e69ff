package tint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRGBAKnownColors(t *testing.T) {
	// reference values from the Oklab announcement post
	tests := []struct {
		name    string
		r, g, b uint8
		wantL   float64
		wantC   float64
		wantH   float64
		grey    bool
	}{
		{name: "black", wantL: 0, grey: true},
		{name: "white", r: 255, g: 255, b: 255, wantL: 1, grey: true},
		{name: "red", r: 255, wantL: 0.6279, wantC: 0.2577, wantH: 29.23},
		{name: "green", g: 128, wantL: 0.5196, wantC: 0.1766, wantH: 142.50},
		{name: "blue", b: 255, wantL: 0.4520, wantC: 0.3132, wantH: 264.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := FromRGBA(tt.r, tt.g, tt.b, 255)
			l, c, h := o.LCh()

			assert.InDelta(t, tt.wantL, l, 0.01)
			assert.InDelta(t, tt.wantC, c, 0.01)
			if !tt.grey {
				assert.InDelta(t, tt.wantH, h, 0.6)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// sRGB -> Oklab -> sRGB should land within a channel step
	for _, c := range []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 128, G: 64, B: 200, A: 255},
		{R: 12, G: 200, B: 99, A: 128},
		{R: 100, G: 100, B: 100, A: 255},
	} {
		got := FromRGBA(c.R, c.G, c.B, c.A).Color()
		assert.InDelta(t, int(c.R), int(got.R), 1)
		assert.InDelta(t, int(c.G), int(got.G), 1)
		assert.InDelta(t, int(c.B), int(got.B), 1)
		assert.InDelta(t, int(c.A), int(got.A), 1)
	}
}

func TestRGBA8888(t *testing.T) {
	o := FromRGBA(0x11, 0x22, 0x33, 0xff)
	packed := o.RGBA8888()
	back := FromRGBA8888(packed)

	assert.InDelta(t, o.L, back.L, 0.01)
	assert.InDelta(t, o.A, back.A, 0.01)
	assert.InDelta(t, o.B, back.B, 0.01)
}

func TestLChRoundTrip(t *testing.T) {
	o := FromRGBA(200, 60, 40, 255)
	l, c, h := o.LCh()
	back := FromLCh(l, c, h, o.Alpha)

	assert.InDelta(t, o.A, back.A, 1e-9)
	assert.InDelta(t, o.B, back.B, 1e-9)
	assert.InDelta(t, o.L, back.L, 1e-9)
}

func TestLerp(t *testing.T) {
	a := Oklab{L: 0.2, A: -0.1, B: 0.1, Alpha: 1}
	b := Oklab{L: 0.8, A: 0.1, B: -0.1, Alpha: 0}

	assert.Equal(t, a, a.Lerp(b, 0))

	end := a.Lerp(b, 1)
	assert.InDelta(t, b.L, end.L, 1e-12)
	assert.InDelta(t, b.A, end.A, 1e-12)
	assert.InDelta(t, b.B, end.B, 1e-12)
	assert.InDelta(t, b.Alpha, end.Alpha, 1e-12)

	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.5, mid.L, 1e-9)
	assert.InDelta(t, 0.0, mid.A, 1e-9)
	assert.InDelta(t, 0.5, mid.Alpha, 1e-9)
}

func TestHueRange(t *testing.T) {
	for _, sw := range List() {
		h := sw.Lab.Hue()
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
	}
}
