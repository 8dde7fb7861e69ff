// Package tint is a small color manipulation toolkit built around the
// Oklab perceptual color space. It handles sRGB <-> Oklab conversion,
// packed float channel encoding, a named palette with hue / chroma /
// lightness metadata, gamut clamping, gradient ramps, image tinting &
// palette preview rendering.
package tint

import (
	"image/color"
	"math"

	"github.com/voidshard/tint/internal/encoding"
)

// Oklab is a color in Björn Ottosson's Oklab space, plus alpha.
// Conversion constants are from the reference implementation
// (https://bottosson.github.io/posts/oklab/).
type Oklab struct {
	// L is perceptual lightness; 0 black to 1 white
	L float64

	// A runs green (negative) to red (positive), within about
	// +-0.4 for colors inside the sRGB gamut
	A float64

	// B runs blue (negative) to yellow (positive), same rough range
	B float64

	// Alpha 0 - 1
	Alpha float64
}

// FromRGBA builds an Oklab color from 8 bit sRGB channels
func FromRGBA(r, g, b, a uint8) Oklab {
	lr := srgbToLinear(float64(r) / 255)
	lg := srgbToLinear(float64(g) / 255)
	lb := srgbToLinear(float64(b) / 255)

	// linear RGB -> LMS cone response
	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	l3 := math.Cbrt(l)
	m3 := math.Cbrt(m)
	s3 := math.Cbrt(s)

	return Oklab{
		L:     0.2104542553*l3 + 0.7936177850*m3 - 0.0040720468*s3,
		A:     1.9779984951*l3 - 2.4285922050*m3 + 0.4505937099*s3,
		B:     0.0259040371*l3 + 0.7827717662*m3 - 0.8086757660*s3,
		Alpha: float64(a) / 255,
	}
}

// FromColor builds an Oklab color from any color.Color.
// Nb. RGBA() returns alpha premultiplied channels; for opaque colors
// (the usual case here) that changes nothing.
func FromColor(c color.Color) Oklab {
	r, g, b, a := c.RGBA()
	return FromRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// FromRGBA8888 builds an Oklab color from a packed RGBA8888 value
func FromRGBA8888(in uint32) Oklab {
	r, g, b, a := encoding.UnpackRGBA(in)
	return FromRGBA(r, g, b, a)
}

// FromLCh builds an Oklab color from lightness, chroma & a hue
// given in degrees.
func FromLCh(l, c, h, alpha float64) Oklab {
	rad := h * (math.Pi / 180)
	return Oklab{L: l, A: c * math.Cos(rad), B: c * math.Sin(rad), Alpha: alpha}
}

// linearRGB returns the color's linear (pre gamma) RGB channels,
// unclamped. Out of gamut colors yield values outside 0 - 1.
func (o Oklab) linearRGB() (float64, float64, float64) {
	l3 := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	m3 := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	s3 := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l := l3 * l3 * l3
	m := m3 * m3 * m3
	s := s3 * s3 * s3

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, b
}

// Color returns the nearest 8 bit sRGB color, channels clamped
func (o Oklab) Color() color.RGBA {
	r, g, b := o.linearRGB()
	return color.RGBA{
		R: uint8(math.Round(linearToSRGB(clamp01(r)) * 255)),
		G: uint8(math.Round(linearToSRGB(clamp01(g)) * 255)),
		B: uint8(math.Round(linearToSRGB(clamp01(b)) * 255)),
		A: uint8(math.Round(clamp01(o.Alpha) * 255)),
	}
}

// RGBA8888 returns the color packed into a single uint32, red highest
func (o Oklab) RGBA8888() uint32 {
	c := o.Color()
	return encoding.PackRGBA(c.R, c.G, c.B, c.A)
}

// Hue returns the color's hue angle in degrees [0, 360)
func (o Oklab) Hue() float64 {
	h := math.Atan2(o.B, o.A) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return h
}

// Chroma returns the color's distance from the neutral (grey) axis
func (o Oklab) Chroma() float64 {
	return math.Sqrt(o.A*o.A + o.B*o.B)
}

// LCh returns the color as lightness, chroma, hue (degrees)
func (o Oklab) LCh() (float64, float64, float64) {
	return o.L, o.Chroma(), o.Hue()
}

// Lerp linearly interpolates toward `to` by t (0 returns the receiver,
// 1 returns `to`). Interpolating in Oklab avoids the muddy midpoints
// plain RGB lerps produce.
func (o Oklab) Lerp(to Oklab, t float64) Oklab {
	return Oklab{
		L:     o.L + (to.L-o.L)*t,
		A:     o.A + (to.A-o.A)*t,
		B:     o.B + (to.B-o.B)*t,
		Alpha: o.Alpha + (to.Alpha-o.Alpha)*t,
	}
}

// srgbToLinear removes the sRGB gamma curve from one 0-1 channel
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB gamma curve to one 0-1 channel
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}
