package tint

import (
	"math"

	"github.com/voidshard/tint/internal/encoding"
)

// Packed float colors squeeze four 0-1 channels into the bit pattern
// of one float32; compact to store & cheap to hand to a GPU as a
// single vertex attribute. Channel order is ABGR (alpha in the high
// byte). The alpha byte covers the float's sign & exponent bits so we
// drop its lowest bit -- an exponent of all ones with a non zero
// mantissa would be a NaN & NaN bit patterns don't survive every
// GPU / driver round trip.

// Pack encodes four 0-1 channel values into a float32 bit pattern.
// Inputs are clamped to 0-1, quantised to 8 bits (7 for alpha).
func Pack(x, y, z, alpha float64) float32 {
	xi := uint8(clamp01(x)*255 + 0.5)
	yi := uint8(clamp01(y)*255 + 0.5)
	zi := uint8(clamp01(z)*255 + 0.5)
	ai := uint8(clamp01(alpha)*255+0.5) & 0xFE
	return math.Float32frombits(encoding.PackABGR(xi, yi, zi, ai))
}

// Unpack decodes a float32 bit pattern back into four 0-1 channels.
// Alpha comes back with its lowest bit dropped (see Pack).
func Unpack(f float32) (float64, float64, float64, float64) {
	xi, yi, zi, ai := encoding.UnpackABGR(math.Float32bits(f))
	return float64(xi) / 255, float64(yi) / 255, float64(zi) / 255, float64(ai) / 255
}

// Packed returns the color as a packed float32. The A & B channels
// are stored offset by +0.5 so the neutral axis sits at 0.5 & the
// usual +-0.4 range fits comfortably in 0-1.
func (o Oklab) Packed() float32 {
	return Pack(o.L, o.A+0.5, o.B+0.5, o.Alpha)
}

// FromPacked is the inversion of Oklab.Packed
func FromPacked(f float32) Oklab {
	l, a, b, alpha := Unpack(f)
	return Oklab{L: l, A: a - 0.5, B: b - 0.5, Alpha: alpha}
}
