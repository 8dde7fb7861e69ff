package tint

// The sRGB gamut is a lumpy solid in Oklab space; how much chroma fits
// depends on lightness (& hue). We summarise it once at startup as a
// 256 entry read-only table of the maximum representable chroma per
// lightness step, which is enough for saturation metadata & quick
// "could this ever be displayed" checks. Exact clamping works on the
// full color, not the table.

const gamutEpsilon = 1e-4

// chromaLimitByL[i] is the largest chroma representable in sRGB at
// lightness i/255, across all hues. Built once by init, read-only after.
var chromaLimitByL [256]float64

func init() {
	for i := 0; i < 256; i++ {
		l := float64(i) / 255
		limit := 0.0
		// 4 degree hue steps are plenty for a summary table
		for h := 0.0; h < 360; h += 4 {
			c := maxChromaAt(l, h)
			if c > limit {
				limit = c
			}
		}
		chromaLimitByL[i] = limit
	}
}

// maxChromaAt binary searches the edge of the sRGB gamut along one
// (lightness, hue) ray
func maxChromaAt(l, h float64) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if FromLCh(l, mid, h, 1).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// MaxChroma returns the largest chroma representable in sRGB at the
// given lightness (0 - 1), at the most accommodating hue.
func MaxChroma(l float64) float64 {
	i := int(clamp01(l)*255 + 0.5)
	return chromaLimitByL[i]
}

// InGamut returns if the color can be represented in sRGB
func (o Oklab) InGamut() bool {
	r, g, b := o.linearRGB()
	return r >= -gamutEpsilon && r <= 1+gamutEpsilon &&
		g >= -gamutEpsilon && g <= 1+gamutEpsilon &&
		b >= -gamutEpsilon && b <= 1+gamutEpsilon
}

// Saturation returns chroma relative to the most chromatic color
// possible at this lightness; 0 on the grey axis up to ~1 at the
// gamut edge.
func (o Oklab) Saturation() float64 {
	limit := MaxChroma(o.L)
	if limit < 1e-9 {
		return 0
	}
	s := o.Chroma() / limit
	if s > 1 {
		return 1
	}
	return s
}

// ClampChroma pulls an out of gamut color straight toward the grey
// axis (preserving lightness & hue) until it can be displayed.
// In gamut colors come back unchanged.
func (o Oklab) ClampChroma() Oklab {
	if o.InGamut() {
		return o
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		test := Oklab{L: o.L, A: o.A * mid, B: o.B * mid, Alpha: o.Alpha}
		if test.InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Oklab{L: o.L, A: o.A * lo, B: o.B * lo, Alpha: o.Alpha}
}
