package tint

import (
	"github.com/voidshard/tint/internal/line"
)

// Ramp returns `steps` colors running from one color to the other
// through Oklab space. Channels are walked as quantised 8 bit values
// with bresenham style integer stepping, so a ramp is always exactly
// reproducible & free of float rounding drift between runs -- which
// matters when ramps become palette rows that are diffed or hashed.
func Ramp(from, to Oklab, steps int) []Oklab {
	if steps <= 0 {
		return []Oklab{}
	}
	if steps == 1 {
		return []Oklab{from}
	}

	ls := line.Values(quantise(from.L), quantise(to.L), steps)
	as := line.Values(quantise(from.A+0.5), quantise(to.A+0.5), steps)
	bs := line.Values(quantise(from.B+0.5), quantise(to.B+0.5), steps)
	al := line.Values(quantise(from.Alpha), quantise(to.Alpha), steps)

	out := make([]Oklab, steps)
	for i := range out {
		out[i] = Oklab{
			L:     float64(ls[i]) / 255,
			A:     float64(as[i])/255 - 0.5,
			B:     float64(bs[i])/255 - 0.5,
			Alpha: float64(al[i]) / 255,
		}
	}
	return out
}

// quantise an 0-1 channel to 8 bits
func quantise(v float64) int {
	return int(clamp01(v)*255 + 0.5)
}
