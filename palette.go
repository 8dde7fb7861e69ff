package tint

import (
	"sort"

	"golang.org/x/image/colornames"

	"github.com/voidshard/tint/internal/encoding"
)

// Swatch is a named color with its Oklab channels & derived metadata
// precomputed.
type Swatch struct {
	// Name of the color, lowercase (ie. "rebeccapurple")
	Name string

	// RGBA8888 packed value, red in the high byte
	RGBA uint32

	// Lab is the color in Oklab space
	Lab Oklab

	// derived metadata, kept flat for sorting / display
	Hue        float64 // degrees [0, 360)
	Chroma     float64
	Saturation float64
}

var (
	// named & list are built once at init from the SVG 1.1 color
	// names & read-only after that
	named = map[string]*Swatch{}
	list  = []*Swatch{}
)

func init() {
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		lab := FromRGBA(c.R, c.G, c.B, c.A)

		sw := &Swatch{
			Name:       name,
			RGBA:       encoding.PackRGBA(c.R, c.G, c.B, c.A),
			Lab:        lab,
			Hue:        lab.Hue(),
			Chroma:     lab.Chroma(),
			Saturation: lab.Saturation(),
		}
		named[name] = sw
		list = append(list, sw)
	}
}

// Named returns the swatch for the given color name (if known)
func Named(name string) (*Swatch, bool) {
	sw, ok := named[name]
	return sw, ok
}

// List returns all known swatches in name order.
// Callers get a fresh slice & can reorder it freely; the swatches
// themselves are shared & should be treated as read-only.
func List() []*Swatch {
	out := make([]*Swatch, len(list))
	copy(out, list)
	return out
}

// SortByHue orders swatches around the hue circle, near-greys first
// (hue is meaningless below a whisker of chroma so we pin them rather
// than scatter them among the reds).
func SortByHue(in []*Swatch) {
	sort.Slice(in, func(a, b int) bool {
		sa, sb := in[a], in[b]
		if grey(sa) != grey(sb) {
			return grey(sa)
		}
		if grey(sa) { // both grey, order by lightness
			return sa.Lab.L < sb.Lab.L
		}
		if sa.Hue != sb.Hue {
			return sa.Hue < sb.Hue
		}
		return sa.Lab.L < sb.Lab.L
	})
}

// SortByLightness orders swatches dark to light
func SortByLightness(in []*Swatch) {
	sort.Slice(in, func(a, b int) bool {
		sa, sb := in[a], in[b]
		if sa.Lab.L != sb.Lab.L {
			return sa.Lab.L < sb.Lab.L
		}
		return sa.Hue < sb.Hue
	})
}

// grey returns if a swatch is too close to the neutral axis for its
// hue angle to mean anything
func grey(s *Swatch) bool {
	return s.Chroma < 0.01
}
