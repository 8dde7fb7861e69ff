package poisson

import (
	"sort"

	"github.com/boljen/go-bitmap"
	"github.com/golang/geo/r2"
)

// Occupancy flattens a stamp into a bitmap with one bit per cell
// (row-major; bit y*width+x is set where the stamp is non-zero).
// Handy when a caller only cares whether a cell was picked & wants
// the result packed tight.
func Occupancy(stamp [][]int) bitmap.Bitmap {
	w := len(stamp)
	if w == 0 {
		return bitmap.New(0)
	}
	h := len(stamp[0])

	bm := bitmap.New(w * h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if stamp[x][y] != 0 {
				bm.Set(y*w+x, true)
			}
		}
	}
	return bm
}

// Points returns the stamped cells as float points in acceptance order.
// Coordinates are stamp-local, ie. relative to the region's clipped
// minimum corner.
func Points(stamp [][]int) []r2.Point {
	type entry struct {
		order int
		p     r2.Point
	}

	entries := []entry{}
	for x := range stamp {
		for y, order := range stamp[x] {
			if order == 0 {
				continue
			}
			entries = append(entries, entry{order: order, p: r2.Point{X: float64(x), Y: float64(y)}})
		}
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].order < entries[b].order
	})

	out := make([]r2.Point, len(entries))
	for i, e := range entries {
		out[i] = e.p
	}
	return out
}
