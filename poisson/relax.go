package poisson

import (
	"image"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/tint/internal/voronoi"
)

// Relax runs Lloyd style relaxation over the given points; each
// iteration moves every point to the centroid of its voronoi cell
// within bounds. Dart-thrown points keep their minimum separation
// guarantee only approximately after relaxing, in exchange the
// distribution evens out -- useful when "roughly even" matters more
// than the hard separation floor.
func Relax(points []r2.Point, bounds image.Rectangle, iterations int) []r2.Point {
	if len(points) < 2 || iterations <= 0 {
		return points
	}

	min := model2d.Coord{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)}
	max := model2d.Coord{X: float64(bounds.Max.X), Y: float64(bounds.Max.Y)}

	out := append([]r2.Point{}, points...)
	for i := 0; i < iterations; i++ {
		coords := make([]model2d.Coord, len(out))
		for j, p := range out {
			coords[j] = model2d.Coord{X: p.X, Y: p.Y}
		}

		diagram := voronoi.Cells(min, max, coords)
		diagram.Repair(1e-8)

		// cells come back in input order so this moves each point
		// to its own centroid
		for j, cell := range diagram {
			c := cell.Centroid()
			out[j] = r2.Point{X: c.X, Y: c.Y}
		}
	}

	return out
}
