package voronoi

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// stolen from
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
//
// + trimmed down to what we need for point relaxation

// Cell is a single voronoi cell; the site it was grown from & the
// edges enclosing it.
type Cell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

// Diagram is a set of voronoi cells, one per input coordinate
// (in the same order).
type Diagram []*Cell

// Cells computes the voronoi cells for a list of coordinates,
// assuming they are all contained within a bounding box.
//
// The resulting cells may be slightly misaligned, i.e. adjacent
// edges' coordinates may differ due to rounding errors.
// See Diagram.Repair().
func Cells(min, max model2d.Coord, coords []model2d.Coord) Diagram {
	cells := make([]*Cell, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range coords {
			if c != c1 {
				mp := c.Mid(c1)
				normal := c1.Sub(c).Normalize()
				constraint := &model2d.LinearConstraint{
					Normal: normal,
					Max:    normal.Dot(mp),
				}
				constraints = append(constraints, constraint)
			}
		}
		cells[i] = &Cell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Repair merges nearly identical coordinates & drops edges that
// collapse to a point.
func (v Diagram) Repair(epsilon float64) {
	coordSet := map[model2d.Coord]bool{}
	coordSlice := []model2d.Coord{}
	for _, cell := range v {
		for _, s := range cell.Edges {
			for _, p := range s {
				if !coordSet[p] {
					coordSet[p] = true
					coordSlice = append(coordSlice, p)
				}
			}
		}
	}
	tree := model2d.NewCoordTree(coordSlice)

	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coordSlice {
		if !coordSet[c] {
			continue
		}
		neighbors := neighborsInDistance(tree, c, epsilon)
		for _, n := range neighbors {
			if coordSet[n] {
				coordSet[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range v {
		for i := 0; i < len(cell.Edges); i++ {
			edge := cell.Edges[i]
			for j, c := range edge {
				edge[j] = mapping[c]
			}
			if edge[0] == edge[1] {
				// This was almost a singular edge.
				essentials.UnorderedDelete(&cell.Edges, i)
				i--
			}
		}
	}
}

// Centroid returns the mean of the cell's unique vertices.
// Not the true polygon centroid but close enough to drive Lloyd
// style relaxation, which is all we use it for.
func (c *Cell) Centroid() model2d.Coord {
	seen := map[model2d.Coord]bool{}
	sum := model2d.Coord{}
	count := 0
	for _, s := range c.Edges {
		for _, p := range s {
			if seen[p] {
				continue
			}
			seen[p] = true
			sum = sum.Add(p)
			count++
		}
	}
	if count == 0 {
		return c.Center
	}
	return sum.Scale(1 / float64(count))
}

// neighborsInDistance finds coords within epsilon of c
func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; true; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
	panic("unreachable")
}
