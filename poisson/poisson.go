// Package poisson places blue-noise distributed points via
// grid-accelerated dart throwing.
//
// Given a region & a minimum separation we return a "stamp"; a 2d int
// array covering the region where non-zero entries mark accepted points
// (the value is the 1-based order the point was accepted in). Callers
// wanting float points or a compact mask instead can run the stamp
// through Points() or Occupancy().
package poisson

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

var (
	// ErrInvalidRegion implies the requested region has no usable area
	// (zero / negative bounds, or it sits entirely outside the lattice).
	ErrInvalidRegion = fmt.Errorf("sample region has no usable area")
)

const (
	// one over sqrt(2); a grid cell of size minDist/sqrt(2) can hold
	// at most one accepted point (the cell diagonal is exactly minDist)
	invRootTwo = 0.70710678118654752

	// floor for the minimum separation, stops the acceleration grid
	// blowing up (or dividing by zero) on tiny / zero distances
	minSeparation = 1.0001

	defaultPointsPerTry = 10
)

// fpoint is a float candidate point; the algorithm works on continuous
// candidates but truncates to integer cells for grid & stamp placement
type fpoint struct {
	x, y float64
}

// SampleCircle returns a stamp of points within the circle at center
// with the given radius, every pair separated by at least minimumDistance.
// All points are clipped to [0, maxX) x [0, maxY).
// pointsPerTry is how many candidates each accepted point may spawn
// before it is retired (values 5 - 30 are typical, <= 0 uses 10).
// The rng is the only source of randomness; same seed, same stamp.
func SampleCircle(center image.Point, radius, minimumDistance float64, maxX, maxY, pointsPerTry int, rng *rand.Rand) ([][]int, error) {
	r := int(math.Round(radius))
	minPos := image.Pt(center.X-r, center.Y-r)
	maxPos := image.Pt(center.X+r, center.Y+r)
	return sample(minPos, maxPos, center, radius, minimumDistance, maxX, maxY, pointsPerTry, rng)
}

// SampleRectangle returns a stamp of points within the rectangle
// [minPosition, maxPosition] (inclusive corners), every pair separated
// by at least minimumDistance. Otherwise as SampleCircle.
func SampleRectangle(minPosition, maxPosition image.Point, minimumDistance float64, maxX, maxY, pointsPerTry int, rng *rand.Rand) ([][]int, error) {
	return sample(minPosition, maxPosition, image.Point{}, 0, minimumDistance, maxX, maxY, pointsPerTry, rng)
}

// sample is the shared dart-throwing core.
// We keep a list of "active" points; each loop we pick one at random &
// throw pointsPerTry candidates at fixed angle steps around it (the
// whole fan rotated by one shared random amount). The first candidate
// that fits is recorded & we go straight back to picking a new active
// point; if none fit the active point is retired. The active list only
// ever shrinks once the region fills, so this always terminates.
func sample(minPos, maxPos, center image.Point, maxSampleRadius, minDist float64, maxX, maxY, pointsPerTry int, rng *rand.Rand) ([][]int, error) {
	if maxX <= 0 || maxY <= 0 {
		return nil, fmt.Errorf("%w: lattice bounds (%d, %d)", ErrInvalidRegion, maxX, maxY)
	}
	if maxPos.X <= minPos.X || maxPos.Y <= minPos.Y {
		return nil, fmt.Errorf("%w: min %v max %v", ErrInvalidRegion, minPos, maxPos)
	}
	if pointsPerTry <= 0 {
		pointsPerTry = defaultPointsPerTry
	}

	// clip the region onto the lattice
	if minPos.X < 0 {
		minPos.X = 0
	}
	if minPos.Y < 0 {
		minPos.Y = 0
	}
	if maxPos.X > maxX-1 {
		maxPos.X = maxX - 1
	}
	if maxPos.Y > maxY-1 {
		maxPos.Y = maxY - 1
	}
	if maxPos.X < minPos.X || maxPos.Y < minPos.Y {
		return nil, fmt.Errorf("%w: region lies outside lattice bounds (%d, %d)", ErrInvalidRegion, maxX, maxY)
	}

	minDist = math.Max(minSeparation, minDist)
	radius2 := minDist * minDist
	maxR2 := maxSampleRadius * maxSampleRadius
	iCellSize := 1 / (minDist * invRootTwo)
	ik := 1 / float64(pointsPerTry)

	// stamp covers the clipped region, so never more than (maxX, maxY)
	width := maxPos.X + 1 - minPos.X
	height := maxPos.Y + 1 - minPos.Y

	gridWidth := int(float64(width)*iCellSize) + 1
	gridHeight := int(float64(height)*iCellSize) + 1

	// the grid holds accepted point coords (or -1 for "empty"); at most
	// one point fits per cell so the 5x5 block around a candidate's
	// cell covers every point that could possibly be too close
	gridX := make([][]float64, gridWidth)
	gridY := make([][]float64, gridWidth)
	for i := range gridX {
		gridX[i] = make([]float64, gridHeight)
		gridY[i] = make([]float64, gridHeight)
		for j := range gridX[i] {
			gridX[i][j] = -1
			gridY[i][j] = -1
		}
	}

	stamp := make([][]int, width)
	for i := range stamp {
		stamp[i] = make([]int, height)
	}

	active := []fpoint{}
	placed := 0

	record := func(x, y float64) {
		// nb. truncation toward zero here (not rounding) is load bearing;
		// both grid & stamp placement bias to the cell's low corner
		gx := int((x - float64(minPos.X)) * iCellSize)
		gy := int((y - float64(minPos.Y)) * iCellSize)
		gridX[gx][gy] = x
		gridY[gx][gy] = y
		active = append(active, fpoint{x, y})
		placed++
		stamp[int(x)-minPos.X][int(y)-minPos.Y] = placed
	}

	farEnough := func(x, y float64) bool {
		gx := int((x - float64(minPos.X)) * iCellSize)
		gy := int((y - float64(minPos.Y)) * iCellSize)
		for nx := gx - 2; nx <= gx+2; nx++ {
			if nx < 0 || nx >= gridWidth {
				continue
			}
			for ny := gy - 2; ny <= gy+2; ny++ {
				if ny < 0 || ny >= gridHeight {
					continue
				}
				if gridX[nx][ny] < 0 {
					continue
				}
				dx := gridX[nx][ny] - x
				dy := gridY[nx][ny] - y
				if dx*dx+dy*dy < radius2 {
					return false
				}
			}
		}
		return true
	}

	// seed with the region centre
	record(float64(minPos.X+maxPos.X)/2, float64(minPos.Y+maxPos.Y)/2)

	for len(active) > 0 {
		i := rng.Intn(len(active))
		p := active[i]
		seed := rng.Float64()

		accepted := false
		for j := 0; j < pointsPerTry; j++ {
			// pointsPerTry candidates evenly spaced around a full turn,
			// all sharing the one random rotation drawn above
			theta := seed * 2 * math.Pi
			x := p.x + minDist*math.Cos(theta)
			y := p.y + minDist*math.Sin(theta)
			seed += ik

			if x < float64(minPos.X) || x >= float64(maxPos.X)+1 || y < float64(minPos.Y) || y >= float64(maxPos.Y)+1 {
				continue
			}
			if maxR2 > 0 {
				dx := x - float64(center.X)
				dy := y - float64(center.Y)
				if dx*dx+dy*dy > maxR2 {
					continue
				}
			}
			if !farEnough(x, y) {
				continue
			}

			record(x, y)
			accepted = true
			break // back to picking a random active point
		}

		if !accepted {
			// every candidate failed; this point can no longer spawn children
			active = append(active[:i], active[i+1:]...)
		}
	}

	return stamp, nil
}
