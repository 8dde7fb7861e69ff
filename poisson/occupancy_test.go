package poisson

import (
	"image"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancy(t *testing.T) {
	stamp := [][]int{
		{0, 2, 0},
		{1, 0, 0},
		{0, 0, 3},
	}

	bm := Occupancy(stamp)

	// bit y*width+x, row-major
	assert.True(t, bm.Get(1*3+0))  // (0, 1)
	assert.True(t, bm.Get(0*3+1))  // (1, 0)
	assert.True(t, bm.Get(2*3+2))  // (2, 2)
	assert.False(t, bm.Get(0*3+0)) // (0, 0)
	assert.False(t, bm.Get(2*3+1)) // (1, 2)
}

func TestOccupancyEmpty(t *testing.T) {
	assert.Equal(t, 0, Occupancy([][]int{}).Len())
}

func TestPoints(t *testing.T) {
	stamp := [][]int{
		{0, 2, 0},
		{1, 0, 0},
		{0, 0, 3},
	}

	pts := Points(stamp)
	require.Len(t, pts, 3)

	// acceptance order, not scan order
	assert.Equal(t, r2.Point{X: 1, Y: 0}, pts[0])
	assert.Equal(t, r2.Point{X: 0, Y: 1}, pts[1])
	assert.Equal(t, r2.Point{X: 2, Y: 2}, pts[2])
}

func TestRelax(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	points := []r2.Point{
		{X: 10, Y: 10},
		{X: 80, Y: 15},
		{X: 20, Y: 85},
		{X: 70, Y: 70},
	}

	relaxed := Relax(points, bounds, 2)
	require.Len(t, relaxed, len(points))

	for i, p := range relaxed {
		assert.GreaterOrEqual(t, p.X, -1.0, "point %d drifted out of bounds", i)
		assert.LessOrEqual(t, p.X, 101.0, "point %d drifted out of bounds", i)
		assert.GreaterOrEqual(t, p.Y, -1.0, "point %d drifted out of bounds", i)
		assert.LessOrEqual(t, p.Y, 101.0, "point %d drifted out of bounds", i)
	}

	// relaxing pulls lopsided points toward their cell centres; the
	// corner-ish points above should all move inward at least a bit
	assert.Greater(t, relaxed[0].X, points[0].X)
	assert.Greater(t, relaxed[0].Y, points[0].Y)
}

func TestRelaxNoOp(t *testing.T) {
	points := []r2.Point{{X: 1, Y: 1}}
	assert.Equal(t, points, Relax(points, image.Rect(0, 0, 10, 10), 3))
	assert.Empty(t, Relax(nil, image.Rect(0, 0, 10, 10), 3))
}

func TestSampleThenRelax(t *testing.T) {
	stamp, err := SampleRectangle(image.Pt(0, 0), image.Pt(49, 49), 8, 50, 50, 15, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	points := Points(stamp)
	require.Greater(t, len(points), 2)

	relaxed := Relax(points, image.Rect(0, 0, 50, 50), 1)
	assert.Len(t, relaxed, len(points))
}
