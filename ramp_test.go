package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp(t *testing.T) {
	from := FromRGBA(255, 0, 0, 255)
	to := FromRGBA(0, 0, 255, 255)

	ramp := Ramp(from, to, 8)
	require.Len(t, ramp, 8)

	// ends land on the (quantised) inputs
	assert.InDelta(t, from.L, ramp[0].L, 1.0/255)
	assert.InDelta(t, from.A, ramp[0].A, 1.0/255)
	assert.InDelta(t, to.L, ramp[7].L, 1.0/255)
	assert.InDelta(t, to.B, ramp[7].B, 1.0/255)

	// lightness walks monotonically between the ends
	for i := 1; i < len(ramp); i++ {
		if from.L <= to.L {
			assert.LessOrEqual(t, ramp[i-1].L, ramp[i].L)
		} else {
			assert.GreaterOrEqual(t, ramp[i-1].L, ramp[i].L)
		}
	}
}

func TestRampReproducible(t *testing.T) {
	from := FromRGBA(10, 200, 50, 255)
	to := FromRGBA(240, 240, 240, 255)

	assert.Equal(t, Ramp(from, to, 16), Ramp(from, to, 16))
}

func TestRampDegenerate(t *testing.T) {
	c := FromRGBA(100, 100, 100, 255)

	assert.Empty(t, Ramp(c, c, 0))
	assert.Equal(t, []Oklab{c}, Ramp(c, c, 1))

	two := Ramp(FromRGBA(0, 0, 0, 255), FromRGBA(255, 255, 255, 255), 2)
	require.Len(t, two, 2)
	assert.InDelta(t, 0, two[0].L, 1.0/255)
	assert.InDelta(t, 1, two[1].L, 1.0/255)
}
