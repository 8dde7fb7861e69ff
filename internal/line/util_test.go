package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  int
		steps int
	}{
		{"flat", 7, 7, 5},
		{"shallow rise", 0, 3, 10},
		{"steep rise", 0, 200, 5},
		{"steep fall", 255, 0, 4},
		{"single step span", 0, 255, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := Values(tt.a, tt.b, tt.steps)
			require.Len(t, vs, tt.steps)

			assert.Equal(t, tt.a, vs[0])
			assert.Equal(t, tt.b, vs[tt.steps-1])

			// monotone between the ends
			for i := 1; i < len(vs); i++ {
				if tt.a <= tt.b {
					assert.LessOrEqual(t, vs[i-1], vs[i])
				} else {
					assert.GreaterOrEqual(t, vs[i-1], vs[i])
				}
			}
		})
	}
}

func TestValuesDegenerate(t *testing.T) {
	assert.Empty(t, Values(1, 9, 0))
	assert.Equal(t, []int{3}, Values(3, 9, 1))
}

func TestValuesEvenSpread(t *testing.T) {
	vs := Values(0, 100, 101)
	for i, v := range vs {
		assert.Equal(t, i, v)
	}
}
