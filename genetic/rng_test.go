package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_SameSeedSameSequence(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.PickIndex(0, 1000), b.PickIndex(0, 1000))
	}
}

func TestRandSource_PickIndexStaysInRange(t *testing.T) {
	src := NewSource(7)

	for i := 0; i < 100; i++ {
		v := src.PickIndex(3, 9)
		assert.GreaterOrEqual(t, v, 3)
		assert.Less(t, v, 9)
	}
}

func TestRandSource_SampleWeightedFollowsSupport(t *testing.T) {
	src := NewSource(1)

	// All mass on index 1.
	for i := 0; i < 20; i++ {
		idx, err := src.SampleWeighted([]float64{0, 5, 0})
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
	}
}

func TestRandSource_SampleWeightedCoversSupport(t *testing.T) {
	src := NewSource(9)

	counts := map[int]int{}
	for i := 0; i < 500; i++ {
		idx, err := src.SampleWeighted([]float64{1, 1})
		require.NoError(t, err)
		counts[idx]++
	}
	assert.Positive(t, counts[0])
	assert.Positive(t, counts[1])
}

func TestRandSource_SampleWeightedRejectsDegenerateWeights(t *testing.T) {
	src := NewSource(1)

	tests := []struct {
		name    string
		weights []float64
	}{
		{"negative weight", []float64{1, -1}},
		{"nan weight", []float64{math.NaN()}},
		{"zero sum", []float64{0, 0}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := src.SampleWeighted(tt.weights)
			var invalidWeights *InvalidWeightsError
			require.ErrorAs(t, err, &invalidWeights)
		})
	}
}

func TestRandSource_Float64InUnitInterval(t *testing.T) {
	src := NewSource(21)

	for i := 0; i < 100; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
