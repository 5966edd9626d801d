package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectByTournament_HighestFitnessCandidateWins(t *testing.T) {
	evaluations := evaluationsWithFitness(1.0, 5.0, 3.0)
	// Round 0 draws positions 1 then 0 (winner index 1), round 1 draws the
	// remaining positions (winner index 2).
	src := newScriptedSource(1, 0, 1, 0)

	result, err := selectByTournament(evaluations, 2, 2, src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, result)
}

func TestSelectByTournament_DistinctAndInRange(t *testing.T) {
	evaluations := evaluationsWithFitness(0.2, 0.9, 0.4, 0.6, 0.1)
	src := NewSource(7)

	for count := 0; count <= len(evaluations); count++ {
		result, err := selectByTournament(evaluations, count, 3, src)
		require.NoError(t, err)
		require.Len(t, result, count)
		seen := map[int]bool{}
		for _, idx := range result {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(evaluations))
			assert.False(t, seen[idx], "index %d selected twice", idx)
			seen[idx] = true
		}
	}
}

func TestSelectByTournament_PoolLargerThanRemainingIsClamped(t *testing.T) {
	evaluations := evaluationsWithFitness(1.0, 2.0, 3.0)
	src := NewSource(11)

	result, err := selectByTournament(evaluations, 3, 10, src)
	require.NoError(t, err)
	// A pool covering all remaining candidates always selects the best, so
	// the result degenerates to descending fitness order.
	assert.Equal(t, []int{2, 1, 0}, result)
}

func TestSelectByTournament_CountAboveLenFails(t *testing.T) {
	evaluations := evaluationsWithFitness(1.0, 1.0)
	src := newScriptedSource(2, 0, 0, 1)

	_, err := selectByTournament(evaluations, 3, 3, src)
	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 3, outOfRange.Requested)
	assert.Equal(t, 2, outOfRange.Available)
}

func TestSelectByTournament_ZeroCountConsumesNoRandomness(t *testing.T) {
	evaluations := evaluationsWithFitness(1.0)
	src := newScriptedSource(3, 3)

	result, err := selectByTournament(evaluations, 0, 1, src)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, src.consumed())
}
