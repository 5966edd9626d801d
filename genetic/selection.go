package genetic

import "fmt"

// SelectionKind names one of the four selection algorithms.
type SelectionKind string

const (
	// SelectionChance selects uniformly at random without replacement.
	SelectionChance SelectionKind = "chance"
	// SelectionRank selects the top individuals by descending fitness.
	SelectionRank SelectionKind = "rank"
	// SelectionTournament selects winners of fixed-size fitness tournaments.
	SelectionTournament SelectionKind = "tournament"
	// SelectionWeight selects fitness-proportionately without replacement.
	SelectionWeight SelectionKind = "weight"
)

// SelectionType is a selection algorithm together with its parameters.
// MaxRank applies to SelectionRank only, PoolSize to SelectionTournament only.
type SelectionType struct {
	Kind     SelectionKind `json:"kind" yaml:"kind"`
	MaxRank  int           `json:"max_rank,omitempty" yaml:"max_rank,omitempty"`
	PoolSize int           `json:"pool_size,omitempty" yaml:"pool_size,omitempty"`
}

// Couple pairs the population indices of two parents.
type Couple struct {
	First  int
	Second int
}

// Select returns count distinct indices into evaluations chosen by the given
// selection type. count == 0 succeeds with an empty result without consuming
// randomness; count > len(evaluations) fails with an OutOfRangeError.
func Select(evaluations []Evaluation, count int, selection SelectionType, src Source) ([]int, error) {
	switch selection.Kind {
	case SelectionChance:
		return selectByChance(evaluations, count, src)
	case SelectionRank:
		return selectByRank(evaluations, count, selection.MaxRank)
	case SelectionTournament:
		return selectByTournament(evaluations, count, selection.PoolSize, src)
	case SelectionWeight:
		return selectByWeight(evaluations, count, src)
	default:
		return nil, fmt.Errorf("unknown selection kind: %q", selection.Kind)
	}
}

// SelectCouples selects count parent pairs by repeating two-element
// selections, one per couple, with the given selection type.
func SelectCouples(evaluations []Evaluation, count int, selection SelectionType, src Source) ([]Couple, error) {
	couples := make([]Couple, 0, count)
	for i := 0; i < count; i++ {
		pair, err := Select(evaluations, 2, selection, src)
		if err != nil {
			return nil, err
		}
		couples = append(couples, Couple{First: pair[0], Second: pair[1]})
	}
	return couples, nil
}

// identityIndices returns [0, 1, ..., n-1].
func identityIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
