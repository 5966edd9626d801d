package genetic

import "sort"

// selectByRank returns the count top-fitness indices in descending fitness
// order, ties kept in population order. Requests above maxRank fail with an
// OutOfRankError, checked before the shared out-of-range precondition.
func selectByRank(evaluations []Evaluation, count, maxRank int) ([]int, error) {
	if count > maxRank {
		return nil, &OutOfRankError{Requested: count, MaxRank: maxRank}
	}
	n := len(evaluations)
	if count > n {
		return nil, &OutOfRangeError{Requested: count, Available: n}
	}
	if count == 0 {
		return []int{}, nil
	}

	indices := identityIndices(n)
	sort.SliceStable(indices, func(a, b int) bool {
		return evaluations[indices[a]].Fitness > evaluations[indices[b]].Fitness
	})
	return indices[:count], nil
}
