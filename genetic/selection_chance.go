package genetic

// selectByChance samples count distinct indices uniformly without
// replacement, as a partial Fisher-Yates shuffle. Rank i is swapped with a
// uniformly chosen position in [i, len), so the rng is touched exactly
// min(count, len-1) times.
func selectByChance(evaluations []Evaluation, count int, src Source) ([]int, error) {
	n := len(evaluations)
	if count > n {
		return nil, &OutOfRangeError{Requested: count, Available: n}
	}
	if count == 0 {
		return []int{}, nil
	}

	indices := identityIndices(n)
	swaps := min(count, n-1)
	for i := 0; i < swaps; i++ {
		j := src.PickIndex(i, n)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:count], nil
}
