package genetic

// minWeight is the floor added to every fitness so that zero or negative
// fitness individuals retain a nonzero selection probability.
const minWeight = 0.01

// selectByWeight samples count distinct indices fitness-proportionately
// without replacement. At each step the remaining weights form the
// distribution for one draw through the randomness port; the selected index
// is swapped out of the candidate pool.
func selectByWeight(evaluations []Evaluation, count int, src Source) ([]int, error) {
	n := len(evaluations)
	if count > n {
		return nil, &OutOfRangeError{Requested: count, Available: n}
	}
	if count == 0 {
		return []int{}, nil
	}

	indices := identityIndices(n)
	weights := make([]float64, n)
	for pos, idx := range indices {
		weights[pos] = minWeight + evaluations[idx].Fitness
	}

	steps := min(count, n-1)
	for i := 0; i < steps; i++ {
		j, err := src.SampleWeighted(weights[i:])
		if err != nil {
			return nil, err
		}
		j += i
		indices[i], indices[j] = indices[j], indices[i]
		weights[i], weights[j] = weights[j], weights[i]
	}
	return indices[:count], nil
}
