package genetic

// selectByTournament fills each of min(count, len-1) ranks by drawing up to
// poolSize distinct candidates from the still-unselected indices and swapping
// the highest-fitness candidate into place. Larger pools raise selection
// pressure toward high fitness.
func selectByTournament(evaluations []Evaluation, count, poolSize int, src Source) ([]int, error) {
	n := len(evaluations)
	if count > n {
		return nil, &OutOfRangeError{Requested: count, Available: n}
	}
	if count == 0 {
		return []int{}, nil
	}
	if poolSize < 1 {
		poolSize = 1
	}

	indices := identityIndices(n)
	rounds := min(count, n-1)
	for i := 0; i < rounds; i++ {
		// Candidate positions into indices[i:], shrunk as the pool is drawn
		// so candidates are distinct.
		candidates := make([]int, n-i)
		for k := range candidates {
			candidates[k] = i + k
		}
		winner := -1
		draws := min(poolSize, len(candidates))
		for d := 0; d < draws; d++ {
			c := src.PickIndex(0, len(candidates))
			pos := candidates[c]
			candidates[c] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]
			if winner < 0 || evaluations[indices[pos]].Fitness > evaluations[indices[winner]].Fitness {
				winner = pos
			}
		}
		indices[i], indices[winner] = indices[winner], indices[i]
	}
	return indices[:count], nil
}
