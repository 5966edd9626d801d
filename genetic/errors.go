package genetic

import "fmt"

// OutOfRangeError reports a selection request that exceeds the number of
// available evaluations.
type OutOfRangeError struct {
	Requested int
	Available int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("unable to select %d genome(s) whereas only %d is(are) available",
		e.Requested, e.Available)
}

// OutOfRankError reports a by-rank selection request that exceeds the
// configured maximum rank. Distinct from OutOfRangeError.
type OutOfRankError struct {
	Requested int
	MaxRank   int
}

func (e *OutOfRankError) Error() string {
	return fmt.Sprintf("unable to select by rank %d genome(s) whereas the max rank is %d",
		e.Requested, e.MaxRank)
}

// InvalidWeightsError reports a degenerate weight distribution passed to the
// by-weight selection (NaN, negative or zero-sum weights).
type InvalidWeightsError struct {
	Reason string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("unable to select by weight: %s", e.Reason)
}

// InvalidSettingsError reports an EvolutionConfig that failed validation.
// Raised before any state mutation; the caller can retry with a corrected
// configuration.
type InvalidSettingsError struct {
	Reason string
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid evolution settings: %s", e.Reason)
}

// InvalidStatusError reports a Start or Resume attempt on an engine that has
// already left the New status. An engine is single-use; continue a halted run
// through a fresh instance.
type InvalidStatusError struct {
	Status EvolutionStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid evolution status: expected %s, got %s", StatusNew, e.Status)
}
