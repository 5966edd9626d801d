// Package gateway provides engine observers that forward per-generation
// fitness statistics to monitoring backends.
package gateway

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/evosim/evosim/genetic"
)

// FitnessSummary aggregates the fitness distribution of one evaluated
// generation.
type FitnessSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes the fitness summary of a snapshot. The second return is
// false for an empty population.
func Summarize(snapshot genetic.Snapshot) (FitnessSummary, bool) {
	if len(snapshot.Evaluations) == 0 {
		return FitnessSummary{}, false
	}
	fitnesses := make([]float64, len(snapshot.Evaluations))
	for i, e := range snapshot.Evaluations {
		fitnesses[i] = e.Fitness
	}
	summary := FitnessSummary{
		Min:  floats.Min(fitnesses),
		Max:  floats.Max(fitnesses),
		Mean: stat.Mean(fitnesses, nil),
	}
	if len(fitnesses) > 1 {
		summary.StdDev = stat.StdDev(fitnesses, nil)
	}
	return summary, true
}
