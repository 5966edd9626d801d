// Package strategies bundles concrete fitness strategies for the evolution
// engine: byte-wise target matching and a misere-Nim move table.
package strategies

import (
	"errors"

	"github.com/evosim/evosim/genetic"
)

// TargetStrategy scores a genome by how many of its bytes match a fixed
// target sequence. A perfect genome reaches a fitness equal to the target
// length, which makes a convenient completion threshold.
type TargetStrategy struct {
	target []byte
}

// NewTargetStrategy builds a strategy for the given non-empty target.
func NewTargetStrategy(target []byte) (*TargetStrategy, error) {
	if len(target) == 0 {
		return nil, errors.New("target must not be empty")
	}
	copied := make([]byte, len(target))
	copy(copied, target)
	return &TargetStrategy{target: copied}, nil
}

func (s *TargetStrategy) GenomeSize() int {
	return len(s.target)
}

func (s *TargetStrategy) Evaluate(genome genetic.Genome) float64 {
	matches := 0
	for i, b := range genome {
		if i < len(s.target) && b == s.target[i] {
			matches++
		}
	}
	return float64(matches)
}

// Threshold is the fitness of a genome matching the full target.
func (s *TargetStrategy) Threshold() float64 {
	return float64(len(s.target))
}
