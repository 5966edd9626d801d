package genetic

import (
	"math"
	"math/rand"
)

// Source is the narrow randomness capability the engine and the selection
// algorithms draw from. No algorithm in this package touches randomness
// except through a Source, which keeps selection outcomes reproducible under
// a fixed seed and lets tests script the exact draw sequence.
type Source interface {
	// PickIndex returns a uniformly distributed index in [low, high).
	PickIndex(low, high int) int
	// SampleWeighted draws one index from the discrete distribution described
	// by weights. Weights must be non-negative with a positive finite sum.
	SampleWeighted(weights []float64) (int, error)
	// Float64 returns a uniform draw in [0, 1). Used for mutation-rate checks.
	Float64() float64
	// Byte returns one fresh uniformly random byte. Used for mutation and
	// random genome seeding.
	Byte() byte
}

// randSource adapts math/rand to the Source port.
type randSource struct {
	rng *rand.Rand
}

// NewSource returns a deterministic Source seeded with the given value. Two
// sources with the same seed produce identical draw sequences.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) PickIndex(low, high int) int {
	return low + s.rng.Intn(high-low)
}

func (s *randSource) SampleWeighted(weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if math.IsNaN(w) || w < 0 {
			return 0, &InvalidWeightsError{Reason: "weights must be non-negative numbers"}
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 1) {
		return 0, &InvalidWeightsError{Reason: "weight sum must be positive and finite"}
	}

	// Inverse-CDF walk over the cumulative weights.
	target := s.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

func (s *randSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *randSource) Byte() byte {
	return byte(s.rng.Intn(256))
}
