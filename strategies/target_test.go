package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evosim/evosim/genetic"
)

func TestNewTargetStrategy_RejectsEmptyTarget(t *testing.T) {
	_, err := NewTargetStrategy(nil)
	assert.Error(t, err)
}

func TestTargetStrategy_GenomeSizeMatchesTarget(t *testing.T) {
	strategy, err := NewTargetStrategy([]byte("florent"))
	require.NoError(t, err)
	assert.Equal(t, 7, strategy.GenomeSize())
	assert.Equal(t, 7.0, strategy.Threshold())
}

func TestTargetStrategy_EvaluateCountsMatchingBytes(t *testing.T) {
	strategy, err := NewTargetStrategy([]byte("abc"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		genome genetic.Genome
		want   float64
	}{
		{"perfect match", genetic.Genome("abc"), 3},
		{"no match", genetic.Genome("xyz"), 0},
		{"partial match", genetic.Genome("axc"), 2},
		{"match is positional", genetic.Genome("cab"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strategy.Evaluate(tt.genome))
		})
	}
}

func TestTargetStrategy_EndToEndEvolution(t *testing.T) {
	strategy, err := NewTargetStrategy([]byte("go"))
	require.NoError(t, err)

	cfg := &genetic.EvolutionConfig{
		PopulationSize: 64,
		GenerationRenewal: &genetic.GenerationRenewalConfig{
			Crossover: &genetic.GeneticRenewalParam{
				Ratio:     0.75,
				Selection: genetic.SelectionType{Kind: genetic.SelectionWeight},
			},
		},
	}
	const maxGenerations = 5000
	done := func(generation uint64, fitnesses []float64) bool {
		if generation >= maxGenerations {
			return true
		}
		for _, f := range fitnesses {
			if f >= strategy.Threshold() {
				return true
			}
		}
		return false
	}

	engine := genetic.NewEvolutionEngine()
	snapshot, err := engine.Start(strategy, cfg, done, genetic.NewSource(152))
	require.NoError(t, err)
	require.Less(t, snapshot.Generation, uint64(maxGenerations), "evolution should converge before the generation cap")

	best := 0.0
	for _, e := range snapshot.Evaluations {
		if e.Fitness > best {
			best = e.Fitness
		}
	}
	assert.Equal(t, strategy.Threshold(), best)
}
