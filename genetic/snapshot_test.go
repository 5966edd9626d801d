package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenomeClone_Independent(t *testing.T) {
	genome := Genome{1, 2, 3}
	clone := genome.Clone()
	clone[0] = 9

	assert.Equal(t, Genome{1, 2, 3}, genome)
	assert.Equal(t, Genome{9, 2, 3}, clone)
}

func TestSnapshotClone_DeepCopiesEvaluations(t *testing.T) {
	snapshot := Snapshot{
		Generation: 3,
		Evaluations: []Evaluation{
			{Genome: Genome{1}, Fitness: 0.5},
		},
	}

	clone := snapshot.Clone()
	clone.Evaluations[0].Genome[0] = 9
	clone.Evaluations[0].Fitness = 1.0

	assert.Equal(t, Genome{1}, snapshot.Evaluations[0].Genome)
	assert.Equal(t, 0.5, snapshot.Evaluations[0].Fitness)
	assert.Equal(t, uint64(3), clone.Generation)
}

func TestToEvaluations_ZeroesFitness(t *testing.T) {
	genomes := []Genome{{1}, {2}}

	evaluations := toEvaluations(genomes)
	assert.Len(t, evaluations, 2)
	for i, e := range evaluations {
		assert.Equal(t, genomes[i], e.Genome)
		assert.Zero(t, e.Fitness)
	}
}
