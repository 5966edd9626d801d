package genetic

// Genome is a candidate solution encoded as a fixed-length byte sequence.
// The length is determined once per run by the strategy and is constant
// across the population during that run.
type Genome []byte

// Clone returns an independent copy of the genome.
func (g Genome) Clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// Evaluation pairs a genome with its scalar fitness. Fitness starts at 0 and
// is overwritten on every generation.
type Evaluation struct {
	Genome  Genome
	Fitness float64
}

// Snapshot is the generation counter plus the ordered evaluations of the
// current generation. It is the sole mutable state of a run; the engine owns
// it exclusively while running and hands out independent copies.
type Snapshot struct {
	Generation  uint64
	Evaluations []Evaluation
}

// Clone deep-copies the snapshot so callers cannot observe or mutate the
// live population.
func (s Snapshot) Clone() Snapshot {
	evaluations := make([]Evaluation, len(s.Evaluations))
	for i, e := range s.Evaluations {
		evaluations[i] = Evaluation{Genome: e.Genome.Clone(), Fitness: e.Fitness}
	}
	return Snapshot{Generation: s.Generation, Evaluations: evaluations}
}

// toEvaluations wraps freshly generated genomes with zeroed fitness.
func toEvaluations(genomes []Genome) []Evaluation {
	evaluations := make([]Evaluation, len(genomes))
	for i, g := range genomes {
		evaluations[i] = Evaluation{Genome: g}
	}
	return evaluations
}
