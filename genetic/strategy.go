package genetic

// Strategy is the pluggable fitness contract the engine calls per genome.
// Evaluate must be safe to call concurrently for distinct genomes, since the
// engine fans the evaluation of a generation out onto goroutines. Fitness is
// an unbounded, comparable scalar; it is not assumed normalized.
//
// Crossover and mutation are owned by the engine, not the strategy, which
// keeps strategies minimal and genome-shape handling uniform.
type Strategy interface {
	GenomeSize() int
	Evaluate(genome Genome) float64
}

// CompletionPredicate decides, from the generation counter and the fitnesses
// of the freshly evaluated population, whether the run is complete.
type CompletionPredicate func(generation uint64, fitnesses []float64) bool
