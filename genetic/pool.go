package genetic

// DefaultMutationRate applies to a renewal sub-pool whose configuration
// leaves the mutation rate unset.
const DefaultMutationRate = 0.01

// GeneticPool is the resolved execution parameters of one renewal sub-pool:
// how many individuals it contributes, how aggressively they mutate, and the
// selection algorithm that picks their parents. Derived per generation size,
// never persisted.
type GeneticPool struct {
	Count        int
	MutationRate float64
	Selection    SelectionType
}

// RenewalPools partitions one new generation into cloned, crossed-over and
// randomly seeded individuals.
type RenewalPools struct {
	Cloning     GeneticPool
	Crossover   GeneticPool
	RandomCount int
}

// ResolvePools turns a renewal configuration into concrete per-pool counts
// for the given population size. Each pool count is the truncated product
// ratio x size; whatever the pools leave uncovered is refilled with random
// genomes. A nil config yields pure-random replacement each generation.
func ResolvePools(cfg *GenerationRenewalConfig, populationSize int) RenewalPools {
	pools := RenewalPools{}
	if cfg != nil {
		pools.Cloning = poolFromParam(cfg.Cloning, populationSize)
		pools.Crossover = poolFromParam(cfg.Crossover, populationSize)
	}
	pools.RandomCount = populationSize - pools.Cloning.Count - pools.Crossover.Count
	return pools
}

func poolFromParam(param *GeneticRenewalParam, total int) GeneticPool {
	if param == nil {
		return GeneticPool{}
	}
	rate := DefaultMutationRate
	if param.MutationRate != nil {
		rate = *param.MutationRate
	}
	return GeneticPool{
		Count:        int(param.Ratio * float64(total)),
		MutationRate: rate,
		Selection:    param.Selection,
	}
}
