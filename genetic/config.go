package genetic

import "fmt"

// GeneticRenewalParam configures one renewal sub-pool (cloning or crossover).
// MutationRate is optional; DefaultMutationRate applies when nil.
type GeneticRenewalParam struct {
	MutationRate *float64      `json:"mutation_rate,omitempty" yaml:"mutation_rate,omitempty"`
	Ratio        float64       `json:"ratio" yaml:"ratio"`
	Selection    SelectionType `json:"selection" yaml:"selection"`
}

// GenerationRenewalConfig holds the independent cloning and crossover
// parameters for building each new generation. A nil sub-pool contributes
// nothing; the remainder of the population is refilled with random genomes.
type GenerationRenewalConfig struct {
	Cloning   *GeneticRenewalParam `json:"cloning,omitempty" yaml:"cloning,omitempty"`
	Crossover *GeneticRenewalParam `json:"crossover,omitempty" yaml:"crossover,omitempty"`
}

// EvolutionConfig is the caller-facing run configuration.
type EvolutionConfig struct {
	PopulationSize    int                      `json:"population_size" yaml:"population_size"`
	GenerationRenewal *GenerationRenewalConfig `json:"generation_renewal,omitempty" yaml:"generation_renewal,omitempty"`
}

// Validate checks the configuration before any state transition or population
// seeding. All failures are InvalidSettingsError.
func (c *EvolutionConfig) Validate() error {
	if c.PopulationSize < 1 {
		return &InvalidSettingsError{Reason: fmt.Sprintf("population size must be at least 1, got %d", c.PopulationSize)}
	}
	if c.GenerationRenewal == nil {
		return nil
	}

	ratioSum := 0.0
	bothPresent := c.GenerationRenewal.Cloning != nil && c.GenerationRenewal.Crossover != nil
	for name, param := range map[string]*GeneticRenewalParam{
		"cloning":   c.GenerationRenewal.Cloning,
		"crossover": c.GenerationRenewal.Crossover,
	} {
		if param == nil {
			continue
		}
		if err := param.validate(name); err != nil {
			return err
		}
		ratioSum += param.Ratio
	}
	// The remainder above the two ratios seeds random individuals, so the
	// sum must leave room when both pools are configured.
	if bothPresent && ratioSum >= 1.0 {
		return &InvalidSettingsError{Reason: fmt.Sprintf("cloning and crossover ratios must sum below 1.0, got %v", ratioSum)}
	}
	return nil
}

func (p *GeneticRenewalParam) validate(name string) error {
	if p.Ratio < 0 || p.Ratio > 1 {
		return &InvalidSettingsError{Reason: fmt.Sprintf("%s ratio must be within [0, 1], got %v", name, p.Ratio)}
	}
	if p.MutationRate != nil && (*p.MutationRate < 0 || *p.MutationRate > 1) {
		return &InvalidSettingsError{Reason: fmt.Sprintf("%s mutation rate must be within [0, 1], got %v", name, *p.MutationRate)}
	}
	switch p.Selection.Kind {
	case SelectionChance, SelectionWeight:
	case SelectionRank:
		if p.Selection.MaxRank < 1 {
			return &InvalidSettingsError{Reason: fmt.Sprintf("%s max rank must be at least 1, got %d", name, p.Selection.MaxRank)}
		}
	case SelectionTournament:
		if p.Selection.PoolSize < 1 {
			return &InvalidSettingsError{Reason: fmt.Sprintf("%s pool size must be at least 1, got %d", name, p.Selection.PoolSize)}
		}
	default:
		return &InvalidSettingsError{Reason: fmt.Sprintf("%s selection kind is unknown: %q", name, p.Selection.Kind)}
	}
	return nil
}
