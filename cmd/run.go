package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evosim/evosim/gateway"
	"github.com/evosim/evosim/genetic"
	"github.com/evosim/evosim/strategies"
)

var runFlags struct {
	target                string
	populationSize        int
	crossoverRatio        float64
	crossoverMutationRate float64
	selectionKind         string
	maxRank               int
	poolSize              int
	seed                  int64
	maxGenerations        uint64
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evolve a population toward a target byte sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy, err := strategies.NewTargetStrategy([]byte(runFlags.target))
		if err != nil {
			return err
		}

		selection, err := parseSelection(runFlags.selectionKind, runFlags.maxRank, runFlags.poolSize)
		if err != nil {
			return err
		}

		mutationRate := runFlags.crossoverMutationRate
		cfg := &genetic.EvolutionConfig{
			PopulationSize: runFlags.populationSize,
			GenerationRenewal: &genetic.GenerationRenewalConfig{
				Crossover: &genetic.GeneticRenewalParam{
					MutationRate: &mutationRate,
					Ratio:        runFlags.crossoverRatio,
					Selection:    selection,
				},
			},
		}

		seed := runFlags.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		engine := genetic.NewEvolutionEngine()
		engine.RegisterObserver(gateway.NewLogGateway(logrus.StandardLogger()))

		maxGenerations := runFlags.maxGenerations
		threshold := strategy.Threshold()
		isComplete := func(generation uint64, fitnesses []float64) bool {
			if generation >= maxGenerations {
				return true
			}
			for _, fitness := range fitnesses {
				if fitness >= threshold {
					return true
				}
			}
			return false
		}

		final, err := engine.Start(strategy, cfg, isComplete, genetic.NewSource(seed))
		if err != nil {
			return err
		}

		for _, evaluation := range final.Evaluations {
			if evaluation.Fitness >= threshold {
				logrus.WithFields(logrus.Fields{
					"generation": final.Generation,
					"genome":     string(evaluation.Genome),
				}).Info("target matched")
				return nil
			}
		}
		logrus.WithField("generation", final.Generation).Warn("generation cap reached without a match")
		return nil
	},
}

// parseSelection maps CLI flags onto a selection descriptor, validating the
// kind-specific parameters the same way run configuration does.
func parseSelection(kind string, maxRank, poolSize int) (genetic.SelectionType, error) {
	switch genetic.SelectionKind(kind) {
	case genetic.SelectionChance, genetic.SelectionWeight:
		return genetic.SelectionType{Kind: genetic.SelectionKind(kind)}, nil
	case genetic.SelectionRank:
		if maxRank < 1 {
			return genetic.SelectionType{}, fmt.Errorf("rank selection requires --max-rank of at least 1, got %d", maxRank)
		}
		return genetic.SelectionType{Kind: genetic.SelectionRank, MaxRank: maxRank}, nil
	case genetic.SelectionTournament:
		if poolSize < 1 {
			return genetic.SelectionType{}, fmt.Errorf("tournament selection requires --pool-size of at least 1, got %d", poolSize)
		}
		return genetic.SelectionType{Kind: genetic.SelectionTournament, PoolSize: poolSize}, nil
	default:
		return genetic.SelectionType{}, fmt.Errorf("unknown selection kind: %q", kind)
	}
}

func init() {
	runCmd.Flags().StringVar(&runFlags.target, "target", "florent", "Target byte sequence to evolve toward")
	runCmd.Flags().IntVar(&runFlags.populationSize, "population-size", 128, "Number of individuals per generation")
	runCmd.Flags().Float64Var(&runFlags.crossoverRatio, "crossover-ratio", 0.75, "Fraction of each generation bred by crossover")
	runCmd.Flags().Float64Var(&runFlags.crossoverMutationRate, "mutation-rate", genetic.DefaultMutationRate, "Per-byte mutation probability for offspring")
	runCmd.Flags().StringVar(&runFlags.selectionKind, "selection", string(genetic.SelectionWeight), "Selection algorithm (chance, rank, tournament, weight)")
	runCmd.Flags().IntVar(&runFlags.maxRank, "max-rank", 0, "Rank cutoff for rank selection")
	runCmd.Flags().IntVar(&runFlags.poolSize, "pool-size", 0, "Candidate pool size for tournament selection")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 0, "Randomness seed (0 seeds from the clock)")
	runCmd.Flags().Uint64Var(&runFlags.maxGenerations, "max-generations", 100000, "Generation cap before giving up")
	rootCmd.AddCommand(runCmd)
}
