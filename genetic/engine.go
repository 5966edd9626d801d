package genetic

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EvolutionEngine owns the population snapshot and run status and drives the
// generation loop: evaluate, notify, check completion, renew, repeat. The
// loop runs on the caller's goroutine; Halt and Snapshot may be called from
// any other goroutine. An engine is single-use: once it has left the New
// status it cannot be started again, but a halted run can be continued in a
// fresh instance via Resume.
type EvolutionEngine struct {
	status statusCell

	mu         sync.Mutex // guards population and observers
	population Snapshot
	observers  []Observer
}

// NewEvolutionEngine returns an engine in the New status with an empty
// snapshot.
func NewEvolutionEngine() *EvolutionEngine {
	return &EvolutionEngine{}
}

// RegisterObserver adds an observer to the notification list. The same
// handle may not be registered twice meaningfully; unregistration compares
// handle identity, not value.
func (e *EvolutionEngine) RegisterObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// UnregisterObserver removes the observer with the same handle identity.
func (e *EvolutionEngine) UnregisterObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, registered := range e.observers {
		if registered == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// Status returns the current run status.
func (e *EvolutionEngine) Status() EvolutionStatus {
	return e.status.get()
}

// Snapshot returns an independent copy of the current population state. It
// is valid at any time and defaults to an empty snapshot before the first
// Start.
func (e *EvolutionEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.population.Clone()
}

// Halt requests cooperative cancellation of a running loop. It returns true
// and fires a status event only when the engine was Running; the request is
// honored at the top of the next generation iteration, never inside an
// in-flight evaluation batch.
func (e *EvolutionEngine) Halt() bool {
	return e.transition(StatusHalting, func(s EvolutionStatus) bool { return s == StatusRunning })
}

// Start validates the configuration, seeds a random initial population and
// runs the generation loop until the completion predicate holds, a halt
// request is observed, or an error surfaces. The returned snapshot is the
// final population state.
func (e *EvolutionEngine) Start(strategy Strategy, cfg *EvolutionConfig, isComplete CompletionPredicate, src Source) (Snapshot, error) {
	return e.run(strategy, cfg, isComplete, src, nil)
}

// Resume behaves like Start but seeds the loop with a caller-supplied
// snapshot instead of a random population, so a halted run can continue in a
// fresh engine instance.
func (e *EvolutionEngine) Resume(strategy Strategy, cfg *EvolutionConfig, isComplete CompletionPredicate, src Source, snapshot Snapshot) (Snapshot, error) {
	return e.run(strategy, cfg, isComplete, src, &snapshot)
}

func (e *EvolutionEngine) run(strategy Strategy, cfg *EvolutionConfig, isComplete CompletionPredicate, src Source, resumeFrom *Snapshot) (Snapshot, error) {
	// Validation runs before any status transition or population seeding.
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, err
	}
	if strategy.GenomeSize() < 1 {
		return Snapshot{}, &InvalidSettingsError{Reason: "strategy genome size must be at least 1"}
	}

	if !e.transition(StatusInitializing, func(s EvolutionStatus) bool { return s == StatusNew }) {
		return Snapshot{}, &InvalidStatusError{Status: e.status.get()}
	}

	seed := Snapshot{}
	if resumeFrom != nil {
		seed = resumeFrom.Clone()
	} else {
		genomes := make([]Genome, cfg.PopulationSize)
		for i := range genomes {
			genomes[i] = randomGenome(strategy.GenomeSize(), src)
		}
		seed.Evaluations = toEvaluations(genomes)
	}
	e.mu.Lock()
	e.population = seed
	e.mu.Unlock()

	e.transition(StatusRunning, func(s EvolutionStatus) bool { return s == StatusInitializing })

	pools := ResolvePools(cfg.GenerationRenewal, cfg.PopulationSize)
	logrus.Debugf("evolution started: population=%d clones=%d offspring=%d random=%d",
		cfg.PopulationSize, pools.Cloning.Count, pools.Crossover.Count, pools.RandomCount)

	for {
		// A pending halt is only observed here, at the loop boundary. This
		// runs even before generation 0 has evaluated anything.
		if e.transition(StatusHalted, func(s EvolutionStatus) bool { return s == StatusHalting }) {
			logrus.Debug("evolution halted")
			return e.Snapshot(), nil
		}

		e.notify(Event{Type: EventGenerationCreated})

		fitnesses, err := e.evaluateAll(strategy)
		if err != nil {
			return Snapshot{}, err
		}

		e.mu.Lock()
		for i := range e.population.Evaluations {
			e.population.Evaluations[i].Fitness = fitnesses[i]
		}
		generation := e.population.Generation
		e.mu.Unlock()

		e.notify(Event{Type: EventEvaluated})

		if isComplete(generation, fitnesses) {
			e.transition(StatusCompleted, nil)
			logrus.Debugf("evolution completed at generation %d", generation)
			return e.Snapshot(), nil
		}

		next, err := e.renew(strategy, pools, src)
		if err != nil {
			return Snapshot{}, err
		}
		e.mu.Lock()
		e.population.Evaluations = next
		e.population.Generation++
		e.mu.Unlock()
	}
}

// evaluateAll fans one evaluation unit per genome out onto goroutines and
// suspends at the barrier until every unit has reported. Fitness values are
// written back in original population order by the caller. A panicking
// strategy surfaces as an error instead of tearing the process down.
func (e *EvolutionEngine) evaluateAll(strategy Strategy) ([]float64, error) {
	e.mu.Lock()
	evaluations := e.population.Evaluations
	e.mu.Unlock()

	fitnesses := make([]float64, len(evaluations))
	var group errgroup.Group
	for i := range evaluations {
		i := i
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("strategy evaluation panicked: %v", r)
				}
			}()
			fitnesses[i] = strategy.Evaluate(evaluations[i].Genome)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return fitnesses, nil
}

// renew builds the next generation from the evaluated current one: clones,
// then offspring, then random fill, concatenated in that fixed order.
func (e *EvolutionEngine) renew(strategy Strategy, pools RenewalPools, src Source) ([]Evaluation, error) {
	e.mu.Lock()
	current := e.population.Evaluations
	e.mu.Unlock()

	genomes := make([]Genome, 0, pools.Cloning.Count+pools.Crossover.Count+pools.RandomCount)

	if pools.Cloning.Count > 0 {
		selected, err := Select(current, pools.Cloning.Count, pools.Cloning.Selection, src)
		if err != nil {
			return nil, err
		}
		for _, idx := range selected {
			clone := current[idx].Genome.Clone()
			mutateGenome(clone, pools.Cloning.MutationRate, src)
			genomes = append(genomes, clone)
		}
	}

	if pools.Crossover.Count > 0 {
		couples, err := SelectCouples(current, pools.Crossover.Count, pools.Crossover.Selection, src)
		if err != nil {
			return nil, err
		}
		for _, couple := range couples {
			child := crossoverGenomes(current[couple.First].Genome, current[couple.Second].Genome, src)
			mutateGenome(child, pools.Crossover.MutationRate, src)
			genomes = append(genomes, child)
		}
	}

	for i := 0; i < pools.RandomCount; i++ {
		genomes = append(genomes, randomGenome(strategy.GenomeSize(), src))
	}

	return toEvaluations(genomes), nil
}

// transition applies the guarded status transition and fires the
// StatusChanged event outside the status lock.
func (e *EvolutionEngine) transition(target EvolutionStatus, precondition func(EvolutionStatus) bool) bool {
	if !e.status.transition(target, precondition) {
		return false
	}
	e.notify(Event{Type: EventStatusChanged, Status: target})
	return true
}

// notify delivers the event to every observer synchronously, in registration
// order. The observer list is copied so listeners never run under the
// engine's lock.
func (e *EvolutionEngine) notify(event Event) {
	e.mu.Lock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.Unlock()
	for _, observer := range observers {
		observer.Update(e, event)
	}
}

// crossoverGenomes applies single-point crossover: a prefix of the first
// parent up to a random cut point, then the suffix of the second.
func crossoverGenomes(first, second Genome, src Source) Genome {
	cut := src.PickIndex(0, len(first))
	child := make(Genome, 0, len(first))
	child = append(child, first[:cut]...)
	return append(child, second[cut:]...)
}

// mutateGenome replaces each byte independently with a fresh random byte
// when a uniform draw falls below the mutation rate.
func mutateGenome(genome Genome, rate float64, src Source) {
	for i := range genome {
		if src.Float64() < rate {
			genome[i] = src.Byte()
		}
	}
}

func randomGenome(size int, src Source) Genome {
	genome := make(Genome, size)
	for i := range genome {
		genome[i] = src.Byte()
	}
	return genome
}
