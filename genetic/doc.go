// Package genetic implements a generic evolutionary-computation engine.
//
// A caller supplies a fitness Strategy, an EvolutionConfig and a completion
// predicate; the engine drives a population of byte-sequence genomes through
// repeated generations of concurrent evaluation, selection and renewal until
// the predicate holds, the run is halted, or an error surfaces. Observers can
// be registered to receive lifecycle events, and a concurrency-safe
// Halt/Snapshot control surface is exposed to parties outside the loop.
package genetic
