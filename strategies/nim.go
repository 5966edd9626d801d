package strategies

import (
	"fmt"

	"github.com/evosim/evosim/genetic"
)

const (
	maxStickChoice = 3
	minStickChoice = 1
	modChoice      = maxStickChoice + minStickChoice
)

// NimStrategy evolves a move table for the misere Nim variant where players
// remove 1 to 3 sticks and whoever takes the last stick loses. Genome byte i
// is the number of sticks to take when stickCount-i sticks remain; fitness is
// the negated distance from the known optimal table, so a perfect genome
// scores 0 and every deviation scores below it.
type NimStrategy struct {
	bestChoices []byte
}

// NewNimStrategy derives the optimal move table for the given initial stick
// count. Counts of one or fewer have no move to learn and are rejected.
func NewNimStrategy(stickCount uint8) (*NimStrategy, error) {
	if stickCount <= minStickChoice {
		return nil, fmt.Errorf("invalid initial stick count: %d; it must be greater than %d",
			stickCount, minStickChoice)
	}
	return &NimStrategy{bestChoices: bestChoices(stickCount)}, nil
}

func (s *NimStrategy) GenomeSize() int {
	return len(s.bestChoices)
}

func (s *NimStrategy) Evaluate(genome genetic.Genome) float64 {
	distance := 0.0
	for i, best := range s.bestChoices {
		if i >= len(genome) {
			break
		}
		d := int(best) - int(genome[i])
		if d < 0 {
			d = -d
		}
		distance += float64(d)
	}
	return -distance
}

// bestChoices lists the optimal take for every remaining stick count from
// stickCount down to 2.
func bestChoices(stickCount uint8) []byte {
	choices := make([]byte, 0, stickCount-minStickChoice)
	for remaining := stickCount; remaining > minStickChoice; remaining-- {
		choices = append(choices, bestChoice(remaining))
	}
	return choices
}

// bestChoice leaves the opponent on a losing count (congruent to 1 mod 4).
// From a losing count there is no winning move; taking the minimum stalls.
func bestChoice(remaining uint8) byte {
	if remaining%modChoice == minStickChoice {
		return minStickChoice
	}
	return (remaining - minStickChoice) % modChoice
}
