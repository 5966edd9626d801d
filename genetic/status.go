package genetic

import "sync"

// EvolutionStatus is the run status of an engine. A run progresses
// New -> Initializing -> Running and terminates in either Completed or, via
// Halting, Halted. An engine never returns to New.
type EvolutionStatus int

const (
	StatusNew EvolutionStatus = iota
	StatusInitializing
	StatusRunning
	StatusHalting
	StatusHalted
	StatusCompleted
)

func (s EvolutionStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusInitializing:
		return "initializing"
	case StatusRunning:
		return "running"
	case StatusHalting:
		return "halting"
	case StatusHalted:
		return "halted"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// statusCell is the one piece of run state shared between the loop driver
// and external controllers. Every transition acquires, checks, mutates and
// releases atomically; state-change notifications happen outside the lock.
type statusCell struct {
	mu     sync.Mutex
	status EvolutionStatus
}

// transition applies target if it differs from the current status and the
// optional precondition on the current status holds. Exactly one legal
// transition can be applied at a time.
func (c *statusCell) transition(target EvolutionStatus, precondition func(EvolutionStatus) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == target {
		return false
	}
	if precondition != nil && !precondition(c.status) {
		return false
	}
	c.status = target
	return true
}

func (c *statusCell) get() EvolutionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
