package genetic

// EventType identifies a lifecycle event fired by the engine.
type EventType int

const (
	// EventGenerationCreated fires at the top of each generation, before the
	// evaluation fan-out.
	EventGenerationCreated EventType = iota
	// EventEvaluated fires once every evaluation of the generation has
	// reported its fitness.
	EventEvaluated
	// EventStatusChanged fires after each successful status transition and
	// carries the new status.
	EventStatusChanged
)

func (t EventType) String() string {
	switch t {
	case EventGenerationCreated:
		return "generation_created"
	case EventEvaluated:
		return "evaluated"
	case EventStatusChanged:
		return "status_changed"
	default:
		return "unknown"
	}
}

// Event is one lifecycle notification. Status is meaningful only for
// EventStatusChanged.
type Event struct {
	Type   EventType
	Status EvolutionStatus
}

// Observer receives engine lifecycle events. Updates are delivered
// synchronously, in registration order, on the engine's own goroutine: a slow
// observer blocks the generation loop, and an observer must not call back
// into the engine's control surface. An observer that can fail must recover
// its own errors; failures are not modeled by the engine.
type Observer interface {
	Update(engine *EvolutionEngine, event Event)
}
