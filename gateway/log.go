package gateway

import (
	"github.com/sirupsen/logrus"

	"github.com/evosim/evosim/genetic"
)

// LogGateway logs engine lifecycle events and per-generation fitness
// summaries through logrus.
type LogGateway struct {
	logger logrus.FieldLogger
}

// NewLogGateway builds a gateway on the given logger, falling back to the
// logrus standard logger when nil.
func NewLogGateway(logger logrus.FieldLogger) *LogGateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogGateway{logger: logger}
}

func (g *LogGateway) Update(engine *genetic.EvolutionEngine, event genetic.Event) {
	switch event.Type {
	case genetic.EventStatusChanged:
		g.logger.WithField("status", event.Status.String()).Info("evolution status changed")
	case genetic.EventEvaluated:
		snapshot := engine.Snapshot()
		summary, ok := Summarize(snapshot)
		if !ok {
			return
		}
		g.logger.WithFields(logrus.Fields{
			"generation":  snapshot.Generation,
			"fitness_min": summary.Min,
			"fitness_max": summary.Max,
			"fitness_avg": summary.Mean,
			"fitness_std": summary.StdDev,
		}).Info("generation evaluated")
	}
}
