package gateway

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/evosim/evosim/genetic"
)

// PrometheusGateway publishes engine lifecycle statistics as prometheus
// collectors: generation and evaluation counters plus gauges tracking the
// fitness distribution of the latest evaluated generation.
type PrometheusGateway struct {
	generations prometheus.Counter
	evaluations prometheus.Counter
	bestFitness prometheus.Gauge
	meanFitness prometheus.Gauge
}

// NewPrometheusGateway builds the gateway and registers its collectors.
func NewPrometheusGateway(registerer prometheus.Registerer) (*PrometheusGateway, error) {
	g := &PrometheusGateway{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "evosim_generations_total",
			Help: "Number of generations created across runs.",
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "evosim_evaluations_total",
			Help: "Number of genome evaluations across runs.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "evosim_best_fitness",
			Help: "Best fitness of the latest evaluated generation.",
		}),
		meanFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "evosim_mean_fitness",
			Help: "Mean fitness of the latest evaluated generation.",
		}),
	}
	for _, collector := range []prometheus.Collector{
		g.generations, g.evaluations, g.bestFitness, g.meanFitness,
	} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *PrometheusGateway) Update(engine *genetic.EvolutionEngine, event genetic.Event) {
	switch event.Type {
	case genetic.EventGenerationCreated:
		g.generations.Inc()
	case genetic.EventEvaluated:
		snapshot := engine.Snapshot()
		g.evaluations.Add(float64(len(snapshot.Evaluations)))
		if summary, ok := Summarize(snapshot); ok {
			g.bestFitness.Set(summary.Max)
			g.meanFitness.Set(summary.Mean)
		}
	}
}
