package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/evosim/evosim/gateway"
	"github.com/evosim/evosim/genetic"
	"github.com/evosim/evosim/strategies"
)

// Server hosts the evolution engine behind a gin router. Runs execute
// synchronously inside the request handler; metrics of all runs are exposed
// on a shared prometheus registry.
type Server struct {
	cfg     Config
	logger  logrus.FieldLogger
	metrics *gateway.PrometheusGateway
	router  *gin.Engine
}

// NewServer wires the router, the metrics registry and the handlers.
func NewServer(cfg Config, logger logrus.FieldLogger) (*Server, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	registry := prometheus.NewRegistry()
	metrics, err := gateway.NewPrometheusGateway(registry)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, logger: logger, metrics: metrics}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.POST("/v1/run", s.handleRun)
	s.router = router

	return s, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	s.logger.WithField("addr", s.cfg.Addr()).Info("starting evolution api")
	return s.router.Run(s.cfg.Addr())
}

// runRequest maps the JSON request body onto an EvolutionConfig. Absent
// fields fall back to the server defaults.
type runRequest struct {
	Target                string                 `json:"target"`
	PopulationSize        *int                   `json:"population_size"`
	CrossoverRatio        *float64               `json:"crossover_ratio"`
	CrossoverMutationRate *float64               `json:"crossover_mutation_rate"`
	CrossoverSelection    *genetic.SelectionType `json:"crossover_selection"`
	MaxGenerations        *uint64                `json:"max_generations"`
	Seed                  *int64                 `json:"seed"`
}

type runMatch struct {
	Index  int    `json:"index"`
	Genome string `json:"genome"`
}

type runResponse struct {
	RunID      string     `json:"run_id"`
	Generation uint64     `json:"generation"`
	Matched    bool       `json:"matched"`
	Matches    []runMatch `json:"matches"`
}

func (s *Server) handleRun(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := req.Target
	if target == "" {
		target = s.cfg.DefaultTarget
	}
	populationSize := s.cfg.DefaultPopulationSize
	if req.PopulationSize != nil {
		populationSize = *req.PopulationSize
	}
	ratio := 1.0
	if req.CrossoverRatio != nil {
		ratio = *req.CrossoverRatio
	}
	selection := genetic.SelectionType{Kind: genetic.SelectionWeight}
	if req.CrossoverSelection != nil {
		selection = *req.CrossoverSelection
	}
	maxGenerations := s.cfg.MaxGenerations
	if req.MaxGenerations != nil {
		maxGenerations = *req.MaxGenerations
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	runID := uuid.NewString()
	logger := s.logger.WithField("run_id", runID)

	strategy, err := strategies.NewTargetStrategy([]byte(target))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := &genetic.EvolutionConfig{
		PopulationSize: populationSize,
		GenerationRenewal: &genetic.GenerationRenewalConfig{
			Crossover: &genetic.GeneticRenewalParam{
				MutationRate: req.CrossoverMutationRate,
				Ratio:        ratio,
				Selection:    selection,
			},
		},
	}

	threshold := strategy.Threshold()
	done := func(generation uint64, fitnesses []float64) bool {
		if generation >= maxGenerations {
			return true
		}
		for _, f := range fitnesses {
			if f >= threshold {
				return true
			}
		}
		return false
	}

	engine := genetic.NewEvolutionEngine()
	engine.RegisterObserver(s.metrics)

	logger.WithFields(logrus.Fields{
		"target":          target,
		"population_size": populationSize,
	}).Info("starting evolution run")

	snapshot, err := engine.Start(strategy, cfg, done, genetic.NewSource(seed))
	if err != nil {
		var invalidSettings *genetic.InvalidSettingsError
		if errors.As(err, &invalidSettings) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.WithError(err).Error("evolution run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches := []runMatch{}
	for i, e := range snapshot.Evaluations {
		if e.Fitness >= threshold {
			matches = append(matches, runMatch{Index: i, Genome: string(e.Genome)})
		}
	}
	logger.WithFields(logrus.Fields{
		"generation": snapshot.Generation,
		"matches":    len(matches),
	}).Info("evolution run finished")

	c.JSON(http.StatusOK, runResponse{
		RunID:      runID,
		Generation: snapshot.Generation,
		Matched:    len(matches) > 0,
		Matches:    matches,
	})
}
