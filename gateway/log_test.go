package gateway

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evosim/evosim/genetic"
)

func TestLogGateway_LogsStatusAndSummaries(t *testing.T) {
	logger, hook := test.NewNullLogger()
	gw := NewLogGateway(logger)

	engine := genetic.NewEvolutionEngine()
	engine.RegisterObserver(gw)

	strategy := &byteSumStrategy{}
	done := func(uint64, []float64) bool { return true }
	_, err := engine.Start(strategy, &genetic.EvolutionConfig{PopulationSize: 4}, done, genetic.NewSource(3))
	require.NoError(t, err)

	var statusEntries, summaryEntries []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		switch entry.Message {
		case "evolution status changed":
			statusEntries = append(statusEntries, entry)
		case "generation evaluated":
			summaryEntries = append(summaryEntries, entry)
		}
	}

	// Initializing, Running, Completed.
	require.Len(t, statusEntries, 3)
	assert.Equal(t, genetic.StatusCompleted.String(), statusEntries[2].Data["status"])

	require.Len(t, summaryEntries, 1)
	assert.Equal(t, uint64(0), summaryEntries[0].Data["generation"])
	assert.Contains(t, summaryEntries[0].Data, "fitness_max")
}

func TestNewLogGateway_NilLoggerFallsBack(t *testing.T) {
	assert.NotNil(t, NewLogGateway(nil))
}
