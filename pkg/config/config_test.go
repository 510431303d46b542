package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BusKindMemory, cfg.BusKind)
	assert.Equal(t, 120*time.Second, cfg.AnswerTimeout)
	assert.Equal(t, 60*time.Second, cfg.AckTimeout)
	assert.Equal(t, 15*time.Second, cfg.SSEHeartbeat)
	assert.Equal(t, 64, cfg.SSEClientBuffer)
	assert.Equal(t, 5, cfg.AgentStepBudget)
	assert.Equal(t, 20, cfg.AgentHistoryWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ANSWER_TIMEOUT_SECONDS", "2")
	t.Setenv("SSE_CLIENT_BUFFER", "128")
	t.Setenv("AGENT_STEP_BUDGET", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.AnswerTimeout)
	assert.Equal(t, 128, cfg.SSEClientBuffer)
	assert.Equal(t, 3, cfg.AgentStepBudget)
}

func TestLoad_RejectsUnknownBus(t *testing.T) {
	t.Setenv("MESSAGE_BUS", "kafka")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MESSAGE_BUS")
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("ACK_TIMEOUT_SECONDS", "not-a-number")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.AckTimeout)
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := &Config{
		BusKind:            BusKindMemory,
		AnswerTimeout:      0,
		AckTimeout:         time.Second,
		SSEClientBuffer:    1,
		AgentStepBudget:    1,
		AgentHistoryWindow: 1,
		BusQueueSize:       1,
	}
	assert.Error(t, cfg.Validate())
}
