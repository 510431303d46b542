// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// BusKindMemory is the only in-process bus implementation.
const BusKindMemory = "memory"

// Config is the full runtime configuration.
type Config struct {
	// HTTPAddr is the API listen address.
	HTTPAddr string

	// BusKind selects the MESSAGE_BUS implementation.
	BusKind string

	// AnswerTimeout moves waiting conversations to escalated or timed_out.
	AnswerTimeout time.Duration
	// AckTimeout moves answered conversations to abandoned.
	AckTimeout time.Duration

	// SSEHeartbeat is the idle keepalive interval for live streams.
	SSEHeartbeat time.Duration
	// SSEClientBuffer bounds each SSE subscriber's frame buffer.
	SSEClientBuffer int

	// AgentStepBudget caps generate/tool iterations per message.
	AgentStepBudget int
	// AgentHistoryWindow caps messages fed into one generation.
	AgentHistoryWindow int

	// BusQueueSize bounds each agent's inbound queue.
	BusQueueSize int
	// BusMaxRetries bounds enqueue retries before Backpressure surfaces.
	BusMaxRetries int

	// TemplateDir is scanned for YAML squad templates at startup.
	TemplateDir string

	// EventTTL is the SSE outbox retention window.
	EventTTL time.Duration
	// CleanupInterval is how often the outbox cleanup runs.
	CleanupInterval time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		BusKind:            getEnv("MESSAGE_BUS", BusKindMemory),
		AnswerTimeout:      time.Duration(getEnvInt("ANSWER_TIMEOUT_SECONDS", 120)) * time.Second,
		AckTimeout:         time.Duration(getEnvInt("ACK_TIMEOUT_SECONDS", 60)) * time.Second,
		SSEHeartbeat:       time.Duration(getEnvInt("SSE_HEARTBEAT_SECONDS", 15)) * time.Second,
		SSEClientBuffer:    getEnvInt("SSE_CLIENT_BUFFER", 64),
		AgentStepBudget:    getEnvInt("AGENT_STEP_BUDGET", 5),
		AgentHistoryWindow: getEnvInt("AGENT_HISTORY_WINDOW", 20),
		BusQueueSize:       getEnvInt("BUS_QUEUE_SIZE", 64),
		BusMaxRetries:      getEnvInt("BUS_MAX_RETRIES", 5),
		TemplateDir:        getEnv("TEMPLATE_DIR", "templates"),
		EventTTL:           time.Duration(getEnvInt("EVENT_TTL_HOURS", 24)) * time.Hour,
		CleanupInterval:    time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the runtime cannot operate with.
func (c *Config) Validate() error {
	if c.BusKind != BusKindMemory {
		return fmt.Errorf("unsupported MESSAGE_BUS %q (only %q is available)", c.BusKind, BusKindMemory)
	}
	if c.AnswerTimeout <= 0 {
		return fmt.Errorf("ANSWER_TIMEOUT_SECONDS must be positive")
	}
	if c.AckTimeout <= 0 {
		return fmt.Errorf("ACK_TIMEOUT_SECONDS must be positive")
	}
	if c.SSEClientBuffer <= 0 {
		return fmt.Errorf("SSE_CLIENT_BUFFER must be positive")
	}
	if c.AgentStepBudget <= 0 {
		return fmt.Errorf("AGENT_STEP_BUDGET must be positive")
	}
	if c.AgentHistoryWindow <= 0 {
		return fmt.Errorf("AGENT_HISTORY_WINDOW must be positive")
	}
	if c.BusQueueSize <= 0 {
		return fmt.Errorf("BUS_QUEUE_SIZE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
