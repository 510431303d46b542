package api

import (
	"github.com/squadflow/squadflow/pkg/database"
)

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks"`
}

// SquadLifecycleResponse is returned by the start/stop squad endpoints.
type SquadLifecycleResponse struct {
	SquadID string `json:"squad_id"`
	Running bool   `json:"running"`
}

// TemplateLoadResponse reports how many templates a directory scan loaded.
type TemplateLoadResponse struct {
	Loaded int `json:"loaded"`
}
