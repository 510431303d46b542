// Package models contains request/response types shared between the service
// layer and the HTTP API.
package models

import (
	"github.com/squadflow/squadflow/ent"
)

// CreateSquadRequest contains fields for creating an empty squad.
type CreateSquadRequest struct {
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SquadDetail is a squad together with its agent roster.
type SquadDetail struct {
	*ent.Squad
	Agents []*ent.Agent `json:"agents"`
}

// SquadListResponse contains a paginated squad list.
type SquadListResponse struct {
	Squads     []*ent.Squad `json:"squads"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// ApplyTemplateRequest contains fields for instantiating a squad from a template.
type ApplyTemplateRequest struct {
	OwnerID       string                 `json:"owner_id"`
	SquadName     string                 `json:"squad_name"`
	Description   string                 `json:"description,omitempty"`
	Customization *TemplateCustomization `json:"customization,omitempty"`
}

// TemplateCustomization overrides per-role agent settings during apply.
type TemplateCustomization struct {
	Agents []AgentOverride `json:"agents,omitempty"`
}

// AgentOverride replaces template agent fields for a given role.
type AgentOverride struct {
	Role             string         `json:"role"`
	Specialization   string         `json:"specialization,omitempty"`
	GeneratorRef     map[string]any `json:"generator_ref,omitempty"`
	SystemPrompt     string         `json:"system_prompt,omitempty"`
	ToolCapabilities []string       `json:"tool_capabilities,omitempty"`
}
