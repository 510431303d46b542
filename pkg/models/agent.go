package models

import (
	entagent "github.com/squadflow/squadflow/ent/agent"
)

// CreateAgentRequest contains fields for adding one agent to a squad.
type CreateAgentRequest struct {
	Role             entagent.Role  `json:"role"`
	Specialization   string         `json:"specialization,omitempty"`
	GeneratorRef     map[string]any `json:"generator_ref"`
	SystemPrompt     string         `json:"system_prompt"`
	ToolCapabilities []string       `json:"tool_capabilities,omitempty"`
}

// CreateRoutingRuleRequest contains fields for adding one routing rule.
type CreateRoutingRuleRequest struct {
	AskerRole       string `json:"asker_role"`
	QuestionType    string `json:"question_type,omitempty"`
	EscalationLevel int    `json:"escalation_level"`
	ResponderRole   string `json:"responder_role"`
	Priority        int    `json:"priority"`
}
