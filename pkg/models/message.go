package models

import (
	entmessage "github.com/squadflow/squadflow/ent/message"
)

// PostMessageRequest contains fields for appending an answer, acknowledgment,
// or follow-up question to an existing conversation.
type PostMessageRequest struct {
	SenderAgentID string            `json:"sender_agent_id"`
	Type          entmessage.Type   `json:"type"`
	Content       string            `json:"content"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// BroadcastRequest contains fields for a squad-wide broadcast message.
type BroadcastRequest struct {
	SenderAgentID string            `json:"sender_agent_id"`
	Type          entmessage.Type   `json:"type"`
	Content       string            `json:"content"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// MetadataSpecializationKey is the message metadata key carrying the
// specialization hint the routing engine uses as an agent tie-breaker.
const MetadataSpecializationKey = "specialization"
