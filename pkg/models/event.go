package models

import "github.com/squadflow/squadflow/ent"

// CreateOutboxEventRequest contains fields for persisting an SSE outbox event.
type CreateOutboxEventRequest struct {
	SquadID string         `json:"squad_id"`
	Channel string         `json:"channel"`
	Payload map[string]any `json:"payload"`
}

// OutboxEventsResponse contains outbox events since a given frame id.
type OutboxEventsResponse struct {
	Events []*ent.Event `json:"events"`
}
