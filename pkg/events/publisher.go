package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// notifyLimit is PostgreSQL's NOTIFY payload ceiling (8000 bytes) with head
// room for the envelope fields injected at publish time.
const notifyLimit = 7900

// Publisher broadcasts transient frames via NOTIFY without touching the
// outbox table. Persistent frames are written by the event log service in
// the same transaction as the log append they mirror — see
// services.EventLogService.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishAnswerStreaming broadcasts an answer_streaming delta. Transient —
// lost on disconnect; the persisted answer_complete frame carries the full
// text.
func (p *Publisher) PublishAnswerStreaming(ctx context.Context, squadID string, payload AnswerStreamingPayload) error {
	payload.Type = FrameAnswerStreaming
	return p.notifyOnly(ctx, SquadChannel(squadID), payload)
}

// PublishError broadcasts a transient error frame.
func (p *Publisher) PublishError(ctx context.Context, squadID string, payload ErrorPayload) error {
	payload.Type = FrameError
	return p.notifyOnly(ctx, SquadChannel(squadID), payload)
}

// notifyOnly broadcasts a payload via NOTIFY without persisting it.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	notifyPayload, err := TruncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// WithFrameID injects the outbox frame id into a marshaled payload so NOTIFY
// receivers can track their resume position without a DB read.
func WithFrameID(payloadJSON []byte, frameID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for frame_id injection: %w", err)
	}
	m["frame_id"] = frameID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched notify payload: %w", err)
	}
	return TruncateIfNeeded(string(enriched))
}

// TruncateIfNeeded returns the payload as-is if it fits within PostgreSQL's
// NOTIFY limit, otherwise a minimal envelope with only routing fields; the
// receiver falls back to a catchup read for the body.
func TruncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(payloadStr), &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal oversized payload: %w", err)
	}

	minimal := map[string]any{
		"type":      m["type"],
		"truncated": true,
	}
	if id, ok := m["frame_id"]; ok {
		minimal["frame_id"] = id
	}
	if cid, ok := m["conversation_id"]; ok {
		minimal["conversation_id"] = cid
	}

	out, err := json.Marshal(minimal)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncation envelope: %w", err)
	}
	return string(out), nil
}
