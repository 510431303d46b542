// Package events provides live event delivery: the SSE outbox publisher,
// the PostgreSQL NOTIFY/LISTEN bridge, and the SSE stream fan-out.
//
// The event log (conversation_events + messages) is the source of truth.
// Every log append also writes a row to the events outbox table and fires
// pg_notify on the scope channel in the same transaction, so subscribers
// see exactly what was committed. The outbox row id is the monotonic frame
// id clients resume from with Last-Event-ID.
//
// Transient frames (answer_streaming deltas, heartbeats) are NOTIFY-only:
// they are lost on disconnect, but the terminal answer_complete frame is
// persisted, so no information is lost — only the typing effect.
package events

import (
	"context"
	"fmt"
)

// Frame kinds emitted to SSE subscribers (the "event:" field).
const (
	FrameMessage         = "message"
	FrameStateChanged    = "state_changed"
	FrameAnswerStreaming = "answer_streaming"
	FrameAnswerComplete  = "answer_complete"
	FrameCompleted       = "completed"
	FrameError           = "error"
	FrameHeartbeat       = "heartbeat"
)

// SquadChannel returns the NOTIFY channel for a squad's events.
// PostgreSQL identifiers are limited to 63 bytes; uuid-based ids fit.
func SquadChannel(squadID string) string {
	return fmt.Sprintf("squad:%s", squadID)
}

// ExecutionChannel returns the NOTIFY channel for a task execution's events.
func ExecutionChannel(executionID string) string {
	return fmt.Sprintf("execution:%s", executionID)
}

// CatchupEvent holds one outbox row returned by the catchup query.
type CatchupEvent struct {
	ID      int64
	Payload map[string]interface{}
}

// CatchupQuerier queries outbox events for resume-after-disconnect.
// Implemented by services.EventService.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}
