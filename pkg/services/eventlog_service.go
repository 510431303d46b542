package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
)

// seqRetryAttempts bounds retries when two appends race for the same
// sequence number and the unique (conversation_id, sequence) index rejects
// the loser.
const seqRetryAttempts = 5

// EventLogService owns the append-only conversation event log. Every append
// allocates the next dense sequence, bumps the conversation's updated_at,
// writes the SSE outbox row, and fires pg_notify — all in one transaction,
// so live subscribers see exactly what was committed.
type EventLogService struct {
	client *ent.Client
}

// NewEventLogService creates a new EventLogService
func NewEventLogService(client *ent.Client) *EventLogService {
	return &EventLogService{client: client}
}

// AppendMessageParams carries everything needed to persist a message and its
// log entry. Roles are denormalized into the SSE frame only; the messages
// table stores agent ids.
type AppendMessageParams struct {
	SquadID          string
	ConversationID   string // Empty for squad broadcasts
	SenderAgentID    string
	SenderRole       string
	RecipientAgentID string
	RecipientRole    string
	Type             entmessage.Type
	Content          string
	Metadata         map[string]string
}

// Append appends one event to a conversation's log and publishes the
// matching SSE frame, retrying on sequence conflicts.
func (s *EventLogService) Append(ctx context.Context, squadID string, req models.AppendEventRequest) (*ent.ConversationEvent, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "must not be empty")
	}

	var evt *ent.ConversationEvent
	err := s.retrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		var err error
		evt, err = s.AppendTx(ctx, tx, req)
		if err != nil {
			return err
		}

		frame := map[string]any{
			"type":            string(req.Kind),
			"conversation_id": req.ConversationID,
			"sequence":        evt.Sequence,
			"occurred_at":     evt.OccurredAt,
		}
		if req.Payload != nil {
			frame["payload"] = req.Payload
		}
		if req.AuthorAgentID != nil {
			frame["author_agent_id"] = *req.AuthorAgentID
		}
		_, err = s.PublishFrameTx(ctx, tx, squadID, events.SquadChannel(squadID), frame)
		return err
	})
	if err != nil {
		return nil, err
	}
	return evt, nil
}

// AppendTx appends one event inside an existing transaction. It allocates
// the next sequence and bumps the conversation's updated_at so the timeout
// timers re-anchor. Callers own commit, rollback, and conflict retry.
func (s *EventLogService) AppendTx(ctx context.Context, tx *ent.Tx, req models.AppendEventRequest) (*ent.ConversationEvent, error) {
	seq, err := s.nextSequenceTx(ctx, tx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	builder := tx.ConversationEvent.Create().
		SetID(uuid.NewString()).
		SetConversationID(req.ConversationID).
		SetSequence(seq).
		SetKind(req.Kind).
		SetOccurredAt(time.Now())
	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}
	if req.AuthorAgentID != nil {
		builder.SetAuthorAgentID(*req.AuthorAgentID)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("sequence conflict on conversation %s: %w", req.ConversationID, err)
		}
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	if err := tx.Conversation.UpdateOneID(req.ConversationID).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", req.ConversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}

	return evt, nil
}

// AppendMessage persists a conversation-scoped message together with its
// message_appended log event and the message SSE frame, in one transaction.
func (s *EventLogService) AppendMessage(ctx context.Context, params AppendMessageParams) (*ent.Message, *ent.ConversationEvent, error) {
	if params.ConversationID == "" {
		return nil, nil, NewValidationError("conversation_id", "must not be empty")
	}
	if params.Content == "" {
		return nil, nil, NewValidationError("content", "must not be empty")
	}

	var (
		msg *ent.Message
		evt *ent.ConversationEvent
	)
	err := s.retrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		var err error
		msg, err = s.CreateMessageTx(ctx, tx, params)
		if err != nil {
			return err
		}

		evt, err = s.AppendTx(ctx, tx, models.AppendEventRequest{
			ConversationID: params.ConversationID,
			Kind:           conversationevent.KindMessageAppended,
			Payload: map[string]any{
				"message_id":   msg.ID,
				"message_type": string(params.Type),
			},
			AuthorAgentID: &params.SenderAgentID,
		})
		if err != nil {
			return err
		}

		frame := MessageFrame(msg, params, evt.Sequence)
		_, err = s.PublishFrameTx(ctx, tx, params.SquadID, events.SquadChannel(params.SquadID), frame)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return msg, evt, nil
}

// SaveBroadcast persists a squad broadcast message and its SSE frame.
// Broadcasts have no conversation, so no log event and no sequence.
func (s *EventLogService) SaveBroadcast(ctx context.Context, params AppendMessageParams) (*ent.Message, error) {
	if params.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}

	var msg *ent.Message
	err := withTx(ctx, s.client, func(tx *ent.Tx) error {
		var err error
		msg, err = s.CreateMessageTx(ctx, tx, params)
		if err != nil {
			return err
		}
		frame := MessageFrame(msg, params, 0)
		_, err = s.PublishFrameTx(ctx, tx, params.SquadID, events.SquadChannel(params.SquadID), frame)
		return err
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ReadTimeline returns a conversation's events ordered by sequence,
// optionally starting after sinceSequence.
func (s *EventLogService) ReadTimeline(ctx context.Context, conversationID string, sinceSequence, limit int) (*models.TimelineResponse, error) {
	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
	}

	query := s.client.ConversationEvent.Query().
		Where(
			conversationevent.ConversationIDEQ(conversationID),
			conversationevent.SequenceGT(sinceSequence),
		).
		Order(ent.Asc(conversationevent.FieldSequence))
	if limit > 0 {
		query.Limit(limit)
	}

	evts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}

	return &models.TimelineResponse{
		ConversationID: conversationID,
		Events:         evts,
	}, nil
}

// PublishFrameTx writes an SSE outbox row and fires pg_notify inside the
// given transaction. The returned outbox id is the frame id clients resume
// from with Last-Event-ID.
func (s *EventLogService) PublishFrameTx(ctx context.Context, tx *ent.Tx, squadID, channel string, payload any) (int64, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal frame payload: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		"INSERT INTO events (squad_id, channel, payload, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id",
		squadID, channel, payloadJSON)
	if err != nil {
		return 0, fmt.Errorf("failed to insert outbox event: %w", err)
	}
	var frameID int64
	if !rows.Next() {
		rows.Close()
		return 0, fmt.Errorf("outbox insert returned no id")
	}
	if err := rows.Scan(&frameID); err != nil {
		rows.Close()
		return 0, fmt.Errorf("failed to scan outbox id: %w", err)
	}
	rows.Close()

	notifyPayload, err := events.WithFrameID(payloadJSON, frameID)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}
	return frameID, nil
}

// WithTx runs fn in a transaction on the service's client. Exposed for
// callers that compose AppendTx with their own writes.
func (s *EventLogService) WithTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	return withTx(ctx, s.client, fn)
}

// RetrySequenceConflicts runs fn in a transaction, retrying the whole
// transaction when the unique sequence index rejects a racing append.
func (s *EventLogService) RetrySequenceConflicts(ctx context.Context, fn func(tx *ent.Tx) error) error {
	return s.retrySequenceConflicts(ctx, fn)
}

func (s *EventLogService) retrySequenceConflicts(ctx context.Context, fn func(tx *ent.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < seqRetryAttempts; attempt++ {
		lastErr = withTx(ctx, s.client, fn)
		if lastErr == nil {
			return nil
		}
		if !ent.IsConstraintError(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("%w: %v", ErrConcurrentModification, lastErr)
}

// nextSequenceTx returns the next dense sequence for a conversation.
// Correctness does not depend on isolation: a racing allocator loses on the
// unique index and the caller retries.
func (s *EventLogService) nextSequenceTx(ctx context.Context, tx *ent.Tx, conversationID string) (int, error) {
	// The log is append-only, so count == max sequence.
	n, err := tx.ConversationEvent.Query().
		Where(conversationevent.ConversationIDEQ(conversationID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n + 1, nil
}

// CreateMessageTx persists one message row inside an existing transaction.
// Exposed for the state machine, which composes messages with transition
// events in a single transaction.
func (s *EventLogService) CreateMessageTx(ctx context.Context, tx *ent.Tx, params AppendMessageParams) (*ent.Message, error) {
	builder := tx.Message.Create().
		SetID(uuid.NewString()).
		SetSquadID(params.SquadID).
		SetSenderAgentID(params.SenderAgentID).
		SetType(params.Type).
		SetContent(params.Content).
		SetCreatedAt(time.Now())
	if params.ConversationID != "" {
		builder.SetConversationID(params.ConversationID)
	}
	if params.RecipientAgentID != "" {
		builder.SetRecipientAgentID(params.RecipientAgentID)
	}
	if params.Metadata != nil {
		builder.SetMetadata(params.Metadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// MessageFrame builds the SSE frame payload for a persisted message.
func MessageFrame(msg *ent.Message, params AppendMessageParams, sequence int) events.MessagePayload {
	frame := events.MessagePayload{
		Type:             events.FrameMessage,
		MessageID:        msg.ID,
		ConversationID:   params.ConversationID,
		SenderAgentID:    params.SenderAgentID,
		SenderRole:       params.SenderRole,
		RecipientAgentID: params.RecipientAgentID,
		RecipientRole:    params.RecipientRole,
		MessageType:      string(params.Type),
		Content:          params.Content,
		Metadata:         params.Metadata,
		Sequence:         sequence,
		OccurredAt:       msg.CreatedAt,
	}
	return frame
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
