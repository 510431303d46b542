// Package bus is the in-process message bus: bounded per-agent inbound
// queues, squad broadcasts, and watermark-based replay after restart.
// The event log is authoritative; the bus only provides low-latency
// delivery between commit and consumption.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/services"
)

// Config holds bus tunables.
type Config struct {
	// QueueSize bounds each agent's inbound queue.
	QueueSize int
	// MaxRetries bounds enqueue retries before a full queue becomes a
	// recorded Backpressure failure.
	MaxRetries uint64
}

// DefaultConfig returns the bus defaults.
func DefaultConfig() Config {
	return Config{
		QueueSize:  64,
		MaxRetries: 5,
	}
}

// Bus is the in-process implementation selected by MESSAGE_BUS=memory.
type Bus struct {
	client     *ent.Client
	log        *services.EventLogService
	watermarks *services.WatermarkService
	cfg        Config

	mu     sync.RWMutex
	queues map[string]chan *ent.Message
}

// New creates a message bus.
func New(client *ent.Client, log *services.EventLogService, watermarks *services.WatermarkService, cfg Config) *Bus {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	return &Bus{
		client:     client,
		log:        log,
		watermarks: watermarks,
		cfg:        cfg,
		queues:     make(map[string]chan *ent.Message),
	}
}

// Register creates the inbound queue for an agent runtime. Single
// producer (the bus), single consumer (that runtime).
func (b *Bus) Register(agentID string) (<-chan *ent.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[agentID]; ok {
		return nil, fmt.Errorf("agent %s queue: %w", agentID, services.ErrAlreadyExists)
	}
	q := make(chan *ent.Message, b.cfg.QueueSize)
	b.queues[agentID] = q
	return q, nil
}

// Unregister removes and closes an agent's inbound queue.
func (b *Bus) Unregister(agentID string) {
	b.mu.Lock()
	q, ok := b.queues[agentID]
	if ok {
		delete(b.queues, agentID)
	}
	b.mu.Unlock()
	if ok {
		close(q)
	}
}

// EnqueueCommitted delivers a committed message to the recipient's queue,
// retrying a full queue with bounded exponential backoff. After the retry
// budget a system message is recorded and ErrBackpressure returned; the
// recipient recovers the message from watermark replay.
func (b *Bus) EnqueueCommitted(ctx context.Context, squadID, recipientAgentID string, msg *ent.Message) error {
	b.mu.RLock()
	q, ok := b.queues[recipientAgentID]
	b.mu.RUnlock()
	if !ok {
		// Runtime not running; replay covers it on registration.
		return nil
	}

	op := func() error {
		select {
		case q <- msg:
			return nil
		default:
			return services.ErrBackpressure
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxElapsedTime = 0
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, b.cfg.MaxRetries), ctx))
	if err == nil {
		return nil
	}

	b.recordDeliveryFailure(ctx, squadID, recipientAgentID, msg)
	return fmt.Errorf("enqueue for agent %s: %w", recipientAgentID, services.ErrBackpressure)
}

// Broadcast persists a squad-wide message and enqueues one copy for every
// active agent except the sender. Delivery is at-least-once; consumers
// dedupe by message id.
func (b *Bus) Broadcast(ctx context.Context, squadID string, req models.BroadcastRequest) (*ent.Message, error) {
	sender, err := b.client.Agent.Get(ctx, req.SenderAgentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", req.SenderAgentID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sender: %w", err)
	}
	if sender.SquadID != squadID || !sender.Active {
		return nil, fmt.Errorf("agent %s is not an active member of squad %s: %w", req.SenderAgentID, squadID, services.ErrNotFound)
	}

	msg, err := b.log.SaveBroadcast(ctx, services.AppendMessageParams{
		SquadID:       squadID,
		SenderAgentID: sender.ID,
		SenderRole:    string(sender.Role),
		Type:          req.Type,
		Content:       req.Content,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	recipients, err := b.client.Agent.Query().
		Where(
			entagent.SquadIDEQ(squadID),
			entagent.ActiveEQ(true),
			entagent.IDNEQ(sender.ID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast recipients: %w", err)
	}

	for _, recipient := range recipients {
		if err := b.EnqueueCommitted(ctx, squadID, recipient.ID, msg); err != nil {
			slog.Error("Broadcast delivery failed",
				"message_id", msg.ID,
				"recipient", recipient.ID,
				"error", err)
		}
	}
	return msg, nil
}

// ReplayPending re-enqueues every message addressed to the agent that was
// committed above the agent's watermark in each open conversation. Called
// when a runtime registers, making delivery at-least-once across restarts.
func (b *Bus) ReplayPending(ctx context.Context, agentID string) (int, error) {
	convs, err := b.client.Conversation.Query().
		Where(
			entconversation.Or(
				entconversation.AskerAgentIDEQ(agentID),
				entconversation.CurrentResponderAgentIDEQ(agentID),
			),
			entconversation.StateNotIn(
				entconversation.StateAcknowledged,
				entconversation.StateTimedOut,
				entconversation.StateAbandoned,
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list open conversations: %w", err)
	}

	replayed := 0
	for _, conv := range convs {
		wm, err := b.watermarks.Get(ctx, agentID, conv.ID)
		if err != nil {
			return replayed, err
		}

		evts, err := b.client.ConversationEvent.Query().
			Where(
				conversationevent.ConversationIDEQ(conv.ID),
				conversationevent.SequenceGT(wm),
			).
			Order(ent.Asc(conversationevent.FieldSequence)).
			All(ctx)
		if err != nil {
			return replayed, fmt.Errorf("failed to read unread tail: %w", err)
		}

		for _, evt := range evts {
			msgID, ok := evt.Payload["message_id"].(string)
			if !ok {
				continue
			}
			msg, err := b.client.Message.Get(ctx, msgID)
			if err != nil {
				if ent.IsNotFound(err) {
					continue
				}
				return replayed, fmt.Errorf("failed to load message %s: %w", msgID, err)
			}
			if msg.RecipientAgentID == nil || *msg.RecipientAgentID != agentID {
				continue
			}
			if err := b.EnqueueCommitted(ctx, conv.SquadID, agentID, msg); err != nil {
				return replayed, err
			}
			replayed++
		}
	}

	if replayed > 0 {
		slog.Info("Replayed unread messages", "agent_id", agentID, "count", replayed)
	}
	return replayed, nil
}

// QueueDepth returns the current depth of an agent's inbound queue.
func (b *Bus) QueueDepth(agentID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.queues[agentID])
}

// recordDeliveryFailure appends a system message documenting the dropped
// in-process delivery. Conversationless broadcasts are only logged.
func (b *Bus) recordDeliveryFailure(ctx context.Context, squadID, recipientAgentID string, msg *ent.Message) {
	slog.Error("Delivery retries exhausted",
		"message_id", msg.ID,
		"recipient", recipientAgentID)
	if msg.ConversationID == nil {
		return
	}

	_, _, err := b.log.AppendMessage(ctx, services.AppendMessageParams{
		SquadID:          squadID,
		ConversationID:   *msg.ConversationID,
		SenderAgentID:    msg.SenderAgentID,
		RecipientAgentID: recipientAgentID,
		Type:             entmessage.TypeSystem,
		Content:          fmt.Sprintf("delivery of message %s to agent %s failed after %d retries", msg.ID, recipientAgentID, b.cfg.MaxRetries),
	})
	if err != nil {
		slog.Error("Failed to record delivery failure", "message_id", msg.ID, "error", err)
	}
}
