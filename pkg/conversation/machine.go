package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/squadflow/squadflow/ent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
)

// Timeouts holds the two per-conversation timer durations.
type Timeouts struct {
	Answer time.Duration // waiting → escalated | timed_out
	Ack    time.Duration // answered → abandoned
}

// Deliverer hands a committed message to the recipient's inbound queue.
// Implemented by the message bus. Delivery happens after commit; the log
// is authoritative, so a failed enqueue is recovered from the watermark
// replay on the recipient's next start.
type Deliverer interface {
	EnqueueCommitted(ctx context.Context, squadID, recipientAgentID string, msg *ent.Message) error
}

// Machine is the conversation state machine. A conversation is a
// single-writer object: every operation acquires the conversation's lock,
// making read-state, decide, append, update linearizable.
type Machine struct {
	client   *ent.Client
	log      *services.EventLogService
	routes   *routing.Cache
	timeouts Timeouts
	deliver  Deliverer
	locks    *keyedMutex
}

// NewMachine creates a conversation state machine.
func NewMachine(client *ent.Client, log *services.EventLogService, routes *routing.Cache, timeouts Timeouts) *Machine {
	return &Machine{
		client:   client,
		log:      log,
		routes:   routes,
		timeouts: timeouts,
		locks:    newKeyedMutex(),
	}
}

// SetDeliverer wires the message bus for post-commit delivery.
func (m *Machine) SetDeliverer(d Deliverer) {
	m.deliver = d
}

// Timeouts returns the configured timer durations.
func (m *Machine) Timeouts() Timeouts {
	return m.timeouts
}

// Open creates a conversation from an initial question. The responder is
// resolved at escalation level 0 before anything is written: a routing
// miss returns ErrNoResponder and no conversation exists.
func (m *Machine) Open(ctx context.Context, req models.OpenConversationRequest) (*models.ConversationDetail, error) {
	if req.Content == "" {
		return nil, services.NewValidationError("content", "must not be empty")
	}
	if req.QuestionType == "" {
		return nil, services.NewValidationError("question_type", "must not be empty")
	}

	sq, err := m.client.Squad.Get(ctx, req.SquadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("squad %s: %w", req.SquadID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}
	if !sq.Active {
		return nil, fmt.Errorf("squad %s: %w", req.SquadID, services.ErrNotFound)
	}

	asker, err := m.squadAgent(ctx, req.SquadID, req.AskerAgentID)
	if err != nil {
		return nil, err
	}

	snap, err := m.routes.Get(ctx, req.SquadID)
	if err != nil {
		return nil, err
	}
	decision, err := routing.Resolve(snap, string(asker.Role), req.QuestionType,
		0, req.Metadata[models.MetadataSpecializationKey])
	if err != nil {
		return nil, err
	}

	var (
		conv *ent.Conversation
		msg  *ent.Message
	)
	err = m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		conv, msg, err = m.openTx(ctx, tx, openParams{
			squadID:         req.SquadID,
			taskExecutionID: req.TaskExecutionID,
			askerAgent:      asker,
			responderID:     decision.AgentID,
			responderRole:   decision.ResponderRole,
			questionType:    req.QuestionType,
			content:         req.Content,
			metadata:        req.Metadata,
			escalationLevel: 0,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	m.deliverCommitted(ctx, req.SquadID, decision.AgentID, msg)

	slog.Info("Conversation opened",
		"conversation_id", conv.ID,
		"squad_id", req.SquadID,
		"asker", req.AskerAgentID,
		"responder", decision.AgentID)

	return &models.ConversationDetail{
		Conversation:  conv,
		ResponderRole: decision.ResponderRole,
	}, nil
}

// HandleMessage appends a message to a conversation and applies the state
// transition its type implies: answer, acknowledgment, or follow-up
// question. Other types append without a transition.
func (m *Machine) HandleMessage(ctx context.Context, conversationID string, req models.PostMessageRequest) (*ent.Message, *ent.Conversation, error) {
	if req.Content == "" && req.Type != entmessage.TypeAcknowledgment {
		return nil, nil, services.NewValidationError("content", "must not be empty")
	}

	m.locks.Lock(conversationID)
	defer m.locks.Unlock(conversationID)

	conv, err := m.getConversation(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	sender, err := m.squadAgent(ctx, conv.SquadID, req.SenderAgentID)
	if err != nil {
		return nil, nil, err
	}

	switch req.Type {
	case entmessage.TypeAnswer:
		return m.answer(ctx, conv, sender, req)
	case entmessage.TypeAcknowledgment:
		return m.acknowledge(ctx, conv, sender, req)
	case entmessage.TypeQuestion:
		return m.followUp(ctx, conv, sender, req)
	default:
		return m.appendOnly(ctx, conv, sender, req)
	}
}

// Escalate explicitly escalates a waiting conversation to the next level.
// Fails with ErrNoResponder if the chain is exhausted.
func (m *Machine) Escalate(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	m.locks.Lock(conversationID)
	defer m.locks.Unlock(conversationID)

	conv, err := m.getConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.State != entconversation.StateWaiting {
		if conv.State == entconversation.StateEscalated {
			return conv, nil // Retry of an applied escalation
		}
		return nil, fmt.Errorf("escalate from %s: %w", conv.State, services.ErrIllegalTransition)
	}

	child, err := m.escalate(ctx, conv, ReasonExplicitEscalate)
	if err != nil {
		return nil, err
	}
	return child, nil
}

// HandleAnswerTimeout fires when a waiting conversation's answer timer
// expires: escalate if a responder exists at the next level, otherwise
// time out. A no-op when the conversation advanced in the meantime.
func (m *Machine) HandleAnswerTimeout(ctx context.Context, conversationID string) error {
	m.locks.Lock(conversationID)
	defer m.locks.Unlock(conversationID)

	conv, err := m.getConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.State != entconversation.StateWaiting {
		return nil // Timer raced a transition
	}

	if _, err := m.escalate(ctx, conv, ReasonAnswerTimeout); err != nil {
		if errors.Is(err, routing.ErrNoResponder) || errors.Is(err, services.ErrNotFound) {
			return m.timeOut(ctx, conv)
		}
		return err
	}
	return nil
}

// HandleAckTimeout fires when an answered conversation's ack timer
// expires: the conversation is abandoned. A no-op when the conversation
// advanced in the meantime.
func (m *Machine) HandleAckTimeout(ctx context.Context, conversationID string) error {
	m.locks.Lock(conversationID)
	defer m.locks.Unlock(conversationID)

	conv, err := m.getConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.State != entconversation.StateAnswered {
		return nil // Timer raced a transition
	}

	return m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		return m.transitionTx(ctx, tx, conv, entconversation.StateAbandoned, ReasonAckTimeout, nil)
	})
}

// answer applies waiting → answered.
func (m *Machine) answer(ctx context.Context, conv *ent.Conversation, sender *ent.Agent, req models.PostMessageRequest) (*ent.Message, *ent.Conversation, error) {
	if conv.State == entconversation.StateAnswered {
		return nil, conv, nil // Retry of an applied answer
	}
	if !CanTransition(conv.State, entconversation.StateAnswered) {
		return nil, nil, fmt.Errorf("answer in state %s: %w", conv.State, services.ErrIllegalTransition)
	}
	if sender.ID != conv.CurrentResponderAgentID {
		return nil, nil, services.NewValidationError("sender_agent_id", "only the current responder may answer")
	}

	var msg *ent.Message
	err := m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		var err error
		msg, err = m.appendMessageTx(ctx, tx, conv, sender, conv.AskerAgentID, req)
		if err != nil {
			return err
		}
		if err := m.transitionTx(ctx, tx, conv, entconversation.StateAnswered, ReasonAnswerReceived,
			map[string]any{"message_id": msg.ID}); err != nil {
			return err
		}
		return m.publishFramesTx(ctx, tx, conv, events.AnswerCompletePayload{
			Type:           events.FrameAnswerComplete,
			ConversationID: conv.ID,
			MessageID:      msg.ID,
			AgentID:        sender.ID,
			Content:        msg.Content,
		})
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := m.getConversation(ctx, conv.ID)
	if err != nil {
		return nil, nil, err
	}
	m.deliverCommitted(ctx, conv.SquadID, conv.AskerAgentID, msg)
	return msg, updated, nil
}

// acknowledge applies answered → acknowledged and closes the conversation.
func (m *Machine) acknowledge(ctx context.Context, conv *ent.Conversation, sender *ent.Agent, req models.PostMessageRequest) (*ent.Message, *ent.Conversation, error) {
	if conv.State == entconversation.StateAcknowledged {
		return nil, conv, nil // Retry of an applied acknowledgment
	}
	if !CanTransition(conv.State, entconversation.StateAcknowledged) {
		return nil, nil, fmt.Errorf("acknowledge in state %s: %w", conv.State, services.ErrIllegalTransition)
	}
	if sender.ID != conv.AskerAgentID {
		return nil, nil, services.NewValidationError("sender_agent_id", "only the asker may acknowledge")
	}

	var msg *ent.Message
	err := m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		var err error
		msg, err = m.appendMessageTx(ctx, tx, conv, sender, conv.CurrentResponderAgentID, req)
		if err != nil {
			return err
		}
		return m.transitionTx(ctx, tx, conv, entconversation.StateAcknowledged, ReasonAckReceived,
			map[string]any{"message_id": msg.ID})
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := m.getConversation(ctx, conv.ID)
	if err != nil {
		return nil, nil, err
	}
	m.deliverCommitted(ctx, conv.SquadID, conv.CurrentResponderAgentID, msg)
	return msg, updated, nil
}

// followUp applies answered → waiting on the same conversation id.
func (m *Machine) followUp(ctx context.Context, conv *ent.Conversation, sender *ent.Agent, req models.PostMessageRequest) (*ent.Message, *ent.Conversation, error) {
	if !CanTransition(conv.State, entconversation.StateWaiting) {
		return nil, nil, fmt.Errorf("follow-up in state %s: %w", conv.State, services.ErrIllegalTransition)
	}
	if sender.ID != conv.AskerAgentID {
		return nil, nil, services.NewValidationError("sender_agent_id", "only the asker may post a follow-up")
	}

	var msg *ent.Message
	err := m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		var err error
		msg, err = m.appendMessageTx(ctx, tx, conv, sender, conv.CurrentResponderAgentID, req)
		if err != nil {
			return err
		}
		return m.transitionTx(ctx, tx, conv, entconversation.StateWaiting, ReasonFollowUpQuestion,
			map[string]any{"message_id": msg.ID})
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := m.getConversation(ctx, conv.ID)
	if err != nil {
		return nil, nil, err
	}
	m.deliverCommitted(ctx, conv.SquadID, conv.CurrentResponderAgentID, msg)
	return msg, updated, nil
}

// appendOnly persists a message with no state transition. The recipient is
// the other participant.
func (m *Machine) appendOnly(ctx context.Context, conv *ent.Conversation, sender *ent.Agent, req models.PostMessageRequest) (*ent.Message, *ent.Conversation, error) {
	if IsTerminal(conv.State) {
		return nil, nil, fmt.Errorf("message on closed conversation: %w", services.ErrIllegalTransition)
	}

	recipient := conv.CurrentResponderAgentID
	if sender.ID == recipient {
		recipient = conv.AskerAgentID
	}

	msg, _, err := m.log.AppendMessage(ctx, services.AppendMessageParams{
		SquadID:          conv.SquadID,
		ConversationID:   conv.ID,
		SenderAgentID:    sender.ID,
		SenderRole:       string(sender.Role),
		RecipientAgentID: recipient,
		Type:             req.Type,
		Content:          req.Content,
		Metadata:         req.Metadata,
	})
	if err != nil {
		return nil, nil, err
	}
	m.deliverCommitted(ctx, conv.SquadID, recipient, msg)
	return msg, conv, nil
}

// escalate transitions the parent to escalated and opens the child
// conversation at level+1 in the same transaction. The child carries the
// original question as its first message.
func (m *Machine) escalate(ctx context.Context, conv *ent.Conversation, reason string) (*ent.Conversation, error) {
	asker, err := m.squadAgent(ctx, conv.SquadID, conv.AskerAgentID)
	if err != nil {
		return nil, err
	}
	question, err := m.firstQuestion(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	snap, err := m.routes.Get(ctx, conv.SquadID)
	if err != nil {
		return nil, err
	}
	nextLevel := conv.EscalationLevel + 1
	decision, err := routing.Resolve(snap, string(asker.Role), conv.QuestionType,
		nextLevel, question.Metadata[models.MetadataSpecializationKey])
	if err != nil {
		return nil, err
	}

	var (
		child    *ent.Conversation
		childMsg *ent.Message
	)
	err = m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		child, childMsg, err = m.openTx(ctx, tx, openParams{
			squadID:         conv.SquadID,
			taskExecutionID: conv.TaskExecutionID,
			askerAgent:      asker,
			responderID:     decision.AgentID,
			responderRole:   decision.ResponderRole,
			questionType:    conv.QuestionType,
			content:         question.Content,
			metadata:        question.Metadata,
			escalationLevel: nextLevel,
			parentID:        conv.ID,
		})
		if err != nil {
			return err
		}
		return m.transitionTx(ctx, tx, conv, entconversation.StateEscalated, reason,
			map[string]any{"child_conversation_id": child.ID, "escalation_level": nextLevel})
	})
	if err != nil {
		return nil, err
	}

	m.deliverCommitted(ctx, conv.SquadID, decision.AgentID, childMsg)

	slog.Info("Conversation escalated",
		"conversation_id", conv.ID,
		"child_conversation_id", child.ID,
		"escalation_level", nextLevel,
		"reason", reason)
	return child, nil
}

// timeOut applies waiting → timed_out when the escalation chain is
// exhausted.
func (m *Machine) timeOut(ctx context.Context, conv *ent.Conversation) error {
	err := m.log.RetrySequenceConflicts(ctx, func(tx *ent.Tx) error {
		return m.transitionTx(ctx, tx, conv, entconversation.StateTimedOut, ReasonChainExhausted, nil)
	})
	if err != nil {
		return err
	}
	slog.Info("Conversation timed out", "conversation_id", conv.ID, "escalation_level", conv.EscalationLevel)
	return nil
}

type openParams struct {
	squadID         string
	taskExecutionID *string
	askerAgent      *ent.Agent
	responderID     string
	responderRole   string
	questionType    string
	content         string
	metadata        map[string]string
	escalationLevel int
	parentID        string
}

// openTx creates a conversation in waiting with its question message and
// the initiated log event at sequence 1.
func (m *Machine) openTx(ctx context.Context, tx *ent.Tx, p openParams) (*ent.Conversation, *ent.Message, error) {
	builder := tx.Conversation.Create().
		SetID(uuid.NewString()).
		SetSquadID(p.squadID).
		SetAskerAgentID(p.askerAgent.ID).
		SetCurrentResponderAgentID(p.responderID).
		SetQuestionType(p.questionType).
		SetEscalationLevel(p.escalationLevel).
		SetState(entconversation.StateWaiting).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now())
	if p.taskExecutionID != nil {
		builder.SetTaskExecutionID(*p.taskExecutionID)
	}
	if p.parentID != "" {
		builder.SetParentConversationID(p.parentID)
	}
	conv, err := builder.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	msgParams := services.AppendMessageParams{
		SquadID:          p.squadID,
		ConversationID:   conv.ID,
		SenderAgentID:    p.askerAgent.ID,
		SenderRole:       string(p.askerAgent.Role),
		RecipientAgentID: p.responderID,
		RecipientRole:    p.responderRole,
		Type:             entmessage.TypeQuestion,
		Content:          p.content,
		Metadata:         p.metadata,
	}
	msg, err := m.log.CreateMessageTx(ctx, tx, msgParams)
	if err != nil {
		return nil, nil, err
	}

	payload := map[string]any{
		"from":          string(entconversation.StateInitiated),
		"to":            string(entconversation.StateWaiting),
		"reason":        ReasonQuestionDelivered,
		"message_id":    msg.ID,
		"question_type": p.questionType,
	}
	if p.parentID != "" {
		payload["parent_conversation_id"] = p.parentID
	}
	evt, err := m.log.AppendTx(ctx, tx, models.AppendEventRequest{
		ConversationID: conv.ID,
		Kind:           conversationevent.KindInitiated,
		Payload:        payload,
		AuthorAgentID:  &p.askerAgent.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := m.publishFramesTx(ctx, tx, conv,
		services.MessageFrame(msg, msgParams, evt.Sequence),
		events.StateChangedPayload{
			Type:           events.FrameStateChanged,
			ConversationID: conv.ID,
			From:           string(entconversation.StateInitiated),
			To:             string(entconversation.StateWaiting),
			Reason:         ReasonQuestionDelivered,
			Sequence:       evt.Sequence,
			OccurredAt:     evt.OccurredAt,
		}); err != nil {
		return nil, nil, err
	}

	return conv, msg, nil
}

// transitionTx appends the transition event, updates the conversation row,
// and publishes the state frame, all inside tx. conv must be the locked
// caller's current snapshot.
func (m *Machine) transitionTx(ctx context.Context, tx *ent.Tx, conv *ent.Conversation, to entconversation.State, reason string, extra map[string]any) error {
	if !CanTransition(conv.State, to) {
		return fmt.Errorf("%s → %s: %w", conv.State, to, services.ErrIllegalTransition)
	}

	payload := map[string]any{
		"from":   string(conv.State),
		"to":     string(to),
		"reason": reason,
	}
	for k, v := range extra {
		payload[k] = v
	}

	evt, err := m.log.AppendTx(ctx, tx, models.AppendEventRequest{
		ConversationID: conv.ID,
		Kind:           eventKindFor(to),
		Payload:        payload,
	})
	if err != nil {
		return err
	}

	update := tx.Conversation.UpdateOneID(conv.ID).
		SetState(to).
		SetUpdatedAt(time.Now())
	if IsTerminal(to) {
		update.SetClosedAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update conversation state: %w", err)
	}

	frames := []any{events.StateChangedPayload{
		Type:           events.FrameStateChanged,
		ConversationID: conv.ID,
		From:           string(conv.State),
		To:             string(to),
		Reason:         reason,
		Sequence:       evt.Sequence,
		OccurredAt:     evt.OccurredAt,
	}}
	if IsTerminal(to) {
		frames = append(frames, events.CompletedPayload{
			Type:           events.FrameCompleted,
			ConversationID: conv.ID,
			State:          string(to),
		})
	}
	return m.publishFramesTx(ctx, tx, conv, frames...)
}

// publishFramesTx writes each frame to the squad channel and, when the
// conversation is tagged with a task execution, to the execution channel.
func (m *Machine) publishFramesTx(ctx context.Context, tx *ent.Tx, conv *ent.Conversation, frames ...any) error {
	channels := []string{events.SquadChannel(conv.SquadID)}
	if conv.TaskExecutionID != nil {
		channels = append(channels, events.ExecutionChannel(*conv.TaskExecutionID))
	}
	for _, frame := range frames {
		for _, ch := range channels {
			if _, err := m.log.PublishFrameTx(ctx, tx, conv.SquadID, ch, frame); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendMessageTx persists a message row for a transition, resolving the
// recipient's role for the SSE frame lazily at frame build time.
func (m *Machine) appendMessageTx(ctx context.Context, tx *ent.Tx, conv *ent.Conversation, sender *ent.Agent, recipientID string, req models.PostMessageRequest) (*ent.Message, error) {
	return m.log.CreateMessageTx(ctx, tx, services.AppendMessageParams{
		SquadID:          conv.SquadID,
		ConversationID:   conv.ID,
		SenderAgentID:    sender.ID,
		SenderRole:       string(sender.Role),
		RecipientAgentID: recipientID,
		Type:             req.Type,
		Content:          req.Content,
		Metadata:         req.Metadata,
	})
}

func (m *Machine) getConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, err := m.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// squadAgent loads an active agent and verifies squad membership.
func (m *Machine) squadAgent(ctx context.Context, squadID, agentID string) (*ent.Agent, error) {
	ag, err := m.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if ag.SquadID != squadID || !ag.Active {
		return nil, fmt.Errorf("agent %s is not an active member of squad %s: %w", agentID, squadID, services.ErrNotFound)
	}
	return ag, nil
}

// firstQuestion returns the conversation's original question message.
func (m *Machine) firstQuestion(ctx context.Context, conversationID string) (*ent.Message, error) {
	msg, err := m.client.Message.Query().
		Where(
			entmessage.ConversationIDEQ(conversationID),
			entmessage.TypeEQ(entmessage.TypeQuestion),
		).
		Order(ent.Asc(entmessage.FieldCreatedAt), ent.Asc(entmessage.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s has no question: %w", conversationID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return msg, nil
}

func (m *Machine) deliverCommitted(ctx context.Context, squadID, recipientID string, msg *ent.Message) {
	if m.deliver == nil || msg == nil {
		return
	}
	if err := m.deliver.EnqueueCommitted(ctx, squadID, recipientID, msg); err != nil {
		// The log is authoritative; the recipient replays from its
		// watermark on next start.
		slog.Error("Post-commit delivery failed",
			"message_id", msg.ID,
			"recipient", recipientID,
			"error", err)
	}
}
