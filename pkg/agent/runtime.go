package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/squadflow/squadflow/ent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/bus"
	"github.com/squadflow/squadflow/pkg/conversation"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/services"
)

// Limits bounds a runtime's work per message.
type Limits struct {
	// StepBudget caps generate → tool → generate iterations.
	StepBudget int
	// HistoryWindow caps how many conversation messages feed a generation.
	HistoryWindow int
}

// DefaultLimits returns the runtime defaults.
func DefaultLimits() Limits {
	return Limits{StepBudget: 5, HistoryWindow: 20}
}

// Runtime is one agent's processing loop: it consumes the inbound queue,
// generates replies through the agent's TextGenerator, and advances the
// agent's watermarks. One runtime per active agent; messages are handled
// sequentially.
type Runtime struct {
	agent      *ent.Agent
	client     *ent.Client
	bus        *bus.Bus
	machine    *conversation.Machine
	watermarks *services.WatermarkService
	publisher  *events.Publisher
	generator  TextGenerator
	invoker    ToolInvoker
	limits     Limits
	logger     *slog.Logger
}

// NewRuntime binds an agent to its generator and tool invoker.
func NewRuntime(ag *ent.Agent, client *ent.Client, b *bus.Bus, machine *conversation.Machine, watermarks *services.WatermarkService, publisher *events.Publisher, generator TextGenerator, invoker ToolInvoker, limits Limits) *Runtime {
	if limits.StepBudget <= 0 {
		limits.StepBudget = DefaultLimits().StepBudget
	}
	if limits.HistoryWindow <= 0 {
		limits.HistoryWindow = DefaultLimits().HistoryWindow
	}
	return &Runtime{
		agent:      ag,
		client:     client,
		bus:        b,
		machine:    machine,
		watermarks: watermarks,
		publisher:  publisher,
		generator:  generator,
		invoker:    NewACLInvoker(ag.ID, ag.ToolCapabilities, invoker),
		limits:     limits,
		logger:     slog.With("agent_id", ag.ID, "role", string(ag.Role)),
	}
}

// Run registers with the bus, replays the unread tail, and processes the
// inbound queue until ctx is canceled. Blocking; callers run it in its own
// goroutine (see Supervisor).
func (r *Runtime) Run(ctx context.Context) error {
	inbound, err := r.bus.Register(r.agent.ID)
	if err != nil {
		return err
	}
	defer r.bus.Unregister(r.agent.ID)

	if _, err := r.bus.ReplayPending(ctx, r.agent.ID); err != nil {
		r.logger.Error("Replay failed", "error", err)
	}

	r.logger.Info("Agent runtime started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Agent runtime stopped")
			return nil
		case msg, ok := <-inbound:
			if !ok {
				return nil
			}
			if err := r.handle(ctx, msg); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				r.logger.Error("Message handling failed",
					"message_id", msg.ID,
					"error", err)
			}
		}
	}
}

// handle processes one inbound message. Broadcasts and informational
// messages only advance the watermark; questions addressed to this agent
// produce an answer, answers produce an acknowledgment.
func (r *Runtime) handle(ctx context.Context, msg *ent.Message) error {
	if msg.ConversationID == nil {
		r.logger.Debug("Broadcast received", "message_id", msg.ID, "type", string(msg.Type))
		return nil
	}
	convID := *msg.ConversationID

	conv, err := r.client.Conversation.Get(ctx, convID)
	if err != nil {
		return fmt.Errorf("failed to load conversation: %w", err)
	}

	switch {
	case msg.Type == entmessage.TypeQuestion && conv.CurrentResponderAgentID == r.agent.ID &&
		conv.State == entconversation.StateWaiting:
		if err := r.respond(ctx, conv, msg); err != nil {
			return err
		}
	case msg.Type == entmessage.TypeAnswer && conv.AskerAgentID == r.agent.ID &&
		conv.State == entconversation.StateAnswered:
		if _, _, err := r.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
			SenderAgentID: r.agent.ID,
			Type:          entmessage.TypeAcknowledgment,
			Content:       "acknowledged",
		}); err != nil && !errors.Is(err, services.ErrIllegalTransition) {
			return err
		}
	default:
		// Informational message; nothing to produce
	}

	return r.advanceWatermark(ctx, conv.ID)
}

// respond runs the generate/tool loop and posts the answer. Generator
// failures record a human_intervention_required message and leave the
// conversation in waiting.
func (r *Runtime) respond(ctx context.Context, conv *ent.Conversation, question *ent.Message) error {
	history, err := r.loadHistory(ctx, conv.ID)
	if err != nil {
		return err
	}

	cfg, err := DecodeGeneratorRef(r.agent.GeneratorRef)
	if err != nil {
		return r.recordGeneratorFailure(ctx, conv, err)
	}

	answer, err := r.generateLoop(ctx, conv, cfg, history)
	if err != nil {
		if ctx.Err() != nil {
			// Canceled mid-generation; unwind without partial writes
			return ctx.Err()
		}
		return r.recordGeneratorFailure(ctx, conv, err)
	}

	_, _, err = r.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: r.agent.ID,
		Type:          entmessage.TypeAnswer,
		Content:       answer,
	})
	if errors.Is(err, services.ErrIllegalTransition) {
		// Conversation advanced while we generated; the answer is stale
		r.logger.Warn("Discarding stale answer", "conversation_id", conv.ID)
		return nil
	}
	return err
}

// generateLoop feeds tool results back into the generator up to the step
// budget and returns the final text.
func (r *Runtime) generateLoop(ctx context.Context, conv *ent.Conversation, cfg GeneratorConfig, history []ConversationMessage) (string, error) {
	msgs := history
	for step := 0; step < r.limits.StepBudget; step++ {
		text, toolCalls, err := r.generateOnce(ctx, conv, cfg, msgs)
		if err != nil {
			return "", err
		}
		if len(toolCalls) == 0 {
			if text == "" {
				return "", fmt.Errorf("generator produced empty reply: %w", services.ErrUpstreamUnavailable)
			}
			return text, nil
		}

		msgs = append(msgs, ConversationMessage{
			Role:      "assistant",
			Content:   text,
			ToolCalls: toolCalls,
		})
		for _, call := range toolCalls {
			result, err := r.invoker.Invoke(ctx, call)
			if err != nil {
				if services.IsPermissionError(err) {
					r.recordToolDenied(ctx, conv, call)
					result = fmt.Sprintf("tool %s denied: not in this agent's capabilities", call.Name)
				} else {
					return "", fmt.Errorf("tool %s: %w", call.Name, err)
				}
			}
			msgs = append(msgs, ConversationMessage{
				Role:       "tool",
				Content:    result,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}
	return "", fmt.Errorf("step budget of %d exhausted: %w", r.limits.StepBudget, services.ErrUpstreamUnavailable)
}

// generateOnce runs one generator call, streaming text deltas to SSE
// subscribers as transient answer_streaming frames.
func (r *Runtime) generateOnce(ctx context.Context, conv *ent.Conversation, cfg GeneratorConfig, msgs []ConversationMessage) (string, []ToolCall, error) {
	chunks, err := r.generator.Generate(ctx, &GenerateInput{
		ConversationID: conv.ID,
		AgentID:        r.agent.ID,
		Messages:       msgs,
		Config:         cfg,
		Tools:          r.invoker.Definitions(),
	})
	if err != nil {
		return "", nil, err
	}

	var (
		text      strings.Builder
		toolCalls []ToolCall
	)
	for {
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				return text.String(), toolCalls, nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
				if r.publisher != nil {
					_ = r.publisher.PublishAnswerStreaming(ctx, conv.SquadID, events.AnswerStreamingPayload{
						ConversationID: conv.ID,
						AgentID:        r.agent.ID,
						Delta:          c.Content,
					})
				}
			case *ToolCallChunk:
				toolCalls = append(toolCalls, ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
			case *ErrorChunk:
				return "", nil, fmt.Errorf("%s: %w", c.Message, services.ErrUpstreamUnavailable)
			case *UsageChunk:
				r.logger.Debug("Generation usage",
					"conversation_id", conv.ID,
					"total_tokens", c.TotalTokens)
			}
		}
	}
}

// loadHistory builds the generation history: system prompt plus the most
// recent messages inside the window, mapped to roles from this agent's
// perspective.
func (r *Runtime) loadHistory(ctx context.Context, conversationID string) ([]ConversationMessage, error) {
	rows, err := r.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Desc(entmessage.FieldCreatedAt), ent.Desc(entmessage.FieldID)).
		Limit(r.limits.HistoryWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	history := make([]ConversationMessage, 0, len(rows)+1)
	history = append(history, ConversationMessage{Role: "system", Content: r.agent.SystemPrompt})
	// rows are newest-first; reverse into chronological order
	for i := len(rows) - 1; i >= 0; i-- {
		msg := rows[i]
		role := "user"
		if msg.SenderAgentID == r.agent.ID {
			role = "assistant"
		}
		history = append(history, ConversationMessage{Role: role, Content: msg.Content})
	}
	return history, nil
}

// recordGeneratorFailure appends a human_intervention_required message.
// The conversation stays in waiting for an operator or the escalation
// timer to unblock it.
func (r *Runtime) recordGeneratorFailure(ctx context.Context, conv *ent.Conversation, cause error) error {
	r.logger.Error("Generator failed", "conversation_id", conv.ID, "error", cause)
	if r.publisher != nil {
		_ = r.publisher.PublishError(ctx, conv.SquadID, events.ErrorPayload{
			ConversationID: conv.ID,
			Code:           "upstream_unavailable",
			Message:        cause.Error(),
		})
	}

	_, _, err := r.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: r.agent.ID,
		Type:          entmessage.TypeHumanInterventionRequired,
		Content:       fmt.Sprintf("generator failure: %v", cause),
	})
	return err
}

// recordToolDenied logs an ACL violation as a system message without
// advancing conversation state.
func (r *Runtime) recordToolDenied(ctx context.Context, conv *ent.Conversation, call ToolCall) {
	r.logger.Warn("Tool call denied by ACL", "conversation_id", conv.ID, "tool", call.Name)
	_, _, err := r.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: r.agent.ID,
		Type:          entmessage.TypeSystem,
		Content:       fmt.Sprintf("tool call %s denied: outside agent capabilities", call.Name),
	})
	if err != nil {
		r.logger.Error("Failed to record ACL violation", "error", err)
	}
}

// advanceWatermark marks the conversation's log head as processed.
// Redelivery is at-least-once: anything appended between the read and a
// crash is replayed, and handlers are idempotent by message id.
func (r *Runtime) advanceWatermark(ctx context.Context, conversationID string) error {
	head, err := r.client.ConversationEvent.Query().
		Where(conversationevent.ConversationIDEQ(conversationID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to read log head: %w", err)
	}
	return r.watermarks.Advance(ctx, r.agent.ID, conversationID, head)
}
