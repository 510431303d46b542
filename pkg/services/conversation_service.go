package services

import (
	"context"
	"fmt"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/conversation"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/models"
)

// ConversationService provides read access to conversations. All writes go
// through the state machine in pkg/conversation.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// GetConversation retrieves a conversation with its responder's role
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string) (*models.ConversationDetail, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	detail := &models.ConversationDetail{Conversation: conv}
	if conv.CurrentResponderAgentID != "" {
		responder, err := s.client.Agent.Get(ctx, conv.CurrentResponderAgentID)
		if err == nil {
			detail.ResponderRole = string(responder.Role)
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get responder: %w", err)
		}
	}
	return detail, nil
}

// ListConversations retrieves conversations with filtering and pagination,
// newest first.
func (s *ConversationService) ListConversations(ctx context.Context, params models.ConversationListParams) (*models.ConversationListResponse, error) {
	if params.SquadID == "" {
		return nil, NewValidationError("squad_id", "must not be empty")
	}
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := s.client.Conversation.Query().
		Where(conversation.SquadIDEQ(params.SquadID))
	if params.State != "" {
		state := conversation.State(params.State)
		if err := conversation.StateValidator(state); err != nil {
			return nil, NewValidationError("state", fmt.Sprintf("unknown state %q", params.State))
		}
		query = query.Where(conversation.StateEQ(state))
	}
	if params.TaskExecutionID != "" {
		query = query.Where(conversation.TaskExecutionIDEQ(params.TaskExecutionID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	convs, err := query.
		Order(ent.Desc(conversation.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return &models.ConversationListResponse{
		Conversations: convs,
		TotalCount:    total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// GetMessages retrieves a conversation's messages in commit order
func (s *ConversationService) GetMessages(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(entmessage.FieldCreatedAt), ent.Asc(entmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return msgs, nil
}
