package models

import (
	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/conversationevent"
)

// OpenConversationRequest contains fields for posting the initial question of
// a new conversation.
type OpenConversationRequest struct {
	SquadID         string            `json:"squad_id"`
	TaskExecutionID *string           `json:"task_execution_id,omitempty"`
	AskerAgentID    string            `json:"asker_agent_id"`
	QuestionType    string            `json:"question_type"`
	Content         string            `json:"content"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// ConversationDetail is a conversation together with its responder resolution.
type ConversationDetail struct {
	*ent.Conversation
	ResponderRole string `json:"responder_role,omitempty"`
}

// ConversationListParams contains filtering options for listing conversations.
type ConversationListParams struct {
	SquadID         string `json:"squad_id"`
	State           string `json:"state,omitempty"`
	TaskExecutionID string `json:"task_execution_id,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	Offset          int    `json:"offset,omitempty"`
}

// ConversationListResponse contains a paginated conversation list.
type ConversationListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
	TotalCount    int                 `json:"total_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}

// AppendEventRequest contains fields for appending one event to a
// conversation's log.
type AppendEventRequest struct {
	ConversationID string                 `json:"conversation_id"`
	Kind           conversationevent.Kind `json:"kind"`
	Payload        map[string]any         `json:"payload,omitempty"`
	AuthorAgentID  *string                `json:"author_agent_id,omitempty"`
}

// TimelineResponse contains an ordered slice of a conversation's event log.
type TimelineResponse struct {
	ConversationID string                   `json:"conversation_id"`
	Events         []*ent.ConversationEvent `json:"events"`
}
