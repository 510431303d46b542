package events

import "time"

// Envelope is the minimal frame header present in every payload. The outbox
// publisher injects FrameID at write time; the stream manager reads it back
// to build the SSE "id:" field.
type Envelope struct {
	FrameID int64  `json:"frame_id,omitempty"`
	Type    string `json:"type"`
}

// MessagePayload is the SSE data for a message frame.
type MessagePayload struct {
	Type             string            `json:"type"`
	MessageID        string            `json:"message_id"`
	ConversationID   string            `json:"conversation_id,omitempty"`
	SenderAgentID    string            `json:"sender_agent_id"`
	SenderRole       string            `json:"sender_role"`
	RecipientAgentID string            `json:"recipient_agent_id,omitempty"`
	RecipientRole    string            `json:"recipient_role,omitempty"`
	MessageType      string            `json:"message_type"`
	Content          string            `json:"content"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Sequence         int               `json:"sequence,omitempty"`
	OccurredAt       time.Time         `json:"occurred_at"`
}

// StateChangedPayload is the SSE data for a conversation state transition.
type StateChangedPayload struct {
	Type           string    `json:"type"`
	ConversationID string    `json:"conversation_id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Reason         string    `json:"reason"`
	Sequence       int       `json:"sequence"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// AnswerStreamingPayload is a transient delta while a responder's generator
// is producing output. NOTIFY-only, never persisted.
type AnswerStreamingPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	AgentID        string `json:"agent_id"`
	Delta          string `json:"delta"`
}

// AnswerCompletePayload carries the full answer text once generation ends.
type AnswerCompletePayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
	AgentID        string `json:"agent_id"`
	Content        string `json:"content"`
}

// CompletedPayload signals a conversation reached a terminal state.
type CompletedPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	State          string `json:"state"`
}

// ErrorPayload reports a recorded failure (generator, tool, bus).
type ErrorPayload struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Code           string `json:"code"`
	Message        string `json:"message"`
}
