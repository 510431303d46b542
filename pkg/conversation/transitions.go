// Package conversation drives the lifecycle of inter-agent question
// threads: the state machine, escalation, and the timeout timer service.
package conversation

import (
	"github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
)

// Transition reasons recorded in the state_changed payload.
const (
	ReasonQuestionDelivered = "question_delivered"
	ReasonAnswerReceived    = "answer_received"
	ReasonAckReceived       = "acknowledgment_received"
	ReasonFollowUpQuestion  = "follow_up_question"
	ReasonAnswerTimeout     = "answer_timeout"
	ReasonAckTimeout        = "ack_timeout"
	ReasonExplicitEscalate  = "explicit_escalate"
	ReasonChainExhausted    = "escalation_chain_exhausted"
)

// allowed maps each non-terminal state to the states it may transition to.
var allowed = map[conversation.State]map[conversation.State]bool{
	conversation.StateInitiated: {
		conversation.StateWaiting: true,
	},
	conversation.StateWaiting: {
		conversation.StateAnswered:  true,
		conversation.StateEscalated: true,
		conversation.StateTimedOut:  true,
	},
	conversation.StateAnswered: {
		conversation.StateAcknowledged: true,
		conversation.StateWaiting:      true,
		conversation.StateAbandoned:    true,
	},
}

// terminal states close the conversation; closed_at is set on entry.
var terminal = map[conversation.State]bool{
	conversation.StateAcknowledged: true,
	conversation.StateTimedOut:     true,
	conversation.StateAbandoned:    true,
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to conversation.State) bool {
	return allowed[from][to]
}

// IsTerminal reports whether a state closes the conversation.
func IsTerminal(state conversation.State) bool {
	return terminal[state]
}

// eventKindFor returns the log event kind recording a transition into the
// given state. States without a dedicated kind are recorded as
// state_changed; the payload carries {from, to, reason} either way.
func eventKindFor(to conversation.State) conversationevent.Kind {
	switch to {
	case conversation.StateAnswered:
		return conversationevent.KindAnswered
	case conversation.StateAcknowledged:
		return conversationevent.KindAcknowledged
	case conversation.StateEscalated:
		return conversationevent.KindEscalated
	case conversation.StateTimedOut:
		return conversationevent.KindTimedOut
	default:
		return conversationevent.KindStateChanged
	}
}
