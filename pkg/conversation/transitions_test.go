package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/ent/conversationevent"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    conversation.State
		to      conversation.State
		allowed bool
	}{
		{conversation.StateInitiated, conversation.StateWaiting, true},
		{conversation.StateWaiting, conversation.StateAnswered, true},
		{conversation.StateWaiting, conversation.StateEscalated, true},
		{conversation.StateWaiting, conversation.StateTimedOut, true},
		{conversation.StateAnswered, conversation.StateAcknowledged, true},
		{conversation.StateAnswered, conversation.StateWaiting, true},
		{conversation.StateAnswered, conversation.StateAbandoned, true},

		{conversation.StateInitiated, conversation.StateAnswered, false},
		{conversation.StateWaiting, conversation.StateAcknowledged, false},
		{conversation.StateWaiting, conversation.StateAbandoned, false},
		{conversation.StateAnswered, conversation.StateEscalated, false},
		{conversation.StateAnswered, conversation.StateTimedOut, false},
		{conversation.StateAcknowledged, conversation.StateWaiting, false},
		{conversation.StateTimedOut, conversation.StateWaiting, false},
		{conversation.StateAbandoned, conversation.StateWaiting, false},
		{conversation.StateEscalated, conversation.StateWaiting, false},
	}

	for _, tt := range tests {
		got := CanTransition(tt.from, tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(conversation.StateAcknowledged))
	assert.True(t, IsTerminal(conversation.StateTimedOut))
	assert.True(t, IsTerminal(conversation.StateAbandoned))

	assert.False(t, IsTerminal(conversation.StateInitiated))
	assert.False(t, IsTerminal(conversation.StateWaiting))
	assert.False(t, IsTerminal(conversation.StateAnswered))
	// Escalated conversations stay open as the parent of the escalation chain.
	assert.False(t, IsTerminal(conversation.StateEscalated))
}

func TestEventKindFor(t *testing.T) {
	assert.Equal(t, conversationevent.KindAnswered, eventKindFor(conversation.StateAnswered))
	assert.Equal(t, conversationevent.KindAcknowledged, eventKindFor(conversation.StateAcknowledged))
	assert.Equal(t, conversationevent.KindEscalated, eventKindFor(conversation.StateEscalated))
	assert.Equal(t, conversationevent.KindTimedOut, eventKindFor(conversation.StateTimedOut))
	assert.Equal(t, conversationevent.KindStateChanged, eventKindFor(conversation.StateWaiting))
	assert.Equal(t, conversationevent.KindStateChanged, eventKindFor(conversation.StateAbandoned))
}
