package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/conversationevent"
	entevent "github.com/squadflow/squadflow/ent/event"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
)

func TestEventLogService_Append(t *testing.T) {
	client, sq, asker, _, conv := newFixture(t)
	svc := NewEventLogService(client.Client)
	ctx := context.Background()

	_, err := svc.Append(ctx, sq.ID, models.AppendEventRequest{Kind: conversationevent.KindInitiated})
	assert.True(t, IsValidationError(err), "conversation id is required")

	first, err := svc.Append(ctx, sq.ID, models.AppendEventRequest{
		ConversationID: conv.ID,
		Kind:           conversationevent.KindInitiated,
		Payload:        map[string]any{"question_type": "architecture"},
		AuthorAgentID:  &asker.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sequence)

	second, err := svc.Append(ctx, sq.ID, models.AppendEventRequest{
		ConversationID: conv.ID,
		Kind:           conversationevent.KindStateChanged,
		Payload:        map[string]any{"from": "initiated", "to": "waiting"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Sequence)

	// Each append writes one outbox row on the squad channel.
	frames, err := client.Event.Query().
		Where(entevent.ChannelEQ(events.SquadChannel(sq.ID))).
		Order(ent.Asc(entevent.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, sq.ID, frames[0].SquadID)
	assert.Equal(t, "initiated", frames[0].Payload["type"])

	// The conversation's updated_at is bumped with every append.
	reloaded, err := client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.UpdatedAt.After(conv.UpdatedAt) || reloaded.UpdatedAt.Equal(conv.UpdatedAt))

	_, err = svc.Append(ctx, sq.ID, models.AppendEventRequest{
		ConversationID: "missing",
		Kind:           conversationevent.KindInitiated,
	})
	assert.Error(t, err)
}

func TestEventLogService_AppendMessage(t *testing.T) {
	client, sq, asker, responder, conv := newFixture(t)
	svc := NewEventLogService(client.Client)
	ctx := context.Background()

	msg, evt, err := svc.AppendMessage(ctx, AppendMessageParams{
		SquadID:          sq.ID,
		ConversationID:   conv.ID,
		SenderAgentID:    asker.ID,
		SenderRole:       "backend_developer",
		RecipientAgentID: responder.ID,
		RecipientRole:    "tech_lead",
		Type:             entmessage.TypeQuestion,
		Content:          "how should the cache invalidate?",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, evt.Sequence)
	assert.Equal(t, conversationevent.KindMessageAppended, evt.Kind)
	assert.Equal(t, msg.ID, evt.Payload["message_id"])
	require.NotNil(t, msg.ConversationID)
	assert.Equal(t, conv.ID, *msg.ConversationID)

	// The message frame is on the outbox with denormalized roles.
	frames, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "message", frames[0].Payload["type"])
	assert.Equal(t, "tech_lead", frames[0].Payload["recipient_role"])

	_, _, err = svc.AppendMessage(ctx, AppendMessageParams{
		SquadID:        sq.ID,
		ConversationID: conv.ID,
		SenderAgentID:  asker.ID,
		Type:           entmessage.TypeQuestion,
	})
	assert.True(t, IsValidationError(err), "content is required")
}

func TestEventLogService_SaveBroadcast(t *testing.T) {
	client, sq, _, responder, _ := newFixture(t)
	svc := NewEventLogService(client.Client)
	ctx := context.Background()

	msg, err := svc.SaveBroadcast(ctx, AppendMessageParams{
		SquadID:       sq.ID,
		SenderAgentID: responder.ID,
		SenderRole:    "tech_lead",
		Type:          entmessage.TypeStandup,
		Content:       "daily standup in 5",
	})
	require.NoError(t, err)
	assert.Nil(t, msg.ConversationID)

	// Broadcasts write no log event, only the outbox frame.
	n, err := client.ConversationEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	frames, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, events.SquadChannel(sq.ID), frames[0].Channel)
}

func TestEventLogService_ReadTimeline(t *testing.T) {
	client, sq, _, _, conv := newFixture(t)
	svc := NewEventLogService(client.Client)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := svc.Append(ctx, sq.ID, models.AppendEventRequest{
			ConversationID: conv.ID,
			Kind:           conversationevent.KindExternalNote,
			Payload:        map[string]any{"n": i},
		})
		require.NoError(t, err)
	}

	tl, err := svc.ReadTimeline(ctx, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, tl.Events, 4)
	for i, evt := range tl.Events {
		assert.Equal(t, i+1, evt.Sequence)
	}

	tl, err = svc.ReadTimeline(ctx, conv.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, tl.Events, 1)
	assert.Equal(t, 3, tl.Events[0].Sequence)

	_, err = svc.ReadTimeline(ctx, "missing", 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventLogService_PublishFrameTx(t *testing.T) {
	client, sq, _, _, _ := newFixture(t)
	svc := NewEventLogService(client.Client)
	ctx := context.Background()

	var frameID int64
	err := svc.WithTx(ctx, func(tx *ent.Tx) error {
		var err error
		frameID, err = svc.PublishFrameTx(ctx, tx, sq.ID, events.SquadChannel(sq.ID), map[string]any{
			"type": "completed",
		})
		return err
	})
	require.NoError(t, err)
	assert.Positive(t, frameID)

	row, err := client.Event.Get(ctx, int(frameID))
	require.NoError(t, err)
	assert.Equal(t, "completed", row.Payload["type"])
}
