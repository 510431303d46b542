package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent/conversation"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/models"
)

func TestConversationService_GetConversation(t *testing.T) {
	client, _, _, _, conv := newFixture(t)
	svc := NewConversationService(client.Client)
	ctx := context.Background()

	detail, err := svc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, detail.Conversation.ID)
	assert.Equal(t, "tech_lead", detail.ResponderRole)

	_, err = svc.GetConversation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationService_ListConversations(t *testing.T) {
	client, sq, asker, responder, _ := newFixture(t)
	svc := NewConversationService(client.Client)
	ctx := context.Background()

	execID := "exec-42"
	tagged, err := client.Conversation.Create().
		SetID(uuid.NewString()).
		SetSquadID(sq.ID).
		SetTaskExecutionID(execID).
		SetAskerAgentID(asker.ID).
		SetCurrentResponderAgentID(responder.ID).
		SetQuestionType("implementation").
		SetState(conversation.StateWaiting).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.ListConversations(ctx, models.ConversationListParams{})
	assert.True(t, IsValidationError(err), "squad id is required")

	resp, err := svc.ListConversations(ctx, models.ConversationListParams{SquadID: sq.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = svc.ListConversations(ctx, models.ConversationListParams{
		SquadID: sq.ID,
		State:   "waiting",
	})
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, tagged.ID, resp.Conversations[0].ID)

	_, err = svc.ListConversations(ctx, models.ConversationListParams{
		SquadID: sq.ID,
		State:   "sleeping",
	})
	assert.True(t, IsValidationError(err))

	resp, err = svc.ListConversations(ctx, models.ConversationListParams{
		SquadID:         sq.ID,
		TaskExecutionID: execID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, tagged.ID, resp.Conversations[0].ID)

	// Untagged conversations are unaffected by the filter.
	resp, err = svc.ListConversations(ctx, models.ConversationListParams{
		SquadID:         sq.ID,
		TaskExecutionID: "exec-other",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Conversations)
}

func TestConversationService_GetMessages(t *testing.T) {
	client, sq, asker, responder, conv := newFixture(t)
	svc := NewConversationService(client.Client)
	logSvc := NewEventLogService(client.Client)
	ctx := context.Background()

	for _, content := range []string{"q1", "a1", "ack1"} {
		_, _, err := logSvc.AppendMessage(ctx, AppendMessageParams{
			SquadID:          sq.ID,
			ConversationID:   conv.ID,
			SenderAgentID:    asker.ID,
			RecipientAgentID: responder.ID,
			Type:             entmessage.TypeQuestion,
			Content:          content,
		})
		require.NoError(t, err)
	}

	msgs, err := svc.GetMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "q1", msgs[0].Content)
	assert.Equal(t, "ack1", msgs[2].Content)
}
