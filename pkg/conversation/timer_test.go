package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entconversation "github.com/squadflow/squadflow/ent/conversation"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/models"
)

func TestTimerService_FiresOverdueAnswerTimeout(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	// Backdate the timer anchor so the answer timeout is overdue.
	require.NoError(t, f.client.Conversation.UpdateOneID(conv.ID).
		SetUpdatedAt(time.Now().Add(-2*time.Minute)).
		Exec(ctx))

	timers := NewTimerService(f.client.Client, f.machine)
	timers.Start(ctx)
	defer timers.Stop()

	require.Eventually(t, func() bool {
		cur, err := f.client.Conversation.Get(ctx, conv.ID)
		return err == nil && cur.State == entconversation.StateEscalated
	}, 5*time.Second, 50*time.Millisecond)
}

func TestTimerService_FiresOverdueAckTimeout(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	_, _, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "invalidate on write",
	})
	require.NoError(t, err)

	require.NoError(t, f.client.Conversation.UpdateOneID(conv.ID).
		SetUpdatedAt(time.Now().Add(-2*time.Minute)).
		Exec(ctx))

	timers := NewTimerService(f.client.Client, f.machine)
	timers.Start(ctx)
	defer timers.Stop()

	require.Eventually(t, func() bool {
		cur, err := f.client.Conversation.Get(ctx, conv.ID)
		return err == nil && cur.State == entconversation.StateAbandoned
	}, 5*time.Second, 50*time.Millisecond)
}

func TestTimerService_LeavesFreshConversationsAlone(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	timers := NewTimerService(f.client.Client, f.machine)
	timers.Start(ctx)
	time.Sleep(300 * time.Millisecond)
	timers.Stop()

	cur, err := f.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateWaiting, cur.State)
}
