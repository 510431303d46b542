package bus

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/services"
	testdb "github.com/squadflow/squadflow/test/database"
)

type busFixture struct {
	client *database.Client
	bus    *Bus
	log    *services.EventLogService
	squad  *ent.Squad
	asker  *ent.Agent
	lead   *ent.Agent
	pm     *ent.Agent
}

func newBusFixture(t *testing.T, cfg Config) *busFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	squadSvc := services.NewSquadService(client.Client)
	sq, err := squadSvc.CreateSquad(ctx, models.CreateSquadRequest{OwnerID: "owner-1", Name: "Delivery"})
	require.NoError(t, err)

	addAgent := func(role entagent.Role) *ent.Agent {
		ag, err := squadSvc.CreateAgent(ctx, sq.ID, models.CreateAgentRequest{
			Role:         role,
			GeneratorRef: map[string]any{"vendor": "mock"},
			SystemPrompt: "You are a " + string(role),
		})
		require.NoError(t, err)
		return ag
	}

	logSvc := services.NewEventLogService(client.Client)
	return &busFixture{
		client: client,
		bus:    New(client.Client, logSvc, services.NewWatermarkService(client.Client), cfg),
		log:    logSvc,
		squad:  sq,
		asker:  addAgent(entagent.RoleBackendDeveloper),
		lead:   addAgent(entagent.RoleTechLead),
		pm:     addAgent(entagent.RoleProjectManager),
	}
}

func (f *busFixture) newConversation(t *testing.T) *ent.Conversation {
	t.Helper()
	conv, err := f.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetSquadID(f.squad.ID).
		SetAskerAgentID(f.asker.ID).
		SetCurrentResponderAgentID(f.lead.ID).
		SetQuestionType("architecture").
		Save(context.Background())
	require.NoError(t, err)
	return conv
}

// appendMessage writes a message with its log event, as the state machine
// would, and returns it.
func (f *busFixture) appendMessage(t *testing.T, conversationID, senderID, recipientID, content string) *ent.Message {
	t.Helper()
	msg, _, err := f.log.AppendMessage(context.Background(), services.AppendMessageParams{
		SquadID:          f.squad.ID,
		ConversationID:   conversationID,
		SenderAgentID:    senderID,
		RecipientAgentID: recipientID,
		Type:             entmessage.TypeQuestion,
		Content:          content,
	})
	require.NoError(t, err)
	return msg
}

func TestBus_RegisterUnregister(t *testing.T) {
	f := newBusFixture(t, DefaultConfig())

	q, err := f.bus.Register(f.lead.ID)
	require.NoError(t, err)

	_, err = f.bus.Register(f.lead.ID)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	f.bus.Unregister(f.lead.ID)
	_, ok := <-q
	assert.False(t, ok, "queue is closed on unregister")

	// The slot is free again.
	_, err = f.bus.Register(f.lead.ID)
	require.NoError(t, err)
}

func TestBus_EnqueueCommitted(t *testing.T) {
	f := newBusFixture(t, DefaultConfig())
	ctx := context.Background()
	conv := f.newConversation(t)
	msg := f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q1")

	// No queue registered: delivery is silently skipped, replay covers it.
	require.NoError(t, f.bus.EnqueueCommitted(ctx, f.squad.ID, f.lead.ID, msg))

	q, err := f.bus.Register(f.lead.ID)
	require.NoError(t, err)
	require.NoError(t, f.bus.EnqueueCommitted(ctx, f.squad.ID, f.lead.ID, msg))
	assert.Equal(t, 1, f.bus.QueueDepth(f.lead.ID))

	got := <-q
	assert.Equal(t, msg.ID, got.ID)
}

func TestBus_Backpressure(t *testing.T) {
	f := newBusFixture(t, Config{QueueSize: 1, MaxRetries: 1})
	ctx := context.Background()
	conv := f.newConversation(t)
	first := f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q1")
	second := f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q2")

	_, err := f.bus.Register(f.lead.ID)
	require.NoError(t, err)
	require.NoError(t, f.bus.EnqueueCommitted(ctx, f.squad.ID, f.lead.ID, first))

	// The queue is full and nobody drains it.
	err = f.bus.EnqueueCommitted(ctx, f.squad.ID, f.lead.ID, second)
	require.ErrorIs(t, err, services.ErrBackpressure)

	// The failure is recorded as a system message on the conversation.
	msgs, err := f.client.Message.Query().
		Where(entmessage.TypeEQ(entmessage.TypeSystem)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].ConversationID)
	assert.Equal(t, conv.ID, *msgs[0].ConversationID)
}

func TestBus_Broadcast(t *testing.T) {
	f := newBusFixture(t, DefaultConfig())
	ctx := context.Background()

	leadQ, err := f.bus.Register(f.lead.ID)
	require.NoError(t, err)
	_, err = f.bus.Register(f.pm.ID)
	require.NoError(t, err)
	askerQ, err := f.bus.Register(f.asker.ID)
	require.NoError(t, err)

	msg, err := f.bus.Broadcast(ctx, f.squad.ID, models.BroadcastRequest{
		SenderAgentID: f.pm.ID,
		Type:          entmessage.TypeStandup,
		Content:       "daily standup in 5",
	})
	require.NoError(t, err)
	assert.Nil(t, msg.ConversationID)

	// Everyone but the sender gets a copy.
	assert.Equal(t, msg.ID, (<-leadQ).ID)
	assert.Equal(t, msg.ID, (<-askerQ).ID)
	assert.Zero(t, f.bus.QueueDepth(f.pm.ID))

	_, err = f.bus.Broadcast(ctx, f.squad.ID, models.BroadcastRequest{
		SenderAgentID: "missing",
		Type:          entmessage.TypeStandup,
		Content:       "x",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBus_ReplayPending(t *testing.T) {
	f := newBusFixture(t, DefaultConfig())
	ctx := context.Background()
	conv := f.newConversation(t)

	f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q1")
	delivered := f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q2")
	pending := f.appendMessage(t, conv.ID, f.asker.ID, f.lead.ID, "q3")
	// A message addressed to someone else is never replayed to the lead.
	f.appendMessage(t, conv.ID, f.lead.ID, f.asker.ID, "a1")

	// The lead has processed everything up to q2's event.
	evts, err := f.log.ReadTimeline(ctx, conv.ID, 0, 0)
	require.NoError(t, err)
	var deliveredSeq int
	for _, evt := range evts.Events {
		if evt.Payload["message_id"] == delivered.ID {
			deliveredSeq = evt.Sequence
		}
	}
	require.Positive(t, deliveredSeq)
	wmSvc := services.NewWatermarkService(f.client.Client)
	require.NoError(t, wmSvc.Advance(ctx, f.lead.ID, conv.ID, deliveredSeq))

	q, err := f.bus.Register(f.lead.ID)
	require.NoError(t, err)

	n, err := f.bus.ReplayPending(ctx, f.lead.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, pending.ID, (<-q).ID)
}
