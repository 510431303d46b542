package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
	entmessage "github.com/squadflow/squadflow/ent/message"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
	testdb "github.com/squadflow/squadflow/test/database"
)

// recordingDeliverer captures post-commit deliveries.
type recordingDeliverer struct {
	mu         sync.Mutex
	recipients []string
	messages   []*ent.Message
}

func (d *recordingDeliverer) EnqueueCommitted(_ context.Context, _, recipientAgentID string, msg *ent.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipients = append(d.recipients, recipientAgentID)
	d.messages = append(d.messages, msg)
	return nil
}

type machineFixture struct {
	client    *database.Client
	machine   *Machine
	deliverer *recordingDeliverer
	squad     *ent.Squad
	backend   *ent.Agent
	lead      *ent.Agent
	pm        *ent.Agent
}

// newMachineFixture builds a squad with an escalation chain:
// backend_developer asks, tech_lead answers at level 0, project_manager at
// level 1.
func newMachineFixture(t *testing.T) *machineFixture {
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
	backend := addAgent(entagent.RoleBackendDeveloper)
	lead := addAgent(entagent.RoleTechLead)
	pm := addAgent(entagent.RoleProjectManager)

	_, err = squadSvc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:     "backend_developer",
		QuestionType:  "architecture",
		ResponderRole: "tech_lead",
	})
	require.NoError(t, err)
	_, err = squadSvc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:       "backend_developer",
		QuestionType:    "architecture",
		EscalationLevel: 1,
		ResponderRole:   "project_manager",
	})
	require.NoError(t, err)

	routes := routing.NewCache(squadSvc.LoadRoutingSnapshot)
	squadSvc.SetRuleChangeHook(routes.Invalidate)

	logSvc := services.NewEventLogService(client.Client)
	machine := NewMachine(client.Client, logSvc, routes, Timeouts{
		Answer: time.Minute,
		Ack:    time.Minute,
	})
	deliverer := &recordingDeliverer{}
	machine.SetDeliverer(deliverer)

	return &machineFixture{
		client:    client,
		machine:   machine,
		deliverer: deliverer,
		squad:     sq,
		backend:   backend,
		lead:      lead,
		pm:        pm,
	}
}

func (f *machineFixture) open(t *testing.T) *models.ConversationDetail {
	t.Helper()
	conv, err := f.machine.Open(context.Background(), models.OpenConversationRequest{
		SquadID:      f.squad.ID,
		AskerAgentID: f.backend.ID,
		QuestionType: "architecture",
		Content:      "how should the cache invalidate?",
	})
	require.NoError(t, err)
	return conv
}

func TestMachine_Open(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()

	conv := f.open(t)
	assert.Equal(t, entconversation.StateWaiting, conv.State)
	assert.Equal(t, f.lead.ID, conv.CurrentResponderAgentID)
	assert.Equal(t, "tech_lead", conv.ResponderRole)
	assert.Zero(t, conv.EscalationLevel)

	// The question was delivered to the resolved responder.
	require.Len(t, f.deliverer.recipients, 1)
	assert.Equal(t, f.lead.ID, f.deliverer.recipients[0])
	assert.Equal(t, "how should the cache invalidate?", f.deliverer.messages[0].Content)

	// The log opens with initiated at sequence 1.
	tl, err := services.NewEventLogService(f.client.Client).ReadTimeline(ctx, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, tl.Events, 1)
	assert.Equal(t, 1, tl.Events[0].Sequence)
	assert.Equal(t, "initiated", string(tl.Events[0].Kind))
}

func TestMachine_OpenValidation(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()

	_, err := f.machine.Open(ctx, models.OpenConversationRequest{
		SquadID:      f.squad.ID,
		AskerAgentID: f.backend.ID,
		QuestionType: "architecture",
	})
	assert.True(t, services.IsValidationError(err), "content is required")

	_, err = f.machine.Open(ctx, models.OpenConversationRequest{
		SquadID:      "missing",
		AskerAgentID: f.backend.ID,
		QuestionType: "architecture",
		Content:      "q",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	// A routing miss creates nothing.
	_, err = f.machine.Open(ctx, models.OpenConversationRequest{
		SquadID:      f.squad.ID,
		AskerAgentID: f.lead.ID,
		QuestionType: "architecture",
		Content:      "q",
	})
	require.ErrorIs(t, err, routing.ErrNoResponder)

	n, err := f.client.Conversation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMachine_AnswerAckFlow(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	// Only the current responder may answer.
	_, _, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.pm.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "not my question",
	})
	assert.True(t, services.IsValidationError(err))

	msg, updated, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "invalidate on write",
	})
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateAnswered, updated.State)
	require.NotNil(t, msg.RecipientAgentID)
	assert.Equal(t, f.backend.ID, *msg.RecipientAgentID)

	// A redelivered answer is a no-op.
	dup, again, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "invalidate on write",
	})
	require.NoError(t, err)
	assert.Nil(t, dup)
	assert.Equal(t, entconversation.StateAnswered, again.State)

	// Only the asker may acknowledge.
	_, _, err = f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAcknowledgment,
	})
	assert.True(t, services.IsValidationError(err))

	_, closed, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.backend.ID,
		Type:          entmessage.TypeAcknowledgment,
		Content:       "thanks",
	})
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateAcknowledged, closed.State)
	assert.NotNil(t, closed.ClosedAt)

	// The log grew monotonically: initiated, answered, acknowledged.
	tl, err := services.NewEventLogService(f.client.Client).ReadTimeline(ctx, conv.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, tl.Events, 3)
	for i, evt := range tl.Events {
		assert.Equal(t, i+1, evt.Sequence)
	}

	// Closed conversations reject further messages.
	_, _, err = f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.backend.ID,
		Type:          entmessage.TypeStatusUpdate,
		Content:       "one more thing",
	})
	assert.ErrorIs(t, err, services.ErrIllegalTransition)
}

func TestMachine_FollowUpReopensWaiting(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	_, _, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "invalidate on write",
	})
	require.NoError(t, err)

	_, updated, err := f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.backend.ID,
		Type:          entmessage.TypeQuestion,
		Content:       "what about stale reads?",
	})
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateWaiting, updated.State)
	assert.Zero(t, updated.EscalationLevel, "follow-ups stay on the same conversation")
}

func TestMachine_Escalate(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	child, err := f.machine.Escalate(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, child.EscalationLevel)
	assert.Equal(t, f.pm.ID, child.CurrentResponderAgentID)
	require.NotNil(t, child.ParentConversationID)
	assert.Equal(t, conv.ID, *child.ParentConversationID)

	parent, err := f.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateEscalated, parent.State)

	// The child opens with the original question.
	msgs, err := services.NewConversationService(f.client.Client).GetMessages(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "how should the cache invalidate?", msgs[0].Content)

	// Escalating an escalated parent is idempotent.
	again, err := f.machine.Escalate(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateEscalated, again.State)

	// The chain is exhausted above level 1.
	_, err = f.machine.Escalate(ctx, child.ID)
	assert.ErrorIs(t, err, routing.ErrNoResponder)
}

func TestMachine_AnswerTimeout(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	// The timer escalates while the chain has a next level.
	require.NoError(t, f.machine.HandleAnswerTimeout(ctx, conv.ID))
	parent, err := f.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateEscalated, parent.State)

	children, err := f.client.Conversation.Query().
		Where(entconversation.ParentConversationIDEQ(conv.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, children, 1)

	// On the last level the timer times the conversation out.
	require.NoError(t, f.machine.HandleAnswerTimeout(ctx, children[0].ID))
	child, err := f.client.Conversation.Get(ctx, children[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateTimedOut, child.State)
	assert.NotNil(t, child.ClosedAt)

	// A late timer on a settled conversation is a no-op.
	require.NoError(t, f.machine.HandleAnswerTimeout(ctx, children[0].ID))
}

func TestMachine_AckTimeout(t *testing.T) {
	f := newMachineFixture(t)
	ctx := context.Background()
	conv := f.open(t)

	// Not answered yet: nothing to abandon.
	require.NoError(t, f.machine.HandleAckTimeout(ctx, conv.ID))
	cur, err := f.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateWaiting, cur.State)

	_, _, err = f.machine.HandleMessage(ctx, conv.ID, models.PostMessageRequest{
		SenderAgentID: f.lead.ID,
		Type:          entmessage.TypeAnswer,
		Content:       "invalidate on write",
	})
	require.NoError(t, err)

	require.NoError(t, f.machine.HandleAckTimeout(ctx, conv.ID))
	cur, err = f.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entconversation.StateAbandoned, cur.State)
	assert.NotNil(t, cur.ClosedAt)
}
