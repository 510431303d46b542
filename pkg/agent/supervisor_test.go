package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
	"github.com/squadflow/squadflow/pkg/bus"
	"github.com/squadflow/squadflow/pkg/conversation"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/routing"
	"github.com/squadflow/squadflow/pkg/services"
	testdb "github.com/squadflow/squadflow/test/database"
)

type supervisorFixture struct {
	client     *database.Client
	supervisor *Supervisor
	machine    *conversation.Machine
	squad      *ent.Squad
	backend    *ent.Agent
	lead       *ent.Agent
}

// newSupervisorFixture wires the full runtime stack over mock generators:
// a backend_developer asker, a tech_lead responder, and one routing rule.
func newSupervisorFixture(t *testing.T) *supervisorFixture {
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
	addAgent(entagent.RoleProjectManager)

	_, err = squadSvc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:     "backend_developer",
		QuestionType:  "architecture",
		ResponderRole: "tech_lead",
	})
	require.NoError(t, err)

	routes := routing.NewCache(squadSvc.LoadRoutingSnapshot)
	squadSvc.SetRuleChangeHook(routes.Invalidate)

	logSvc := services.NewEventLogService(client.Client)
	watermarks := services.NewWatermarkService(client.Client)
	machine := conversation.NewMachine(client.Client, logSvc, routes, conversation.Timeouts{
		Answer: time.Minute,
		Ack:    time.Minute,
	})
	messageBus := bus.New(client.Client, logSvc, watermarks, bus.DefaultConfig())
	machine.SetDeliverer(messageBus)

	supervisor := NewSupervisor(client.Client, messageBus, machine, watermarks,
		events.NewPublisher(client.DB()), NewFuncInvoker(), DefaultLimits())
	t.Cleanup(supervisor.StopAll)

	return &supervisorFixture{
		client:     client,
		supervisor: supervisor,
		machine:    machine,
		squad:      sq,
		backend:    backend,
		lead:       lead,
	}
}

func TestSupervisor_ConversationRoundTrip(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.supervisor.StartSquad(ctx, f.squad.ID))
	assert.True(t, f.supervisor.Running(f.squad.ID))

	conv, err := f.machine.Open(ctx, models.OpenConversationRequest{
		SquadID:      f.squad.ID,
		AskerAgentID: f.backend.ID,
		QuestionType: "architecture",
		Content:      "how should the cache invalidate?",
	})
	require.NoError(t, err)

	// The lead's runtime answers with the mock generator, then the asker's
	// runtime acknowledges, closing the conversation.
	require.Eventually(t, func() bool {
		cur, err := f.client.Conversation.Get(ctx, conv.ID)
		return err == nil && cur.State == entconversation.StateAcknowledged
	}, 10*time.Second, 50*time.Millisecond)

	msgs, err := services.NewConversationService(f.client.Client).GetMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "question", string(msgs[0].Type))
	assert.Equal(t, "answer", string(msgs[1].Type))
	assert.Equal(t, "ack: how should the cache invalidate?", msgs[1].Content)
	assert.Equal(t, "acknowledgment", string(msgs[2].Type))

	// Both runtimes advanced their watermarks to the log head.
	wm, err := services.NewWatermarkService(f.client.Client).Get(ctx, f.lead.ID, conv.ID)
	require.NoError(t, err)
	assert.Positive(t, wm)

	f.supervisor.StopSquad(f.squad.ID)
	assert.False(t, f.supervisor.Running(f.squad.ID))
}

func TestSupervisor_StartSquad(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.supervisor.StartSquad(ctx, f.squad.ID))
	// Starting twice is a no-op, not a queue conflict.
	require.NoError(t, f.supervisor.StartSquad(ctx, f.squad.ID))

	// Stopping a never-started squad is a no-op.
	f.supervisor.StopSquad("missing")

	f.supervisor.StopAll()
	assert.False(t, f.supervisor.Running(f.squad.ID))
}

func TestSupervisor_StartSquadWithoutAgents(t *testing.T) {
	f := newSupervisorFixture(t)
	ctx := context.Background()

	empty, err := services.NewSquadService(f.client.Client).CreateSquad(ctx, models.CreateSquadRequest{
		OwnerID: "owner-1",
		Name:    "Empty",
	})
	require.NoError(t, err)

	err = f.supervisor.StartSquad(ctx, empty.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
