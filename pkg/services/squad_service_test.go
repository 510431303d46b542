package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entagent "github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/pkg/models"
	testdb "github.com/squadflow/squadflow/test/database"
)

func TestSquadService_CreateSquad(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSquadService(client.Client)
	ctx := context.Background()

	sq, err := svc.CreateSquad(ctx, models.CreateSquadRequest{
		OwnerID:     "owner-1",
		Name:        "Platform Squad",
		Description: "infra work",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sq.ID)
	assert.True(t, sq.Active)

	_, err = svc.CreateSquad(ctx, models.CreateSquadRequest{OwnerID: "owner-1"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSquad(ctx, models.CreateSquadRequest{Name: "No Owner"})
	assert.True(t, IsValidationError(err))
}

func TestSquadService_GetSquad(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSquadService(client.Client)
	ctx := context.Background()

	sq := newTestSquad(t, client)
	newTestAgent(t, client, sq.ID, entagent.RoleProjectManager)
	newTestAgent(t, client, sq.ID, entagent.RoleBackendDeveloper)

	detail, err := svc.GetSquad(ctx, sq.ID)
	require.NoError(t, err)
	assert.Equal(t, sq.ID, detail.Squad.ID)
	assert.Len(t, detail.Agents, 2)

	_, err = svc.GetSquad(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSquadService_ListSquads(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSquadService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSquad(ctx, models.CreateSquadRequest{
			OwnerID: "owner-1",
			Name:    fmt.Sprintf("Squad %d", i),
		})
		require.NoError(t, err)
	}
	other, err := svc.CreateSquad(ctx, models.CreateSquadRequest{OwnerID: "owner-2", Name: "Other"})
	require.NoError(t, err)

	resp, err := svc.ListSquads(ctx, "owner-1", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Squads, 2)

	// Deactivated squads disappear from listings.
	require.NoError(t, svc.DeactivateSquad(ctx, other.ID))
	resp, err = svc.ListSquads(ctx, "owner-2", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalCount)

	assert.ErrorIs(t, svc.DeactivateSquad(ctx, "missing"), ErrNotFound)
}

func TestSquadService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSquadService(client.Client)
	ctx := context.Background()

	sq := newTestSquad(t, client)

	var invalidated []string
	svc.SetRuleChangeHook(func(squadID string) { invalidated = append(invalidated, squadID) })

	ag, err := svc.CreateAgent(ctx, sq.ID, models.CreateAgentRequest{
		Role:         entagent.RoleBackendDeveloper,
		GeneratorRef: map[string]any{"vendor": "mock"},
		SystemPrompt: "You write Go",
	})
	require.NoError(t, err)
	assert.Equal(t, "default", ag.Specialization)

	// Roster changes must drop the cached routing snapshot too.
	assert.Equal(t, []string{sq.ID}, invalidated)

	// A missing parent squad is not a duplicate.
	_, err = svc.CreateAgent(ctx, "missing", models.CreateAgentRequest{
		Role:         entagent.RoleBackendDeveloper,
		GeneratorRef: map[string]any{"vendor": "mock"},
		SystemPrompt: "You write Go",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Same (squad, role, specialization) is rejected.
	_, err = svc.CreateAgent(ctx, sq.ID, models.CreateAgentRequest{
		Role:         entagent.RoleBackendDeveloper,
		GeneratorRef: map[string]any{"vendor": "mock"},
		SystemPrompt: "You write Go",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different specialization of the same role is fine.
	_, err = svc.CreateAgent(ctx, sq.ID, models.CreateAgentRequest{
		Role:           entagent.RoleBackendDeveloper,
		Specialization: "python",
		GeneratorRef:   map[string]any{"vendor": "mock"},
		SystemPrompt:   "You write Python",
	})
	require.NoError(t, err)

	_, err = svc.CreateAgent(ctx, sq.ID, models.CreateAgentRequest{
		Role:         entagent.RoleTechLead,
		GeneratorRef: map[string]any{"vendor": "mock"},
	})
	assert.True(t, IsValidationError(err), "missing system prompt")

	agents, err := svc.ListAgents(ctx, sq.ID)
	require.NoError(t, err)
	assert.Len(t, agents, 2)
}

func TestSquadService_RoutingRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSquadService(client.Client)
	ctx := context.Background()

	sq := newTestSquad(t, client)
	newTestAgent(t, client, sq.ID, entagent.RoleTechLead)

	var invalidated []string
	svc.SetRuleChangeHook(func(squadID string) { invalidated = append(invalidated, squadID) })

	rule, err := svc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:     "backend_developer",
		ResponderRole: "tech_lead",
	})
	require.NoError(t, err)
	assert.Equal(t, "default", rule.QuestionType)
	assert.Equal(t, []string{sq.ID}, invalidated)

	// The exact same selector tuple is a duplicate.
	_, err = svc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:     "backend_developer",
		ResponderRole: "tech_lead",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.CreateRoutingRule(ctx, sq.ID, models.CreateRoutingRuleRequest{
		AskerRole:       "backend_developer",
		ResponderRole:   "tech_lead",
		EscalationLevel: -1,
	})
	assert.True(t, IsValidationError(err))

	snap, err := svc.LoadRoutingSnapshot(ctx, sq.ID)
	require.NoError(t, err)
	assert.Equal(t, sq.ID, snap.SquadID)
	require.Len(t, snap.Rules, 1)
	assert.Equal(t, "tech_lead", snap.Rules[0].ResponderRole)
	require.Len(t, snap.Agents, 1)
	assert.Equal(t, "tech_lead", snap.Agents[0].Role)
}
