package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent"
	entagent "github.com/squadflow/squadflow/ent/agent"
	"github.com/squadflow/squadflow/pkg/database"
	"github.com/squadflow/squadflow/pkg/models"
	testdb "github.com/squadflow/squadflow/test/database"
)

func newTestSquad(t *testing.T, client *database.Client) *ent.Squad {
	t.Helper()
	sq, err := NewSquadService(client.Client).CreateSquad(context.Background(), models.CreateSquadRequest{
		OwnerID: "owner-1",
		Name:    "Delivery Squad",
	})
	require.NoError(t, err)
	return sq
}

func newTestAgent(t *testing.T, client *database.Client, squadID string, role entagent.Role) *ent.Agent {
	t.Helper()
	ag, err := NewSquadService(client.Client).CreateAgent(context.Background(), squadID, models.CreateAgentRequest{
		Role:         role,
		GeneratorRef: map[string]any{"vendor": "mock"},
		SystemPrompt: "You are a " + string(role),
	})
	require.NoError(t, err)
	return ag
}

func newTestConversation(t *testing.T, client *database.Client, squadID, askerID, responderID string) *ent.Conversation {
	t.Helper()
	conv, err := client.Conversation.Create().
		SetID(uuid.NewString()).
		SetSquadID(squadID).
		SetAskerAgentID(askerID).
		SetCurrentResponderAgentID(responderID).
		SetQuestionType("architecture").
		Save(context.Background())
	require.NoError(t, err)
	return conv
}

func newFixture(t *testing.T) (*database.Client, *ent.Squad, *ent.Agent, *ent.Agent, *ent.Conversation) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sq := newTestSquad(t, client)
	asker := newTestAgent(t, client, sq.ID, entagent.RoleBackendDeveloper)
	responder := newTestAgent(t, client, sq.ID, entagent.RoleTechLead)
	conv := newTestConversation(t, client, sq.ID, asker.ID, responder.ID)
	return client, sq, asker, responder, conv
}
