package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/pkg/models"
	testdb "github.com/squadflow/squadflow/test/database"
)

func TestEventService_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		evt, err := svc.CreateEvent(ctx, models.CreateOutboxEventRequest{
			SquadID: "squad-1",
			Channel: "squad:squad-1",
			Payload: map[string]any{"type": "message", "n": i},
		})
		require.NoError(t, err)
		ids = append(ids, int64(evt.ID))
	}
	_, err := svc.CreateEvent(ctx, models.CreateOutboxEventRequest{
		SquadID: "squad-1",
		Channel: "execution:exec-1",
		Payload: map[string]any{"type": "completed"},
	})
	require.NoError(t, err)

	// Only frames newer than sinceID on the requested channel come back.
	evts, err := svc.GetCatchupEvents(ctx, "squad:squad-1", ids[0], 100)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, ids[1], evts[0].ID)
	assert.Equal(t, ids[2], evts[1].ID)

	evts, err = svc.GetCatchupEvents(ctx, "squad:squad-1", 0, 1)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, ids[0], evts[0].ID)

	evts, err = svc.GetCatchupEvents(ctx, "squad:other", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts)
}

func TestEventService_CleanupSquadEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	for _, squadID := range []string{"squad-1", "squad-1", "squad-2"} {
		_, err := svc.CreateEvent(ctx, models.CreateOutboxEventRequest{
			SquadID: squadID,
			Channel: "squad:" + squadID,
			Payload: map[string]any{"type": "message"},
		})
		require.NoError(t, err)
	}

	n, err := svc.CleanupSquadEvents(ctx, "squad-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
