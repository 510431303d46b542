package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadflow/squadflow/ent/event"
	"github.com/squadflow/squadflow/pkg/models"
	"github.com/squadflow/squadflow/pkg/services"
	testdb "github.com/squadflow/squadflow/test/database"
)

func TestService_RemovesExpiredOutboxEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	old, err := eventService.CreateEvent(ctx, models.CreateOutboxEventRequest{
		SquadID: "squad-1",
		Channel: "squad:squad-1",
		Payload: map[string]any{"type": "state_changed"},
	})
	require.NoError(t, err)
	err = client.Event.UpdateOneID(old.ID).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := eventService.CreateEvent(ctx, models.CreateOutboxEventRequest{
		SquadID: "squad-1",
		Channel: "squad:squad-1",
		Payload: map[string]any{"type": "message"},
	})
	require.NoError(t, err)

	svc := NewService(eventService, 24*time.Hour, time.Hour)
	svc.cleanupExpiredEvents()

	ids, err := client.Event.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{fresh.ID}, ids)

	exists, err := client.Event.Query().Where(event.IDEQ(old.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_KeepsEventsWithinTTL(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	_, err := eventService.CreateEvent(ctx, models.CreateOutboxEventRequest{
		SquadID: "squad-1",
		Channel: "squad:squad-1",
		Payload: map[string]any{"type": "heartbeat"},
	})
	require.NoError(t, err)

	svc := NewService(eventService, 24*time.Hour, time.Hour)
	svc.cleanupExpiredEvents()

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)

	svc := NewService(eventService, 24*time.Hour, 10*time.Millisecond)
	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()

	// Stop before Start is a no-op.
	fresh := NewService(eventService, time.Hour, time.Hour)
	fresh.Stop()
}
