package services

import (
	"context"
	"fmt"
	"time"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/event"
	"github.com/squadflow/squadflow/pkg/events"
	"github.com/squadflow/squadflow/pkg/models"
)

// EventService manages the SSE outbox table: catchup reads for
// reconnecting clients and TTL cleanup. Outbox writes happen inside the
// event log append transaction, not here.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent persists an outbox event outside any log append. Used for
// frames with no backing log entry, such as squad lifecycle notices.
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateOutboxEventRequest) (*ent.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.Event.Create().
		SetSquadID(req.SquadID).
		SetChannel(req.Channel).
		SetPayload(req.Payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// GetCatchupEvents retrieves outbox events on a channel newer than sinceID,
// oldest first. Implements events.CatchupQuerier for Last-Event-ID resume.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int(sinceID)),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{
			ID:      int64(row.ID),
			Payload: row.Payload,
		})
	}
	return out, nil
}

// CleanupSquadEvents removes all outbox events for a squad
func (s *EventService) CleanupSquadEvents(ctx context.Context, squadID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SquadIDEQ(squadID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup squad events: %w", err)
	}

	return count, nil
}

// CleanupExpiredEvents removes outbox events older than the TTL. Clients
// reconnecting with a Last-Event-ID older than the TTL re-read the
// conversation timeline instead.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}

	return count, nil
}
