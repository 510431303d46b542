// Package cleanup provides data retention for the SSE event outbox.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/squadflow/squadflow/pkg/services"
)

// Service periodically removes outbox events past their TTL. The outbox
// exists only for SSE catch-up, so expired rows are safe to drop; the
// conversation log keeps the authoritative history.
//
// The delete is idempotent and safe to run from multiple pods.
type Service struct {
	eventTTL     time.Duration
	interval     time.Duration
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(eventService *services.EventService, eventTTL, interval time.Duration) *Service {
	return &Service{
		eventTTL:     eventTTL,
		interval:     interval,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.eventTTL,
		"interval", s.interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.cleanupExpiredEvents()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanupExpiredEvents()
		}
	}
}

func (s *Service) cleanupExpiredEvents() {
	count, err := s.eventService.CleanupExpiredEvents(context.Background(), s.eventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}
