package conversation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/squadflow/squadflow/ent"
	entconversation "github.com/squadflow/squadflow/ent/conversation"
)

// maxTimerSleep bounds the wait between deadline scans so conversations
// created while the service sleeps are still picked up promptly.
const maxTimerSleep = 5 * time.Second

// TimerService drives conversation timeouts: waiting conversations past
// the answer timeout and answered conversations past the ack timeout. One
// service instance watches all conversations and wakes on the nearest
// deadline. On startup the first scan fires every overdue timer
// immediately, covering timers missed during downtime.
type TimerService struct {
	client  *ent.Client
	machine *Machine

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTimerService creates a timer service over the given machine.
func NewTimerService(client *ent.Client, machine *Machine) *TimerService {
	return &TimerService{
		client:  client,
		machine: machine,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the timer loop.
func (t *TimerService) Start(ctx context.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.run(ctx)
	}()
	slog.Info("Conversation timer service started",
		"answer_timeout", t.machine.Timeouts().Answer,
		"ack_timeout", t.machine.Timeouts().Ack)
}

// Stop shuts down the timer loop and waits for it to exit.
func (t *TimerService) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
	})
	t.wg.Wait()
	slog.Info("Conversation timer service stopped")
}

func (t *TimerService) run(ctx context.Context) {
	logger := slog.With("component", "timer_service")
	for {
		next := t.fireOverdue(ctx, logger)

		sleep := maxTimerSleep
		if !next.IsZero() {
			if d := time.Until(next); d < sleep {
				sleep = d
			}
		}
		if sleep < 100*time.Millisecond {
			sleep = 100 * time.Millisecond
		}

		select {
		case <-t.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}

// fireOverdue transitions every conversation whose timer has expired and
// returns the nearest upcoming deadline, or zero if none is pending.
func (t *TimerService) fireOverdue(ctx context.Context, logger *slog.Logger) time.Time {
	now := time.Now()
	var nearest time.Time

	timeouts := t.machine.Timeouts()
	nearest = t.scanState(ctx, logger, entconversation.StateWaiting, timeouts.Answer, now, nearest,
		t.machine.HandleAnswerTimeout)
	nearest = t.scanState(ctx, logger, entconversation.StateAnswered, timeouts.Ack, now, nearest,
		t.machine.HandleAckTimeout)
	return nearest
}

func (t *TimerService) scanState(ctx context.Context, logger *slog.Logger, state entconversation.State, timeout time.Duration, now time.Time, nearest time.Time, fire func(context.Context, string) error) time.Time {
	if timeout <= 0 {
		return nearest
	}

	convs, err := t.client.Conversation.Query().
		Where(entconversation.StateEQ(state)).
		Order(ent.Asc(entconversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("Timer scan failed", "state", state, "error", err)
		return nearest
	}

	for _, conv := range convs {
		deadline := conv.UpdatedAt.Add(timeout)
		if deadline.After(now) {
			if nearest.IsZero() || deadline.Before(nearest) {
				nearest = deadline
			}
			continue
		}
		if err := fire(ctx, conv.ID); err != nil {
			logger.Error("Timeout handling failed",
				"conversation_id", conv.ID,
				"state", state,
				"error", err)
		}
	}
	return nearest
}
