package services

import (
	"context"
	"fmt"

	"github.com/squadflow/squadflow/ent"
	"github.com/squadflow/squadflow/ent/watermark"
)

// WatermarkService tracks the last-processed conversation event sequence
// per (agent, conversation). Runtimes advance it after handling a message;
// the bus replays everything above it on restart.
type WatermarkService struct {
	client *ent.Client
}

// NewWatermarkService creates a new WatermarkService
func NewWatermarkService(client *ent.Client) *WatermarkService {
	return &WatermarkService{client: client}
}

// Get returns the watermark for (agent, conversation), zero if none.
func (s *WatermarkService) Get(ctx context.Context, agentID, conversationID string) (int, error) {
	wm, err := s.client.Watermark.Query().
		Where(
			watermark.AgentIDEQ(agentID),
			watermark.ConversationIDEQ(conversationID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get watermark: %w", err)
	}
	return wm.Sequence, nil
}

// GetAll returns every watermark for an agent keyed by conversation id.
func (s *WatermarkService) GetAll(ctx context.Context, agentID string) (map[string]int, error) {
	wms, err := s.client.Watermark.Query().
		Where(watermark.AgentIDEQ(agentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list watermarks: %w", err)
	}
	out := make(map[string]int, len(wms))
	for _, wm := range wms {
		out[wm.ConversationID] = wm.Sequence
	}
	return out, nil
}

// Advance moves the watermark forward. Regressions are ignored so
// redelivered messages never rewind progress.
func (s *WatermarkService) Advance(ctx context.Context, agentID, conversationID string, sequence int) error {
	wm, err := s.client.Watermark.Query().
		Where(
			watermark.AgentIDEQ(agentID),
			watermark.ConversationIDEQ(conversationID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("failed to get watermark: %w", err)
		}
		_, err = s.client.Watermark.Create().
			SetAgentID(agentID).
			SetConversationID(conversationID).
			SetSequence(sequence).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Racing creator won; retry as an update
				return s.Advance(ctx, agentID, conversationID, sequence)
			}
			return fmt.Errorf("failed to create watermark: %w", err)
		}
		return nil
	}

	if wm.Sequence >= sequence {
		return nil
	}
	if err := wm.Update().SetSequence(sequence).Exec(ctx); err != nil {
		return fmt.Errorf("failed to advance watermark: %w", err)
	}
	return nil
}
