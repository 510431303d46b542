package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/squadflow/squadflow/test/database"
)

func TestWatermarkService_Advance(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWatermarkService(client.Client)
	ctx := context.Background()

	// No watermark yet reads as zero.
	seq, err := svc.Get(ctx, "agent-1", "conv-1")
	require.NoError(t, err)
	assert.Zero(t, seq)

	require.NoError(t, svc.Advance(ctx, "agent-1", "conv-1", 3))
	seq, err = svc.Get(ctx, "agent-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 3, seq)

	require.NoError(t, svc.Advance(ctx, "agent-1", "conv-1", 7))
	seq, err = svc.Get(ctx, "agent-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	// Redelivery never rewinds progress.
	require.NoError(t, svc.Advance(ctx, "agent-1", "conv-1", 4))
	seq, err = svc.Get(ctx, "agent-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 7, seq)
}

func TestWatermarkService_GetAll(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWatermarkService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Advance(ctx, "agent-1", "conv-1", 2))
	require.NoError(t, svc.Advance(ctx, "agent-1", "conv-2", 5))
	require.NoError(t, svc.Advance(ctx, "agent-2", "conv-1", 9))

	all, err := svc.GetAll(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"conv-1": 2, "conv-2": 5}, all)
}
