package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadsOnceUntilInvalidated(t *testing.T) {
	loads := 0
	cache := NewCache(func(ctx context.Context, squadID string) (*Snapshot, error) {
		loads++
		return &Snapshot{SquadID: squadID}, nil
	})

	ctx := context.Background()
	snap1, err := cache.Get(ctx, "squad-1")
	require.NoError(t, err)
	snap2, err := cache.Get(ctx, "squad-1")
	require.NoError(t, err)
	assert.Same(t, snap1, snap2)
	assert.Equal(t, 1, loads)

	cache.Invalidate("squad-1")
	snap3, err := cache.Get(ctx, "squad-1")
	require.NoError(t, err)
	assert.NotSame(t, snap1, snap3)
	assert.Equal(t, 2, loads)
}

func TestCache_PerSquadEntries(t *testing.T) {
	cache := NewCache(func(ctx context.Context, squadID string) (*Snapshot, error) {
		return &Snapshot{SquadID: squadID}, nil
	})

	ctx := context.Background()
	a, err := cache.Get(ctx, "squad-a")
	require.NoError(t, err)
	b, err := cache.Get(ctx, "squad-b")
	require.NoError(t, err)
	assert.Equal(t, "squad-a", a.SquadID)
	assert.Equal(t, "squad-b", b.SquadID)

	// Invalidating one squad leaves the other cached
	cache.Invalidate("squad-a")
	b2, err := cache.Get(ctx, "squad-b")
	require.NoError(t, err)
	assert.Same(t, b, b2)
}

func TestCache_LoaderError(t *testing.T) {
	cache := NewCache(func(ctx context.Context, squadID string) (*Snapshot, error) {
		return nil, assert.AnError
	})

	_, err := cache.Get(context.Background(), "squad-1")
	assert.ErrorIs(t, err, assert.AnError)
}
