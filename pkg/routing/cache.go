package routing

import (
	"context"
	"sync"
)

// SnapshotLoader loads a squad's current routing snapshot from storage.
type SnapshotLoader func(ctx context.Context, squadID string) (*Snapshot, error)

// Cache is a read-mostly per-squad snapshot cache. Invalidate is hooked
// into every routing rule and agent write.
type Cache struct {
	loader SnapshotLoader

	mu      sync.RWMutex
	entries map[string]*Snapshot
}

// NewCache creates a cache over the given loader.
func NewCache(loader SnapshotLoader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]*Snapshot),
	}
}

// Get returns the cached snapshot for a squad, loading it on miss.
func (c *Cache) Get(ctx context.Context, squadID string) (*Snapshot, error) {
	c.mu.RLock()
	snap, ok := c.entries[squadID]
	c.mu.RUnlock()
	if ok {
		return snap, nil
	}

	snap, err := c.loader(ctx, squadID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// A concurrent loader may have raced us; last write wins, both loads
	// observed committed state.
	c.entries[squadID] = snap
	c.mu.Unlock()
	return snap, nil
}

// Invalidate drops the cached snapshot for a squad.
func (c *Cache) Invalidate(squadID string) {
	c.mu.Lock()
	delete(c.entries, squadID)
	c.mu.Unlock()
}
