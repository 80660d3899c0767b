package snapstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/giapha-vn/giapha/pkg/types"
)

// MemoryStore keeps snapshots in process memory. Snapshots are stored as
// encoded JSON so Get hands back an independent copy, matching the badger
// backend's semantics.
type MemoryStore struct {
	mu    sync.RWMutex
	trees map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trees: make(map[string][]byte)}
}

// Save stores a snapshot under id.
func (s *MemoryStore) Save(ctx context.Context, id string, snap *types.Snapshot) error {
	if snap == nil {
		return types.ErrNilSnapshot
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.trees[id] = data
	s.mu.Unlock()
	return nil
}

// Get loads the snapshot stored under id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*types.Snapshot, error) {
	s.mu.RLock()
	data, ok := s.trees[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	snap := &types.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns stored tree ids in lexical order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.trees))
	for id := range s.trees {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the snapshot stored under id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.trees, id)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
