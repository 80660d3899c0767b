// Package snapstore persists family-tree snapshots. It offers a badger
// backend for durable storage and an in-memory backend for tests and
// ephemeral use, selected through a typed factory.
package snapstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/giapha-vn/giapha/pkg/types"
)

// ErrNotFound is returned when no snapshot exists under the requested id.
var ErrNotFound = errors.New("snapshot not found")

// Store persists snapshots keyed by tree id.
type Store interface {
	// Save stores a snapshot under id, overwriting any previous version.
	Save(ctx context.Context, id string, snap *types.Snapshot) error

	// Get loads the snapshot stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (*types.Snapshot, error)

	// List returns the stored tree ids in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the snapshot stored under id. Deleting a missing id
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// Backend identifies a store implementation.
type Backend string

const (
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
)

// StoreConfig selects and configures a backend.
type StoreConfig struct {
	Backend Backend
	// Path is the on-disk directory for the badger backend.
	Path string
}

// New creates a Store based on the configuration.
// If Backend is empty, defaults to badger.
func New(config *StoreConfig) (Store, error) {
	if config == nil {
		return nil, fmt.Errorf("snapstore config is required")
	}

	switch config.Backend {
	case BackendBadger, "":
		if config.Path == "" {
			return nil, fmt.Errorf("badger backend requires a path")
		}
		return NewBadgerStore(config.Path)

	case BackendMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s (supported: badger, memory)", config.Backend)
	}
}
