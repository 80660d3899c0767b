package types

import (
	"errors"
	"time"
)

// ErrNilSnapshot is returned when a nil snapshot is supplied where one is required.
var ErrNilSnapshot = errors.New("snapshot cannot be nil")

// SnapshotMetadata identifies the application that produced a snapshot.
type SnapshotMetadata struct {
	AppName    string `json:"appName"`
	AppVersion string `json:"appVersion"`
}

// Snapshot is the exchange envelope for a family tree: the full person and
// relation sets plus the reference person used for addressing queries.
// It round-trips through JSON with ISO-8601 timestamps.
type Snapshot struct {
	Version    string           `json:"version"`
	ExportDate time.Time        `json:"exportDate"`
	Persons    []*Person        `json:"persons"`
	Relations  []*Relation      `json:"relations"`
	UserID     string           `json:"userId"`
	Metadata   SnapshotMetadata `json:"metadata"`
}

// Validate checks the envelope itself. Person/relation well-formedness is a
// write-time concern; the engine tolerates semantically incomplete data.
func (s *Snapshot) Validate() error {
	if s == nil {
		return ErrNilSnapshot
	}
	for _, p := range s.Persons {
		if p.ID == "" {
			return ErrEmptyID
		}
	}
	for _, r := range s.Relations {
		if err := r.ValidateForCreate(); err != nil {
			return err
		}
	}
	return nil
}

// PersonByID returns the person with the given id, or nil.
func (s *Snapshot) PersonByID(id string) *Person {
	for _, p := range s.Persons {
		if p.ID == id {
			return p
		}
	}
	return nil
}
