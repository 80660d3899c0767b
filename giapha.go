package giapha

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/giapha-vn/giapha/pkg/graph"
	"github.com/giapha-vn/giapha/pkg/kinship"
	"github.com/giapha-vn/giapha/pkg/types"
)

var (
	// ErrNoReference is returned when no reference person is available:
	// none was passed and the snapshot carries no UserID.
	ErrNoReference = errors.New("no reference person")
)

// Engine is the main interface for kinship addressing queries against one
// family-tree snapshot.
type Engine interface {
	// Graph returns the cached relation graph derived from the snapshot.
	Graph() *graph.RelationGraph

	// Clusters returns the cached family-cluster index.
	Clusters() graph.ClusterMap

	// FindRelationPath returns the shortest relation-id path between two
	// persons, an empty path for a self-query, or nil when unreachable.
	FindRelationPath(fromID, toID string) []string

	// CalculateAddressing resolves how referenceID addresses targetID.
	// An empty referenceID falls back to the snapshot's UserID.
	CalculateAddressing(referenceID, targetID string) (*types.AddressingInfo, error)

	// AddressAll resolves addressing for every person in the snapshot,
	// keyed by person id.
	AddressAll(referenceID string) (map[string]*types.AddressingInfo, error)

	// SetSnapshot replaces the snapshot and invalidates derived structures.
	SetSnapshot(snap *types.Snapshot)
}

// Config holds configuration for the Client.
type Config struct {
	// DefaultReferenceID overrides the snapshot's UserID as the fallback
	// reference person.
	DefaultReferenceID string
}

// Client is the main implementation of the Engine interface. It caches the
// derived graph and cluster structures so that many queries against the
// same snapshot cost one graph build.
type Client struct {
	mu       sync.RWMutex
	snapshot *types.Snapshot
	graph    *graph.RelationGraph
	clusters graph.ClusterMap

	config *Config
	logger *slog.Logger
}

// NewClient creates a new addressing client for the given snapshot.
func NewClient(snap *types.Snapshot, config *Config, logger *slog.Logger) (*Client, error) {
	if snap == nil {
		return nil, types.ErrNilSnapshot
	}
	if config == nil {
		config = &Config{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{config: config, logger: logger}
	c.SetSnapshot(snap)
	return c, nil
}

// SetSnapshot replaces the client's snapshot and rebuilds the derived
// graph and cluster structures.
func (c *Client) SetSnapshot(snap *types.Snapshot) {
	g := graph.Build(snap.Persons, snap.Relations)
	clusters := graph.BuildClusters(snap.Persons, snap.Relations)

	c.mu.Lock()
	c.snapshot = snap
	c.graph = g
	c.clusters = clusters
	c.mu.Unlock()

	c.logger.Debug("snapshot loaded",
		"persons", len(snap.Persons),
		"relations", len(snap.Relations),
		"clusters", len(clusters))
}

// Graph returns the cached relation graph.
func (c *Client) Graph() *graph.RelationGraph {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph
}

// Clusters returns the cached family-cluster index.
func (c *Client) Clusters() graph.ClusterMap {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clusters
}

// FindRelationPath returns the shortest relation-id path from fromID to
// toID, or nil when toID is unreachable.
func (c *Client) FindRelationPath(fromID, toID string) []string {
	return c.Graph().FindPath(fromID, toID)
}

// CalculateAddressing resolves how referenceID addresses targetID. The
// engine never fails on graph content: an unreachable or unknown target
// yields the unknown title with confidence 0.
func (c *Client) CalculateAddressing(referenceID, targetID string) (*types.AddressingInfo, error) {
	c.mu.RLock()
	g, snap := c.graph, c.snapshot
	c.mu.RUnlock()

	referenceID = c.resolveReference(referenceID, snap)
	if referenceID == "" {
		return nil, ErrNoReference
	}

	if referenceID == targetID {
		return &types.AddressingInfo{
			Title:       kinship.TitleSelf.String(),
			Explanation: "the reference person",
			Lineage:     types.LineageNone,
			Generation:  0,
			Certainty:   types.CertaintyCertain,
			Confidence:  1.0,
		}, nil
	}

	path := g.FindPath(referenceID, targetID)
	if path == nil {
		return &types.AddressingInfo{
			Title:       kinship.TitleUnknown.String(),
			Explanation: "no relation path to the target person",
			Lineage:     types.LineageNone,
			Generation:  0,
			Certainty:   types.CertaintyUnknown,
			Confidence:  types.CertaintyUnknown.Score(),
		}, nil
	}

	summary := g.ClassifyPath(path, referenceID)
	res := kinship.Resolve(kinship.ResolveInput{
		Steps:        summary.Steps,
		Generation:   summary.Generation,
		Lineage:      summary.Lineage,
		Target:       g.Person(summary.TargetID),
		LastRelation: g.Relation(path[len(path)-1]),
	})

	return &types.AddressingInfo{
		Title:            res.Term(),
		Explanation:      res.Explanation,
		GreetingExamples: kinship.Greetings(res),
		Lineage:          summary.Lineage,
		Generation:       summary.Generation,
		Certainty:        res.Certainty,
		Confidence:       res.Certainty.Score(),
	}, nil
}

// AddressAll resolves addressing for every person in the snapshot. The
// reference person itself resolves to the identity title.
func (c *Client) AddressAll(referenceID string) (map[string]*types.AddressingInfo, error) {
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()

	referenceID = c.resolveReference(referenceID, snap)
	if referenceID == "" {
		return nil, ErrNoReference
	}

	results := make(map[string]*types.AddressingInfo, len(snap.Persons))
	for _, p := range snap.Persons {
		info, err := c.CalculateAddressing(referenceID, p.ID)
		if err != nil {
			return nil, err
		}
		results[p.ID] = info
	}
	return results, nil
}

// resolveReference picks the effective reference person: the explicit id,
// else the configured default, else the snapshot's UserID.
func (c *Client) resolveReference(referenceID string, snap *types.Snapshot) string {
	if referenceID != "" {
		return referenceID
	}
	if c.config.DefaultReferenceID != "" {
		return c.config.DefaultReferenceID
	}
	return snap.UserID
}

// BuildGraph builds a relation graph directly from person and relation
// lists, without a client. It is the primitive behind Client.Graph.
func BuildGraph(persons []*types.Person, relations []*types.Relation) *graph.RelationGraph {
	return graph.Build(persons, relations)
}

// BuildClusterMap builds the family-cluster index directly from person and
// relation lists.
func BuildClusterMap(persons []*types.Person, relations []*types.Relation) graph.ClusterMap {
	return graph.BuildClusters(persons, relations)
}

// FindRelationPath finds the shortest relation-id path on an already built
// graph. Exposed as a reusable primitive for callers that need raw paths,
// independent of title resolution.
func FindRelationPath(g *graph.RelationGraph, fromID, toID string) []string {
	return g.FindPath(fromID, toID)
}

// CalculateAddressing is a one-shot convenience over NewClient for callers
// that do not reuse the derived graph across queries.
func CalculateAddressing(snap *types.Snapshot, referenceID, targetID string) (*types.AddressingInfo, error) {
	c, err := NewClient(snap, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.CalculateAddressing(referenceID, targetID)
}
