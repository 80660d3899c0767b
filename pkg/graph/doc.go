// Package graph derives navigable structures from a flat (persons,
// relations) snapshot: a typed adjacency graph, a family-cluster index, a
// deterministic shortest-path finder over the undirected projection of all
// relations, and a path classifier computing generation offset and lineage.
//
// Everything here is a pure function of its inputs. A built RelationGraph
// is safe for concurrent readers and must not be mutated by consumers.
package graph
