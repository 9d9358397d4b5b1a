// SPDX-License-Identifier: MIT
// Package edgeindex: rebuildable ordinal index over a bipartite.Graph.

package edgeindex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factorgraph/bipartite"
)

// Sentinel errors for index queries.
var (
	// ErrGraphNil indicates a nil *bipartite.Graph was passed to New.
	ErrGraphNil = errors.New("edgeindex: graph is nil")

	// ErrNotIndexed indicates a query before the first Rebuild.
	ErrNotIndexed = errors.New("edgeindex: not indexed, call Rebuild first")

	// ErrStale indicates the graph mutated since the last Rebuild, so
	// the snapshot's ordinals no longer describe the live structure.
	ErrStale = errors.New("edgeindex: index is stale, graph mutated since Rebuild")

	// ErrOrdinalOutOfRange indicates an EdgeAt ordinal beyond the snapshot.
	ErrOrdinalOutOfRange = errors.New("edgeindex: ordinal out of range")

	// ErrEdgeNotFound indicates an OrdinalOf lookup of an edge absent
	// from the snapshot.
	ErrEdgeNotFound = errors.New("edgeindex: edge not found")
)

// Index is a read-only derived cache assigning dense ordinals to the
// edges of a bipartite.Graph. Zero-valued queries fail with
// ErrNotIndexed until Rebuild runs; after any graph mutation they fail
// with ErrStale until Rebuild runs again.
//
// Index is single-threaded, like the graph it wraps.
//
// Deprecated: see the package comment.
type Index struct {
	g       *bipartite.Graph
	edges   []bipartite.Edge
	ordinal map[bipartite.Edge]int

	// stamp is the graph version captured by the last Rebuild.
	stamp   uint64
	indexed bool
}

// New wraps g without building anything; call Rebuild before querying.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(1).
func New(g *bipartite.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Index{g: g}, nil
}

// Rebuild rematerializes the snapshot: all edges sorted by (N1, N2)
// plus the edge-to-ordinal map, and captures the graph's current
// mutation stamp. With parallel edges present, the ordinal map keeps
// the lowest ordinal per distinct pair.
// Complexity: O(E log E).
func (ix *Index) Rebuild() error {
	edges := ix.g.Edges() // already sorted by (N1, N2)
	ordinal := make(map[bipartite.Edge]int, len(edges))
	for i, e := range edges {
		if _, dup := ordinal[e]; !dup {
			ordinal[e] = i
		}
	}

	ix.edges = edges
	ix.ordinal = ordinal
	ix.stamp = ix.g.Version()
	ix.indexed = true

	return nil
}

// EdgeAt returns the edge with the given ordinal in the snapshot.
// Returns ErrNotIndexed / ErrStale / ErrOrdinalOutOfRange.
// Complexity: O(1).
func (ix *Index) EdgeAt(ordinal int) (bipartite.Edge, error) {
	if err := ix.usable(); err != nil {
		return bipartite.Edge{}, err
	}
	if ordinal < 0 || ordinal >= len(ix.edges) {
		return bipartite.Edge{}, fmt.Errorf("ordinal %d of %d: %w", ordinal, len(ix.edges), ErrOrdinalOutOfRange)
	}

	return ix.edges[ordinal], nil
}

// OrdinalOf returns the snapshot ordinal of the edge between Type1
// node n1 and Type2 node n2.
// Returns ErrNotIndexed / ErrStale / ErrEdgeNotFound.
// Complexity: O(1).
func (ix *Index) OrdinalOf(n1, n2 bipartite.NodeID) (int, error) {
	if err := ix.usable(); err != nil {
		return 0, err
	}
	ord, ok := ix.ordinal[bipartite.Edge{N1: n1, N2: n2}]
	if !ok {
		return 0, fmt.Errorf("edge (%d,%d): %w", n1, n2, ErrEdgeNotFound)
	}

	return ord, nil
}

// Len returns the number of edges in the snapshot.
// Returns ErrNotIndexed / ErrStale.
// Complexity: O(1).
func (ix *Index) Len() (int, error) {
	if err := ix.usable(); err != nil {
		return 0, err
	}

	return len(ix.edges), nil
}

// usable gates every query on build state and snapshot freshness.
func (ix *Index) usable() error {
	if !ix.indexed {
		return ErrNotIndexed
	}
	if ix.g.Version() != ix.stamp {
		return ErrStale
	}

	return nil
}
