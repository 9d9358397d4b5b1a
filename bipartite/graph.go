// SPDX-License-Identifier: MIT
// Package bipartite: construction and read-only store access.
//
// This file provides the constructors (New, NewFromEdges, Construct)
// and the O(1) accessors over the adjacency store. All mutation lives
// in mutate.go; derived traversals live in queries.go.

package bipartite

import (
	"fmt"
	"sort"
)

// New returns an empty bipartite graph (zero nodes of each type).
// Complexity: O(1).
func New() *Graph {
	return &Graph{}
}

// NewFromEdges builds a graph with nr1 Type1 nodes, nr2 Type2 nodes,
// and the given edges. See Construct for the error contract.
// Complexity: O(E) unchecked, O(E·d) checked (d = max degree).
func NewFromEdges(nr1, nr2 int, edges []Edge, opts ...Option) (*Graph, error) {
	g := New()
	if err := g.Construct(nr1, nr2, edges, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// Construct resets the graph to nr1/nr2 empty-neighbor nodes and
// inserts each edge in order, discarding all prior state.
//
// Insertion is checked by default: an edge already present is rejected
// with ErrDuplicateEdge. WithoutDuplicateCheck selects the O(1)
// unchecked path for callers that guarantee uniqueness.
//
// Returns ErrIndexOutOfRange if nr1 or nr2 is negative or any edge
// references an out-of-bounds node. On any error the graph is left in
// the empty state, never half built.
// Complexity: O(E) unchecked, O(E·d) checked.
func (g *Graph) Construct(nr1, nr2 int, edges []Edge, opts ...Option) error {
	if nr1 < 0 || nr2 < 0 {
		return fmt.Errorf("construct: node counts (%d,%d): %w", nr1, nr2, ErrIndexOutOfRange)
	}
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.reset(nr1, nr2)
	for i, e := range edges {
		if e.N1 < 0 || int(e.N1) >= nr1 || e.N2 < 0 || int(e.N2) >= nr2 {
			g.reset(0, 0)
			return fmt.Errorf("construct: edge #%d (%d,%d): %w", i, e.N1, e.N2, ErrIndexOutOfRange)
		}
		if o.checkDuplicates && g.hasEdge(e.N1, e.N2) {
			g.reset(0, 0)
			return fmt.Errorf("construct: edge #%d (%d,%d): %w", i, e.N1, e.N2, ErrDuplicateEdge)
		}
		g.wireEdge(e.N1, e.N2)
	}
	g.version++

	return nil
}

// reset discards all state and reallocates nr1/nr2 empty neighbor
// lists. Always bumps the mutation stamp.
func (g *Graph) reset(nr1, nr2 int) {
	g.nb[Type1] = make([]Neighbors, nr1)
	g.nb[Type2] = make([]Neighbors, nr2)
	g.version++
}

// checkNode validates a (side, id) pair against the current store.
func (g *Graph) checkNode(s Side, id NodeID) error {
	if !s.valid() || id < 0 || int(id) >= len(g.nb[s]) {
		return fmt.Errorf("node %v/%d: %w", s, id, ErrIndexOutOfRange)
	}

	return nil
}

// Count returns the number of nodes on side s (0 for an invalid side).
// Complexity: O(1).
func (g *Graph) Count(s Side) int {
	if !s.valid() {
		return 0
	}

	return len(g.nb[s])
}

// Nr1 returns the number of Type1 nodes. Complexity: O(1).
func (g *Graph) Nr1() int { return len(g.nb[Type1]) }

// Nr2 returns the number of Type2 nodes. Complexity: O(1).
func (g *Graph) Nr2() int { return len(g.nb[Type2]) }

// NodeCount returns the total number of nodes on both sides.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nb[Type1]) + len(g.nb[Type2])
}

// Neighbors returns the live neighbor list of node (s, id).
//
// The returned slice is a read-only view: callers must not modify it,
// since an uncoordinated edit breaks the dual cross-reference
// invariant. All structural changes go through the mutation operations.
// Returns ErrIndexOutOfRange for an invalid node.
// Complexity: O(1).
func (g *Graph) Neighbors(s Side, id NodeID) (Neighbors, error) {
	if err := g.checkNode(s, id); err != nil {
		return nil, err
	}

	return g.nb[s][id], nil
}

// NeighborAt returns (by value) the record at relative position p in
// the neighbor list of node (s, id).
// Returns ErrIndexOutOfRange for an invalid node or position.
// Complexity: O(1).
func (g *Graph) NeighborAt(s Side, id NodeID, p Pos) (Neighbor, error) {
	if err := g.checkNode(s, id); err != nil {
		return Neighbor{}, err
	}
	if p < 0 || int(p) >= len(g.nb[s][id]) {
		return Neighbor{}, fmt.Errorf("node %v/%d position %d: %w", s, id, p, ErrIndexOutOfRange)
	}

	return g.nb[s][id][p], nil
}

// Degree returns the neighbor-list length of node (s, id).
// Returns ErrIndexOutOfRange for an invalid node.
// Complexity: O(1).
func (g *Graph) Degree(s Side, id NodeID) (int, error) {
	if err := g.checkNode(s, id); err != nil {
		return 0, err
	}

	return len(g.nb[s][id]), nil
}

// EdgeCount returns the number of edges: the sum of Type1 degrees,
// which equals the sum of Type2 degrees by the dual invariant.
// Complexity: O(Nr1()).
func (g *Graph) EdgeCount() int {
	sum := 0
	for _, nbs := range g.nb[Type1] {
		sum += len(nbs)
	}

	return sum
}

// Edges returns all edges sorted by (N1, N2). The slice is freshly
// allocated and always reflects the live store, unlike the deprecated
// edgeindex snapshot.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for id, nbs := range g.nb[Type1] {
		for _, r := range nbs {
			out = append(out, Edge{N1: NodeID(id), N2: r.Node})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N1 != out[j].N1 {
			return out[i].N1 < out[j].N1
		}

		return out[i].N2 < out[j].N2
	})

	return out
}

// HasEdge reports whether an edge between Type1 node n1 and Type2 node
// n2 exists. Out-of-range endpoints report false.
// Complexity: O(degree(n1)).
func (g *Graph) HasEdge(n1, n2 NodeID) bool {
	if n1 < 0 || int(n1) >= len(g.nb[Type1]) || n2 < 0 || int(n2) >= len(g.nb[Type2]) {
		return false
	}

	return g.hasEdge(n1, n2)
}

// hasEdge scans n1's list for n2. Bounds are the caller's burden.
func (g *Graph) hasEdge(n1, n2 NodeID) bool {
	for _, r := range g.nb[Type1][n1] {
		if r.Node == n2 {
			return true
		}
	}

	return false
}

// Version returns the monotonic mutation stamp. Every structural
// change (construction, node or edge mutation) increments it; derived
// caches compare stamps to detect that they are stale.
// Complexity: O(1).
func (g *Graph) Version() uint64 { return g.version }

// Clone returns a deep copy of the graph: all neighbor lists are
// duplicated, so mutations of the clone never touch the original.
// The mutation stamp is carried over.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{version: g.version}
	for s := Type1; s < sideCount; s++ {
		c.nb[s] = make([]Neighbors, len(g.nb[s]))
		for id, nbs := range g.nb[s] {
			c.nb[s][id] = append(Neighbors(nil), nbs...)
		}
	}

	return c
}
