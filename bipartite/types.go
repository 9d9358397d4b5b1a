// SPDX-License-Identifier: MIT
// Package bipartite: core types for the dual cross-referenced
// adjacency store.
//
// This file declares Side, NodeID, Pos, Neighbor, Neighbors, Edge, the
// Graph container itself, and the bulk-construction options.

package bipartite

// Side selects one of the two disjoint node types of a bipartite
// graph. In factor-graph terms, Type1 nodes are variables and Type2
// nodes are factors; edges occur only across sides.
type Side uint8

const (
	// Type1 is the first node type.
	Type1 Side = iota
	// Type2 is the second node type.
	Type2
	// sideCount bounds the Side enumeration.
	sideCount
)

// Opposite returns the other side. Opposite(Type1) == Type2 and vice
// versa.
func (s Side) Opposite() Side { return s ^ 1 }

// valid reports whether s names one of the two node types.
func (s Side) valid() bool { return s < sideCount }

// String returns "type1" or "type2" ("side(n)" for invalid values).
func (s Side) String() string {
	switch s {
	case Type1:
		return "type1"
	case Type2:
		return "type2"
	default:
		return "side(?)"
	}
}

// NodeID is the absolute positional identifier of a node within its
// side: Type1 nodes are numbered 0..Nr1()-1, Type2 nodes 0..Nr2()-1.
// Identifiers are positional, not stable: RemoveNode renumbers all
// higher-indexed nodes of the removed node's side.
//
// NodeID and Pos are deliberately distinct defined types so that an
// absolute node id can never be confused with a position inside a
// neighbor list; conversions must be explicit at the call site.
type NodeID int

// Pos is the relative position of a Neighbor record within a single
// neighbor list. See NodeID for why this is a distinct type.
type Pos int

// Neighbor is one entry of a node's neighbor list: the dual
// cross-reference record that makes O(1) edge walking possible from
// either endpoint.
type Neighbor struct {
	// Iter is this record's own position within its owner's list.
	Iter Pos

	// Node is the absolute id of the neighboring node (opposite side).
	Node NodeID

	// Dual is the position of the reciprocal record within Node's own
	// neighbor list.
	Dual Pos
}

// Neighbors is the ordered neighbor list of one node.
type Neighbors []Neighbor

// Edge is an unordered pair of endpoints: node N1 of Type1 and node N2
// of Type2. Inside the Graph an edge exists only implicitly, as a
// matched pair of reciprocal Neighbor records.
type Edge struct {
	N1 NodeID
	N2 NodeID
}

// Graph is the sparse bipartite adjacency store.
//
// It owns all Neighbor records exclusively; callers mutate it only
// through the exported operations, each of which preserves the dual
// cross-reference invariant documented in the package comment.
//
// Graph is a plain single-threaded structure: no internal locking, no
// background work. Callers sharing one Graph across goroutines must
// provide external mutual exclusion.
type Graph struct {
	// nb[s][id] is the neighbor list of node id on side s.
	nb [sideCount][]Neighbors

	// version is a monotonic stamp bumped by every structural mutation.
	// Derived caches (edgeindex) compare it to detect staleness.
	version uint64
}

// buildOptions carries bulk-construction parameters.
type buildOptions struct {
	// checkDuplicates selects checked insertion: each edge is verified
	// absent before wiring. Disabled via WithoutDuplicateCheck.
	checkDuplicates bool
}

// defaultBuildOptions returns the safe defaults: checked insertion.
func defaultBuildOptions() buildOptions {
	return buildOptions{checkDuplicates: true}
}

// Option configures bulk construction (NewFromEdges, Construct) via
// functional arguments.
type Option func(*buildOptions)

// WithoutDuplicateCheck switches bulk construction to the O(1)-per-edge
// unchecked fast path. The caller guarantees the edge list contains no
// duplicates; a duplicate slips in as a parallel edge and is not
// rejected.
func WithoutDuplicateCheck() Option {
	return func(o *buildOptions) { o.checkDuplicates = false }
}
