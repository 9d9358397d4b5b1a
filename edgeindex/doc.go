// Package edgeindex is the deprecated flat edge-index compatibility
// layer over a bipartite.Graph.
//
// What:
//
//   - Rebuild materializes a flat list of all edges sorted by
//     (Type1 id, Type2 id) and a map from edge to its ordinal.
//   - EdgeAt, OrdinalOf, and Len answer queries against that snapshot.
//
// Why (and why not):
//
//	Old message-passing code addressed edges by a dense ordinal instead
//	of walking Neighbor records. New code should iterate
//	bipartite.Neighbors or bipartite.Edges directly; this package exists
//	only to keep such callers compiling while they migrate.
//
// Staleness:
//
//	The index is a derived snapshot, never implicitly kept in sync with
//	mutations. Every query compares the graph's mutation stamp
//	(bipartite.Graph.Version) against the stamp captured at Rebuild and
//	fails with ErrStale once the graph has changed, instead of silently
//	serving ordinals from a dead snapshot. Rebuild after any structural
//	change.
//
// Complexity:
//
//   - Rebuild: O(E log E). EdgeAt / OrdinalOf / Len: O(1).
//
// Errors:
//
//   - ErrNotIndexed: query before the first Rebuild.
//   - ErrStale: graph mutated since the last Rebuild.
//   - ErrOrdinalOutOfRange: EdgeAt beyond the snapshot.
//   - ErrEdgeNotFound: OrdinalOf miss.
//
// Deprecated: kept for backwards compatibility with ordinal-addressed
// edge interfaces; always-live queries on bipartite.Graph replace it.
package edgeindex
