// Package bipartite implements a sparse bipartite graph as a dual
// cross-referenced adjacency store, the structural core consumed by
// graphical-model inference algorithms.
//
// What:
//
//   - Two node types (Type1 and Type2); edges occur only across types.
//   - Each node stores an ordered list of Neighbor records; each record
//     carries its own position (Iter), the opposite node's id (Node),
//     and the position of the reciprocal record in that node's list
//     (Dual), so an edge can be walked in O(1) from either endpoint
//     without a global edge table.
//   - Invariant-preserving mutations: AppendNode, AppendNodeWithNeighbors,
//     AddEdge / AddEdgeUnchecked, EraseEdge, RemoveNode.
//   - Derived queries: SecondOrderNeighbors, IsConnected, IsTree.
//   - Validate sweeps the whole store and reports the first invariant
//     violation, for use by property tests.
//
// Why:
//
//   - Message passing: iterate Neighbors(side, id) to visit incident
//     edges and jump to the reciprocal entry in O(1).
//   - Junction trees, factor-graph construction, and any algorithm that
//     needs fast alternating traversal between variables and factors.
//
// Identity model:
//
//	A node is identified by a (Side, NodeID) pair. Identifiers are
//	positional, not stable handles: RemoveNode renumbers all
//	higher-indexed nodes of the same side. NodeID (absolute id) and
//	Pos (position within one neighbor list) are distinct types with no
//	implicit conversion; use the handle package when stable identity
//	across removals is needed.
//
// Invariant (holds after every successful mutation):
//
//	for every side s, node a, position p, with r = Neighbors(s,a)[p]:
//	  r.Iter == p
//	  Neighbors(opp(s), r.Node)[r.Dual].Node == a
//	  Neighbors(opp(s), r.Node)[r.Dual].Dual == p
//
// Complexity:
//
//   - AddEdge: O(degree(n1)) checked, O(1) unchecked.
//   - EraseEdge: O(degree(n1) + degree(n2)) including position repair.
//   - RemoveNode: O(V + E).
//   - IsConnected / IsTree: O(V + E).
//   - SecondOrderNeighbors: O(degree × max-neighbor-degree).
//
// Errors:
//
//   - ErrIndexOutOfRange: node id beyond the current count.
//   - ErrEdgeNotFound: erase of a nonexistent edge.
//   - ErrDuplicateEdge: duplicate edge during checked bulk construction.
//   - ErrCorrupt: dual invariant violated (reported by Validate only).
//
// Concurrency:
//
//	Strictly single-threaded. The structure is exclusively owned by its
//	caller; sharing across goroutines requires external mutual
//	exclusion. Every mutation either fully completes and restores the
//	invariant, or is rejected before any state change.
package bipartite
