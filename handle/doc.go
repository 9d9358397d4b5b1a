// Package handle provides stable, opaque node identity on top of the
// positional bipartite store.
//
// What:
//
//   - A Table wraps a bipartite.Graph and issues Handles: opaque
//     (side, slot, generation) values that survive node removal.
//   - Mutations routed through the Table keep a slot↔dense-id mapping
//     aligned with the store's positional renumbering, so removing a
//     node invalidates only the removed handle; every survivor keeps
//     resolving to its node's current dense id.
//   - Freed slots are recycled through a free list with a bumped
//     generation, so a stale handle to a recycled slot is detected
//     instead of silently aliasing the new occupant.
//
// Why:
//
//	Bare positional ids are renumbered on removal, which is fragile for
//	callers holding ids across mutations. Handles give such callers
//	stable identity, while Resolve and HandleOf translate to and from
//	dense indices for algorithms that need dense iteration order.
//
// Rules:
//
//   - All structural mutations of a wrapped graph must go through its
//     Table; mutating the graph directly desynchronizes the mapping.
//   - A Handle belongs to the Table that minted it (ErrForeignHandle
//     otherwise).
//
// Complexity:
//
//   - Append / Resolve / HandleOf: O(1).
//   - Remove: O(V + E) (the store's renumbering cost plus an O(V)
//     mapping fix-up).
//
// Errors:
//
//   - ErrGraphNil: nil graph passed to Wrap.
//   - ErrStaleHandle: handle to a removed (possibly recycled) node.
//   - ErrForeignHandle: handle minted by a different Table (or zero).
//   - ErrSideMismatch: edge endpoints not on opposite sides.
package handle
