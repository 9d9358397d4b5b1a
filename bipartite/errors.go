// SPDX-License-Identifier: MIT
// Package bipartite: sentinel error set.
// All operations return these sentinels and tests check them via
// errors.Is. Bound checks are always-enabled contracts, not debug-only
// assertions: an out-of-range id from a caller iterating indices the
// structure itself produced indicates a structural bug that must
// surface immediately rather than corrupt state silently.

package bipartite

import "errors"

var (
	// ErrIndexOutOfRange indicates a node id beyond the current count of
	// its side (or a negative id, or an invalid Side value).
	ErrIndexOutOfRange = errors.New("bipartite: node index out of range")

	// ErrEdgeNotFound indicates an erase of an edge that does not exist.
	ErrEdgeNotFound = errors.New("bipartite: edge not found")

	// ErrDuplicateEdge indicates a duplicate edge in the input of a
	// checked bulk construction.
	ErrDuplicateEdge = errors.New("bipartite: duplicate edge")

	// ErrCorrupt indicates the dual cross-reference invariant is broken.
	// It is returned by Validate only; a broken invariant is a
	// programming-error class with no runtime recovery path.
	ErrCorrupt = errors.New("bipartite: dual invariant violated")
)
