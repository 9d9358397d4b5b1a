// SPDX-License-Identifier: MIT
// Package bipartite: full-store invariant validation.
//
// Validate is the executable form of the package invariant. It exists
// for property tests that drive random mutation sequences and re-check
// the whole store after every step; production callers never need it,
// since every mutation preserves the invariant by construction.

package bipartite

import "fmt"

// Validate sweeps every record of both sides and returns nil when the
// dual cross-reference invariant holds everywhere:
//
//	r := nb[s][a][p]  ⇒  r.Iter == p
//	                     nb[opp(s)][r.Node][r.Dual].Node == a
//	                     nb[opp(s)][r.Node][r.Dual].Dual == p
//
// plus in-range Node/Dual fields and degree-sum symmetry between the
// sides. The first violation is reported wrapping ErrCorrupt with its
// coordinates. A non-nil result indicates a bug in this package (or a
// caller mutating a Neighbors view), not a runtime condition.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	for s := Type1; s < sideCount; s++ {
		opp := s.Opposite()
		for id := range g.nb[s] {
			for p, r := range g.nb[s][id] {
				if r.Iter != Pos(p) {
					return fmt.Errorf("%v/%d[%d]: iter=%d: %w", s, id, p, r.Iter, ErrCorrupt)
				}
				if r.Node < 0 || int(r.Node) >= len(g.nb[opp]) {
					return fmt.Errorf("%v/%d[%d]: node=%d out of range: %w", s, id, p, r.Node, ErrCorrupt)
				}
				if r.Dual < 0 || int(r.Dual) >= len(g.nb[opp][r.Node]) {
					return fmt.Errorf("%v/%d[%d]: dual=%d out of range: %w", s, id, p, r.Dual, ErrCorrupt)
				}
				rr := g.nb[opp][r.Node][r.Dual]
				if rr.Node != NodeID(id) || rr.Dual != Pos(p) {
					return fmt.Errorf("%v/%d[%d]: reciprocal %v/%d[%d] points at %d[%d]: %w",
						s, id, p, opp, r.Node, r.Dual, rr.Node, rr.Dual, ErrCorrupt)
				}
			}
		}
	}

	sum1, sum2 := 0, 0
	for _, nbs := range g.nb[Type1] {
		sum1 += len(nbs)
	}
	for _, nbs := range g.nb[Type2] {
		sum2 += len(nbs)
	}
	if sum1 != sum2 {
		return fmt.Errorf("degree sums differ: type1=%d type2=%d: %w", sum1, sum2, ErrCorrupt)
	}

	return nil
}
