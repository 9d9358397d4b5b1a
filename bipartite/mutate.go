// SPDX-License-Identifier: MIT
// Package bipartite: invariant-preserving mutation operations.
//
// Every operation in this file either fully completes and restores the
// dual cross-reference invariant, or rejects its input before any
// state change. The position-shift repair performed by removeRecord is
// the heart of the package: erasing a record from the middle of a list
// shifts every trailing record, and each shifted record's Iter - plus
// the Dual field of its reciprocal in the opposite list - must be
// decremented, or the invariant silently breaks for every neighbor
// ordered after the erased edge.

package bipartite

import "fmt"

// AppendNode appends an empty-neighbor node on side s and returns its
// new id (= the old count of that side). Appending never disturbs
// existing records. Panics are impossible; an invalid side is reported
// as ErrIndexOutOfRange.
// Complexity: O(1) amortized.
func (g *Graph) AppendNode(s Side) (NodeID, error) {
	if !s.valid() {
		return 0, fmt.Errorf("append on %v: %w", s, ErrIndexOutOfRange)
	}
	id := NodeID(len(g.nb[s]))
	g.nb[s] = append(g.nb[s], nil)
	g.version++

	return id, nil
}

// AppendNodeWithNeighbors appends a node on side s pre-wired to the
// given opposite-side ids: for each id one record is appended to the
// new node's list and one reciprocal record to that neighbor's list,
// with Dual fields pointing at each other's freshly appended
// positions.
//
// All ids are validated before any record is written, so a rejected
// call (ErrIndexOutOfRange) leaves the graph untouched. Duplicate ids
// in nbs are not rejected; they wire parallel edges, exactly like
// unchecked insertion.
// Complexity: O(k) for k neighbors.
func (g *Graph) AppendNodeWithNeighbors(s Side, nbs []NodeID) (NodeID, error) {
	if !s.valid() {
		return 0, fmt.Errorf("append on %v: %w", s, ErrIndexOutOfRange)
	}
	opp := s.Opposite()
	for _, n := range nbs {
		if n < 0 || int(n) >= len(g.nb[opp]) {
			return 0, fmt.Errorf("append on %v: neighbor %d: %w", s, n, ErrIndexOutOfRange)
		}
	}

	id := NodeID(len(g.nb[s]))
	list := make(Neighbors, 0, len(nbs))
	for iter, n := range nbs {
		list = append(list, Neighbor{
			Iter: Pos(iter),
			Node: n,
			Dual: Pos(len(g.nb[opp][n])),
		})
		g.nb[opp][n] = append(g.nb[opp][n], Neighbor{
			Iter: Pos(len(g.nb[opp][n])),
			Node: id,
			Dual: Pos(iter),
		})
	}
	g.nb[s] = append(g.nb[s], list)
	g.version++

	return id, nil
}

// AddEdge adds the edge between Type1 node n1 and Type2 node n2 in
// checked mode: n1's list is scanned first and the call is a no-op if
// the edge already exists. This is the default, safer mode.
// Returns ErrIndexOutOfRange for an invalid endpoint.
// Complexity: O(degree(n1)).
func (g *Graph) AddEdge(n1, n2 NodeID) error {
	if err := g.checkEndpoints(n1, n2); err != nil {
		return err
	}
	if g.hasEdge(n1, n2) {
		return nil
	}
	g.wireEdge(n1, n2)
	g.version++

	return nil
}

// AddEdgeUnchecked adds the edge without the duplicate scan. O(1), but
// a second call for the same pair wires a parallel edge; avoiding that
// is the caller's responsibility.
// Returns ErrIndexOutOfRange for an invalid endpoint.
func (g *Graph) AddEdgeUnchecked(n1, n2 NodeID) error {
	if err := g.checkEndpoints(n1, n2); err != nil {
		return err
	}
	g.wireEdge(n1, n2)
	g.version++

	return nil
}

// EraseEdge removes the edge between Type1 node n1 and Type2 node n2,
// repairing the positions of every record that shifts in either list.
// Returns ErrIndexOutOfRange for an invalid endpoint and
// ErrEdgeNotFound if no such edge exists (the graph is unchanged in
// both cases). With parallel edges, one matched pair is removed per
// call.
// Complexity: O(degree(n1) + degree(n2)).
func (g *Graph) EraseEdge(n1, n2 NodeID) error {
	if err := g.checkEndpoints(n1, n2); err != nil {
		return err
	}
	p1 := Pos(-1)
	for _, r := range g.nb[Type1][n1] {
		if r.Node == n2 {
			p1 = r.Iter
			break
		}
	}
	if p1 < 0 {
		return fmt.Errorf("erase (%d,%d): %w", n1, n2, ErrEdgeNotFound)
	}
	p2 := g.nb[Type1][n1][p1].Dual
	g.removeRecord(Type1, n1, p1)
	g.removeRecord(Type2, n2, p2)
	g.version++

	return nil
}

// RemoveNode removes node (s, id): every incident edge is erased with
// full position repair, then the node's slot is deleted, every
// higher-indexed node of side s shifts down by one, and every
// opposite-side record whose Node field referenced a shifted node is
// decremented accordingly.
// Returns ErrIndexOutOfRange for an invalid node.
// Complexity: O(V + E) - the whole opposite side may need scanning.
func (g *Graph) RemoveNode(s Side, id NodeID) error {
	if err := g.checkNode(s, id); err != nil {
		return err
	}
	opp := s.Opposite()

	// Detach incident edges back-to-front: the record being dropped is
	// always the last of its own list, so only the opposite list needs
	// position repair.
	for len(g.nb[s][id]) > 0 {
		last := len(g.nb[s][id]) - 1
		r := g.nb[s][id][last]
		g.removeRecord(opp, r.Node, r.Dual)
		g.nb[s][id] = g.nb[s][id][:last]
	}

	// Delete the slot; survivors above id shift down by one.
	g.nb[s] = append(g.nb[s][:id], g.nb[s][id+1:]...)

	// Renumber every opposite-side reference to a shifted node.
	for i := range g.nb[opp] {
		for j := range g.nb[opp][i] {
			if g.nb[opp][i][j].Node > id {
				g.nb[opp][i][j].Node--
			}
		}
	}
	g.version++

	return nil
}

// checkEndpoints validates an (n1, n2) edge endpoint pair.
func (g *Graph) checkEndpoints(n1, n2 NodeID) error {
	if err := g.checkNode(Type1, n1); err != nil {
		return err
	}

	return g.checkNode(Type2, n2)
}

// wireEdge appends the matched record pair for edge (n1, n2), each the
// other's Dual. Bounds and duplicate policy are the caller's burden;
// the mutation stamp is bumped by the public wrappers.
func (g *Graph) wireEdge(n1, n2 NodeID) {
	r1 := Neighbor{
		Iter: Pos(len(g.nb[Type1][n1])),
		Node: n2,
		Dual: Pos(len(g.nb[Type2][n2])),
	}
	r2 := Neighbor{Iter: r1.Dual, Node: n1, Dual: r1.Iter}
	g.nb[Type1][n1] = append(g.nb[Type1][n1], r1)
	g.nb[Type2][n2] = append(g.nb[Type2][n2], r2)
}

// removeRecord deletes the record at position p from the list of node
// (s, id) and performs the eager position-shift repair: every trailing
// record's Iter is decremented and the Dual field of its reciprocal in
// the opposite list is decremented to keep pointing at the correct
// position. The reciprocal of the record being deleted is NOT touched;
// the caller removes it separately.
func (g *Graph) removeRecord(s Side, id NodeID, p Pos) {
	opp := s.Opposite()
	list := append(g.nb[s][id][:p], g.nb[s][id][p+1:]...)
	for q := int(p); q < len(list); q++ {
		list[q].Iter--
		g.nb[opp][list[q].Node][list[q].Dual].Dual--
	}
	g.nb[s][id] = list
}
