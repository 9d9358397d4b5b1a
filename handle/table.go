// SPDX-License-Identifier: MIT
// Package handle: slot table translating stable handles to the
// positional ids of a bipartite.Graph.

package handle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/factorgraph/bipartite"
)

// Sentinel errors for handle resolution and routed mutations.
var (
	// ErrGraphNil indicates a nil *bipartite.Graph was passed to Wrap.
	ErrGraphNil = errors.New("handle: graph is nil")

	// ErrStaleHandle indicates the handle's node was removed (and its
	// slot possibly recycled for a newer node).
	ErrStaleHandle = errors.New("handle: stale handle")

	// ErrForeignHandle indicates a handle minted by a different Table,
	// or the zero Handle.
	ErrForeignHandle = errors.New("handle: handle from another table")

	// ErrSideMismatch indicates edge endpoints on the same side.
	ErrSideMismatch = errors.New("handle: endpoints must be on opposite sides")
)

// Handle is a stable, opaque node identity. The zero Handle is invalid.
// Handles stay valid across removals of other nodes; only removing the
// node itself (through its Table) invalidates its handle.
type Handle struct {
	tab  *Table
	side bipartite.Side
	slot int
	gen  uint32
}

// Side returns the node type this handle refers to.
func (h Handle) Side() bipartite.Side { return h.side }

// Table owns the slot↔dense-id mapping for one bipartite.Graph.
// Single-threaded, like the graph it wraps.
type Table struct {
	g *bipartite.Graph

	// denseOf[s][slot] is the current dense id, freeSlot when freed.
	denseOf [2][]int
	// slotOf[s][dense] is the owning slot of a dense id.
	slotOf [2][]int
	// gen[s][slot] is bumped when the slot is freed, invalidating
	// handles minted for the previous occupant.
	gen [2][]uint32
	// free[s] lists recycled slots.
	free [2][]int
}

// freeSlot marks an unoccupied slot in denseOf.
const freeSlot = -1

// Wrap adopts g and issues slots for every existing node, in dense
// order. Returns ErrGraphNil for a nil graph.
// Complexity: O(V).
func Wrap(g *bipartite.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &Table{g: g}
	for _, s := range []bipartite.Side{bipartite.Type1, bipartite.Type2} {
		n := g.Count(s)
		t.denseOf[s] = make([]int, n)
		t.slotOf[s] = make([]int, n)
		t.gen[s] = make([]uint32, n)
		for i := 0; i < n; i++ {
			t.denseOf[s][i] = i
			t.slotOf[s][i] = i
		}
	}

	return t, nil
}

// Graph returns the wrapped graph for read-only queries. Structural
// mutations must go through the Table.
func (t *Table) Graph() *bipartite.Graph { return t.g }

// Append appends an empty-neighbor node on side s and returns its
// stable handle. A freed slot is recycled when available.
// Complexity: O(1) amortized.
func (t *Table) Append(s bipartite.Side) (Handle, error) {
	id, err := t.g.AppendNode(s)
	if err != nil {
		return Handle{}, err
	}

	return t.adopt(s, id), nil
}

// AppendWithNeighbors appends a node on side s pre-wired to the nodes
// behind the given opposite-side handles.
// Returns ErrSideMismatch if any neighbor handle is not on the
// opposite side, plus any resolution error; the graph is untouched on
// rejection.
// Complexity: O(k) for k neighbors.
func (t *Table) AppendWithNeighbors(s bipartite.Side, nbs []Handle) (Handle, error) {
	opp := s.Opposite()
	ids := make([]bipartite.NodeID, 0, len(nbs))
	for _, h := range nbs {
		if err := t.own(h); err != nil {
			return Handle{}, err
		}
		if h.side != opp {
			return Handle{}, fmt.Errorf("neighbor on %v: %w", h.side, ErrSideMismatch)
		}
		id, err := t.Resolve(h)
		if err != nil {
			return Handle{}, err
		}
		ids = append(ids, id)
	}

	id, err := t.g.AppendNodeWithNeighbors(s, ids)
	if err != nil {
		return Handle{}, err
	}

	return t.adopt(s, id), nil
}

// AddEdge adds the edge between the nodes behind a and b, which must
// lie on opposite sides (in either order). Checked insertion: an
// existing edge is a no-op.
func (t *Table) AddEdge(a, b Handle) error {
	n1, n2, err := t.endpoints(a, b)
	if err != nil {
		return err
	}

	return t.g.AddEdge(n1, n2)
}

// EraseEdge removes the edge between the nodes behind a and b.
// Returns bipartite.ErrEdgeNotFound when absent.
func (t *Table) EraseEdge(a, b Handle) error {
	n1, n2, err := t.endpoints(a, b)
	if err != nil {
		return err
	}

	return t.g.EraseEdge(n1, n2)
}

// Remove removes the node behind h with all incident edges. Only h
// goes stale: its slot joins the free list with a bumped generation,
// and the dense-id mapping follows the store's renumbering so every
// surviving handle keeps resolving.
// Complexity: O(V + E).
func (t *Table) Remove(h Handle) error {
	id, err := t.Resolve(h)
	if err != nil {
		return err
	}
	if err = t.g.RemoveNode(h.side, id); err != nil {
		return err
	}

	s := h.side
	// Free the slot and invalidate its outstanding handles.
	t.denseOf[s][h.slot] = freeSlot
	t.gen[s][h.slot]++
	t.free[s] = append(t.free[s], h.slot)

	// Mirror the store's renumbering: dense ids above id shift down.
	t.slotOf[s] = append(t.slotOf[s][:id], t.slotOf[s][id+1:]...)
	for dense, slot := range t.slotOf[s] {
		t.denseOf[s][slot] = dense
	}

	return nil
}

// Resolve returns the current dense id of the node behind h.
// Returns ErrForeignHandle or ErrStaleHandle when h does not name a
// live node of this table.
// Complexity: O(1).
func (t *Table) Resolve(h Handle) (bipartite.NodeID, error) {
	if err := t.own(h); err != nil {
		return 0, err
	}
	if t.gen[h.side][h.slot] != h.gen || t.denseOf[h.side][h.slot] == freeSlot {
		return 0, fmt.Errorf("%v slot %d: %w", h.side, h.slot, ErrStaleHandle)
	}

	return bipartite.NodeID(t.denseOf[h.side][h.slot]), nil
}

// HandleOf returns the stable handle of the node currently at dense id
// on side s - the dense-iteration interop direction.
// Returns bipartite.ErrIndexOutOfRange for an invalid node.
// Complexity: O(1).
func (t *Table) HandleOf(s bipartite.Side, id bipartite.NodeID) (Handle, error) {
	if id < 0 || int(id) >= t.g.Count(s) {
		return Handle{}, fmt.Errorf("node %v/%d: %w", s, id, bipartite.ErrIndexOutOfRange)
	}
	slot := t.slotOf[s][id]

	return Handle{tab: t, side: s, slot: slot, gen: t.gen[s][slot]}, nil
}

// adopt binds a freshly appended dense id to a slot (recycled if
// available) and mints its handle.
func (t *Table) adopt(s bipartite.Side, id bipartite.NodeID) Handle {
	var slot int
	if n := len(t.free[s]); n > 0 {
		slot = t.free[s][n-1]
		t.free[s] = t.free[s][:n-1]
		t.denseOf[s][slot] = int(id)
	} else {
		slot = len(t.denseOf[s])
		t.denseOf[s] = append(t.denseOf[s], int(id))
		t.gen[s] = append(t.gen[s], 0)
	}
	t.slotOf[s] = append(t.slotOf[s], slot)

	return Handle{tab: t, side: s, slot: slot, gen: t.gen[s][slot]}
}

// own verifies h was minted by this table.
func (t *Table) own(h Handle) error {
	if h.tab != t {
		return ErrForeignHandle
	}

	return nil
}

// endpoints resolves an unordered handle pair into (Type1, Type2) ids.
func (t *Table) endpoints(a, b Handle) (n1, n2 bipartite.NodeID, err error) {
	if err = t.own(a); err != nil {
		return 0, 0, err
	}
	if err = t.own(b); err != nil {
		return 0, 0, err
	}
	if a.side == b.side {
		return 0, 0, fmt.Errorf("both endpoints on %v: %w", a.side, ErrSideMismatch)
	}
	if a.side == bipartite.Type2 {
		a, b = b, a
	}
	if n1, err = t.Resolve(a); err != nil {
		return 0, 0, err
	}
	if n2, err = t.Resolve(b); err != nil {
		return 0, 0, err
	}

	return n1, n2, nil
}
