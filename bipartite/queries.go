// SPDX-License-Identifier: MIT
// Package bipartite: derived read-only graph queries.
//
// Second-order neighborhoods, connectivity, and the tree test. All
// queries traverse the store read-only; both node types are treated as
// one traversal graph where that matters.

package bipartite

import "sort"

// SecondOrderNeighbors returns the deduplicated, ascending set of
// same-side nodes reachable from (s, id) in exactly two hops, i.e.
// through a shared opposite-side neighbor. When includeSelf is true,
// id itself is part of the result; otherwise it is excluded even
// though every node with neighbors reaches itself in two hops.
// Returns ErrIndexOutOfRange for an invalid node.
// Complexity: O(d·D + k log k) for degree d, max neighbor degree D,
// result size k.
func (g *Graph) SecondOrderNeighbors(s Side, id NodeID, includeSelf bool) ([]NodeID, error) {
	if err := g.checkNode(s, id); err != nil {
		return nil, err
	}
	opp := s.Opposite()
	seen := make(map[NodeID]struct{})
	for _, r := range g.nb[s][id] {
		for _, rr := range g.nb[opp][r.Node] {
			seen[rr.Node] = struct{}{}
		}
	}
	if includeSelf {
		seen[id] = struct{}{}
	} else {
		delete(seen, id)
	}

	out := make([]NodeID, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// IsConnected reports whether every node is reachable from an
// arbitrary start node, treating both node types as one traversal
// graph. The zero-node graph is trivially connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	total := g.NodeCount()
	if total == 0 {
		return true
	}

	var visited [sideCount][]bool
	visited[Type1] = make([]bool, len(g.nb[Type1]))
	visited[Type2] = make([]bool, len(g.nb[Type2]))

	// Start from Type1 node 0 when that side is non-empty.
	start := Type1
	if len(g.nb[Type1]) == 0 {
		start = Type2
	}
	visited[start][0] = true
	reached := 1

	frontier := []NodeID{0}
	side := start
	for len(frontier) > 0 {
		opp := side.Opposite()
		var next []NodeID
		for _, id := range frontier {
			for _, r := range g.nb[side][id] {
				if visited[opp][r.Node] {
					continue
				}
				visited[opp][r.Node] = true
				reached++
				next = append(next, r.Node)
			}
		}
		frontier, side = next, opp
	}

	return reached == total
}

// IsTree reports whether the graph is connected and acyclic. The check
// is a level-by-level traversal from an arbitrary start node, the
// frontier alternating node types: a node reached by more than one
// distinct path shows up as a revisit during frontier expansion, which
// proves a cycle. For a connected graph this agrees with the cheaper
// characterization EdgeCount() == Nr1()+Nr2()-1; the traversal form is
// kept because it localizes the cycle when one exists.
// The zero-node graph is trivially a tree.
// Complexity: O(V + E).
func (g *Graph) IsTree() bool {
	total := g.NodeCount()
	if total == 0 {
		return true
	}

	var visited [sideCount][]bool
	var parent [sideCount][]NodeID
	for s := Type1; s < sideCount; s++ {
		visited[s] = make([]bool, len(g.nb[s]))
		parent[s] = make([]NodeID, len(g.nb[s]))
		for i := range parent[s] {
			parent[s][i] = -1
		}
	}

	start := Type1
	if len(g.nb[Type1]) == 0 {
		start = Type2
	}
	visited[start][0] = true
	reached := 1

	frontier := []NodeID{0}
	side := start
	for len(frontier) > 0 {
		opp := side.Opposite()
		var next []NodeID
		for _, id := range frontier {
			// Exactly one record may lead back to the parent; a second
			// one is a parallel edge, i.e. a two-node cycle.
			parentSkipped := false
			for _, r := range g.nb[side][id] {
				if r.Node == parent[side][id] && !parentSkipped {
					parentSkipped = true
					continue
				}
				if visited[opp][r.Node] {
					return false // second distinct path to r.Node
				}
				visited[opp][r.Node] = true
				parent[opp][r.Node] = id
				reached++
				next = append(next, r.Node)
			}
		}
		frontier, side = next, opp
	}

	// Acyclic so far; a tree additionally requires connectivity.
	return reached == total
}
