package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/bipartite"
	"github.com/katalvlaran/factorgraph/handle"
)

// buildTable wraps the reference 3×2 factor graph.
func buildTable(t *testing.T) *handle.Table {
	t.Helper()
	g, err := bipartite.NewFromEdges(3, 2, []bipartite.Edge{
		{N1: 0, N2: 0},
		{N1: 1, N2: 0},
		{N1: 2, N2: 0},
		{N1: 1, N2: 1},
		{N1: 2, N2: 1},
	})
	require.NoError(t, err)
	tab, err := handle.Wrap(g)
	require.NoError(t, err)

	return tab
}

// TestWrap covers adoption of existing nodes and the nil-graph guard.
func TestWrap(t *testing.T) {
	tab := buildTable(t)

	for id := 0; id < 3; id++ {
		h, err := tab.HandleOf(bipartite.Type1, bipartite.NodeID(id))
		require.NoError(t, err)
		got, err := tab.Resolve(h)
		require.NoError(t, err)
		assert.Equal(t, bipartite.NodeID(id), got)
		assert.Equal(t, bipartite.Type1, h.Side())
	}

	_, err := handle.Wrap(nil)
	assert.ErrorIs(t, err, handle.ErrGraphNil)
}

// TestRemove_SurvivorsKeepResolving is the point of the package: after
// a removal renumbers the store, surviving handles still find their
// nodes, and only the removed handle goes stale.
func TestRemove_SurvivorsKeepResolving(t *testing.T) {
	tab := buildTable(t)

	h0, err := tab.HandleOf(bipartite.Type1, 0)
	require.NoError(t, err)
	h1, err := tab.HandleOf(bipartite.Type1, 1)
	require.NoError(t, err)
	h2, err := tab.HandleOf(bipartite.Type1, 2)
	require.NoError(t, err)

	require.NoError(t, tab.Remove(h0))

	// The store renumbered: former node 1 is dense id 0 now.
	id, err := tab.Resolve(h1)
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(0), id)
	id, err = tab.Resolve(h2)
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(1), id)

	_, err = tab.Resolve(h0)
	assert.ErrorIs(t, err, handle.ErrStaleHandle)
	assert.NoError(t, tab.Graph().Validate())
}

// TestSlotReuse_BumpsGeneration: a recycled slot must not resurrect
// the old handle.
func TestSlotReuse_BumpsGeneration(t *testing.T) {
	tab := buildTable(t)

	h0, err := tab.HandleOf(bipartite.Type1, 0)
	require.NoError(t, err)
	require.NoError(t, tab.Remove(h0))

	// The next append recycles node 0's slot under a new generation.
	fresh, err := tab.Append(bipartite.Type1)
	require.NoError(t, err)
	id, err := tab.Resolve(fresh)
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(2), id, "appended after two survivors")

	_, err = tab.Resolve(h0)
	assert.ErrorIs(t, err, handle.ErrStaleHandle, "old handle must not alias the new occupant")
}

// TestRoutedMutations covers AddEdge/EraseEdge/AppendWithNeighbors
// through handles, in either endpoint order.
func TestRoutedMutations(t *testing.T) {
	tab := buildTable(t)

	v0, err := tab.HandleOf(bipartite.Type1, 0)
	require.NoError(t, err)
	f1, err := tab.HandleOf(bipartite.Type2, 1)
	require.NoError(t, err)

	require.NoError(t, tab.AddEdge(f1, v0), "order must not matter")
	assert.True(t, tab.Graph().HasEdge(0, 1))
	require.NoError(t, tab.EraseEdge(v0, f1))
	assert.False(t, tab.Graph().HasEdge(0, 1))
	assert.ErrorIs(t, tab.EraseEdge(v0, f1), bipartite.ErrEdgeNotFound)

	// New factor wired to two variables via handles.
	v2, err := tab.HandleOf(bipartite.Type1, 2)
	require.NoError(t, err)
	f, err := tab.AppendWithNeighbors(bipartite.Type2, []handle.Handle{v0, v2})
	require.NoError(t, err)
	id, err := tab.Resolve(f)
	require.NoError(t, err)
	d, err := tab.Graph().Degree(bipartite.Type2, id)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.NoError(t, tab.Graph().Validate())
}

// TestHandleMisuse covers same-side edges, foreign and zero handles.
func TestHandleMisuse(t *testing.T) {
	tab := buildTable(t)
	other := buildTable(t)

	a, err := tab.HandleOf(bipartite.Type1, 0)
	require.NoError(t, err)
	b, err := tab.HandleOf(bipartite.Type1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, tab.AddEdge(a, b), handle.ErrSideMismatch)

	foreign, err := other.HandleOf(bipartite.Type2, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, tab.AddEdge(a, foreign), handle.ErrForeignHandle)
	_, err = tab.Resolve(foreign)
	assert.ErrorIs(t, err, handle.ErrForeignHandle)

	var zero handle.Handle
	_, err = tab.Resolve(zero)
	assert.ErrorIs(t, err, handle.ErrForeignHandle)

	// Same-side neighbors are rejected before any wiring.
	_, err = tab.AppendWithNeighbors(bipartite.Type1, []handle.Handle{a})
	assert.ErrorIs(t, err, handle.ErrSideMismatch)
	assert.Equal(t, 3, tab.Graph().Nr1())
}

// TestRemove_ChurnKeepsMappingAligned drains and regrows both sides,
// validating the store and the mapping at every step.
func TestRemove_ChurnKeepsMappingAligned(t *testing.T) {
	tab := buildTable(t)

	var live []handle.Handle
	for id := 0; id < 3; id++ {
		h, err := tab.HandleOf(bipartite.Type1, bipartite.NodeID(id))
		require.NoError(t, err)
		live = append(live, h)
	}

	// Remove the middle variable; the outer two must keep resolving.
	require.NoError(t, tab.Remove(live[1]))
	id, err := tab.Resolve(live[0])
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(0), id)
	id, err = tab.Resolve(live[2])
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(1), id)

	// Grow again; handles of fresh nodes resolve to fresh dense ids.
	h3, err := tab.Append(bipartite.Type1)
	require.NoError(t, err)
	h4, err := tab.Append(bipartite.Type1)
	require.NoError(t, err)
	id3, err := tab.Resolve(h3)
	require.NoError(t, err)
	id4, err := tab.Resolve(h4)
	require.NoError(t, err)
	assert.Equal(t, bipartite.NodeID(2), id3)
	assert.Equal(t, bipartite.NodeID(3), id4)
	assert.NoError(t, tab.Graph().Validate())
}
