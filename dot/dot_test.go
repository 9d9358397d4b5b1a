package dot_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factorgraph/bipartite"
	"github.com/katalvlaran/factorgraph/dot"
)

// buildBase returns the reference 3×2 factor graph with five edges.
func buildBase(t *testing.T) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.NewFromEdges(3, 2, []bipartite.Edge{
		{N1: 0, N2: 0},
		{N1: 1, N2: 0},
		{N1: 2, N2: 0},
		{N1: 1, N2: 1},
		{N1: 2, N2: 1},
	})
	require.NoError(t, err)

	return g
}

// TestString_Golden pins the exact serialization of the reference graph.
func TestString_Golden(t *testing.T) {
	got, err := dot.String(buildBase(t))
	require.NoError(t, err)

	want := `graph bipgraph {
  subgraph cluster_type1 {
    node [shape=circle];
    t1_0;
    t1_1;
    t1_2;
  }
  subgraph cluster_type2 {
    node [shape=box];
    t2_0;
    t2_1;
  }
  t1_0 -- t2_0;
  t1_1 -- t2_0;
  t1_1 -- t2_1;
  t1_2 -- t2_0;
  t1_2 -- t2_1;
}
`
	assert.Equal(t, want, got)
}

// TestString_Empty serializes the zero-node graph.
func TestString_Empty(t *testing.T) {
	got, err := dot.String(bipartite.New())
	require.NoError(t, err)
	assert.Contains(t, got, "graph bipgraph {")
	assert.NotContains(t, got, "--")
}

// TestOptions covers name/shape overrides and option validation.
func TestOptions(t *testing.T) {
	g := buildBase(t)

	got, err := dot.String(g, dot.WithName("factors"), dot.WithShapes("ellipse", "square"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "graph factors {"))
	assert.Contains(t, got, "node [shape=ellipse];")
	assert.Contains(t, got, "node [shape=square];")

	_, err = dot.String(g, dot.WithName(""))
	assert.ErrorIs(t, err, dot.ErrBadOption)
	_, err = dot.String(g, dot.WithShapes("", "box"))
	assert.ErrorIs(t, err, dot.ErrBadOption)
}

// TestWrite_NilGraph rejects a nil graph.
func TestWrite_NilGraph(t *testing.T) {
	var b strings.Builder
	assert.ErrorIs(t, dot.Write(nil, &b), dot.ErrGraphNil)
}

// ExampleString renders a two-variable, one-factor graph.
func ExampleString() {
	g, _ := bipartite.NewFromEdges(2, 1, []bipartite.Edge{
		{N1: 0, N2: 0},
		{N1: 1, N2: 0},
	})
	s, _ := dot.String(g, dot.WithName("pair"))
	fmt.Print(s)
	// Output:
	// graph pair {
	//   subgraph cluster_type1 {
	//     node [shape=circle];
	//     t1_0;
	//     t1_1;
	//   }
	//   subgraph cluster_type2 {
	//     node [shape=box];
	//     t2_0;
	//   }
	//   t1_0 -- t2_0;
	//   t1_1 -- t2_0;
	// }
}
