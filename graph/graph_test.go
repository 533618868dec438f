package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/grafeo/graph"
)

// TestVertices_Sorted verifies that Vertices returns keys in ascending order
// for both int and string key spaces.
func TestVertices_Sorted(t *testing.T) {
	gi := graph.Weighted[int]{3: nil, 0: nil, 2: nil}
	assert.Equal(t, []int{0, 2, 3}, gi.Vertices())

	gs := graph.Unweighted[string]{"C:food": nil, "U:ana": nil, "C:auto": nil}
	assert.Equal(t, []string{"C:auto", "C:food", "U:ana"}, gs.Vertices())
}

// TestUndirectedEdges_Dedup verifies that a symmetric undirected adjacency
// collapses to one normalized edge per unordered pair.
func TestUndirectedEdges_Dedup(t *testing.T) {
	g := graph.Weighted[int]{
		0: {{To: 1, Weight: 1}, {To: 2, Weight: 3}},
		1: {{To: 0, Weight: 1}, {To: 2, Weight: 2}},
		2: {{To: 0, Weight: 3}, {To: 1, Weight: 2}},
	}

	edges := g.UndirectedEdges()
	require.Len(t, edges, 3)
	assert.Equal(t, []graph.Edge[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 3},
		{U: 1, V: 2, Weight: 2},
	}, edges)
}

// TestUndirectedEdges_FirstWins verifies the documented lossy policy: when
// the same unordered pair carries two different weights, the first-seen
// weight (lowest key first, insertion order within a key) is kept.
func TestUndirectedEdges_FirstWins(t *testing.T) {
	g := graph.Weighted[int]{
		0: {{To: 1, Weight: 5}},
		1: {{To: 0, Weight: 9}}, // conflicting mirror weight, dropped
	}

	edges := g.UndirectedEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, graph.Edge[int]{U: 0, V: 1, Weight: 5}, edges[0])
}

// TestUndirectedEdges_InsertionOrderWithinKey checks that arcs of a single
// node are scanned in insertion order when deciding which duplicate wins.
func TestUndirectedEdges_InsertionOrderWithinKey(t *testing.T) {
	g := graph.Weighted[string]{
		"a": {{To: "b", Weight: 7}, {To: "b", Weight: 1}},
	}

	edges := g.UndirectedEdges()
	require.Len(t, edges, 1)
	assert.Equal(t, 7.0, edges[0].Weight)
}
