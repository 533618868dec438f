package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/grafeo/dfs"
	"github.com/mpalomar/grafeo/graph"
)

// diamond: 0→{1,2}, 1→3, 2→3.
var diamond = graph.Unweighted[int]{
	0: {1, 2},
	1: {3},
	2: {3},
	3: nil,
}

// TestDFS_Order verifies first-neighbor-first pre-order on the diamond.
func TestDFS_Order(t *testing.T) {
	res, err := dfs.DFS(diamond, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, 4, res.VisitedCount)
}

// TestDFS_MatchesRecursive asserts output equivalence between the explicit
// stack variant and the recursive one across several shapes.
func TestDFS_MatchesRecursive(t *testing.T) {
	tests := []struct {
		name  string
		g     graph.Unweighted[int]
		start int
	}{
		{"diamond", diamond, 0},
		{"chain", graph.Unweighted[int]{0: {1}, 1: {2}, 2: {3}}, 0},
		{"branching", graph.Unweighted[int]{0: {3, 1}, 1: {2}, 3: {2, 4}}, 0},
		{"absent start", diamond, 9},
		{"cycle", graph.Unweighted[int]{0: {1}, 1: {2}, 2: {0}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iter, err := dfs.DFS(tc.g, tc.start)
			require.NoError(t, err)
			assert.Equal(t, dfs.Recursive(tc.g, tc.start), iter.Order)
		})
	}
}

// TestDFS_Cancelled aborts on a done context.
func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(diamond, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAllPaths enumerates every simple path in the diamond plus one longer
// detour graph.
func TestAllPaths(t *testing.T) {
	paths := dfs.AllPaths(diamond, 0, 3)
	assert.Equal(t, [][]int{{0, 1, 3}, {0, 2, 3}}, paths)

	g := graph.Unweighted[int]{
		0: {1, 2},
		1: {2, 3},
		2: {3},
		3: nil,
	}
	paths = dfs.AllPaths(g, 0, 3)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {0, 1, 3}, {0, 2, 3}}, paths)

	// No route start→end.
	assert.Empty(t, dfs.AllPaths(diamond, 3, 0))
}
