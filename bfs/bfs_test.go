package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/grafeo/bfs"
	"github.com/mpalomar/grafeo/graph"
)

// square is the reference fixture: 0-1, 0-2, 1-3, 2-3 (undirected,
// symmetric adjacency).
var square = graph.Unweighted[int]{
	0: {1, 2},
	1: {0, 3},
	2: {0, 3},
	3: {1, 2},
}

// TestBFS_Square checks visit order, hop distances, parents and visit count
// on the square fixture.
func TestBFS_Square(t *testing.T) {
	res, err := bfs.BFS(square, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, res.Dist)
	assert.Equal(t, 4, res.VisitedCount)

	// 3 was discovered through 1 (first neighbor of 1 in insertion order).
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1}, res.Parent)

	// The start node carries no parent entry.
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent)
}

// TestBFS_InsertionOrder verifies that visit order follows adjacency
// insertion order, not numeric order.
func TestBFS_InsertionOrder(t *testing.T) {
	g := graph.Unweighted[int]{
		0: {2, 1},
		1: nil,
		2: nil,
	}
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, res.Order)
}

// TestBFS_AbsentStart treats a start missing from the key space as an
// isolated node rather than an error.
func TestBFS_AbsentStart(t *testing.T) {
	res, err := bfs.BFS(square, 42)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, res.Order)
	assert.Equal(t, map[int]int{42: 0}, res.Dist)
	assert.Equal(t, 1, res.VisitedCount)
}

// TestBFS_MaxDepth bounds exploration depth.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(square, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	_, reached := res.Dist[3]
	assert.False(t, reached)
}

// TestBFS_OptionViolation surfaces a bad option at call time.
func TestBFS_OptionViolation(t *testing.T) {
	_, err := bfs.BFS(square, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Cancelled aborts on a done context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(square, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPathTo reconstructs a hop-shortest path from the parent map.
func TestPathTo(t *testing.T) {
	res, err := bfs.BFS(square, 0)
	require.NoError(t, err)

	path, ok := res.PathTo(3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3}, path)

	_, ok = res.PathTo(99)
	assert.False(t, ok)
}

func TestShortestPath(t *testing.T) {
	tests := []struct {
		name       string
		g          graph.Unweighted[int]
		start, end int
		wantFound  bool
		wantPath   []int
	}{
		{"trivial", square, 2, 2, true, []int{2}},
		{"two hops", square, 0, 3, true, []int{0, 1, 3}},
		{"unreachable", graph.Unweighted[int]{0: {1}, 2: nil}, 0, 2, false, nil},
		{"absent end", square, 0, 7, false, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := bfs.ShortestPath(tc.g, tc.start, tc.end)
			assert.Equal(t, tc.wantFound, res.Found)
			assert.Equal(t, tc.wantPath, res.Path)
			if tc.wantFound {
				assert.Equal(t, len(tc.wantPath)-1, res.Length)
			}
		})
	}
}

// TestLevels groups nodes by BFS depth.
func TestLevels(t *testing.T) {
	levels := bfs.Levels(square, 0)
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, levels)
}
