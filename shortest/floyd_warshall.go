// Package shortest implements the Floyd–Warshall all-pairs closure on a
// dense distance matrix with a parallel next-hop matrix for path recovery.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Complexity: O(V³) time, O(V²) memory.
package shortest

import (
	"fmt"
	"math"

	"github.com/mpalomar/grafeo/graph"
)

// noHop marks an absent next-hop entry.
const noHop = -1

// Matrix is the Floyd–Warshall output: Dist[i][j] is the shortest i→j
// distance (+Inf when no path exists, 0 on the diagonal) and Next[i][j] is
// the first hop of one such shortest path (noHop when absent).
type Matrix struct {
	Dist [][]float64
	Next [][]int
}

// FloydWarshall computes all-pairs shortest paths over the contiguous
// vertex range [0, numVertices). Sparse or string-keyed graphs are not
// accepted; endpoints outside the range fail with ErrVertexOutOfRange.
// Negative edge weights are allowed; a negative diagonal afterwards
// indicates a negative cycle (see HasNegativeCycle).
func FloydWarshall(g graph.Weighted[int], numVertices int) (*Matrix, error) {
	inf := math.Inf(1)
	dist := make([][]float64, numVertices)
	next := make([][]int, numVertices)
	for i := 0; i < numVertices; i++ {
		dist[i] = make([]float64, numVertices)
		next[i] = make([]int, numVertices)
		for j := 0; j < numVertices; j++ {
			dist[i][j] = inf
			next[i][j] = noHop
		}
		dist[i][i] = 0
	}

	// Seed direct edges.
	for _, u := range g.Vertices() {
		if u < 0 || u >= numVertices {
			return nil, fmt.Errorf("%w: node %d, numVertices=%d", ErrVertexOutOfRange, u, numVertices)
		}
		for _, a := range g[u] {
			if a.To < 0 || a.To >= numVertices {
				return nil, fmt.Errorf("%w: edge %d→%d, numVertices=%d", ErrVertexOutOfRange, u, a.To, numVertices)
			}
			dist[u][a.To] = a.Weight
			next[u][a.To] = a.To
		}
	}

	// Triple relaxation, strict improvements only.
	for k := 0; k < numVertices; k++ {
		for i := 0; i < numVertices; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < numVertices; j++ {
				if kj := dist[k][j]; !math.IsInf(kj, 1) && ik+kj < dist[i][j] {
					dist[i][j] = ik + kj
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &Matrix{Dist: dist, Next: next}, nil
}

// PathBetween walks the next-hop matrix from start towards end. The second
// return is false when either endpoint is out of range or no path exists.
func (m *Matrix) PathBetween(start, end int) ([]int, bool) {
	n := len(m.Next)
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, false
	}
	if start != end && m.Next[start][end] == noHop {
		return nil, false
	}

	path := []int{start}
	for cur := start; cur != end; {
		cur = m.Next[cur][end]
		if cur == noHop {
			return nil, false
		}
		path = append(path, cur)
	}

	return path, true
}

// HasNegativeCycle reports whether the closure produced a negative
// diagonal entry, the all-pairs witness of a negative cycle.
func (m *Matrix) HasNegativeCycle() bool {
	for i := range m.Dist {
		if m.Dist[i][i] < 0 {
			return true
		}
	}

	return false
}

// AllPairs expands the matrix into per-pair point results for every finite
// off-diagonal distance.
func (m *Matrix) AllPairs() map[int]map[int]PointResult[int] {
	n := len(m.Dist)
	out := make(map[int]map[int]PointResult[int], n)
	for i := 0; i < n; i++ {
		out[i] = make(map[int]PointResult[int])
		for j := 0; j < n; j++ {
			if i == j || math.IsInf(m.Dist[i][j], 1) {
				continue
			}
			path, ok := m.PathBetween(i, j)
			if !ok {
				continue
			}
			out[i][j] = PointResult[int]{Found: true, Path: path, Distance: m.Dist[i][j]}
		}
	}

	return out
}
