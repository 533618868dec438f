// Package shortest defines shared result types and sentinel errors for the
// shortest-path family.
package shortest

import (
	"cmp"
	"errors"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrNegativeWeight is returned by Dijkstra when any edge weight is
	// negative; the algorithm's greedy finalization is unsound there.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNegativeCycle is returned by BellmanFord when a reachable cycle of
	// strictly negative total weight exists; no distances are returned.
	ErrNegativeCycle = errors.New("shortest: negative cycle detected")

	// ErrVertexOutOfRange is returned by the dense-range algorithms when an
	// edge endpoint or the start vertex lies outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("shortest: vertex outside [0, numVertices)")
)

// Result is the single-source output: shortest known distance and
// shortest-path-tree predecessor for every reachable node. The source has a
// Dist entry of 0 and no Parent entry; unreachable nodes appear in neither
// map.
type Result[N cmp.Ordered] struct {
	Dist   map[N]float64
	Parent map[N]N
}

// PathTo reconstructs the shortest path from the source to dest by walking
// Parent links backwards and reversing. The second return is false when
// dest is unreachable.
func (r *Result[N]) PathTo(dest N) ([]N, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	path := []N{dest}
	cur := dest
	for {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// PointResult is the point-to-point query output. Found=false means the end
// node is absent or unreachable; Path and Distance are meaningful only when
// Found is true.
type PointResult[N cmp.Ordered] struct {
	Found    bool
	Path     []N
	Distance float64
}
