// Package shortest implements the Bellman–Ford algorithm over the dense
// vertex range [0, V).
//
// Complexity: O(V·E) time, O(V) memory.
package shortest

import (
	"errors"
	"fmt"
	"math"

	"github.com/mpalomar/grafeo/graph"
)

// BellmanFord computes shortest distances from start in a graph that may
// contain negative edge weights. numVertices fixes the vertex universe
// [0, numVertices) and must cover every endpoint; violations fail fast with
// ErrVertexOutOfRange.
//
// All edges are relaxed for up to numVertices-1 passes, terminating early
// on a pass with no updates. One extra verification scan follows: any
// remaining improvement proves a reachable negative cycle, and the call
// fails with ErrNegativeCycle returning no distances.
func BellmanFord(g graph.Weighted[int], start, numVertices int) (*Result[int], error) {
	if start < 0 || start >= numVertices {
		return nil, fmt.Errorf("%w: start=%d, numVertices=%d", ErrVertexOutOfRange, start, numVertices)
	}
	nodes := g.Vertices()
	for _, u := range nodes {
		if u < 0 || u >= numVertices {
			return nil, fmt.Errorf("%w: node %d, numVertices=%d", ErrVertexOutOfRange, u, numVertices)
		}
		for _, a := range g[u] {
			if a.To < 0 || a.To >= numVertices {
				return nil, fmt.Errorf("%w: edge %d→%d, numVertices=%d", ErrVertexOutOfRange, u, a.To, numVertices)
			}
		}
	}

	inf := math.Inf(1)
	dist := make([]float64, numVertices)
	for i := range dist {
		dist[i] = inf
	}
	dist[start] = 0
	parent := make(map[int]int, numVertices)

	// Relax every edge, sorted-source order, numVertices-1 times at most.
	for pass := 0; pass < numVertices-1; pass++ {
		updated := false
		for _, u := range nodes {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, a := range g[u] {
				if d := dist[u] + a.Weight; d < dist[a.To] {
					dist[a.To] = d
					parent[a.To] = u
					updated = true
				}
			}
		}
		if !updated {
			break
		}
	}

	// Verification scan: a further improvement signals a negative cycle.
	for _, u := range nodes {
		if math.IsInf(dist[u], 1) {
			continue
		}
		for _, a := range g[u] {
			if dist[u]+a.Weight < dist[a.To] {
				return nil, fmt.Errorf("%w: improvable edge %d→%d", ErrNegativeCycle, u, a.To)
			}
		}
	}

	res := &Result[int]{
		Dist:   make(map[int]float64, numVertices),
		Parent: parent,
	}
	for v, d := range dist {
		if !math.IsInf(d, 1) {
			res.Dist[v] = d
		}
	}

	return res, nil
}

// BellmanFordPath answers a point-to-point query via BellmanFord. A
// negative cycle propagates as ErrNegativeCycle; an unreachable end is
// Found=false.
func BellmanFordPath(g graph.Weighted[int], start, end, numVertices int) (PointResult[int], error) {
	res, err := BellmanFord(g, start, numVertices)
	if err != nil {
		return PointResult[int]{}, err
	}
	if end < 0 || end >= numVertices {
		return PointResult[int]{}, nil
	}
	path, ok := res.PathTo(end)
	if !ok {
		return PointResult[int]{}, nil
	}

	return PointResult[int]{Found: true, Path: path, Distance: res.Dist[end]}, nil
}

// HasNegativeCycle reports whether a negative cycle is reachable from start.
func HasNegativeCycle(g graph.Weighted[int], start, numVertices int) (bool, error) {
	_, err := BellmanFord(g, start, numVertices)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrNegativeCycle):
		return true, nil
	default:
		return false, err
	}
}
