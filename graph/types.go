package graph

import (
	"cmp"
	"slices"
)

// Arc is a single adjacency entry: the target node and the edge weight.
// For a directed edge u→v the Arc lives only in u's slice; undirected edges
// appear in both endpoints' slices (the builder package is responsible for
// that duplication).
type Arc[N cmp.Ordered] struct {
	To     N
	Weight float64
}

// Edge is one (U, V, Weight) triple of a flat edge list.
type Edge[N cmp.Ordered] struct {
	U, V   N
	Weight float64
}

// Weighted is a weighted adjacency structure: node → ordered outgoing arcs.
// The key set defines the graph's known vertices; nodes that appear only as
// arc targets are reachable but have out-degree zero.
type Weighted[N cmp.Ordered] map[N][]Arc[N]

// Unweighted is an unweighted adjacency structure: node → ordered neighbors.
type Unweighted[N cmp.Ordered] map[N][]N

// Vertices returns the graph's key set in ascending order.
// Sorting makes full-graph scans (cycle detection, topological sort,
// statistics) deterministic regardless of map iteration order.
// Complexity: O(V log V).
func (g Weighted[N]) Vertices() []N {
	vs := make([]N, 0, len(g))
	for v := range g {
		vs = append(vs, v)
	}
	slices.Sort(vs)

	return vs
}

// Vertices returns the graph's key set in ascending order.
// Complexity: O(V log V).
func (g Unweighted[N]) Vertices() []N {
	vs := make([]N, 0, len(g))
	for v := range g {
		vs = append(vs, v)
	}
	slices.Sort(vs)

	return vs
}
