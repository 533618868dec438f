// Package dfs provides topological ordering of directed acyclic graphs.
package dfs

import (
	"cmp"

	"github.com/mpalomar/grafeo/graph"
)

// TopologicalSort computes a linear ordering of g's nodes such that for
// every directed edge u→v, u precedes v. The ordering is the reverse of the
// DFS post-order, rooted from the sorted key set for determinism.
//
// The graph is checked for cycles first; a cyclic graph is rejected with a
// *CycleError carrying the detected cycle, matchable via
// errors.Is(err, ErrCycleDetected).
//
// Complexity: O(V + E).
func TopologicalSort[N cmp.Ordered](g graph.Unweighted[N]) ([]N, error) {
	if res := DetectCycle(g); res.HasCycle {
		return nil, &CycleError[N]{Cycle: res.Cycle}
	}

	visited := make(map[N]bool, len(g))
	order := make([]N, 0, len(g))

	var walk func(N)
	walk = func(node N) {
		visited[node] = true
		for _, nbr := range g[node] {
			if !visited[nbr] {
				walk(nbr)
			}
		}
		order = append(order, node)
	}

	for _, v := range g.Vertices() {
		if !visited[v] {
			walk(v)
		}
	}

	// Reverse post-order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
