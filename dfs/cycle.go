// Package dfs implements cycle detection on directed graphs via DFS with an
// on-stack ("gray") set, the three-color scheme in miniature.
package dfs

import (
	"cmp"

	"github.com/mpalomar/grafeo/graph"
)

// DetectCycle inspects the directed graph g for a cycle. Roots are taken
// from the sorted key set and neighbors follow insertion order, so the first
// cycle reported is deterministic for a given graph.
//
// On a back-edge to a node still on the recursion stack, the result carries
// the node sequence from that node along the stack and back to itself
// (first and last elements equal). Complexity: O(V + E).
func DetectCycle[N cmp.Ordered](g graph.Unweighted[N]) CycleResult[N] {
	visited := make(map[N]bool, len(g))
	onStack := make(map[N]bool, len(g))
	path := make([]N, 0, len(g))
	var cycle []N

	var walk func(N) bool
	walk = func(node N) bool {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, nbr := range g[node] {
			if !visited[nbr] {
				if walk(nbr) {
					return true
				}
			} else if onStack[nbr] {
				// Back-edge: slice the stack from nbr onward and close the loop.
				idx := 0
				for i, n := range path {
					if n == nbr {
						idx = i
						break
					}
				}
				cycle = append(append([]N(nil), path[idx:]...), nbr)

				return true
			}
		}

		path = path[:len(path)-1]
		onStack[node] = false

		return false
	}

	for _, v := range g.Vertices() {
		if !visited[v] && walk(v) {
			return CycleResult[N]{HasCycle: true, Cycle: cycle}
		}
	}

	return CycleResult[N]{}
}
