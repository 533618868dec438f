// Package dfs implements depth-first traversal with an explicit stack and a
// recursive twin, plus exhaustive simple-path enumeration.
package dfs

import (
	"cmp"

	"github.com/mpalomar/grafeo/graph"
)

// DFS performs iterative depth-first search on g from start using an
// explicit stack. Neighbors are pushed in reverse adjacency order so that
// they are popped first-neighbor-first, matching Recursive exactly.
//
// A start absent from g's key space yields a single-node walk.
// Complexity: O(V + E) time, O(V) memory.
func DFS[N cmp.Ordered](g graph.Unweighted[N], start N, opts ...Option) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := make(map[N]bool, len(g))
	order := make([]N, 0, len(g))
	stack := []N{start}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			// Stale entry: the node was pushed twice before its first visit.
			continue
		}
		visited[node] = true
		order = append(order, node)

		nbrs := g[node]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				stack = append(stack, nbrs[i])
			}
		}
	}

	return &Result[N]{Order: order, VisitedCount: len(visited)}, nil
}

// Recursive performs depth-first search by direct recursion and returns the
// pre-order visit sequence. Output is identical to DFS on the same input;
// recursion depth is bounded by the longest simple path from start.
func Recursive[N cmp.Ordered](g graph.Unweighted[N], start N) []N {
	visited := make(map[N]bool, len(g))
	order := make([]N, 0, len(g))

	var walk func(N)
	walk = func(node N) {
		visited[node] = true
		order = append(order, node)
		for _, nbr := range g[node] {
			if !visited[nbr] {
				walk(nbr)
			}
		}
	}
	walk(start)

	return order
}

// AllPaths enumerates every simple path (no repeated nodes) from start to
// end by backtracking. The number of paths is exponential in the worst
// case; callers must bound graph size or accept the latency.
func AllPaths[N cmp.Ordered](g graph.Unweighted[N], start, end N) [][]N {
	var paths [][]N
	onPath := make(map[N]bool, len(g))
	path := make([]N, 0, len(g))

	var walk func(N)
	walk = func(node N) {
		path = append(path, node)
		onPath[node] = true

		if node == end {
			paths = append(paths, append([]N(nil), path...))
		} else {
			for _, nbr := range g[node] {
				if !onPath[nbr] {
					walk(nbr)
				}
			}
		}

		onPath[node] = false
		path = path[:len(path)-1]
	}
	walk(start)

	return paths
}
