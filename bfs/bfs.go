// Package bfs implements queue-based breadth-first search.
//
// Complexity of every function here: O(V + E) time, O(V) memory.
package bfs

import (
	"cmp"

	"github.com/mpalomar/grafeo/graph"
)

// BFS runs breadth-first search on g from start and returns the visit order,
// per-node hop distances and parent pointers.
//
// Each node is visited at most once; neighbors are explored in adjacency
// insertion order. If start is not a key of g it is treated as an isolated
// node: the result covers start alone with distance 0.
func BFS[N cmp.Ordered](g graph.Unweighted[N], start N, opts ...Option) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result[N]{
		Order:  make([]N, 0, len(g)),
		Dist:   make(map[N]int, len(g)),
		Parent: make(map[N]N, len(g)),
	}

	visited := make(map[N]bool, len(g))
	visited[start] = true
	res.Dist[start] = 0
	queue := []N{start}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		node := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, node)

		for _, nbr := range g[node] {
			if visited[nbr] {
				continue
			}
			d := res.Dist[node] + 1
			if o.MaxDepth > 0 && d > o.MaxDepth {
				continue
			}
			visited[nbr] = true
			res.Dist[nbr] = d
			res.Parent[nbr] = node
			queue = append(queue, nbr)
		}
	}
	res.VisitedCount = len(visited)

	return res, nil
}

// ShortestPath finds a minimum-hop path from start to end, exiting the
// moment end is enqueued rather than draining the whole graph.
// Found is false when end is unreachable.
func ShortestPath[N cmp.Ordered](g graph.Unweighted[N], start, end N) PathResult[N] {
	if start == end {
		return PathResult[N]{Found: true, Path: []N{start}, Length: 0}
	}

	visited := map[N]bool{start: true}
	parent := make(map[N]N, len(g))
	queue := []N{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, nbr := range g[node] {
			if visited[nbr] {
				continue
			}
			parent[nbr] = node
			if nbr == end {
				path := backtrack(parent, start, end)
				return PathResult[N]{Found: true, Path: path, Length: len(path) - 1}
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	return PathResult[N]{}
}

// Levels groups reachable nodes by their BFS depth: element i of the result
// holds, in visit order, every node at hop distance i from start.
func Levels[N cmp.Ordered](g graph.Unweighted[N], start N) [][]N {
	visited := map[N]bool{start: true}
	levels := [][]N{{start}}

	type item struct {
		node  N
		depth int
	}
	queue := []item{{start, 0}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		for _, nbr := range g[it.node] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			d := it.depth + 1
			if d == len(levels) {
				levels = append(levels, nil)
			}
			levels[d] = append(levels[d], nbr)
			queue = append(queue, item{nbr, d})
		}
	}

	return levels
}

// backtrack walks parent links from end to start and returns the forward path.
func backtrack[N cmp.Ordered](parent map[N]N, start, end N) []N {
	path := []N{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	reverse(path)

	return path
}
