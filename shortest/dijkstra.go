// Package shortest implements Dijkstra's algorithm with a lazy-deletion
// binary heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V). Every relaxation may push a duplicate heap
//     entry; stale entries are skipped via the visited set when popped.
//   - Space: O(V + E).
package shortest

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/mpalomar/grafeo/graph"
)

// Dijkstra computes shortest distances from start to every reachable node
// of the weighted graph g.
//
// Preconditions: all edge weights must be non-negative. The full edge set
// is scanned upfront and the first negative weight fails the call with
// ErrNegativeWeight before any relaxation happens. A start absent from g's
// key space is valid and yields a result covering start alone.
func Dijkstra[N cmp.Ordered](g graph.Weighted[N], start N) (*Result[N], error) {
	for _, u := range g.Vertices() {
		for _, a := range g[u] {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	res := &Result[N]{
		Dist:   make(map[N]float64, len(g)),
		Parent: make(map[N]N, len(g)),
	}
	res.Dist[start] = 0

	visited := make(map[N]bool, len(g))
	pq := &nodePQ[N]{{id: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[N])
		u := item.id
		if visited[u] {
			// Stale lazy-deletion entry.
			continue
		}
		visited[u] = true

		for _, a := range g[u] {
			d := item.dist + a.Weight
			if cur, seen := res.Dist[a.To]; seen && d >= cur {
				continue
			}
			res.Dist[a.To] = d
			res.Parent[a.To] = u
			heap.Push(pq, pqItem[N]{id: a.To, dist: d})
		}
	}

	return res, nil
}

// DijkstraPath answers a point-to-point query: the shortest path start→end
// and its total weight. An absent or unreachable end is Found=false.
func DijkstraPath[N cmp.Ordered](g graph.Weighted[N], start, end N) (PointResult[N], error) {
	res, err := Dijkstra(g, start)
	if err != nil {
		return PointResult[N]{}, err
	}
	path, ok := res.PathTo(end)
	if !ok {
		return PointResult[N]{}, nil
	}

	return PointResult[N]{Found: true, Path: path, Distance: res.Dist[end]}, nil
}

// DijkstraAllPaths reconstructs the shortest path to every reachable node
// in one pass over a single Dijkstra run.
func DijkstraAllPaths[N cmp.Ordered](g graph.Weighted[N], start N) (map[N]PointResult[N], error) {
	res, err := Dijkstra(g, start)
	if err != nil {
		return nil, err
	}

	paths := make(map[N]PointResult[N], len(res.Dist))
	for node, d := range res.Dist {
		path, _ := res.PathTo(node) // node is in Dist, reconstruction cannot fail
		paths[node] = PointResult[N]{Found: true, Path: path, Distance: d}
	}

	return paths, nil
}

// pqItem pairs a node with its tentative distance at push time.
type pqItem[N cmp.Ordered] struct {
	id   N
	dist float64
}

// nodePQ is a min-heap of pqItem ordered by distance, then node ID so that
// equal-distance pops are deterministic.
type nodePQ[N cmp.Ordered] []pqItem[N]

func (pq nodePQ[N]) Len() int { return len(pq) }

func (pq nodePQ[N]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return cmp.Less(pq[i].id, pq[j].id)
}

func (pq nodePQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(pqItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
