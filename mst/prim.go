// Package mst implements Prim's algorithm growing a component from a root
// with a lazy min-heap.
//
// Complexity: O(E log V) time, O(V + E) memory.
package mst

import (
	"cmp"
	"container/heap"

	"github.com/mpalomar/grafeo/graph"
)

// Prim grows a minimum spanning tree of the component containing start,
// using a min-heap keyed by edge weight with node ID as tie-break for
// deterministic output. Heap entries whose target was visited in the
// meantime are skipped lazily.
//
// Only the component reachable from start is covered; a disconnected graph
// is not spanned (use PrimForest for that). A start absent from g is an
// isolated single-node component.
func Prim[N cmp.Ordered](g graph.Weighted[N], start N) *PrimResult[N] {
	res, _ := prim(g, start, nil)

	return res
}

// PrimForest runs Prim once per undiscovered component over the dense
// vertex range [0, numVertices) and sums the results.
func PrimForest(g graph.Weighted[int], numVertices int) *ForestResult {
	forest := &ForestResult{}
	visited := make(map[int]bool, numVertices)
	for start := 0; start < numVertices; start++ {
		if visited[start] {
			continue
		}
		comp, _ := prim(g, start, visited)
		forest.Components = append(forest.Components, comp)
		forest.TotalWeight += comp.TotalWeight
	}
	forest.NumComponents = len(forest.Components)

	return forest
}

// prim is the shared worker. When visited is non-nil it is used and
// mutated as the cross-component visited set; otherwise a local one is
// allocated.
func prim[N cmp.Ordered](g graph.Weighted[N], start N, visited map[N]bool) (*PrimResult[N], map[N]bool) {
	if visited == nil {
		visited = make(map[N]bool, len(g))
	}
	res := &PrimResult[N]{Edges: []graph.Edge[N]{}}

	pq := &candPQ[N]{{node: start}}
	heap.Init(pq)

	seeded := 0 // nodes visited by this call
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate[N])
		if visited[c.node] {
			continue
		}
		visited[c.node] = true
		seeded++

		if c.hasParent {
			res.Edges = append(res.Edges, graph.Edge[N]{U: c.parent, V: c.node, Weight: c.weight})
			res.TotalWeight += c.weight
		}

		for _, a := range g[c.node] {
			if !visited[a.To] {
				heap.Push(pq, candidate[N]{weight: a.Weight, node: a.To, parent: c.node, hasParent: true})
			}
		}
	}
	res.NumEdges = len(res.Edges)
	res.VisitedNodes = seeded

	return res, visited
}

// candidate is a frontier edge: the cheapest known way to attach node.
type candidate[N cmp.Ordered] struct {
	weight    float64
	node      N
	parent    N
	hasParent bool // false only for the seeding entry
}

// candPQ is a min-heap of candidates ordered by weight, then node ID.
type candPQ[N cmp.Ordered] []candidate[N]

func (pq candPQ[N]) Len() int { return len(pq) }

func (pq candPQ[N]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return cmp.Less(pq[i].node, pq[j].node)
}

func (pq candPQ[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candPQ[N]) Push(x any) { *pq = append(*pq, x.(candidate[N])) }

func (pq *candPQ[N]) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
