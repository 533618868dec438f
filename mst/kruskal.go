// Package mst implements Kruskal's algorithm on an edge list backed by the
// unionfind package.
//
// Complexity: O(E log E + E·α(V)) time, O(E + V) memory.
package mst

import (
	"fmt"
	"sort"

	"github.com/mpalomar/grafeo/graph"
	"github.com/mpalomar/grafeo/unionfind"
)

// Kruskal computes a minimum spanning tree (or forest) of the undirected
// graph given as a flat edge list over the vertex range [0, numVertices).
//
// Edges are sorted ascending by weight with a stable sort, so equal
// weights keep their input order. An edge is accepted iff it merges two
// distinct components; the scan stops once numVertices-1 edges are in.
// Duplicate pairs in the input are honored as supplied, never deduplicated.
//
// numVertices must be ≥ max(u, v)+1 over all edges; violations fail fast
// with ErrVertexOutOfRange. A disconnected input yields IsConnected=false,
// not an error.
func Kruskal(edges []graph.Edge[int], numVertices int) (*Result, error) {
	for _, e := range edges {
		if e.U < 0 || e.U >= numVertices || e.V < 0 || e.V >= numVertices {
			return nil, fmt.Errorf("%w: edge %d–%d, numVertices=%d", ErrVertexOutOfRange, e.U, e.V, numVertices)
		}
	}

	sorted := append([]graph.Edge[int](nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf := unionfind.New(numVertices)
	res := &Result{Edges: []graph.Edge[int]{}}
	for _, e := range sorted {
		merged, err := uf.Union(e.U, e.V)
		if err != nil {
			return nil, err // unreachable after the range scan
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == numVertices-1 {
			break
		}
	}
	res.NumEdges = len(res.Edges)
	res.IsConnected = res.NumEdges == numVertices-1

	return res, nil
}

// KruskalFromAdjacency runs Kruskal over an adjacency structure, first
// flattening it with the first-wins unordered-pair deduplication of
// graph.Weighted.UndirectedEdges. When the same pair appears with two
// different weights, only the first-seen weight reaches Kruskal.
func KruskalFromAdjacency(g graph.Weighted[int], numVertices int) (*Result, error) {
	return Kruskal(g.UndirectedEdges(), numVertices)
}
