// Package mst defines result types and sentinel errors for MST computation.
package mst

import (
	"cmp"
	"errors"

	"github.com/mpalomar/grafeo/graph"
)

// ErrVertexOutOfRange is returned by Kruskal when an edge endpoint lies
// outside [0, numVertices).
var ErrVertexOutOfRange = errors.New("mst: vertex outside [0, numVertices)")

// Result is Kruskal's output. IsConnected is false when fewer than
// numVertices-1 edges were accepted, i.e. the edges span a forest rather
// than a single tree.
type Result struct {
	Edges       []graph.Edge[int]
	TotalWeight float64
	NumEdges    int
	IsConnected bool
}

// PrimResult covers the single component grown from Prim's start node.
type PrimResult[N cmp.Ordered] struct {
	Edges        []graph.Edge[N]
	TotalWeight  float64
	NumEdges     int
	VisitedNodes int
}

// ForestResult aggregates one PrimResult per connected component.
type ForestResult struct {
	NumComponents int
	Components    []*PrimResult[int]
	TotalWeight   float64
}
