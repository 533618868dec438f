// Package mst implements the minimum-spanning-tree family: Kruskal over a
// flat edge list via union-find, and Prim growing one component from a root
// via a min-heap.
//
// Kruskal sorts edges by ascending weight with a stable sort, so
// equal-weight ties resolve in input order and results are deterministic.
// A disconnected input is not an error: the result is a spanning forest
// with IsConnected=false, and the caller decides whether that is
// acceptable.
//
// Prim covers only the component reachable from its start node; PrimForest
// restarts it once per undiscovered component and sums the results.
//
// Duplicate unordered pairs in a caller-supplied edge list are processed as
// given; only KruskalFromAdjacency deduplicates, keeping the first-seen
// weight (see graph.Weighted.UndirectedEdges).
package mst
