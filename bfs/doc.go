// Package bfs provides breadth-first traversal over an unweighted adjacency
// structure: full traversals with hop distances and parent links, early-exit
// point-to-point shortest paths, and level grouping.
//
// Neighbor visit order is exactly the insertion order of the adjacency
// slices, which makes every result reproducible. A start node that is absent
// from the graph's key space is treated as an isolated node with out-degree
// zero, not an error.
//
// Traversals accept functional options; WithContext enables cancellation,
// WithMaxDepth bounds exploration depth.
package bfs
