// Package graph defines the adjacency and edge-list representations shared
// by every algorithm package in grafeo.
//
// Two adjacency forms exist, both generic over any ordered key type N
// (dense ints for transaction/temporal graphs, composite strings such as
// "U:alice"/"C:food" for category graphs):
//
//	Unweighted[N] — node → ordered neighbor IDs, for BFS/DFS
//	Weighted[N]   — node → ordered (neighbor, weight) arcs
//
// The order of each neighbor slice is the caller's insertion order and is
// semantically significant: BFS/DFS visit order follows it exactly, so it is
// never reordered by any function in this module.
//
// EdgeList input to MST algorithms is a flat []Edge[N]. Duplicate unordered
// pairs in an edge list are legal and are NOT deduplicated; only the
// adjacency→edge-list conversion (Weighted.UndirectedEdges) deduplicates,
// keeping the first-seen weight. That conversion is lossy; see the method
// doc.
//
// Graphs here are plain maps: construct them literally, or derive them from
// transaction records with the builder package. Algorithms treat them as
// immutable snapshots.
package graph
