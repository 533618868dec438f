// Package grafeo is a stateless engine of classic graph and
// combinatorial-optimization algorithms over financial-transaction data.
//
// 🚀 What is grafeo?
//
//	A small, pure-Go library that brings together:
//		• Graph model: ordered adjacency structures and edge lists over any key type
//		• Union-Find: disjoint sets with path compression and union by rank
//		• Traversals: BFS (distances, levels, shortest hop-path) and DFS
//		  (iterative & recursive, all simple paths, cycle detection, topo sort)
//		• Shortest paths: Dijkstra, Bellman–Ford, Floyd–Warshall — all with
//		  reconstructable paths
//		• Minimum spanning trees: Kruskal (union-find) and Prim (min-heap)
//		• DP optimization: 0/1, unbounded and fractional knapsack, subset sum
//		• Builder: five typed graphs derived from transaction records
//		  (GT, GC, GUC, temporal, category transitions)
//
// ✨ Why grafeo?
//
//   - Deterministic — tie-breaks and iteration orders are fixed, results are
//     reproducible run to run
//   - Pure functions — every call allocates its own state; inputs are treated
//     as immutable snapshots, so concurrent use needs no locking
//   - Reconstructable — distances come with parent maps or next-hop matrices,
//     DP optima come with the selected items
//
// Subpackages:
//
//	graph/     — adjacency & edge-list types shared by every algorithm
//	unionfind/ — disjoint-set union
//	bfs/       — breadth-first traversal family
//	dfs/       — depth-first traversal family
//	shortest/  — Dijkstra, Bellman–Ford, Floyd–Warshall
//	mst/       — Kruskal, Prim
//	knapsack/  — knapsack variants and subset sum
//	builder/   — transaction records → derived graphs + statistics
//
// Quick ASCII example:
//
//	    T1──▶T2──▶T4      a user's transactions, chained by date;
//	          │            edge weight = |amount| of the target record
//	          ▼
//	          T3
//
//	go get github.com/mpalomar/grafeo
package grafeo
