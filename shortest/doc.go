// Package shortest groups the single-source and all-pairs shortest-path
// family: Dijkstra, Bellman–Ford and Floyd–Warshall, each producing
// distances together with enough structure to reconstruct the paths
// (parent maps for the single-source algorithms, a next-hop matrix for
// Floyd–Warshall).
//
// Contract summary:
//
//   - Dijkstra requires non-negative weights and fails fast with
//     ErrNegativeWeight after an upfront edge scan; distances cover only
//     reachable nodes. Unreachable nodes are absent from the map, never
//     present with an infinite sentinel.
//   - BellmanFord supports negative weights over the dense vertex range
//     [0, V); after ≤ V-1 relaxation passes a final verification scan turns
//     any further improvement into ErrNegativeCycle, with no distances.
//   - FloydWarshall fills a dense V×V matrix (+Inf = no path, zero
//     diagonal) with a fixed k→i→j loop order for deterministic
//     accumulation, alongside a parallel next-hop matrix.
//
// Point-to-point queries return a PointResult: an absent or unreachable end
// node is Found=false, a legitimate graph property rather than an error.
//
// For any graph with non-negative weights the three algorithms agree on
// every finite pairwise distance; the cross-validation test in this package
// exercises that invariant directly.
package shortest
