package graph

import "cmp"

// UndirectedEdges flattens a weighted adjacency structure into an edge list
// suitable for Kruskal, deduplicating unordered pairs.
//
// Each returned Edge is normalized so that U ≤ V. When the same unordered
// pair occurs more than once (it always does in a well-formed undirected
// graph, and may with conflicting weights in a malformed one) only the
// first-seen weight is kept; later occurrences are silently dropped.
// "First seen" is well defined: nodes are scanned in ascending key order
// and each node's arcs in insertion order. Duplicates are never summed or
// averaged.
//
// Complexity: O(V log V + E).
func (g Weighted[N]) UndirectedEdges() []Edge[N] {
	type pair struct{ u, v N }

	seen := make(map[pair]struct{}, len(g))
	edges := make([]Edge[N], 0, len(g))
	for _, u := range g.Vertices() {
		for _, a := range g[u] {
			lo, hi := u, a.To
			if cmp.Less(hi, lo) {
				lo, hi = hi, lo
			}
			p := pair{lo, hi}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			edges = append(edges, Edge[N]{U: lo, V: hi, Weight: a.Weight})
		}
	}

	return edges
}
