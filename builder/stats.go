package builder

import (
	"cmp"

	"github.com/mpalomar/grafeo/graph"
)

// GraphStats aggregates the shape of a weighted adjacency.
type GraphStats struct {
	Nodes     int
	Edges     int
	AvgDegree float64
	AvgWeight float64
	MinWeight float64
	MaxWeight float64
}

// Stats summarizes g. Every adjacency entry counts as one edge, so an
// undirected graph reports each edge twice, matching its storage. An
// empty graph yields the zero value of GraphStats.
//
// Complexity: O(V + E) time, O(1) extra memory.
func Stats[N cmp.Ordered](g graph.Weighted[N]) GraphStats {
	var s GraphStats
	s.Nodes = len(g)
	if s.Nodes == 0 {
		return s
	}

	var sum float64
	first := true
	for _, arcs := range g {
		s.Edges += len(arcs)
		for _, a := range arcs {
			sum += a.Weight
			if first || a.Weight < s.MinWeight {
				s.MinWeight = a.Weight
			}
			if first || a.Weight > s.MaxWeight {
				s.MaxWeight = a.Weight
			}
			first = false
		}
	}
	s.AvgDegree = float64(s.Edges) / float64(s.Nodes)
	if s.Edges > 0 {
		s.AvgWeight = sum / float64(s.Edges)
	}
	return s
}
