package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/grafeo/builder"
	"github.com/mpalomar/grafeo/graph"
)

func TestStats_TransactionGraph(t *testing.T) {
	g, err := builder.TransactionGraph(ledger())
	require.NoError(t, err)

	s := builder.Stats(g)
	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 3, s.Edges)
	assert.InDelta(t, 1.0, s.AvgDegree, 1e-9)
	assert.InDelta(t, (120.0+30+500)/3, s.AvgWeight, 1e-9)
	assert.InDelta(t, 30, s.MinWeight, 1e-9)
	assert.InDelta(t, 500, s.MaxWeight, 1e-9)
}

func TestStats_EmptyGraph(t *testing.T) {
	s := builder.Stats(graph.Weighted[string]{})
	assert.Zero(t, s)
}

func TestStats_UndirectedCountsBothDirections(t *testing.T) {
	g, err := builder.UserCategoryGraph(ledger())
	require.NoError(t, err)

	s := builder.Stats(g)
	assert.Equal(t, 7, s.Nodes)
	// Four user-category pairs stored symmetrically.
	assert.Equal(t, 8, s.Edges)
}
