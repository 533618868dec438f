package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpalomar/grafeo/builder"
	"github.com/mpalomar/grafeo/graph"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// Two users with expense histories; amounts negative as stored upstream.
func ledger() []builder.Transaction {
	return []builder.Transaction{
		{ID: 1, Date: day(1), Category: "Food", Amount: -50, User: "alice", Type: builder.TypeExpense},
		{ID: 2, Date: day(3), Category: "Travel", Amount: -120, User: "alice", Type: builder.TypeExpense},
		{ID: 3, Date: day(10), Category: "Food", Amount: -30, User: "alice", Type: builder.TypeExpense},
		{ID: 4, Date: day(2), Category: "Food", Amount: -20, User: "bob", Type: builder.TypeExpense},
		{ID: 5, Date: day(4), Category: "Rent", Amount: -500, User: "bob", Type: builder.TypeExpense},
	}
}

func TestTransactionGraph_ChainsPerUser(t *testing.T) {
	g, err := builder.TransactionGraph(ledger())
	require.NoError(t, err)

	want := graph.Weighted[int]{
		1: {{To: 2, Weight: 120}},
		2: {{To: 3, Weight: 30}},
		4: {{To: 5, Weight: 500}},
	}
	assert.Equal(t, want, g)
}

func TestTransactionGraph_DoesNotMutateInput(t *testing.T) {
	ts := ledger()
	// Shuffle so the builder's internal sort would be visible.
	ts[0], ts[4] = ts[4], ts[0]
	snapshot := make([]builder.Transaction, len(ts))
	copy(snapshot, ts)

	_, err := builder.TransactionGraph(ts)
	require.NoError(t, err)
	assert.Equal(t, snapshot, ts)
}

func TestCategoryGraph_AveragesUnorderedPairs(t *testing.T) {
	g, err := builder.CategoryGraph(ledger())
	require.NoError(t, err)

	// alice moves Food->Travel (120) and Travel->Food (30): one unordered
	// pair, average 75. bob moves Food->Rent (500) once.
	want := graph.Weighted[string]{
		"Food":   {{To: "Travel", Weight: 75}, {To: "Rent", Weight: 500}},
		"Travel": {{To: "Food", Weight: 75}},
		"Rent":   {{To: "Food", Weight: 500}},
	}
	assert.Equal(t, want, g)
}

func TestUserCategoryGraph_CumulativeBipartite(t *testing.T) {
	g, err := builder.UserCategoryGraph(ledger())
	require.NoError(t, err)

	want := graph.Weighted[string]{
		"U:alice":  {{To: "C:Food", Weight: 80}, {To: "C:Travel", Weight: 120}},
		"U:bob":    {{To: "C:Food", Weight: 20}, {To: "C:Rent", Weight: 500}},
		"C:Food":   {{To: "U:alice", Weight: 80}, {To: "U:bob", Weight: 20}},
		"C:Travel": {{To: "U:alice", Weight: 120}},
		"C:Rent":   {{To: "U:bob", Weight: 500}},
	}
	assert.Equal(t, want, g)
}

func TestTemporalGraph_DefaultWindow(t *testing.T) {
	g, err := builder.TemporalGraph(ledger())
	require.NoError(t, err)

	want := graph.Weighted[int]{
		1: {{To: 4, Weight: 20}, {To: 2, Weight: 120}, {To: 5, Weight: 500}},
		4: {{To: 2, Weight: 120}, {To: 5, Weight: 500}},
		2: {{To: 5, Weight: 500}, {To: 3, Weight: 30}},
		5: {{To: 3, Weight: 30}},
	}
	assert.Equal(t, want, g)
}

func TestTemporalGraph_NarrowWindow(t *testing.T) {
	g, err := builder.TemporalGraph(ledger(), builder.WithTimeWindow(1))
	require.NoError(t, err)

	want := graph.Weighted[int]{
		1: {{To: 4, Weight: 20}},
		4: {{To: 2, Weight: 120}},
		2: {{To: 5, Weight: 500}},
	}
	assert.Equal(t, want, g)
}

func TestTemporalGraph_InvalidWindow(t *testing.T) {
	_, err := builder.TemporalGraph(ledger(), builder.WithTimeWindow(0))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestCategoryTransitionGraph_DirectedFrequencies(t *testing.T) {
	g, err := builder.CategoryTransitionGraph(ledger())
	require.NoError(t, err)

	want := graph.Weighted[string]{
		"Food":   {{To: "Travel", Weight: 1}, {To: "Rent", Weight: 1}},
		"Travel": {{To: "Food", Weight: 1}},
	}
	assert.Equal(t, want, g)
}

func TestWithExpensesOnly_DropsIncome(t *testing.T) {
	ts := append(ledger(), builder.Transaction{
		ID: 6, Date: day(2), Category: "Salary", Amount: 1000,
		User: "alice", Type: builder.TypeIncome,
	})

	// Default policy keeps the income record inside alice's chain.
	g, err := builder.TransactionGraph(ts)
	require.NoError(t, err)
	assert.Equal(t, []graph.Arc[int]{{To: 6, Weight: 1000}}, g[1])

	g, err = builder.TransactionGraph(ts, builder.WithExpensesOnly())
	require.NoError(t, err)
	assert.Equal(t, []graph.Arc[int]{{To: 2, Weight: 120}}, g[1])
	assert.NotContains(t, g, 6)
}

func TestBuilders_EmptyInput(t *testing.T) {
	gt, err := builder.TransactionGraph(nil)
	require.NoError(t, err)
	assert.Empty(t, gt)

	gc, err := builder.CategoryGraph(nil)
	require.NoError(t, err)
	assert.Empty(t, gc)

	tg, err := builder.TemporalGraph(nil)
	require.NoError(t, err)
	assert.Empty(t, tg)
}
