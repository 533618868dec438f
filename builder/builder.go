package builder

import (
	"math"
	"sort"
	"time"

	"github.com/mpalomar/grafeo/graph"
)

// TransactionGraph (GT) links each transaction to the chronologically next
// one of the same user. The edge is directed and carries the absolute
// amount of the destination transaction.
//
// Complexity: O(n log n) time for the sort, O(n) memory.
func TransactionGraph(ts []Transaction, opts ...Option) (graph.Weighted[int], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	sorted := prepare(ts, o, byUserDate)

	g := make(graph.Weighted[int])
	for _, run := range groupByUser(sorted) {
		for i := 0; i+1 < len(run); i++ {
			g[run[i].ID] = append(g[run[i].ID], graph.Arc[int]{
				To:     run[i+1].ID,
				Weight: math.Abs(run[i+1].Amount),
			})
		}
	}
	return g, nil
}

// CategoryGraph (GC) connects categories a user moved between on
// consecutive transactions. The unordered pair accumulates a count and an
// amount total; the emitted undirected edge carries the average amount
// and appears in both endpoints' adjacency exactly once.
//
// Complexity: O(n log n) time, O(c^2) memory for c categories worst case.
func CategoryGraph(ts []Transaction, opts ...Option) (graph.Weighted[string], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	sorted := prepare(ts, o, byUserDate)

	type pair struct{ a, b string }
	type acc struct {
		count int
		total float64
	}
	pairs := make(map[pair]*acc)
	var order []pair

	for _, run := range groupByUser(sorted) {
		for i := 0; i+1 < len(run); i++ {
			c1, c2 := run[i].Category, run[i+1].Category
			if c1 == c2 {
				continue
			}
			if c2 < c1 {
				c1, c2 = c2, c1
			}
			p := pair{c1, c2}
			a, ok := pairs[p]
			if !ok {
				a = &acc{}
				pairs[p] = a
				order = append(order, p)
			}
			a.count++
			a.total += math.Abs(run[i+1].Amount)
		}
	}

	g := make(graph.Weighted[string])
	for _, p := range order {
		a := pairs[p]
		w := a.total / float64(a.count)
		g[p.a] = append(g[p.a], graph.Arc[string]{To: p.b, Weight: w})
		g[p.b] = append(g[p.b], graph.Arc[string]{To: p.a, Weight: w})
	}
	return g, nil
}

// UserCategoryGraph (GUC) is the bipartite view: one undirected edge per
// (user, category) pair seen anywhere in the history, weighted by the
// cumulative absolute amount. User nodes are prefixed "U:" and category
// nodes "C:" so the two sides cannot collide.
//
// Complexity: O(n) time plus sorting the emitted pairs.
func UserCategoryGraph(ts []Transaction, opts ...Option) (graph.Weighted[string], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	filtered := prepare(ts, o, nil)

	type pair struct{ user, cat string }
	totals := make(map[pair]float64)
	var order []pair

	for _, t := range filtered {
		p := pair{"U:" + t.User, "C:" + t.Category}
		if _, ok := totals[p]; !ok {
			order = append(order, p)
		}
		totals[p] += math.Abs(t.Amount)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].user != order[j].user {
			return order[i].user < order[j].user
		}
		return order[i].cat < order[j].cat
	})

	g := make(graph.Weighted[string])
	for _, p := range order {
		w := totals[p]
		g[p.user] = append(g[p.user], graph.Arc[string]{To: p.cat, Weight: w})
		g[p.cat] = append(g[p.cat], graph.Arc[string]{To: p.user, Weight: w})
	}
	return g, nil
}

// TemporalGraph links a transaction to every later one whose date falls
// within the configured window (WithTimeWindow, default 7 days). Edges
// are directed from earlier to later and weighted by the later record's
// absolute amount. The inner scan breaks at the first record past the
// window; later records are farther still.
//
// Complexity: O(n log n + e) time for e emitted edges, O(n^2) worst case.
func TemporalGraph(ts []Transaction, opts ...Option) (graph.Weighted[int], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	sorted := prepare(ts, o, byDate)
	window := o.TimeWindowDays

	g := make(graph.Weighted[int])
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if daysBetween(sorted[i].Date, sorted[j].Date) > window {
				break
			}
			g[sorted[i].ID] = append(g[sorted[i].ID], graph.Arc[int]{
				To:     sorted[j].ID,
				Weight: math.Abs(sorted[j].Amount),
			})
		}
	}
	return g, nil
}

// CategoryTransitionGraph counts directed category-to-category moves over
// each user's consecutive transactions. The edge weight is the transition
// frequency, so heavier edges mark habitual spending sequences.
//
// Complexity: O(n log n) time, O(c^2) memory worst case.
func CategoryTransitionGraph(ts []Transaction, opts ...Option) (graph.Weighted[string], error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	sorted := prepare(ts, o, byUserDate)

	type move struct{ from, to string }
	counts := make(map[move]int)
	var order []move

	for _, run := range groupByUser(sorted) {
		for i := 0; i+1 < len(run); i++ {
			c1, c2 := run[i].Category, run[i+1].Category
			if c1 == c2 {
				continue
			}
			m := move{c1, c2}
			if _, ok := counts[m]; !ok {
				order = append(order, m)
			}
			counts[m]++
		}
	}

	g := make(graph.Weighted[string])
	for _, m := range order {
		g[m.from] = append(g[m.from], graph.Arc[string]{To: m.to, Weight: float64(counts[m])})
	}
	return g, nil
}

// prepare copies the snapshot, applies the type filter and sorts the copy
// with less when given. The caller's slice is left untouched.
func prepare(ts []Transaction, o Options, less func([]Transaction) func(i, j int) bool) []Transaction {
	out := make([]Transaction, 0, len(ts))
	for _, t := range ts {
		if o.ExpensesOnly && t.Type != TypeExpense {
			continue
		}
		out = append(out, t)
	}
	if less != nil {
		sort.SliceStable(out, less(out))
	}
	return out
}

// groupByUser splits a (User, Date)-sorted slice into per-user runs in
// user order.
func groupByUser(sorted []Transaction) [][]Transaction {
	var runs [][]Transaction
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i].User != sorted[start].User {
			runs = append(runs, sorted[start:i])
			start = i
		}
	}
	return runs
}

func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}
