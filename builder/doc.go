// Package builder derives graphs from financial transaction histories.
//
// Five views are built from the same immutable snapshot:
//
//   - 🔗 TransactionGraph: directed chain through each user's transactions
//     in chronological order.
//   - 🗂 CategoryGraph: undirected category co-occurrence, weighted by the
//     average amount of transitions between the two categories.
//   - 👤 UserCategoryGraph: bipartite user↔category edges weighted by the
//     cumulative amount, node names prefixed "U:" and "C:".
//   - ⏱ TemporalGraph: directed edges between transactions whose dates
//     fall within a sliding window (default 7 days).
//   - 📊 CategoryTransitionGraph: directed category-to-category edges
//     weighted by transition frequency.
//
// Edge weights always use the absolute value of the transaction amount,
// so refunds and expenses contribute equally to graph structure. Input
// slices are never mutated; every build sorts a private copy.
//
// Stats summarizes any weighted adjacency produced here (or elsewhere)
// with node, edge, degree and weight aggregates, returning zeros for an
// empty graph.
package builder
