// Package unionfind implements the disjoint-set union (union-find)
// structure over the dense element range [0, n).
//
// Find applies path compression and Union merges by rank, giving near
// constant O(α(n)) amortized cost per operation. The structure tracks its
// live component count, decremented on every successful merge.
//
// The only failure mode is an out-of-range element, signalled by
// ErrIndexOutOfRange. Once Union(a, b) has succeeded, Connected(a, b)
// reports true forever after, regardless of later unrelated unions.
//
// Kruskal in the mst package is the primary consumer.
package unionfind
