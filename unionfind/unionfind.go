package unionfind

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an element lies outside [0, n).
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")

// UnionFind tracks a partition of {0, …, n-1} into disjoint sets.
// The zero value is unusable; construct with New.
type UnionFind struct {
	parent []int
	rank   []int
	count  int // live component count
}

// New creates n singleton sets, one per element of [0, n).
// Complexity: O(n).
func New(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range u.parent {
		u.parent[i] = i
	}

	return u
}

// Len returns the number of elements the structure was created with.
func (u *UnionFind) Len() int { return len(u.parent) }

// ComponentCount returns the number of live disjoint sets.
func (u *UnionFind) ComponentCount() int { return u.count }

// Find returns the representative of x's set, compressing the walked path
// by reparenting each visited node to its grandparent.
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Find(x int) (int, error) {
	if err := u.check(x); err != nil {
		return 0, err
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x, nil
}

// Union merges the sets of x and y by rank: the shallower tree is attached
// under the deeper root; on a rank tie the surviving root's rank grows by
// one. Reports whether a merge occurred (false when x and y were already in
// the same set).
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Union(x, y int) (bool, error) {
	rx, err := u.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := u.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
	default:
		u.parent[ry] = rx
		u.rank[rx]++
	}
	u.count--

	return true, nil
}

// Connected reports whether x and y share a representative.
func (u *UnionFind) Connected(x, y int) (bool, error) {
	rx, err := u.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := u.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Components groups every element under its representative.
// The member slices are in ascending element order.
// Complexity: O(n·α(n)).
func (u *UnionFind) Components() map[int][]int {
	comps := make(map[int][]int, u.count)
	for i := range u.parent {
		root, _ := u.Find(i) // i is always in range
		comps[root] = append(comps[root], i)
	}

	return comps
}

// check validates that x lies inside [0, n).
func (u *UnionFind) check(x int) error {
	if x < 0 || x >= len(u.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(u.parent))
	}

	return nil
}
