// Package knapsack implements the dynamic-programming optimization family:
// the 0/1 and unbounded knapsack problems, the greedy fractional variant,
// and subset sum.
//
// All solvers are pure functions over caller-supplied numeric slices; the
// table variants reconstruct their solution (selected item indices, or one
// satisfying subset) by walking the DP table backwards.
//
// Precondition violations fail fast before any computation:
// ErrLengthMismatch for differing weight/value lengths, ErrInvalidCapacity
// for non-positive capacity, ErrNegativeWeight / ErrNonPositiveWeight /
// ErrNegativeInput for inputs outside the supported domain.
package knapsack
