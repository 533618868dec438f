// Package knapsack defines result types and sentinel errors for the DP
// optimization family.
package knapsack

import "errors"

// Sentinel errors; branch with errors.Is.
var (
	// ErrLengthMismatch indicates weights and values differ in length.
	ErrLengthMismatch = errors.New("knapsack: weights and values length mismatch")

	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be positive")

	// ErrNegativeWeight indicates a negative item weight in an integer
	// knapsack, which the DP table cannot index.
	ErrNegativeWeight = errors.New("knapsack: negative item weight")

	// ErrNonPositiveWeight indicates a zero or negative item weight in the
	// fractional variant, where the value/weight ratio is undefined.
	ErrNonPositiveWeight = errors.New("knapsack: item weight must be positive")

	// ErrNegativeInput indicates a negative number or target in subset sum.
	ErrNegativeInput = errors.New("knapsack: negative numbers not supported")
)

// ZeroOneResult is the 0/1 knapsack output: the optimum plus the selected
// item index set (ascending) and its per-item and aggregate weights/values.
type ZeroOneResult struct {
	MaxValue        int
	SelectedItems   []int
	SelectedWeights []int
	SelectedValues  []int
	TotalWeight     int
}

// FractionalResult is the greedy fractional output: the optimum and, per
// original item index, the fraction taken in [0, 1].
type FractionalResult struct {
	MaxValue  float64
	Fractions []float64
}

// SubsetSumResult reports whether some subset reaches the target and, if
// so, one such subset with its sum.
type SubsetSumResult struct {
	Possible bool
	Subset   []int
	Sum      int
}
