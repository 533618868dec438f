package knapsack

import "sort"

// ZeroOne solves the 0/1 knapsack problem over integer weights and values:
// each item is taken whole or not at all.
//
// It returns ErrLengthMismatch when the slices differ in length,
// ErrInvalidCapacity when capacity <= 0, and ErrNegativeWeight when any
// weight is negative. An empty item set yields MaxValue 0.
//
// The selection is reconstructed by walking the DP table backwards; item
// indices come out ascending. On value ties the reconstruction prefers
// skipping the later item, so the lexicographically smallest index set of
// equal value is returned.
//
// Complexity: O(n*W) time and memory, n items and capacity W.
func ZeroOne(weights, values []int, capacity int) (*ZeroOneResult, error) {
	if len(weights) != len(values) {
		return nil, ErrLengthMismatch
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}

	n := len(weights)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}
	for i := 1; i <= n; i++ {
		for w := 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if weights[i-1] <= w {
				if cand := dp[i-1][w-weights[i-1]] + values[i-1]; cand > dp[i][w] {
					dp[i][w] = cand
				}
			}
		}
	}

	res := &ZeroOneResult{MaxValue: dp[n][capacity]}
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i][w] == dp[i-1][w] {
			continue
		}
		idx := i - 1
		res.SelectedItems = append(res.SelectedItems, idx)
		res.SelectedWeights = append(res.SelectedWeights, weights[idx])
		res.SelectedValues = append(res.SelectedValues, values[idx])
		res.TotalWeight += weights[idx]
		w -= weights[idx]
	}
	reverseInts(res.SelectedItems)
	reverseInts(res.SelectedWeights)
	reverseInts(res.SelectedValues)
	return res, nil
}

// Unbounded solves the knapsack variant where every item may be taken any
// number of times, returning only the optimal value.
//
// Validation matches ZeroOne: ErrLengthMismatch, ErrInvalidCapacity and
// ErrNegativeWeight. Zero-weight items with positive value would make the
// optimum unbounded, so they are rejected as ErrNonPositiveWeight.
//
// Complexity: O(n*W) time, O(W) memory.
func Unbounded(weights, values []int, capacity int) (int, error) {
	if len(weights) != len(values) {
		return 0, ErrLengthMismatch
	}
	if capacity <= 0 {
		return 0, ErrInvalidCapacity
	}
	for i, w := range weights {
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		if w == 0 && values[i] > 0 {
			return 0, ErrNonPositiveWeight
		}
	}

	dp := make([]int, capacity+1)
	for w := 1; w <= capacity; w++ {
		dp[w] = dp[w-1]
		for i, wi := range weights {
			if wi > 0 && wi <= w {
				if cand := dp[w-wi] + values[i]; cand > dp[w] {
					dp[w] = cand
				}
			}
		}
	}
	return dp[capacity], nil
}

// Fractional solves the fractional knapsack greedily: items sorted by
// value/weight ratio descending, whole items taken until the next one no
// longer fits, then a single fractional piece fills the remainder.
//
// Every weight must be strictly positive (ErrNonPositiveWeight); the ratio
// is undefined otherwise. Ties in ratio keep original item order.
//
// Complexity: O(n log n) time, O(n) memory.
func Fractional(weights, values []float64, capacity float64) (*FractionalResult, error) {
	if len(weights) != len(values) {
		return nil, ErrLengthMismatch
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrNonPositiveWeight
		}
	}

	n := len(weights)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]]/weights[order[a]] > values[order[b]]/weights[order[b]]
	})

	res := &FractionalResult{Fractions: make([]float64, n)}
	remaining := capacity
	for _, idx := range order {
		if remaining <= 0 {
			break
		}
		if weights[idx] <= remaining {
			res.Fractions[idx] = 1
			res.MaxValue += values[idx]
			remaining -= weights[idx]
			continue
		}
		frac := remaining / weights[idx]
		res.Fractions[idx] = frac
		res.MaxValue += values[idx] * frac
		remaining = 0
	}
	return res, nil
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
