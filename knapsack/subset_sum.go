package knapsack

// SubsetSum reports whether some subset of numbers sums exactly to target
// and reconstructs one such subset.
//
// Negative numbers or a negative target return ErrNegativeInput. A target
// of zero is trivially possible with the empty subset.
//
// Reconstruction walks the boolean table backwards, taking a number only
// when the remainder is unreachable without it, so among equal-sum subsets
// the one using the earliest indices is returned.
//
// Complexity: O(n*T) time and memory, n numbers and target T.
func SubsetSum(numbers []int, target int) (*SubsetSumResult, error) {
	if target < 0 {
		return nil, ErrNegativeInput
	}
	for _, x := range numbers {
		if x < 0 {
			return nil, ErrNegativeInput
		}
	}

	n := len(numbers)
	dp := make([][]bool, n+1)
	for i := range dp {
		dp[i] = make([]bool, target+1)
		dp[i][0] = true
	}
	for i := 1; i <= n; i++ {
		for t := 1; t <= target; t++ {
			dp[i][t] = dp[i-1][t]
			if numbers[i-1] <= t && dp[i-1][t-numbers[i-1]] {
				dp[i][t] = true
			}
		}
	}

	res := &SubsetSumResult{Possible: dp[n][target]}
	if !res.Possible {
		return res, nil
	}
	t := target
	for i := n; i > 0 && t > 0; i-- {
		if dp[i-1][t] {
			continue
		}
		res.Subset = append(res.Subset, numbers[i-1])
		res.Sum += numbers[i-1]
		t -= numbers[i-1]
	}
	reverseInts(res.Subset)
	return res, nil
}
