package knapsack

import (
	"fmt"
	"math"
)

// Solve selects the subset of items with maximum total value whose total
// cost fits capacity.
//
// A capacity ≤ 0 is not an error: every item is allocated 0.
//
// Errors: ErrNegativeCost, ErrBadValue, ErrDuplicateID, ErrTableTooLarge.
func Solve(items []Item, capacity int, opts ...Option) (Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate
	sol := Solution{Allocation: make(Allocation, len(items)), Selected: []string{}}
	for i, it := range items {
		if it.Cost < 0 {
			return Solution{}, fmt.Errorf("%w: item %d (%s) cost=%d", ErrNegativeCost, i, it.ID, it.Cost)
		}
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return Solution{}, fmt.Errorf("%w: item %d (%s)", ErrBadValue, i, it.ID)
		}
		if _, dup := sol.Allocation[it.ID]; dup {
			return Solution{}, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		sol.Allocation[it.ID] = 0
	}
	if capacity <= 0 || len(items) == 0 {
		return sol, nil
	}

	n, W := len(items), capacity
	// W+1 overflows for W == math.MaxInt; compare W itself.
	if cfg.MaxCells > 0 && W >= cfg.MaxCells/(n+1) {
		return Solution{}, fmt.Errorf("%w: %d rows × capacity %d > %d cells", ErrTableTooLarge, n+1, W, cfg.MaxCells)
	}

	// 2) Fill table
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, W+1)
	}
	for i := 1; i <= n; i++ {
		cost, value := items[i-1].Cost, items[i-1].Value
		for w := 0; w <= W; w++ {
			dp[i][w] = dp[i-1][w]
			if cost <= w {
				if take := dp[i-1][w-cost] + value; take > dp[i][w] {
					dp[i][w] = take
				}
			}
		}
	}

	// 3) Backtrack
	taken := make([]bool, n)
	w := W
	for i := n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			taken[i-1] = true
			w -= items[i-1].Cost
		}
	}
	for i, it := range items {
		if !taken[i] {
			continue
		}
		sol.Allocation[it.ID] = it.Cost
		sol.Selected = append(sol.Selected, it.ID)
		sol.TotalCost += it.Cost
		sol.TotalValue += it.Value
	}

	return sol, nil
}
