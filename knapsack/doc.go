// Package knapsack implements the bounded-capacity 0/1 knapsack solver shared
// by every allocation decision in cityflow (buses, trains, road repairs).
//
// Algorithm (full matrix):
//
//  1. Let n = len(items), W = capacity. Allocate (n+1)×(W+1) table dp,
//     dp[0][w] = 0.
//  2. For i = 1..n, w = 0..W:
//     dp[i][w] = dp[i-1][w]
//     if cost_i ≤ w and dp[i-1][w-cost_i] + value_i > dp[i][w]:
//     dp[i][w] = dp[i-1][w-cost_i] + value_i
//  3. Backtrack from (n, W): item i is selected iff dp[i][w] != dp[i-1][w],
//     in which case w -= cost_i.
//
// An item is taken only when it strictly improves the value, so among
// equal-value selections the one built from earlier items wins and results
// are reproducible.
//
// Fractional budgets are handled by the caller: ScaleBudget floors a
// currency amount to cents and ScaleCurrency rounds an item cost to cents.
//
// Complexity: Time O(n·W), Memory O(n·W). Tables beyond WithMaxCells
// (default 1<<26 cells) are rejected with ErrTableTooLarge.
package knapsack
