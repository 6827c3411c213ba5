package knapsack_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cityflow/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ThreeItems(t *testing.T) {
	items := []knapsack.Item{
		{ID: "a", Cost: 2, Value: 10},
		{ID: "b", Cost: 3, Value: 15},
		{ID: "c", Cost: 4, Value: 18},
	}
	sol, err := knapsack.Solve(items, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sol.Selected)
	assert.Equal(t, 25.0, sol.TotalValue)
	assert.Equal(t, 5, sol.TotalCost)
	assert.Equal(t, knapsack.Allocation{"a": 2, "b": 3, "c": 0}, sol.Allocation)
}

func TestSolve_ZeroCapacity(t *testing.T) {
	items := []knapsack.Item{{ID: "a", Cost: 1, Value: 1}, {ID: "b", Cost: 2, Value: 3}}
	for _, c := range []int{0, -5} {
		sol, err := knapsack.Solve(items, c)
		require.NoError(t, err)
		assert.Equal(t, knapsack.Allocation{"a": 0, "b": 0}, sol.Allocation)
		assert.Empty(t, sol.Selected)
		assert.Zero(t, sol.TotalValue)
	}
}

func TestSolve_EmptyItems(t *testing.T) {
	sol, err := knapsack.Solve(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, sol.Allocation)
	assert.Empty(t, sol.Selected)
}

func TestSolve_NothingFits(t *testing.T) {
	sol, err := knapsack.Solve([]knapsack.Item{{ID: "big", Cost: 9, Value: 100}}, 8)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Allocation{"big": 0}, sol.Allocation)
}

func TestSolve_TieKeepsEarlierItems(t *testing.T) {
	items := []knapsack.Item{
		{ID: "x", Cost: 3, Value: 6},
		{ID: "y", Cost: 3, Value: 6},
	}
	sol, err := knapsack.Solve(items, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sol.Selected)
}

func TestSolve_Validation(t *testing.T) {
	_, err := knapsack.Solve([]knapsack.Item{{ID: "a", Cost: -1, Value: 1}}, 5)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCost)

	_, err = knapsack.Solve([]knapsack.Item{{ID: "a", Cost: 1}, {ID: "a", Cost: 2}}, 5)
	assert.ErrorIs(t, err, knapsack.ErrDuplicateID)

	_, err = knapsack.Solve([]knapsack.Item{{ID: "a", Cost: 1, Value: nan()}}, 5)
	assert.ErrorIs(t, err, knapsack.ErrBadValue)

	_, err = knapsack.Solve([]knapsack.Item{{ID: "a", Cost: 1, Value: 1}}, 1000, knapsack.WithMaxCells(100))
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	assert.NotPanics(t, func() {
		_, err = knapsack.Solve([]knapsack.Item{{ID: "a", Cost: 2, Value: 10}}, math.MaxInt)
	})
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	_, err = knapsack.Solve([]knapsack.Item{{ID: "a", Cost: 1, Value: 1}}, 1000, knapsack.WithMaxCells(0))
	assert.NoError(t, err, "limit disabled")
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestScale(t *testing.T) {
	assert.Equal(t, 29, knapsack.ScaleCurrency(0.29))
	assert.Equal(t, 150, knapsack.ScaleCurrency(1.499))
	assert.Equal(t, 29, knapsack.ScaleBudget(0.29))
	assert.Equal(t, 149, knapsack.ScaleBudget(1.499))
	assert.Equal(t, 0, knapsack.ScaleBudget(-3))
}

// bruteForce enumerates all subsets and returns the best value.
func bruteForce(items []knapsack.Item, capacity int) float64 {
	best := 0.0
	for mask := 0; mask < 1<<len(items); mask++ {
		cost, value := 0, 0.0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				cost += it.Cost
				value += it.Value
			}
		}
		if cost <= capacity && value > best {
			best = value
		}
	}

	return best
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(15)
		items := make([]knapsack.Item, n)
		for i := range items {
			items[i] = knapsack.Item{
				ID:    fmt.Sprintf("i%d", i),
				Cost:  r.Intn(15),
				Value: float64(r.Intn(100)),
			}
		}
		capacity := r.Intn(40)

		sol, err := knapsack.Solve(items, capacity)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(items, capacity), sol.TotalValue, "trial %d", trial)
		assert.LessOrEqual(t, sol.TotalCost, capacity)

		sum := 0
		for _, it := range items {
			a := sol.Allocation[it.ID]
			assert.True(t, a == 0 || a == it.Cost, "all-or-nothing for %s", it.ID)
			sum += a
		}
		if capacity > 0 {
			assert.Equal(t, sol.TotalCost, sum)
		}
	}
}
