package knapsack

import (
	"errors"
	"math"
)

// Sentinel errors for the knapsack solver.
var (
	// ErrNegativeCost indicates an item with cost < 0.
	ErrNegativeCost = errors.New("knapsack: item cost must be non-negative")

	// ErrBadValue indicates an item whose value is NaN or infinite.
	ErrBadValue = errors.New("knapsack: item value must be finite")

	// ErrDuplicateID indicates two items sharing an ID.
	ErrDuplicateID = errors.New("knapsack: duplicate item ID")

	// ErrTableTooLarge indicates (n+1)×(W+1) exceeds the configured cell limit.
	ErrTableTooLarge = errors.New("knapsack: DP table exceeds cell limit")
)

// DefaultMaxCells bounds the DP table (64M cells, 512 MiB of float64).
const DefaultMaxCells = 1 << 26

// Item is one candidate for selection.
type Item struct {
	ID    string
	Cost  int
	Value float64
}

// Allocation maps item ID to its assigned cost: the full cost when
// selected, 0 otherwise. Every input item has an entry.
type Allocation map[string]int

// Solution is the result of Solve.
type Solution struct {
	Allocation Allocation

	// Selected lists chosen item IDs in input order.
	Selected []string

	TotalCost  int
	TotalValue float64
}

// Options configures Solve.
type Options struct {
	MaxCells int
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithMaxCells overrides DefaultMaxCells. n ≤ 0 disables the limit.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.MaxCells = n }
}

// DefaultOptions returns MaxCells = DefaultMaxCells.
func DefaultOptions() Options { return Options{MaxCells: DefaultMaxCells} }

// ScaleCurrency converts an amount to integer cents, rounding to nearest.
func ScaleCurrency(x float64) int { return int(math.Round(x * 100)) }

// ScaleBudget converts a budget to integer cents, rounding down so the
// scaled budget never exceeds the real one.
func ScaleBudget(x float64) int {
	if x <= 0 {
		return 0
	}

	return int(math.Floor(x*100 + 1e-9))
}
