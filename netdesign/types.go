package netdesign

import (
	"errors"
	"math"
)

// Sentinel errors for network design.
var (
	// ErrNegativeCost indicates a candidate road with a negative or NaN base cost.
	ErrNegativeCost = errors.New("netdesign: road cost must be non-negative")

	// ErrBadFactor indicates a priority factor outside (0, 1].
	ErrBadFactor = errors.New("netdesign: priority factor must be in (0, 1]")

	// ErrBadBudget indicates a negative or NaN budget ceiling.
	ErrBadBudget = errors.New("netdesign: budget must be non-negative")

	// ErrNilGraph indicates MinimumSpanningForest was given a nil graph.
	ErrNilGraph = errors.New("netdesign: graph is nil")
)

// budgetTolerance is the relative slack allowed when comparing summed
// costs against the budget, absorbing float rounding of the running total.
const budgetTolerance = 1e-9

// CandidateRoad is a road that could be built.
type CandidateRoad struct {
	From     string  `json:"from_id" yaml:"from_id"`
	To       string  `json:"to_id" yaml:"to_id"`
	BaseCost float64 `json:"base_cost" yaml:"base_cost"`

	// ConnectsFacility marks a road with a facility at either end.
	ConnectsFacility bool `json:"connects_facility" yaml:"connects_facility"`

	// HighPopulation marks a road touching a high-population neighborhood.
	HighPopulation bool `json:"high_population" yaml:"high_population"`
}

// ExistingRoad is an already-built road usable for connectivity completion.
type ExistingRoad struct {
	From string `json:"from_id" yaml:"from_id"`
	To   string `json:"to_id" yaml:"to_id"`
}

// SpanningEdge is one edge of the designed network.
type SpanningEdge struct {
	// Cost is the base construction cost, or the nominal completion cost.
	Cost float64 `json:"cost"`

	// AdjustedCost is the priority-weighted cost used for ordering.
	AdjustedCost float64 `json:"adjusted_cost"`

	From  string `json:"from_id"`
	To    string `json:"to_id"`
	IsNew bool   `json:"is_new"`
}

// Result is the output of Design.
type Result struct {
	NewEdges        []SpanningEdge `json:"new_edges"`
	CompletionEdges []SpanningEdge `json:"completion_edges"`

	// TotalNewCost is the sum of base costs of NewEdges.
	TotalNewCost float64 `json:"total_new_cost"`

	// TotalAdjustedCost is the sum of adjusted costs of NewEdges.
	TotalAdjustedCost float64 `json:"total_adjusted_cost"`

	// CompletionCount is len(CompletionEdges).
	CompletionCount int `json:"completion_count"`
}

// Edges returns NewEdges followed by CompletionEdges.
func (r Result) Edges() []SpanningEdge {
	out := make([]SpanningEdge, 0, len(r.NewEdges)+len(r.CompletionEdges))
	out = append(out, r.NewEdges...)

	return append(out, r.CompletionEdges...)
}

// Options configures Design.
//
//	Prioritize       – apply FacilityFactor/PopulationFactor (default off).
//	FacilityFactor   – multiplier for roads connecting a facility.
//	PopulationFactor – multiplier for roads serving a high-population area.
//	Budget           – ceiling on TotalNewCost; +Inf means unlimited.
//	CompletionCost   – nominal cost recorded on each completion edge (default 1).
type Options struct {
	Prioritize       bool
	FacilityFactor   float64
	PopulationFactor float64
	Budget           float64
	CompletionCost   float64
}

// Option represents a functional option for Design.
type Option func(*Options)

// WithPriority enables priority weighting. Factors outside (0, 1] panic
// with ErrBadFactor.
func WithPriority(facilityFactor, populationFactor float64) Option {
	return func(o *Options) {
		for _, f := range [2]float64{facilityFactor, populationFactor} {
			if !(f > 0 && f <= 1) {
				panic(ErrBadFactor.Error())
			}
		}
		o.Prioritize = true
		o.FacilityFactor = facilityFactor
		o.PopulationFactor = populationFactor
	}
}

// WithBudget sets a ceiling on total new-road base cost. Negative values
// panic with ErrBadBudget.
func WithBudget(ceiling float64) Option {
	return func(o *Options) {
		if ceiling < 0 || math.IsNaN(ceiling) {
			panic(ErrBadBudget.Error())
		}
		o.Budget = ceiling
	}
}

// WithCompletionCost sets the nominal cost of completion edges.
func WithCompletionCost(c float64) Option {
	return func(o *Options) { o.CompletionCost = c }
}

// DefaultOptions returns: no priority weighting, unlimited budget,
// completion cost 1.
func DefaultOptions() Options {
	return Options{
		FacilityFactor:   1,
		PopulationFactor: 1,
		Budget:           math.Inf(1),
		CompletionCost:   1,
	}
}

// adjusted returns the priority-weighted cost of c under o.
func (o Options) adjusted(c CandidateRoad) float64 {
	cost := c.BaseCost
	if !o.Prioritize {
		return cost
	}
	if c.ConnectsFacility {
		cost *= o.FacilityFactor
	}
	if c.HighPopulation {
		cost *= o.PopulationFactor
	}

	return cost
}
