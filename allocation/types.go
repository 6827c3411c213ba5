package allocation

import (
	"errors"

	"github.com/katalvlaran/cityflow/knapsack"
)

// Sentinel errors for allocation adapters.
var (
	// ErrBadCondition indicates a road condition outside [0, 10].
	ErrBadCondition = errors.New("allocation: road condition must be in [0, 10]")

	// ErrNegativeDemand indicates negative passengers, distance or traffic.
	ErrNegativeDemand = errors.New("allocation: passengers, distance and traffic must be non-negative")
)

// DefaultTrafficWeight scales bus route value.
const DefaultTrafficWeight = 1.2

// MaxCondition is a road in perfect condition.
const MaxCondition = 10

// BusRoute is one bus line and its daily demand.
type BusRoute struct {
	ID              string   `json:"route_id"`
	DailyPassengers int      `json:"daily_passengers"`
	Stops           []string `json:"stop_ids"`
}

// MetroLine is one metro line and its daily demand.
type MetroLine struct {
	ID              string   `json:"line_id"`
	DailyPassengers int      `json:"daily_passengers"`
	Stations        []string `json:"station_ids"`
}

// Road is an existing road considered for maintenance.
type Road struct {
	From string `json:"from_id"`
	To   string `json:"to_id"`

	// Distance in km.
	Distance float64 `json:"distance"`

	// TrafficLevel is the road's usage weight.
	TrafficLevel float64 `json:"traffic_level"`

	// Condition from 0 (ruined) to 10 (perfect).
	Condition int `json:"condition"`
}

// Schedule maps route or line IDs to the vehicles assigned.
type Schedule struct {
	// Assigned has an entry for every route; unselected routes get 0.
	Assigned map[string]int `json:"assigned"`

	// Selected lists served routes in input order.
	Selected []string `json:"selected"`

	// Vehicles is the total number assigned.
	Vehicles int `json:"vehicles"`

	// Coverage is the summed value of selected routes.
	Coverage float64 `json:"coverage"`
}

// Repair is one road selected for maintenance.
type Repair struct {
	Road
	Cost  float64 `json:"cost"`
	Score float64 `json:"score"`
}

// MaintenancePlan is the result of PlanMaintenance.
type MaintenancePlan struct {
	Repairs   []Repair `json:"repairs"`
	TotalCost float64  `json:"total_cost"`
	Score     float64  `json:"score"`
}

// Options configures the adapters.
type Options struct {
	TrafficWeight float64
	Solver        []knapsack.Option
}

// Option is a functional option.
type Option func(*Options)

// WithTrafficWeight overrides DefaultTrafficWeight for bus routes.
func WithTrafficWeight(w float64) Option {
	return func(o *Options) { o.TrafficWeight = w }
}

// WithSolverOptions forwards options to knapsack.Solve.
func WithSolverOptions(opts ...knapsack.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
}

// DefaultOptions returns TrafficWeight = DefaultTrafficWeight.
func DefaultOptions() Options { return Options{TrafficWeight: DefaultTrafficWeight} }

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
