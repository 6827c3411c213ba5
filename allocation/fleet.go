package allocation

import (
	"fmt"

	"github.com/katalvlaran/cityflow/knapsack"
)

// ScheduleBuses assigns up to totalBuses buses across routes.
func ScheduleBuses(routes []BusRoute, totalBuses int, opts ...Option) (Schedule, error) {
	cfg := buildOptions(opts)
	items := make([]knapsack.Item, len(routes))
	for i, r := range routes {
		if r.DailyPassengers < 0 {
			return Schedule{}, fmt.Errorf("%w: route %s passengers=%d", ErrNegativeDemand, r.ID, r.DailyPassengers)
		}
		stops := len(r.Stops)
		items[i] = knapsack.Item{
			ID:    r.ID,
			Cost:  max(1, stops),
			Value: float64(r.DailyPassengers) * float64(stops) * cfg.TrafficWeight,
		}
	}

	return schedule(items, totalBuses, cfg)
}

// ScheduleMetro assigns up to totalTrains trains across lines.
func ScheduleMetro(lines []MetroLine, totalTrains int, opts ...Option) (Schedule, error) {
	cfg := buildOptions(opts)
	items := make([]knapsack.Item, len(lines))
	for i, l := range lines {
		if l.DailyPassengers < 0 {
			return Schedule{}, fmt.Errorf("%w: line %s passengers=%d", ErrNegativeDemand, l.ID, l.DailyPassengers)
		}
		stations := len(l.Stations)
		items[i] = knapsack.Item{
			ID:    l.ID,
			Cost:  max(1, stations),
			Value: float64(l.DailyPassengers) * float64(stations),
		}
	}

	return schedule(items, totalTrains, cfg)
}

func schedule(items []knapsack.Item, capacity int, cfg Options) (Schedule, error) {
	sol, err := knapsack.Solve(items, capacity, cfg.Solver...)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		Assigned: sol.Allocation,
		Selected: sol.Selected,
		Vehicles: sol.TotalCost,
		Coverage: sol.TotalValue,
	}, nil
}
