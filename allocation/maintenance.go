package allocation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/cityflow/knapsack"
)

// RepairCost returns the maintenance cost of r in millions:
// (10 − condition) × 0.1 × distance.
func RepairCost(r Road) float64 {
	return float64(MaxCondition-r.Condition) * 0.1 * r.Distance
}

// RepairScore returns the benefit of repairing r: (10 − condition) × traffic.
func RepairScore(r Road) float64 {
	return float64(MaxCondition-r.Condition) * r.TrafficLevel
}

// PlanMaintenance selects roads to repair within budget (millions). Costs
// are rounded to cents and the budget floored to cents before solving.
// Roads whose cost rounds to zero are excluded. Repairs keep input order.
//
// Errors: ErrBadCondition, ErrNegativeDemand, plus knapsack errors.
func PlanMaintenance(roads []Road, budget float64, opts ...Option) (MaintenancePlan, error) {
	cfg := buildOptions(opts)

	items := make([]knapsack.Item, 0, len(roads))
	index := make([]int, 0, len(roads)) // item → road
	for i, r := range roads {
		if r.Condition < 0 || r.Condition > MaxCondition {
			return MaintenancePlan{}, fmt.Errorf("%w: %s-%s condition=%d", ErrBadCondition, r.From, r.To, r.Condition)
		}
		if r.Distance < 0 || r.TrafficLevel < 0 || math.IsNaN(r.Distance) || math.IsNaN(r.TrafficLevel) {
			return MaintenancePlan{}, fmt.Errorf("%w: road %s-%s", ErrNegativeDemand, r.From, r.To)
		}
		cents := knapsack.ScaleCurrency(RepairCost(r))
		if cents == 0 {
			continue
		}
		items = append(items, knapsack.Item{ID: strconv.Itoa(i), Cost: cents, Value: RepairScore(r)})
		index = append(index, i)
	}

	sol, err := knapsack.Solve(items, knapsack.ScaleBudget(budget), cfg.Solver...)
	if err != nil {
		return MaintenancePlan{}, err
	}

	plan := MaintenancePlan{Repairs: []Repair{}}
	for k, it := range items {
		if sol.Allocation[it.ID] == 0 {
			continue
		}
		r := roads[index[k]]
		rep := Repair{Road: r, Cost: RepairCost(r), Score: RepairScore(r)}
		plan.Repairs = append(plan.Repairs, rep)
		plan.TotalCost += rep.Cost
		plan.Score += rep.Score
	}

	return plan, nil
}
