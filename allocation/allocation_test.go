package allocation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cityflow/allocation"
	"github.com/katalvlaran/cityflow/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stops(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Buses and metro
// ------------------------------------------------------------------------

func TestScheduleBuses(t *testing.T) {
	routes := []allocation.BusRoute{
		{ID: "B1", DailyPassengers: 1000, Stops: stops(3)}, // value 3600, cost 3
		{ID: "B2", DailyPassengers: 500, Stops: stops(4)},  // value 2400, cost 4
		{ID: "B3", DailyPassengers: 2000, Stops: stops(2)}, // value 4800, cost 2
	}
	s, err := allocation.ScheduleBuses(routes, 5)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"B1": 3, "B2": 0, "B3": 2}, s.Assigned)
	assert.Equal(t, []string{"B1", "B3"}, s.Selected)
	assert.Equal(t, 5, s.Vehicles)
	assert.InDelta(t, 8400, s.Coverage, 1e-9)
}

func TestScheduleBuses_EmptyRouteCostsOne(t *testing.T) {
	routes := []allocation.BusRoute{{ID: "ghost", DailyPassengers: 10}}
	s, err := allocation.ScheduleBuses(routes, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ghost": 0}, s.Assigned, "zero stops has zero value, never strictly better")
}

func TestScheduleBuses_TrafficWeight(t *testing.T) {
	routes := []allocation.BusRoute{{ID: "B1", DailyPassengers: 100, Stops: stops(2)}}
	s, err := allocation.ScheduleBuses(routes, 2, allocation.WithTrafficWeight(2))
	require.NoError(t, err)
	assert.InDelta(t, 400, s.Coverage, 1e-9)
}

func TestScheduleMetro(t *testing.T) {
	lines := []allocation.MetroLine{
		{ID: "M1", DailyPassengers: 100, Stations: stops(5)}, // value 500, cost 5
		{ID: "M2", DailyPassengers: 90, Stations: stops(3)},  // value 270, cost 3
		{ID: "M3", DailyPassengers: 80, Stations: stops(3)},  // value 240, cost 3
	}
	s, err := allocation.ScheduleMetro(lines, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"M2", "M3"}, s.Selected)
	assert.Equal(t, map[string]int{"M1": 0, "M2": 3, "M3": 3}, s.Assigned)
}

func TestSchedule_Errors(t *testing.T) {
	_, err := allocation.ScheduleBuses([]allocation.BusRoute{{ID: "x", DailyPassengers: -1}}, 3)
	assert.ErrorIs(t, err, allocation.ErrNegativeDemand)

	_, err = allocation.ScheduleMetro([]allocation.MetroLine{{ID: "x"}, {ID: "x"}}, 3)
	assert.ErrorIs(t, err, knapsack.ErrDuplicateID)

	_, err = allocation.ScheduleBuses([]allocation.BusRoute{{ID: "x", Stops: stops(1)}}, 100,
		allocation.WithSolverOptions(knapsack.WithMaxCells(10)))
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	assert.NotPanics(t, func() {
		_, err = allocation.ScheduleMetro([]allocation.MetroLine{{ID: "m", Stations: stops(2)}}, math.MaxInt)
	})
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
}

// ------------------------------------------------------------------------
// 2. Maintenance
// ------------------------------------------------------------------------

func TestRepairCostAndScore(t *testing.T) {
	r := allocation.Road{Distance: 12, TrafficLevel: 300, Condition: 7}
	assert.InDelta(t, 3.6, allocation.RepairCost(r), 1e-9)
	assert.InDelta(t, 900, allocation.RepairScore(r), 1e-9)
}

func TestPlanMaintenance(t *testing.T) {
	roads := []allocation.Road{
		{From: "1", To: "2", Distance: 10, TrafficLevel: 100, Condition: 5},  // cost 5.0, score 500
		{From: "2", To: "3", Distance: 20, TrafficLevel: 50, Condition: 8},   // cost 4.0, score 100
		{From: "3", To: "4", Distance: 5, TrafficLevel: 400, Condition: 10},  // perfect, excluded
		{From: "4", To: "5", Distance: 4, TrafficLevel: 200, Condition: 2},   // cost 3.2, score 1600
	}
	plan, err := allocation.PlanMaintenance(roads, 8.5)
	require.NoError(t, err)
	require.Len(t, plan.Repairs, 2)
	assert.Equal(t, "1", plan.Repairs[0].From)
	assert.Equal(t, "4", plan.Repairs[1].From)
	assert.InDelta(t, 8.2, plan.TotalCost, 1e-9)
	assert.InDelta(t, 2100, plan.Score, 1e-9)
	assert.LessOrEqual(t, plan.TotalCost, 8.5)
}

func TestPlanMaintenance_ZeroBudget(t *testing.T) {
	roads := []allocation.Road{{From: "1", To: "2", Distance: 10, TrafficLevel: 100, Condition: 5}}
	plan, err := allocation.PlanMaintenance(roads, 0)
	require.NoError(t, err)
	assert.Empty(t, plan.Repairs)
	assert.Zero(t, plan.TotalCost)
}

func TestPlanMaintenance_DuplicateRoadsAreDistinct(t *testing.T) {
	r := allocation.Road{From: "1", To: "2", Distance: 10, TrafficLevel: 100, Condition: 5}
	plan, err := allocation.PlanMaintenance([]allocation.Road{r, r}, 10)
	require.NoError(t, err)
	assert.Len(t, plan.Repairs, 2)
}

func TestPlanMaintenance_Validation(t *testing.T) {
	_, err := allocation.PlanMaintenance([]allocation.Road{{Condition: 11, Distance: 1}}, 5)
	assert.ErrorIs(t, err, allocation.ErrBadCondition)

	_, err = allocation.PlanMaintenance([]allocation.Road{{Condition: -1, Distance: 1}}, 5)
	assert.ErrorIs(t, err, allocation.ErrBadCondition)

	_, err = allocation.PlanMaintenance([]allocation.Road{{Condition: 3, Distance: -1}}, 5)
	assert.ErrorIs(t, err, allocation.ErrNegativeDemand)
}
