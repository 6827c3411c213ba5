package signals_test

import (
	"testing"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/signals"
	"github.com/katalvlaran/cityflow/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossroads: X at the origin, approaches from the south (S→X heads north),
// the west (W→X heads east), the north and the east.
var crossroads = map[string]core.Point{
	"X": {X: 0, Y: 0},
	"S": {X: 0, Y: -1},
	"W": {X: -1, Y: 0},
	"N": {X: 0, Y: 1},
	"E": {X: 1, Y: 0},
}

func morning(v float64) map[traffic.Period]float64 {
	return map[traffic.Period]float64{traffic.Morning: v}
}

func TestEstimate(t *testing.T) {
	assert.Equal(t, signals.North, signals.Estimate(crossroads, "S", "X"))
	assert.Equal(t, signals.South, signals.Estimate(crossroads, "N", "X"))
	assert.Equal(t, signals.East, signals.Estimate(crossroads, "W", "X"))
	assert.Equal(t, signals.West, signals.Estimate(crossroads, "E", "X"))
	assert.Equal(t, signals.Unknown, signals.Estimate(crossroads, "Z", "X"))
	assert.Equal(t, signals.South, signals.Estimate(crossroads, "X", "X"), "coincident points")

	diag := map[string]core.Point{"a": {X: 0, Y: 0}, "b": {X: 1, Y: 1}}
	assert.Equal(t, signals.North, signals.Estimate(diag, "a", "b"), "|dx| == |dy| goes to the y axis")
}

func TestCompute_GreedyWinner(t *testing.T) {
	flows := []signals.Flow{
		{From: "S", To: "X", Volumes: morning(10)},
		{From: "W", To: "X", Volumes: morning(40)},
	}
	out, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "X", out[0].Intersection)
	assert.Equal(t, signals.East, out[0].Priority(traffic.Morning))
	assert.Equal(t, signals.Unknown, out[0].Priority(traffic.Night), "no volume")
	assert.False(t, out[0].Phases[0].Emergency)
	assert.Equal(t, map[signals.Direction]float64{signals.North: 10, signals.East: 40}, out[0].Phases[0].Volumes)
}

func TestCompute_EmergencyOverride(t *testing.T) {
	flows := []signals.Flow{
		{From: "S", To: "X", Volumes: morning(10)},
		{From: "W", To: "X", Volumes: morning(40)},
	}
	em := []signals.EmergencyRecord{{From: "S", To: "X", Period: traffic.Morning}}

	out, err := signals.Compute(flows, crossroads, em)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, signals.North, out[0].Priority(traffic.Morning))
	assert.True(t, out[0].Phases[0].Emergency)

	// Only the matching period is overridden.
	assert.False(t, out[0].Phases[1].Emergency)
}

func TestCompute_FirstEmergencyRecordWins(t *testing.T) {
	em := []signals.EmergencyRecord{
		{From: "E", To: "X", Period: traffic.Evening},
		{From: "S", To: "X", Period: traffic.Evening},
	}
	out, err := signals.Compute(nil, crossroads, em)
	require.NoError(t, err)
	require.Len(t, out, 1, "emergency destinations are intersections too")
	assert.Equal(t, signals.West, out[0].Priority(traffic.Evening))
}

func TestCompute_TieOrder(t *testing.T) {
	flows := []signals.Flow{
		{From: "E", To: "X", Volumes: morning(25)}, // west
		{From: "W", To: "X", Volumes: morning(25)}, // east
		{From: "N", To: "X", Volumes: morning(25)}, // south
	}
	out, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	assert.Equal(t, signals.South, out[0].Priority(traffic.Morning))
}

func TestCompute_UnknownCanWin(t *testing.T) {
	flows := []signals.Flow{
		{From: "Ghost", To: "X", Volumes: morning(90)},
		{From: "S", To: "X", Volumes: morning(10)},
	}
	out, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	assert.Equal(t, signals.Unknown, out[0].Priority(traffic.Morning))
}

func TestCompute_SortedIntersectionsAndAllPeriods(t *testing.T) {
	flows := []signals.Flow{
		{From: "X", To: "S", Volumes: morning(1)},
		{From: "X", To: "E", Volumes: morning(1)},
	}
	out, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "E", out[0].Intersection)
	assert.Equal(t, "S", out[1].Intersection)
	for _, a := range out {
		require.Len(t, a.Phases, 4)
		for i, p := range traffic.Periods() {
			assert.Equal(t, p, a.Phases[i].Period)
		}
	}
}

func TestCompute_Proportional(t *testing.T) {
	flows := []signals.Flow{
		{From: "S", To: "X", Volumes: morning(10)},
		{From: "W", To: "X", Volumes: morning(40)},
	}
	em := []signals.EmergencyRecord{{From: "S", To: "X", Period: traffic.Night}}
	out, err := signals.Compute(flows, crossroads, em, signals.WithPolicy(signals.PolicyProportional))
	require.NoError(t, err)

	am := out[0].Phases[0]
	assert.Equal(t, signals.East, am.Priority, "priority is still the greedy winner")
	assert.Equal(t, map[signals.Direction]int{
		signals.North: 12, signals.South: 0, signals.East: 48, signals.West: 0,
	}, am.GreenSeconds)

	night := out[0].Phases[3]
	assert.Equal(t, map[signals.Direction]int{
		signals.North: 60, signals.South: 0, signals.East: 0, signals.West: 0,
	}, night.GreenSeconds)

	out, err = signals.Compute(flows, crossroads, nil,
		signals.WithPolicy(signals.PolicyProportional), signals.WithCycle(90))
	require.NoError(t, err)
	assert.Equal(t, 72, out[0].Phases[0].GreenSeconds[signals.East])

	greedy, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	assert.Nil(t, greedy[0].Phases[0].GreenSeconds)
}

func TestCompute_Validation(t *testing.T) {
	_, err := signals.Compute([]signals.Flow{{From: "", To: "X"}}, crossroads, nil)
	assert.ErrorIs(t, err, signals.ErrEmptyNodeID)

	_, err = signals.Compute([]signals.Flow{{From: "S", To: "X", Volumes: morning(-1)}}, crossroads, nil)
	assert.ErrorIs(t, err, signals.ErrBadVolume)

	_, err = signals.Compute(nil, crossroads, []signals.EmergencyRecord{{From: "S", To: "X", Period: traffic.Period(9)}})
	assert.ErrorIs(t, err, signals.ErrUnknownPeriod)

	assert.Panics(t, func() { signals.WithCycle(0)(&signals.Options{}) })
}

func TestCompute_Idempotent(t *testing.T) {
	flows := []signals.Flow{
		{From: "S", To: "X", Volumes: morning(10)},
		{From: "W", To: "X", Volumes: map[traffic.Period]float64{traffic.Morning: 3, traffic.Night: 8}},
		{From: "X", To: "N", Volumes: morning(5)},
	}
	first, err := signals.Compute(flows, crossroads, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := signals.Compute(flows, crossroads, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
