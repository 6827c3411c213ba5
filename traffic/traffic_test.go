package traffic_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	cases := map[string]traffic.Period{
		"morning":      traffic.Morning,
		"Morning":      traffic.Morning,
		"morning_peak": traffic.Morning,
		" AFTERNOON ":  traffic.Afternoon,
		"evening-peak": traffic.Evening,
		"Night":        traffic.Night,
	}
	for in, want := range cases {
		got, err := traffic.ParsePeriod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := traffic.ParsePeriod("dawn")
	assert.ErrorIs(t, err, traffic.ErrUnknownPeriod)
}

func TestPeriod_TextRoundTrip(t *testing.T) {
	var rec struct {
		Period traffic.Period `json:"period"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"period":"Evening"}`), &rec))
	assert.Equal(t, traffic.Evening, rec.Period)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"period":"evening"}`, string(out))

	assert.Equal(t, "period(9)", traffic.Period(9).String())
}

func TestRoadKey_Unordered(t *testing.T) {
	assert.Equal(t, traffic.NewRoadKey("B", "A"), traffic.NewRoadKey("A", "B"))
	assert.Equal(t, "A-B", traffic.NewRoadKey("B", "A").String())
}

func TestProfile_VolumeEitherDirection(t *testing.T) {
	pr := traffic.Profile{}
	require.NoError(t, pr.Set("A", "B", traffic.Morning, 2500))

	v, ok := pr.Volume("B", "A", traffic.Morning)
	assert.True(t, ok)
	assert.Equal(t, 2500.0, v)

	_, ok = pr.Volume("A", "B", traffic.Night)
	assert.False(t, ok, "period without entry")

	assert.Equal(t, traffic.DefaultFallbackVolume, pr.VolumeOr("A", "C", traffic.Morning, traffic.DefaultFallbackVolume))
}

func TestProfile_SetValidation(t *testing.T) {
	pr := traffic.Profile{}
	assert.ErrorIs(t, pr.Set("A", "B", traffic.Morning, -1), traffic.ErrBadVolume)
	assert.ErrorIs(t, pr.Set("A", "B", traffic.Period(7), 1), traffic.ErrUnknownPeriod)
}

func TestAdjustedCost(t *testing.T) {
	assert.InDelta(t, 11.0, traffic.AdjustedCost(10, 1000), 1e-12)
	assert.InDelta(t, 10.0, traffic.AdjustedCost(10, 0), 1e-12)
}

func buildLine() *core.Graph {
	g := core.NewGraph()
	_ = g.AddRoad("A", "B", 10)
	_ = g.AddRoad("B", "C", 20)
	return g
}

func TestSimulate_SeededAndBounded(t *testing.T) {
	g := buildLine()

	s1, err := traffic.Simulate(g, 5, traffic.NewRand(42))
	require.NoError(t, err)
	s2, err := traffic.Simulate(g, 5, traffic.NewRand(42))
	require.NoError(t, err)

	assert.Equal(t, s1.Edges(), s2.Edges(), "same seed, same levels")
	for _, e := range s1.Edges() {
		assert.GreaterOrEqual(t, e.Traffic, 0.0)
		assert.LessOrEqual(t, e.Traffic, 5.0)
		assert.Equal(t, float64(int(e.Traffic)), e.Traffic, "integer levels")
	}
	for _, e := range g.Edges() {
		assert.Zero(t, e.Traffic, "input graph untouched")
	}

	_, err = traffic.Simulate(g, -1, nil)
	assert.ErrorIs(t, err, traffic.ErrBadMaxLevel)
}

func TestApplyPenalty(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 10, core.WithTraffic(3))
	_, _ = g.AddEdge("B", "C", 4)

	p, err := traffic.ApplyPenalty(g)
	require.NoError(t, err)
	edges := p.Edges()
	assert.InDelta(t, 13.0, edges[0].Weight, 1e-9)
	assert.InDelta(t, 4.0, edges[1].Weight, 1e-9)
}
