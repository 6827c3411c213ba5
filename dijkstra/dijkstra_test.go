// Package dijkstra_test contains unit tests for the static and
// traffic-adjusted searches: validation, basic paths, unreachable targets,
// tie-breaking, MaxCost, and a brute-force optimality check.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/dijkstra"
	"github.com/katalvlaran/cityflow/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs the undirected triangle A–B:5, B–C:3, A–C:7.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_ = g.AddRoad("A", "B", 5)
	_ = g.AddRoad("B", "C", 3)
	_ = g.AddRoad("A", "C", 7)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_Validation(t *testing.T) {
	g := buildTriangle()

	_, err := dijkstra.ShortestPath(nil, "A", "C")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(g, "", "C")
	assert.ErrorIs(t, err, dijkstra.ErrEmptyEndpoint)

	p, err := dijkstra.ShortestPath(g, "A", "Z")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	assert.False(t, p.Found())
}

func TestOptions_PanicOnBadArguments(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxCost(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithFallbackVolume(-5)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	p, err := dijkstra.ShortestPath(buildTriangle(), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	assert.Equal(t, 8.0, p.Cost)
}

func TestShortestPath_SameNode(t *testing.T) {
	p, err := dijkstra.ShortestPath(buildTriangle(), "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, p.Nodes)
	assert.Zero(t, p.Cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := buildTriangle()
	_, _ = g.AddEdge("X", "Y", 1)

	p, err := dijkstra.ShortestPath(g, "A", "Y")
	require.NoError(t, err, "unreachable is a result, not an error")
	assert.Empty(t, p.Nodes)
	assert.True(t, math.IsInf(p.Cost, 1))
	assert.False(t, p.Found())
}

func TestShortestPath_RespectsDirection(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "B", 1)

	p, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.False(t, p.Found(), "no record C←B, so C is unreachable from A")
}

func TestShortestPath_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("A", "B", 2)

	p, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Cost)
}

func TestShortestPath_DeterministicTie(t *testing.T) {
	// A→B→D and A→C→D both cost 2; B pops before C.
	g := core.NewGraph()
	_ = g.AddRoad("A", "C", 1)
	_ = g.AddRoad("A", "B", 1)
	_ = g.AddRoad("C", "D", 1)
	_ = g.AddRoad("B", "D", 1)

	for i := 0; i < 5; i++ {
		p, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	}
}

func TestShortestPath_MaxCost(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddRoad("A", "B", 1)
	_ = g.AddRoad("B", "C", 1)

	p, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxCost(1))
	require.NoError(t, err)
	assert.False(t, p.Found())

	p, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxCost(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Cost)
}

// ------------------------------------------------------------------------
// 3. Traffic-adjusted search
// ------------------------------------------------------------------------

func TestShortestPathWithTraffic_FallbackEverywhere(t *testing.T) {
	// No profile entries: every edge costs base × 1.1.
	p, err := dijkstra.ShortestPathWithTraffic(buildTriangle(), traffic.Profile{}, "A", "C", traffic.Morning)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Nodes)
	assert.InDelta(t, 8.8, p.Cost, 1e-9)
}

func TestShortestPathWithTraffic_CongestionReroutes(t *testing.T) {
	pr := traffic.Profile{}
	require.NoError(t, pr.Set("B", "A", traffic.Morning, 10000)) // A–B doubles in the morning
	require.NoError(t, pr.Set("A", "B", traffic.Night, 0))
	require.NoError(t, pr.Set("A", "C", traffic.Night, 10000)) // A–C doubles at night

	morning, err := dijkstra.ShortestPathWithTraffic(buildTriangle(), pr, "A", "C", traffic.Morning)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, morning.Nodes)
	assert.InDelta(t, 7.7, morning.Cost, 1e-9)

	night, err := dijkstra.ShortestPathWithTraffic(buildTriangle(), pr, "A", "C", traffic.Night)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, night.Nodes)
	assert.InDelta(t, 5+3.3, night.Cost, 1e-9)
}

func TestShortestPathWithTraffic_CustomFallback(t *testing.T) {
	p, err := dijkstra.ShortestPathWithTraffic(buildTriangle(), nil, "A", "C", traffic.Evening,
		dijkstra.WithFallbackVolume(0))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, p.Cost, 1e-9)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// randomGraph builds a small undirected graph with n nodes and up to m roads.
func randomGraph(r *rand.Rand, n, m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(fmt.Sprintf("N%d", i))
	}
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddRoad(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), float64(1+r.Intn(20)))
	}
	return g
}

// bruteForce enumerates every simple path from start to end and returns the
// minimum cost (+Inf if none).
func bruteForce(g *core.Graph, start, end string) float64 {
	adj := g.Adjacency()
	best := math.Inf(1)
	onPath := map[string]bool{start: true}
	var walk func(u string, cost float64)
	walk = func(u string, cost float64) {
		if u == end {
			best = math.Min(best, cost)
			return
		}
		for _, e := range adj[u] {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, cost+e.Weight)
			onPath[e.To] = false
		}
	}
	walk(start, 0)
	return best
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		g := randomGraph(r, 6, 9)
		for _, s := range g.Nodes() {
			for _, d := range g.Nodes() {
				p, err := dijkstra.ShortestPath(g, s, d)
				require.NoError(t, err)
				want := bruteForce(g, s, d)
				if math.IsInf(want, 1) {
					assert.False(t, p.Found(), "trial %d %s→%s", trial, s, d)
					continue
				}
				assert.InDelta(t, want, p.Cost, 1e-9, "trial %d %s→%s", trial, s, d)
				assert.Equal(t, s, p.Nodes[0])
				assert.Equal(t, d, p.Nodes[len(p.Nodes)-1])
			}
		}
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(3)), 8, 16)
	first, err := dijkstra.ShortestPath(g, "N0", "N7")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dijkstra.ShortestPath(g, "N0", "N7")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
