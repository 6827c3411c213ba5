package planner

import (
	"context"
	"time"

	"github.com/katalvlaran/cityflow/astar"
	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/dijkstra"
	"github.com/katalvlaran/cityflow/signals"
	"github.com/katalvlaran/cityflow/traffic"
	"go.uber.org/zap"
)

// RouteResult is a resolved route.
type RouteResult struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Period string    `json:"period,omitempty"`
	Path   core.Path `json:"path"`
	Names  []string  `json:"names"`
}

// Route returns the static shortest path between two locations given by ID
// or name.
func (e *Engine) Route(from, to string) (res RouteResult, err error) {
	defer func(t time.Time) {
		e.observe("route", t, err, zap.String("from", from), zap.String("to", to))
	}(time.Now())

	ids, err := e.resolve(from, to)
	if err != nil {
		return RouteResult{}, wrap("route", err)
	}
	p, err := dijkstra.ShortestPath(e.graph, ids[0], ids[1])
	if err != nil {
		return RouteResult{}, wrap("route", err)
	}

	return RouteResult{From: ids[0], To: ids[1], Path: p, Names: e.names(p.Nodes)}, nil
}

// RouteWithTraffic is Route with costs adjusted by the period's volumes.
func (e *Engine) RouteWithTraffic(from, to string, period traffic.Period) (res RouteResult, err error) {
	defer func(t time.Time) {
		e.observe("traffic_route", t, err,
			zap.String("from", from), zap.String("to", to), zap.Stringer("period", period))
	}(time.Now())

	ids, err := e.resolve(from, to)
	if err != nil {
		return RouteResult{}, wrap("traffic route", err)
	}
	p, err := dijkstra.ShortestPathWithTraffic(e.graph, e.profile, ids[0], ids[1], period,
		dijkstra.WithFallbackVolume(e.cfg.Routing.FallbackVolume))
	if err != nil {
		return RouteResult{}, wrap("traffic route", err)
	}

	return RouteResult{From: ids[0], To: ids[1], Period: period.String(), Path: p, Names: e.names(p.Nodes)}, nil
}

// RouteSimulated routes over a copy of the graph whose edges carry random
// traffic levels in [0, maxLevel] drawn from seed, each level adding 10% to
// the edge weight. The same seed always yields the same route.
func (e *Engine) RouteSimulated(from, to string, seed int64, maxLevel int) (res RouteResult, err error) {
	defer func(t time.Time) {
		e.observe("simulated_route", t, err, zap.Int64("seed", seed), zap.Int("max_level", maxLevel))
	}(time.Now())

	ids, err := e.resolve(from, to)
	if err != nil {
		return RouteResult{}, wrap("simulated route", err)
	}
	sim, err := traffic.Simulate(e.graph, maxLevel, traffic.NewRand(seed))
	if err != nil {
		return RouteResult{}, wrap("simulated route", err)
	}
	if sim, err = traffic.ApplyPenalty(sim); err != nil {
		return RouteResult{}, wrap("simulated route", err)
	}
	p, err := dijkstra.ShortestPath(sim, ids[0], ids[1])
	if err != nil {
		return RouteResult{}, wrap("simulated route", err)
	}

	return RouteResult{From: ids[0], To: ids[1], Path: p, Names: e.names(p.Nodes)}, nil
}

// EmergencyResult is the route to the nearest hospital and the hand-off
// records that let signal timing pre-empt along it.
type EmergencyResult struct {
	Origin   string                    `json:"origin"`
	Hospital string                    `json:"hospital"`
	Period   string                    `json:"period"`
	Path     core.Path                 `json:"path"`
	Names    []string                  `json:"names"`
	Records  []signals.EmergencyRecord `json:"records"`
}

// EmergencyRoute finds the nearest hospital from origin by A* and emits one
// EmergencyRecord per traversed edge in period. An unreachable set of
// hospitals yields an empty Hospital and no records.
func (e *Engine) EmergencyRoute(ctx context.Context, origin string, period traffic.Period) (res EmergencyResult, err error) {
	defer func(t time.Time) {
		e.observe("emergency", t, err,
			zap.String("origin", origin), zap.String("hospital", res.Hospital), zap.Int("records", len(res.Records)))
	}(time.Now())

	ids, err := e.resolve(origin)
	if err != nil {
		return EmergencyResult{}, wrap("emergency", err)
	}
	hospitals := e.snap.Facilities(e.cfg.Routing.HospitalType)
	if len(hospitals) == 0 {
		return EmergencyResult{}, wrap("emergency", ErrNoHospitals)
	}
	near, err := astar.Nearest(ctx, e.graph, e.coords, ids[0], hospitals,
		astar.WithParallelism(e.cfg.Routing.Parallelism))
	if err != nil {
		return EmergencyResult{}, wrap("emergency", err)
	}

	res = EmergencyResult{
		Origin:   ids[0],
		Hospital: near.Facility,
		Period:   period.String(),
		Path:     near.Path,
		Names:    e.names(near.Path.Nodes),
		Records:  HandOff(near.Path, period),
	}

	return res, nil
}

// HandOff converts a path into emergency records, one per consecutive pair.
func HandOff(p core.Path, period traffic.Period) []signals.EmergencyRecord {
	out := make([]signals.EmergencyRecord, 0, max(0, len(p.Nodes)-1))
	for i := 1; i < len(p.Nodes); i++ {
		out = append(out, signals.EmergencyRecord{From: p.Nodes[i-1], To: p.Nodes[i], Period: period})
	}

	return out
}
