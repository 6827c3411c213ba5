package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/netdesign"
	"go.uber.org/zap"
)

// NetworkReport is the designed network plus connectivity diagnostics.
type NetworkReport struct {
	netdesign.Result

	// BaselineCost is the minimum spanning forest weight of existing roads.
	BaselineCost float64 `json:"baseline_cost"`

	// Components is the number of connected groups of locations once the
	// designed edges are added; 1 means every location is reachable.
	Components int `json:"components"`

	// Isolated lists locations outside the largest component.
	Isolated []string `json:"isolated"`
}

// DesignNetwork selects new roads under the configured budget and priority
// factors and completes connectivity with existing roads.
func (e *Engine) DesignNetwork() (rep NetworkReport, err error) {
	defer func(t time.Time) {
		e.observe("network", t, err,
			zap.Int("new_edges", len(rep.NewEdges)), zap.Float64("new_cost", rep.TotalNewCost))
	}(time.Now())

	nc := e.cfg.Network
	var opts []netdesign.Option
	if nc.Prioritize {
		opts = append(opts, netdesign.WithPriority(nc.FacilityFactor, nc.PopulationFactor))
	}
	if nc.Budget > 0 {
		opts = append(opts, netdesign.WithBudget(nc.Budget))
	}
	opts = append(opts, netdesign.WithCompletionCost(nc.CompletionCost))

	res, err := netdesign.Design(e.snap.Candidates(nc.PopulationThreshold), e.snap.ExistingRoads(), opts...)
	if err != nil {
		return NetworkReport{}, wrap("network", err)
	}
	_, baseline, err := netdesign.MinimumSpanningForest(e.graph)
	if err != nil {
		return NetworkReport{}, wrap("network", err)
	}

	comps, err := e.designedComponents(res)
	if err != nil {
		return NetworkReport{}, wrap("network", err)
	}
	rep = NetworkReport{Result: res, BaselineCost: baseline, Components: len(comps), Isolated: []string{}}
	if len(comps) > 1 {
		largest := 0
		for i, c := range comps {
			if len(c) > len(comps[largest]) {
				largest = i
			}
		}
		for i, c := range comps {
			if i != largest {
				rep.Isolated = append(rep.Isolated, c...)
			}
		}
	}

	return rep, nil
}

// designedComponents groups every location by connectivity over the
// designed network (new plus completion edges).
func (e *Engine) designedComponents(res netdesign.Result) ([][]string, error) {
	g := core.NewGraph()
	for _, l := range e.snap.Locations {
		if err := g.AddNode(l.ID); err != nil {
			return nil, fmt.Errorf("location %q: %w", l.ID, err)
		}
	}
	for _, se := range res.Edges() {
		if err := g.AddRoad(se.From, se.To, math.Max(se.Cost, 0)); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", se.From, se.To, err)
		}
	}

	return g.Components(), nil
}
