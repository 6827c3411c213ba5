package netdesign

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cityflow/dsu"
)

// Design selects new roads and completion roads as described in the package
// documentation.
//
// Steps:
//  1. Validate base costs (ErrNegativeCost) and compute adjusted costs.
//  2. Stable sort by adjusted cost; equal costs keep input order.
//  3. Union-Find merge over candidates, stopping at the first road that
//     would join two components but overruns the remaining budget.
//  4. Fresh Union-Find seeded with the accepted roads; existing roads that
//     join two components become completion edges.
//
// Self-loop candidates and existing roads are ignored.
//
// Complexity: O(C log C + (C + X)·α(V)), C candidates, X existing roads.
func Design(candidates []CandidateRoad, existing []ExistingRoad, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate and weight
	ranked := make([]SpanningEdge, 0, len(candidates))
	for i, c := range candidates {
		if c.BaseCost < 0 || math.IsNaN(c.BaseCost) {
			return Result{}, fmt.Errorf("%w: candidate %d (%s-%s) cost=%g", ErrNegativeCost, i, c.From, c.To, c.BaseCost)
		}
		if c.From == c.To {
			continue
		}
		ranked = append(ranked, SpanningEdge{
			Cost:         c.BaseCost,
			AdjustedCost: cfg.adjusted(c),
			From:         c.From,
			To:           c.To,
			IsNew:        true,
		})
	}

	// 2) Order by adjusted cost
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedCost < ranked[j].AdjustedCost
	})

	// 3) Budgeted greedy merge
	res := Result{NewEdges: []SpanningEdge{}, CompletionEdges: []SpanningEdge{}}
	sets := dsu.NewKeyed[string](2 * len(ranked))
	ceiling := cfg.Budget + budgetTolerance*math.Max(1, cfg.Budget)
	for _, e := range ranked {
		if sets.Connected(e.From, e.To) {
			continue
		}
		if res.TotalNewCost+e.Cost > ceiling {
			break
		}
		sets.Union(e.From, e.To)
		res.NewEdges = append(res.NewEdges, e)
		res.TotalNewCost += e.Cost
		res.TotalAdjustedCost += e.AdjustedCost
	}

	// 4) Connectivity completion over existing roads
	done := dsu.NewKeyed[string](2 * (len(res.NewEdges) + len(existing)))
	for _, e := range res.NewEdges {
		done.Union(e.From, e.To)
	}
	for _, r := range existing {
		if r.From == r.To {
			continue
		}
		if done.Union(r.From, r.To) {
			res.CompletionEdges = append(res.CompletionEdges, SpanningEdge{
				Cost:         cfg.CompletionCost,
				AdjustedCost: cfg.CompletionCost,
				From:         r.From,
				To:           r.To,
			})
		}
	}
	res.CompletionCount = len(res.CompletionEdges)

	return res, nil
}
