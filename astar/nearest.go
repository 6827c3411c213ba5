package astar

import (
	"context"

	"github.com/katalvlaran/cityflow/core"
	"golang.org/x/sync/errgroup"
)

// Nearest runs Search from start to every candidate and returns the
// cheapest reachable one. Equal costs resolve to the earlier candidate.
// When no candidate is reachable the Result has an empty Facility and
// core.NoPath().
//
// Errors: ErrNilGraph, ErrNoCandidates, ErrNodeNotFound for an unknown
// start, plus the first Search error of any candidate (ErrMissingCoordinate,
// ErrNodeNotFound). ctx cancellation stops scheduling further searches.
func Nearest(
	ctx context.Context,
	g *core.Graph,
	coords map[string]core.Point,
	start string,
	candidates []string,
	opts ...Option,
) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	none := Result{Path: core.NoPath()}
	if g == nil {
		return none, ErrNilGraph
	}
	if len(candidates) == 0 {
		return none, ErrNoCandidates
	}

	adj := g.Adjacency()
	paths := make([]core.Path, len(candidates))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)
	for i, c := range candidates {
		i, c := i, c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := search(adj, g, coords, start, c, cfg)
			if err != nil {
				return err
			}
			paths[i] = p

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return none, err
	}

	best := none
	for i, p := range paths {
		if p.Found() && p.Cost < best.Path.Cost {
			best = Result{Facility: candidates[i], Path: p}
		}
	}

	return best, nil
}
