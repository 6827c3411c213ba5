// Package astar provides heuristic emergency routing over a city graph.
//
// 🚑 What
//
//	Search(g, coords, start, goal) runs A* with priority f = g + h, where h
//	is the great-circle (haversine) distance in kilometers between a node
//	and the goal. Node coordinates are longitude/latitude pairs.
//
//	Nearest(ctx, g, coords, start, candidates) runs one Search per candidate
//	facility and keeps the cheapest reachable one. Equal costs resolve to the
//	candidate listed first.
//
// Contract:
//
//   - Every expanded node and the goal need a coordinate, otherwise
//     ErrMissingCoordinate. The result is optimal only when h never
//     overestimates the remaining cost (edge costs ≥ straight-line km).
//   - Unreachable goal: core.NoPath(), nil error.
//   - Frontier ties are broken by node ID ascending.
//
// Concurrency:
//
//	Search is synchronous. Nearest fans out with errgroup when
//	WithParallelism(n > 1) is given; each worker writes only its own slot of
//	an index-addressed result slice and the reduction runs after Wait.
package astar
