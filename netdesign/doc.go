// Package netdesign selects new roads to build and existing roads to rely on
// so that a city's neighborhoods and facilities become connected.
//
// What
//
//   - Design(candidates, existing, opts...) is a Kruskal-style procedure over
//     candidate (not yet built) roads:
//
//     1. Priority weighting (WithPriority): a road's adjusted cost is its base
//     cost multiplied by the facility factor if it connects a facility and
//     by the population factor if it serves a high-population area.
//     2. Candidates are stably sorted by adjusted cost and merged with
//     Union-Find; a road whose endpoints are already connected is skipped.
//     With WithBudget, the first acceptable road whose base cost would
//     overrun the remaining budget ends the selection.
//     3. Existing roads are scanned in input order and any road that joins
//     two still-separate components is recorded as a completion edge with a
//     nominal cost.
//
//   - MinimumSpanningForest(g) is plain Kruskal over a core.Graph.
//
// Budgeted greedy
//
//	Under a budget the result is NOT a minimum-cost spanning structure:
//	stopping at the first unaffordable road can leave cheaper later roads
//	unused. The procedure never exceeds the budget and never creates a
//	cycle; optimality under a hard ceiling is not attempted.
//
// Connectivity
//
//	Design does not check that every node ended up connected. Callers that
//	need a single component compare the output with their node set (see
//	core.Graph.Components).
//
// Complexity: O(E log E + α(V)·E) for both procedures.
package netdesign
