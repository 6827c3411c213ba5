// Package dijkstra provides the static and traffic-adjusted shortest-path
// searches of cityflow.
//
// 🚦 What
//
//	ShortestPath(g, start, end, opts...) finds the minimum-cost route between
//	two nodes of a core.Graph with non-negative weights. With
//	WithTraffic(profile, period) every edge cost becomes
//
//	    base × (1 + volume(u,v,period) / 10000)
//
//	evaluated when the edge is expanded; roads absent from the profile use
//	the fallback volume (1000 unless WithFallbackVolume says otherwise).
//
// Result contract:
//
//   - Reachable target: core.Path{Nodes: [start … end], Cost: sum}.
//   - Unreachable target: core.Path{Nodes: [], Cost: +Inf}, nil error.
//   - Unknown start/end: ErrNodeNotFound.
//
// Determinism:
//
//	Frontier ties are broken by node ID, equal-cost relaxations keep the
//	first predecessor found, so repeated calls return identical paths.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddRoad("A", "B", 5)
//	_ = g.AddRoad("B", "C", 3)
//	_ = g.AddRoad("A", "C", 7)
//	p, _ := dijkstra.ShortestPath(g, "A", "C")
//	// p.Nodes == [A B C], p.Cost == 8
package dijkstra
