// Package cityflow is an in-memory planning engine for city transport
// networks: routing, emergency response, network design, resource
// allocation and signal timing over one road graph.
//
// 🚀 What is cityflow?
//
//	A set of small, deterministic engines that share one graph model:
//		• Graph model: locations, directed road records, coordinates
//		• Routing: Dijkstra, static and traffic-adjusted per time period
//		• Emergency: A* with a haversine heuristic, nearest-hospital scan
//		• Network design: budgeted, priority-weighted Kruskal over Union-Find
//		• Allocation: 0/1 knapsack with fleet, metro and maintenance adapters
//		• Signals: greedy per-period priority with emergency override
//
// Under the hood, everything is organized into subpackages:
//
//	core/        Graph, Edge, Path and Point types
//	traffic/     periods, volume profiles, simulated traffic levels
//	dijkstra/    single-pair shortest paths
//	astar/       heuristic search and nearest-facility selection
//	dsu/         disjoint-set forests (index and keyed)
//	netdesign/   network design and minimum spanning forests
//	knapsack/    exact 0/1 knapsack
//	allocation/  bus, metro and maintenance adapters
//	signals/     approach directions and signal priorities
//	dataset/     YAML city snapshots and engine inputs
//	config/      YAML + environment configuration
//	logging/     zap logger construction
//	metrics/     Prometheus operation metrics
//	planner/     Engine facade binding config, snapshot and engines
//	cmd/cityplan  command-line front end
//
// Quick ASCII example:
//
//	   Maadi ──11── Downtown ──14── Nasr City
//	     │             │
//	     8             2
//	     │             │
//	   Giza          Hospital
//
// Engine packages never log and never read configuration; the planner does
// both and passes plain options down.
package cityflow
