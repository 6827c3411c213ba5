// Package core provides the city graph model shared by every search and
// design routine in cityflow.
//
// The Graph G = (V,E) is a weighted multigraph of string node IDs:
//
//   - AddEdge(u, v, w) inserts both endpoints into V and appends one record
//     u→v to E. There is no deduplication and no automatic mirroring; callers
//     that need undirected traversal insert both directions (AddRoad does
//     exactly that).
//   - Parallel edges between the same pair are permitted.
//   - Weights are non-negative float64 costs (kilometers, currency, minutes).
//   - Each edge may carry a traffic level used by the traffic helpers.
//   - Edge IDs are generated sequentially: "e1", "e2", …
//
// Determinism:
//
//	Nodes() is sorted lexicographically. Edges() and Neighbors() preserve
//	insertion order, which is what tests rely on for stable iteration.
//
// Concurrency:
//
//	A Graph is built once per engine invocation and then only read. It holds
//	no locks; concurrent readers are safe once construction is finished.
//
// Core Methods:
//
//	AddNode(id string) error                                   // O(1)
//	AddEdge(u, v string, w float64, opts ...EdgeOption) (string, error) // O(1) amortized
//	AddRoad(u, v string, w float64, opts ...EdgeOption) error  // two AddEdge calls
//	HasNode(id string) bool                                    // O(1)
//	Nodes() []string                                           // O(V log V)
//	Edges() []Edge                                             // O(E)
//	Neighbors(id string) ([]Edge, error)                       // O(deg)
//	Adjacency() map[string][]Edge                              // O(V+E)
//	Components() [][]string                                    // O(V+E)
//	Clone() *Graph                                             // O(V+E)
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrNodeNotFound   – missing node
//	ErrNegativeWeight – weight < 0 or NaN
//	ErrBadTraffic     – traffic level < 0 or NaN
package core
