// Package dijkstra implements Dijkstra's single-pair shortest-path search on
// non-negatively weighted city graphs, optionally with traffic-adjusted costs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - A node is finalized on its first pop and never re-expanded.
//   - The search stops as soon as the target is popped.
//   - Traffic-adjusted costs are computed at expansion time, so no
//     period-specific graph is ever materialized.
//   - Equal-cost frontier entries pop in node-ID order, which keeps results
//     deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/traffic"
)

// ShortestPath returns the minimum-cost path from start to end.
//
// Returns:
//
//   - core.Path with the ordered node sequence and its cost.
//     If end is unreachable: empty Nodes and Cost = +Inf, nil error.
//   - err if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be non-empty (ErrEmptyEndpoint).
//  3. start and end must be nodes of g (ErrNodeNotFound).
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return core.NoPath(), ErrNilGraph
	}
	if start == "" || end == "" {
		return core.NoPath(), ErrEmptyEndpoint
	}
	for _, id := range [2]string{start, end} {
		if !g.HasNode(id) {
			return core.NoPath(), fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	// 3) Run
	r := newRunner(g.Adjacency(), cfg)
	if err := r.run(start, end); err != nil {
		return core.NoPath(), err
	}
	if !r.visited[end] {
		return core.NoPath(), nil
	}

	return core.Path{Nodes: core.Reconstruct(r.prev, start, end), Cost: r.dist[end]}, nil
}

// ShortestPathWithTraffic is ShortestPath with WithTraffic(profile, period)
// prepended to opts.
func ShortestPathWithTraffic(
	g *core.Graph,
	profile traffic.Profile,
	start, end string,
	period traffic.Period,
	opts ...Option,
) (core.Path, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithTraffic(profile, period))
	all = append(all, opts...)

	return ShortestPath(g, start, end, all...)
}

// runner holds the mutable state for a single search.
type runner struct {
	adj     map[string][]core.Edge // outgoing edges; read-only
	options Options
	dist    map[string]float64 // best-known cost from start
	prev    map[string]string  // predecessor on the best path
	visited map[string]bool    // finalized nodes
	pq      nodePQ
}

func newRunner(adj map[string][]core.Edge, cfg Options) *runner {
	return &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[string]float64, len(adj)),
		prev:    make(map[string]string, len(adj)),
		visited: make(map[string]bool, len(adj)),
		pq:      make(nodePQ, 0, len(adj)),
	}
}

// run pops entries in (cost, id) order until target is finalized, the heap
// drains, or the cheapest entry exceeds MaxCost.
func (r *runner) run(start, target string) error {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative cost of every unfinalized neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	for _, e := range r.adj[u] {
		v := e.To
		if r.visited[v] {
			continue
		}
		w := r.cost(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeWeight, u, v, w)
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxCost {
			continue
		}
		// Strict improvement only: equal-cost alternatives keep the first predecessor.
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// cost returns the expansion-time cost of e: the static weight, or the
// traffic-adjusted weight when a profile is configured.
func (r *runner) cost(e core.Edge) float64 {
	if r.options.Profile == nil {
		return e.Weight
	}
	vol := r.options.Profile.VolumeOr(e.From, e.To, r.options.Period, r.options.FallbackVolume)

	return traffic.AdjustedCost(e.Weight, vol)
}

// nodeItem represents a node and its tentative cost from the start.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
