package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cityflow/core"
)

// Search returns the minimum-cost path from start to goal using A*.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be nodes of g (ErrNodeNotFound).
//  3. goal must have a coordinate (ErrMissingCoordinate).
//
// Every node placed on the frontier must also have a coordinate; the first
// one without aborts the search with ErrMissingCoordinate.
//
// Complexity: O((V + E) log V) in the worst case.
func Search(g *core.Graph, coords map[string]core.Point, start, goal string, opts ...Option) (core.Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return core.NoPath(), ErrNilGraph
	}

	return search(g.Adjacency(), g, coords, start, goal, cfg)
}

// search runs A* on a prepared adjacency snapshot. Nearest shares one
// snapshot across all candidate searches.
func search(
	adj map[string][]core.Edge,
	g *core.Graph,
	coords map[string]core.Point,
	start, goal string,
	cfg Options,
) (core.Path, error) {
	for _, id := range [2]string{start, goal} {
		if !g.HasNode(id) {
			return core.NoPath(), fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	target, ok := coords[goal]
	if !ok {
		return core.NoPath(), fmt.Errorf("%w: goal %q", ErrMissingCoordinate, goal)
	}

	r := &runner{
		adj:    adj,
		coords: coords,
		target: target,
		h:      cfg.Heuristic,
		gScore: map[string]float64{start: 0},
		prev:   make(map[string]string),
		closed: make(map[string]bool),
	}
	if err := r.run(start, goal); err != nil {
		return core.NoPath(), err
	}
	if !r.closed[goal] {
		return core.NoPath(), nil
	}

	return core.Path{Nodes: core.Reconstruct(r.prev, start, goal), Cost: r.gScore[goal]}, nil
}

// runner holds the mutable state for a single A* search.
type runner struct {
	adj    map[string][]core.Edge
	coords map[string]core.Point
	target core.Point
	h      Heuristic
	gScore map[string]float64 // best-known cost from start
	prev   map[string]string
	closed map[string]bool
	open   openSet
}

// estimate returns h(id, goal) or ErrMissingCoordinate.
func (r *runner) estimate(id string) (float64, error) {
	p, ok := r.coords[id]
	if !ok {
		return 0, fmt.Errorf("%w: node %q", ErrMissingCoordinate, id)
	}

	return r.h(p, r.target), nil
}

func (r *runner) run(start, goal string) error {
	h, err := r.estimate(start)
	if err != nil {
		return err
	}
	heap.Push(&r.open, &openItem{id: start, g: 0, f: h})

	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		u := item.id
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		if u == goal {
			return nil
		}

		for _, e := range r.adj[u] {
			v := e.To
			if r.closed[v] {
				continue
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeWeight, u, v, e.Weight)
			}
			tentative := r.gScore[u] + e.Weight
			if old, seen := r.gScore[v]; seen && tentative >= old {
				continue
			}
			hv, err := r.estimate(v)
			if err != nil {
				return err
			}
			r.gScore[v] = tentative
			r.prev[v] = u
			heap.Push(&r.open, &openItem{id: v, g: tentative, f: tentative + hv})
		}
	}

	return nil
}

// openItem is a frontier entry with f = g + h.
type openItem struct {
	id string
	g  float64
	f  float64
}

// openSet is a min-heap of *openItem ordered by (f, id) ascending.
type openSet []*openItem

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}

	return s[i].id < s[j].id
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) { *s = append(*s, x.(*openItem)) }

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}
