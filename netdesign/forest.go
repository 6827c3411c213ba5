package netdesign

import (
	"sort"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/dsu"
)

// MinimumSpanningForest computes a minimum spanning forest of g treating
// every record as undirected. Records u→v and v→u are interchangeable, so
// a road stored in both directions is considered once per record and the
// second record is rejected as a cycle.
//
// Steps:
//  1. Collect edges, skipping self-loops.
//  2. Stable sort by weight (ties keep insertion order).
//  3. Union-Find merge; stop at |V|-1 edges.
//
// Returns the forest edges in acceptance order and their total weight.
// A disconnected graph yields one tree per component; callers can compare
// len(edges) with NodeCount()-len(Components()) if a single tree is required.
func MinimumSpanningForest(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 1) Collect edges without self-loops
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 2) Stable sort by weight
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	// 3) Merge
	sets := dsu.NewKeyed[string](g.NodeCount())
	for _, id := range g.Nodes() {
		sets.Add(id)
	}
	var (
		forest []core.Edge
		total  float64
		limit  = g.NodeCount() - 1
	)
	for _, e := range edges {
		if len(forest) >= limit {
			break
		}
		if sets.Union(e.From, e.To) {
			forest = append(forest, e)
			total += e.Weight
		}
	}
	if forest == nil {
		forest = []core.Edge{}
	}

	return forest, total, nil
}
