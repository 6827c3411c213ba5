// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Adjacency), connected components
//       and cloning.
// Determinism:
//   - Neighbors() and Adjacency() keep insertion order per source node.
//   - Components() sorts members and orders components by their first member.

package core

import (
	"math"
	"sort"
)

// Neighbors returns the outgoing edges of id in insertion order.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrNodeNotFound if id is not in the node set.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	idx := g.out[id]
	out := make([]Edge, len(idx))
	for i, k := range idx {
		out[i] = g.edges[k]
	}

	return out, nil
}

// Adjacency returns a snapshot map from node ID to its outgoing edges.
// Every node appears as a key, isolated nodes with an empty slice.
// The searches build their frontier expansion from this snapshot once per call.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string][]Edge {
	adj := make(map[string][]Edge, len(g.nodes))
	for id := range g.nodes {
		idx := g.out[id]
		row := make([]Edge, len(idx))
		for i, k := range idx {
			row[i] = g.edges[k]
		}
		adj[id] = row
	}

	return adj
}

// Components returns the connected components of g, treating every edge as
// undirected. Each component is sorted; components are ordered by their
// smallest member.
//
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]string {
	// Undirected neighbor lists, built once.
	nbr := make(map[string][]string, len(g.nodes))
	for _, e := range g.edges {
		nbr[e.From] = append(nbr[e.From], e.To)
		nbr[e.To] = append(nbr[e.To], e.From)
	}

	seen := make(map[string]bool, len(g.nodes))
	var comps [][]string
	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []string{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range nbr[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Clone returns a deep copy of g: same nodes, same edge records and IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		edgeSeq: g.edgeSeq,
		nodes:   make(map[string]struct{}, len(g.nodes)),
		edges:   make([]Edge, len(g.edges)),
		out:     make(map[string][]int, len(g.out)),
	}
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	copy(c.edges, g.edges)
	for id, idx := range g.out {
		c.out[id] = append([]int(nil), idx...)
	}

	return c
}

// MapEdges returns a copy of g whose edge records have been rewritten by fn.
// Node set, edge IDs and endpoints are preserved; fn may only change Weight
// and Traffic. Rewritten values are validated like AddEdge does.
func (g *Graph) MapEdges(fn func(Edge) Edge) (*Graph, error) {
	c := g.Clone()
	for i, e := range c.edges {
		ne := fn(e)
		if ne.Weight < 0 || math.IsNaN(ne.Weight) {
			return nil, ErrNegativeWeight
		}
		if ne.Traffic < 0 || math.IsNaN(ne.Traffic) {
			return nil, ErrBadTraffic
		}
		c.edges[i].Weight = ne.Weight
		c.edges[i].Traffic = ne.Traffic
	}

	return c, nil
}
