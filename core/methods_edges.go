// File: methods_edges.go
// Role: Node and edge lifecycle: AddNode/HasNode/Nodes, AddEdge/AddRoad/Edges,
//       plus counts.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically.
//   - Edges() returns records in insertion order.
//   - Edge IDs are monotonic ("e" + decimal).

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddNode inserts id into the node set. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether id is a member of the node set.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge appends the record u→v with the given weight and inserts both
// endpoints into the node set. Parallel edges are kept; nothing is mirrored.
//
// Steps:
//  1. Validate IDs, weight and options.
//  2. Ensure endpoints.
//  3. Generate the edge ID and append the record.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if u == "" || v == "" {
		return "", ErrEmptyNodeID
	}
	if weight < 0 || math.IsNaN(weight) {
		return "", fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, u, v, weight)
	}
	e := Edge{From: u, To: v, Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	if e.Traffic < 0 || math.IsNaN(e.Traffic) {
		return "", fmt.Errorf("%w: edge %s→%s traffic=%g", ErrBadTraffic, u, v, e.Traffic)
	}

	// 2) Ensure endpoints
	g.nodes[u] = struct{}{}
	g.nodes[v] = struct{}{}

	// 3) Store
	e.ID = g.nextEdgeID()
	g.out[u] = append(g.out[u], len(g.edges))
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// AddRoad inserts u→v and v→u with identical weight and options, the usual
// way callers model a two-way street.
func (g *Graph) AddRoad(u, v string, weight float64, opts ...EdgeOption) error {
	if _, err := g.AddEdge(u, v, weight, opts...); err != nil {
		return err
	}
	_, err := g.AddEdge(v, u, weight, opts...)

	return err
}

// Edges returns a copy of all edge records in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// nextEdgeID returns the next sequential edge ID without fmt allocations.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
