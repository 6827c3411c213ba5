// Package core defines the Graph, Edge and Point types and the sentinel
// errors returned while building a graph snapshot.
package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadTraffic indicates a negative (or NaN) traffic level.
	ErrBadTraffic = errors.New("core: traffic level must be non-negative")
)

// Point is a 2-D node coordinate. X holds longitude (or planar x) and
// Y holds latitude (or planar y).
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Orb converts p to an orb.Point ([lon, lat] order).
func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

// Edge is one directed road record u→v.
type Edge struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", …).
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the non-negative base cost of traversing the edge.
	Weight float64

	// Traffic is an optional congestion level; zero when not set.
	Traffic float64
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithTraffic attaches a traffic level to the edge being added.
func WithTraffic(level float64) EdgeOption {
	return func(e *Edge) { e.Traffic = level }
}

// Graph is a weighted multigraph over string node IDs.
//
// nodes is the node set; edges keeps insertion order; out indexes edges by
// source node for O(deg) neighbor scans.
type Graph struct {
	edgeSeq uint64
	nodes   map[string]struct{}
	edges   []Edge
	out     map[string][]int // From → indices into edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		out:   make(map[string][]int),
	}
}
