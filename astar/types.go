package astar

import (
	"errors"

	"github.com/katalvlaran/cityflow/core"
	"github.com/paulmach/orb/geo"
)

// Sentinel errors returned by the A* search and the nearest-facility scan.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound indicates that start or goal is not a node of the graph.
	ErrNodeNotFound = errors.New("astar: node not found in graph")

	// ErrMissingCoordinate indicates that a node reached by the search has no coordinate.
	ErrMissingCoordinate = errors.New("astar: missing coordinate")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("astar: negative edge cost encountered")

	// ErrNoCandidates indicates that Nearest was called with an empty candidate list.
	ErrNoCandidates = errors.New("astar: no candidate facilities")

	// ErrBadParallelism indicates WithParallelism(n) with n < 1.
	ErrBadParallelism = errors.New("astar: parallelism must be at least 1")
)

// Heuristic estimates the remaining cost between two coordinates.
type Heuristic func(from, to core.Point) float64

// Haversine is the default heuristic: great-circle distance in kilometers,
// treating X as longitude and Y as latitude.
func Haversine(from, to core.Point) float64 {
	return geo.DistanceHaversine(from.Orb(), to.Orb()) / 1000
}

// Options configures Search and Nearest.
type Options struct {
	// Heuristic is h(n, goal). Default Haversine.
	Heuristic Heuristic

	// Parallelism bounds the number of concurrent searches in Nearest.
	// Default 1 (sequential).
	Parallelism int
}

// Option represents a functional option.
type Option func(*Options)

// WithHeuristic replaces the haversine estimate, e.g. with a planar distance
// for graphs laid out on a grid. A nil fn keeps the default.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithParallelism sets how many candidate searches Nearest runs at once.
// n < 1 panics with ErrBadParallelism.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// DefaultOptions returns Haversine with sequential scanning.
func DefaultOptions() Options {
	return Options{Heuristic: Haversine, Parallelism: 1}
}

// Result is the outcome of a nearest-facility scan.
type Result struct {
	// Facility is the chosen candidate, empty when none is reachable.
	Facility string `json:"facility"`

	// Path is the route to Facility (core.NoPath() when none is reachable).
	Path core.Path `json:"path"`
}
