// Package dijkstra defines core types and configuration options for the
// single-pair shortest-path search over a city graph.
//
// Options:
//
//	– MaxCost:        optional cap on accumulated cost; entries beyond it are not expanded.
//	– Traffic:        traffic profile + period; edge costs are recomputed at expansion time.
//	– FallbackVolume: volume assumed for roads without a profile entry (default 1000).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrEmptyEndpoint   if start or end is the empty string.
//	– ErrNodeNotFound    if start or end is not a node of the graph.
//	– ErrNegativeWeight  if an (adjusted) edge cost is negative.
//	– ErrBadMaxCost      if MaxCost < 0.
//	– ErrBadFallback     if FallbackVolume < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/cityflow/traffic"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyEndpoint indicates that start or end is the empty string.
	ErrEmptyEndpoint = errors.New("dijkstra: endpoint ID is empty")

	// ErrNodeNotFound indicates that start or end does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadFallback indicates that the fallback traffic volume is negative.
	ErrBadFallback = errors.New("dijkstra: fallback volume must be non-negative")
)

// Options configures the behavior of the search.
//
// MaxCost        – frontier entries with cost > MaxCost are not expanded.
//
//	Default is +Inf (no cap).
//
// Profile/Period – when Profile is non-nil, every edge cost is adjusted by
//
//	the volume of its road during Period.
//
// FallbackVolume – volume used for roads with no profile entry.
type Options struct {
	MaxCost        float64
	Profile        traffic.Profile
	Period         traffic.Period
	FallbackVolume float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxCost sets a cap on explored cost. Negative values panic with
// ErrBadMaxCost, matching how invalid option arguments are reported.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithTraffic makes the search period-dependent: each edge u→v costs
// base × (1 + volume(u,v,period)/10000) when it is expanded.
func WithTraffic(profile traffic.Profile, period traffic.Period) Option {
	return func(o *Options) {
		if profile == nil {
			profile = traffic.Profile{}
		}
		o.Profile = profile
		o.Period = period
	}
}

// WithFallbackVolume overrides the volume assumed for roads without data.
// Negative values panic with ErrBadFallback.
func WithFallbackVolume(v float64) Option {
	return func(o *Options) {
		if v < 0 || math.IsNaN(v) {
			panic(ErrBadFallback.Error())
		}
		o.FallbackVolume = v
	}
}

// DefaultOptions returns the static-search defaults:
//
//   - MaxCost:        +Inf
//   - Profile:        nil (static weights)
//   - FallbackVolume: traffic.DefaultFallbackVolume
func DefaultOptions() Options {
	return Options{
		MaxCost:        math.Inf(1),
		FallbackVolume: traffic.DefaultFallbackVolume,
	}
}
