// Simulation helpers: randomized traffic levels and the per-level weight
// penalty. These are the only randomized routines in cityflow; every other
// engine call is deterministic.
//
// Determinism:
//   - All randomness flows through a caller-supplied *rand.Rand; NewRand(seed)
//     gives reproducible streams (seed==0 ⇒ defaultSeed).
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package traffic

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/cityflow/core"
)

// ErrBadMaxLevel indicates a negative maximum traffic level.
var ErrBadMaxLevel = errors.New("traffic: max level must be non-negative")

// PenaltyPerLevel is the fractional weight increase per traffic level.
const PenaltyPerLevel = 0.1

// DefaultMaxLevel is the default upper bound for simulated traffic levels.
const DefaultMaxLevel = 10

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Simulate returns a copy of g in which every edge carries a random integer
// traffic level drawn uniformly from [0, maxLevel]. Weights are untouched.
// A nil rng uses NewRand(0).
func Simulate(g *core.Graph, maxLevel int, rng *rand.Rand) (*core.Graph, error) {
	if maxLevel < 0 {
		return nil, ErrBadMaxLevel
	}
	if rng == nil {
		rng = NewRand(0)
	}

	return g.MapEdges(func(e core.Edge) core.Edge {
		e.Traffic = float64(rng.Intn(maxLevel + 1))
		return e
	})
}

// ApplyPenalty returns a copy of g with every weight increased by
// PenaltyPerLevel per unit of the edge's traffic level:
//
//	weight × (1 + level × PenaltyPerLevel)
func ApplyPenalty(g *core.Graph) (*core.Graph, error) {
	return g.MapEdges(func(e core.Edge) core.Edge {
		e.Weight *= 1 + e.Traffic*PenaltyPerLevel
		return e
	})
}
