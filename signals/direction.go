package signals

import (
	"math"

	"github.com/katalvlaran/cityflow/core"
)

// Estimate classifies the approach from→to by the dominant coordinate
// delta. |Δx| > |Δy| gives East (Δx > 0) or West, otherwise North (Δy > 0)
// or South, so coincident points read as South. Unknown if either node has
// no coordinate.
func Estimate(coords map[string]core.Point, from, to string) Direction {
	a, okA := coords[from]
	b, okB := coords[to]
	if !okA || !okB {
		return Unknown
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return East
		}

		return West
	}
	if dy > 0 {
		return North
	}

	return South
}
