package core

import (
	"encoding/json"
	"math"
)

// Path is the result of a single-pair search: the ordered node sequence from
// start to end and its total cost. An unreachable target is reported as an
// empty Nodes slice with Cost = +Inf, never as an error.
type Path struct {
	Nodes []string
	Cost  float64
}

// NoPath returns the Unreachable result.
func NoPath() Path { return Path{Nodes: []string{}, Cost: math.Inf(1)} }

// Found reports whether the path reaches its target.
func (p Path) Found() bool { return len(p.Nodes) > 0 && !math.IsInf(p.Cost, 1) }

// MarshalJSON encodes an unreachable cost as null, since JSON has no +Inf.
func (p Path) MarshalJSON() ([]byte, error) {
	type wire struct {
		Nodes []string `json:"nodes"`
		Cost  *float64 `json:"cost"`
	}
	w := wire{Nodes: p.Nodes}
	if w.Nodes == nil {
		w.Nodes = []string{}
	}
	if !math.IsInf(p.Cost, 0) && !math.IsNaN(p.Cost) {
		c := p.Cost
		w.Cost = &c
	}

	return json.Marshal(w)
}

// Reconstruct walks a predecessor map back from end to start.
// prev[v] == u means the best path to v arrives from u.
func Reconstruct(prev map[string]string, start, end string) []string {
	var rev []string
	for v := end; ; v = prev[v] {
		rev = append(rev, v)
		if v == start {
			break
		}
		if _, ok := prev[v]; !ok {
			return []string{}
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}
