package signals

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/traffic"
)

// Compute returns one Assignment per intersection, sorted by intersection
// ID, each with a Phase for every period in traffic.Periods() order.
//
// Errors: ErrEmptyNodeID, ErrBadVolume, ErrUnknownPeriod.
func Compute(
	flows []Flow,
	coords map[string]core.Point,
	emergencies []EmergencyRecord,
	opts ...Option,
) ([]Assignment, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Aggregate inbound volume: intersection → period → direction → total
	inbound := make(map[string]map[traffic.Period]map[Direction]float64)
	ensure := func(id string) {
		if _, ok := inbound[id]; !ok {
			inbound[id] = make(map[traffic.Period]map[Direction]float64, 4)
		}
	}
	for i, f := range flows {
		if f.From == "" || f.To == "" {
			return nil, fmt.Errorf("%w: flow %d", ErrEmptyNodeID, i)
		}
		ensure(f.To)
		dir := Estimate(coords, f.From, f.To)
		for p, v := range f.Volumes {
			if !p.Valid() {
				return nil, fmt.Errorf("%w: flow %s-%s period=%d", ErrUnknownPeriod, f.From, f.To, int(p))
			}
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: flow %s-%s %s=%g", ErrBadVolume, f.From, f.To, p, v)
			}
			row, ok := inbound[f.To][p]
			if !ok {
				row = make(map[Direction]float64, 5)
				inbound[f.To][p] = row
			}
			row[dir] += v
		}
	}

	// 2) Emergency overrides: first record per (intersection, period) wins
	type slot struct {
		node   string
		period traffic.Period
	}
	override := make(map[slot]Direction)
	for i, e := range emergencies {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: emergency record %d", ErrEmptyNodeID, i)
		}
		if !e.Period.Valid() {
			return nil, fmt.Errorf("%w: emergency record %d period=%d", ErrUnknownPeriod, i, int(e.Period))
		}
		ensure(e.To)
		k := slot{e.To, e.Period}
		if _, seen := override[k]; !seen {
			override[k] = Estimate(coords, e.From, e.To)
		}
	}

	// 3) Decide per intersection and period
	ids := make([]string, 0, len(inbound))
	for id := range inbound {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Assignment, 0, len(ids))
	for _, id := range ids {
		a := Assignment{Intersection: id, Phases: make([]Phase, 0, 4)}
		for _, p := range traffic.Periods() {
			vols := inbound[id][p]
			ph := Phase{Period: p, Priority: greedy(vols), Volumes: nonZero(vols)}
			dir, urgent := override[slot{id, p}]
			if urgent {
				ph.Priority = dir
				ph.Emergency = true
			}
			if cfg.Policy == PolicyProportional {
				ph.GreenSeconds = split(vols, cfg.Cycle, dir, urgent)
			}
			a.Phases = append(a.Phases, ph)
		}
		out = append(out, a)
	}

	return out, nil
}

// greedy returns the direction with the strictly largest positive volume,
// scanning in tie-break order.
func greedy(vols map[Direction]float64) Direction {
	best, bestVol := Unknown, 0.0
	for _, d := range Directions() {
		if v := vols[d]; v > bestVol {
			best, bestVol = d, v
		}
	}

	return best
}

// split divides cycle seconds across compass directions by volume share.
// Unknown-direction volume counts toward the total but receives no green.
func split(vols map[Direction]float64, cycle int, urgent Direction, isUrgent bool) map[Direction]int {
	out := make(map[Direction]int, 4)
	total := 0.0
	for _, v := range vols {
		total += v
	}
	for _, d := range Compass() {
		switch {
		case isUrgent && d == urgent:
			out[d] = cycle
		case isUrgent:
			out[d] = 0
		case total > 0:
			out[d] = int(vols[d] / total * float64(cycle))
		default:
			out[d] = 0
		}
	}

	return out
}

func nonZero(vols map[Direction]float64) map[Direction]float64 {
	out := make(map[Direction]float64, len(vols))
	for d, v := range vols {
		if v != 0 {
			out[d] = v
		}
	}

	return out
}
