package traffic

import (
	"fmt"
	"math"
)

// Set records the volume of the road {a,b} during p.
func (pr Profile) Set(a, b string, p Period, volume float64) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPeriod, int(p))
	}
	if volume < 0 || math.IsNaN(volume) {
		return fmt.Errorf("%w: road %s-%s %s=%g", ErrBadVolume, a, b, p, volume)
	}
	k := NewRoadKey(a, b)
	row, ok := pr[k]
	if !ok {
		row = make(map[Period]float64, len(periodNames))
		pr[k] = row
	}
	row[p] = volume

	return nil
}

// Volume returns the volume of road {a,b} during p, looked up in either
// direction. ok is false when the road or the period has no entry.
func (pr Profile) Volume(a, b string, p Period) (volume float64, ok bool) {
	row, found := pr[NewRoadKey(a, b)]
	if !found {
		return 0, false
	}
	volume, ok = row[p]

	return volume, ok
}

// VolumeOr is Volume with missing data resolved to fallback.
func (pr Profile) VolumeOr(a, b string, p Period, fallback float64) float64 {
	if v, ok := pr.Volume(a, b, p); ok {
		return v
	}

	return fallback
}

// AdjustedCost scales a base cost by congestion:
//
//	base × (1 + volume/VolumeScale)
func AdjustedCost(base, volume float64) float64 {
	return base * (1 + volume/VolumeScale)
}
