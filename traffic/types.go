// Package traffic defines time periods, road keys and traffic profiles used
// by the traffic-adjusted search and the signal-timing engine.
package traffic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPeriod indicates a period label that does not name one of the
// four fixed periods.
var ErrUnknownPeriod = errors.New("traffic: unknown period")

// ErrBadVolume indicates a negative or NaN traffic volume.
var ErrBadVolume = errors.New("traffic: volume must be non-negative")

// DefaultFallbackVolume is the volume assumed for a road with no profile
// entry for the requested period (vehicles/hour).
const DefaultFallbackVolume = 1000.0

// VolumeScale is the divisor that turns a volume into a cost multiplier:
// adjusted = base × (1 + volume/VolumeScale).
const VolumeScale = 10000.0

// Period is a fixed discrete time bucket indexing time-varying volumes.
type Period int

const (
	// Morning is the morning peak.
	Morning Period = iota
	// Afternoon is the midday/afternoon period.
	Afternoon
	// Evening is the evening peak.
	Evening
	// Night is the overnight period.
	Night
)

var periodNames = [...]string{"morning", "afternoon", "evening", "night"}

// Periods returns the four periods in canonical order.
func Periods() []Period { return []Period{Morning, Afternoon, Evening, Night} }

// String returns the lower-case label of p.
func (p Period) String() string {
	if p < Morning || p > Night {
		return fmt.Sprintf("period(%d)", int(p))
	}

	return periodNames[p]
}

// Valid reports whether p is one of the four fixed periods.
func (p Period) Valid() bool { return p >= Morning && p <= Night }

// ParsePeriod maps a label to a Period. Matching is case-insensitive and
// accepts the "_peak" suffix used by peak-hour column names
// ("Morning", "morning_peak", "EVENING" all parse).
func ParsePeriod(s string) (Period, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	label = strings.TrimSuffix(label, "_peak")
	label = strings.TrimSuffix(label, "-peak")
	for i, name := range periodNames {
		if label == name {
			return Period(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeriod, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParsePeriod.
func (p *Period) UnmarshalText(b []byte) error {
	v, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// RoadKey is an unordered road identifier {U, V}. NewRoadKey normalizes the
// pair so that lookups work in either direction.
type RoadKey struct {
	U, V string
}

// NewRoadKey returns the normalized key for the road between a and b.
func NewRoadKey(a, b string) RoadKey {
	if b < a {
		a, b = b, a
	}

	return RoadKey{U: a, V: b}
}

// String renders the key as "U-V".
func (k RoadKey) String() string { return k.U + "-" + k.V }

// Profile maps a road to its per-period volume.
type Profile map[RoadKey]map[Period]float64
