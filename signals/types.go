package signals

import (
	"errors"

	"github.com/katalvlaran/cityflow/traffic"
)

// Sentinel errors for signal timing.
var (
	// ErrEmptyNodeID indicates a flow or emergency record with an empty endpoint.
	ErrEmptyNodeID = errors.New("signals: empty node ID")

	// ErrBadVolume indicates a negative or NaN flow volume.
	ErrBadVolume = errors.New("signals: volume must be non-negative")

	// ErrUnknownPeriod indicates a record with an invalid period.
	ErrUnknownPeriod = errors.New("signals: unknown period")

	// ErrBadCycle indicates WithCycle(n) with n ≤ 0.
	ErrBadCycle = errors.New("signals: cycle length must be positive")
)

// Direction is an approach direction into an intersection.
type Direction string

// Directions in tie-break order.
const (
	North   Direction = "north"
	South   Direction = "south"
	East    Direction = "east"
	West    Direction = "west"
	Unknown Direction = "unknown"
)

// Directions returns all directions in tie-break order.
func Directions() []Direction { return []Direction{North, South, East, West, Unknown} }

// Compass returns the four real directions.
func Compass() []Direction { return []Direction{North, South, East, West} }

// Flow is a directed road record u→v with per-period volumes.
type Flow struct {
	From    string                     `json:"from_id"`
	To      string                     `json:"to_id"`
	Volumes map[traffic.Period]float64 `json:"volumes"`
}

// EmergencyRecord marks that an emergency vehicle traverses From→To during
// Period. Routing writes these; signal timing reads them.
type EmergencyRecord struct {
	From   string         `json:"from_id"`
	To     string         `json:"to_id"`
	Period traffic.Period `json:"period"`
}

// Phase is the decision for one intersection in one period.
type Phase struct {
	Period traffic.Period `json:"period"`

	// Priority is the direction given right of way.
	Priority Direction `json:"priority"`

	// Emergency reports whether Priority came from an emergency record.
	Emergency bool `json:"emergency"`

	// Volumes are the inbound totals per direction (zero entries omitted).
	Volumes map[Direction]float64 `json:"volumes"`

	// GreenSeconds is filled by PolicyProportional only.
	GreenSeconds map[Direction]int `json:"green_seconds,omitempty"`
}

// Assignment holds the four phases of one intersection.
type Assignment struct {
	Intersection string  `json:"intersection_id"`
	Phases       []Phase `json:"phases"`
}

// Priority returns the direction chosen for p, or Unknown if p is absent.
func (a Assignment) Priority(p traffic.Period) Direction {
	for _, ph := range a.Phases {
		if ph.Period == p {
			return ph.Priority
		}
	}

	return Unknown
}

// Policy selects how a phase is reported.
type Policy int

const (
	// PolicyGreedy reports the single priority direction per period.
	PolicyGreedy Policy = iota

	// PolicyProportional also splits the cycle by volume share.
	PolicyProportional
)

// DefaultCycle is the signal cycle length in seconds.
const DefaultCycle = 60

// Options configures Compute.
type Options struct {
	Policy Policy
	Cycle  int
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithPolicy selects the reporting policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithCycle sets the cycle length in seconds. n ≤ 0 panics with ErrBadCycle.
func WithCycle(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadCycle.Error())
		}
		o.Cycle = n
	}
}

// DefaultOptions returns PolicyGreedy with DefaultCycle.
func DefaultOptions() Options { return Options{Policy: PolicyGreedy, Cycle: DefaultCycle} }
