package planner

import (
	"time"

	"github.com/katalvlaran/cityflow/signals"
	"go.uber.org/zap"
)

// TimeSignals computes per-intersection priorities from the snapshot's
// traffic records, with emergencies overriding the greedy choice.
func (e *Engine) TimeSignals(emergencies []signals.EmergencyRecord) (out []signals.Assignment, err error) {
	defer func(t time.Time) {
		e.observe("signals", t, err,
			zap.Int("intersections", len(out)), zap.Int("emergencies", len(emergencies)))
	}(time.Now())

	flows, err := e.snap.Flows()
	if err != nil {
		return nil, wrap("signals", err)
	}
	policy := signals.PolicyGreedy
	if e.cfg.Signals.Policy == "proportional" {
		policy = signals.PolicyProportional
	}
	out, err = signals.Compute(flows, e.coords, emergencies,
		signals.WithPolicy(policy), signals.WithCycle(e.cfg.Signals.Cycle))
	if err != nil {
		return nil, wrap("signals", err)
	}

	return out, nil
}
