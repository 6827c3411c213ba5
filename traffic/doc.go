// Package traffic models time-varying road congestion.
//
// A Profile maps an unordered road key {u,v} to per-period volumes
// (vehicles/hour) for the four fixed periods Morning, Afternoon, Evening
// and Night. The traffic-adjusted shortest path reads it at expansion time:
//
//	adjusted = base × (1 + volume(u,v,period) / 10000)
//
// where volume falls back to DefaultFallbackVolume (1000) when the road has
// no entry for the period. Missing data is therefore never an error.
//
// Simulate and ApplyPenalty reproduce the batch "what-if" helper: random
// integer congestion levels per edge, then a 10%-per-level weight penalty.
// They are explicitly randomized and take a seeded *rand.Rand.
package traffic
