// Package planner is the facade used by the cityplan CLI. An Engine binds one
// validated configuration to one city snapshot, resolves location names,
// builds the engine inputs once, and exposes each planning operation.
//
// Every operation is logged at debug level with the engine's run ID and
// recorded in the metrics collector (operation count by outcome, latency).
// Failures are logged at warn level and returned unchanged so callers can
// match sentinel errors with errors.Is.
package planner
