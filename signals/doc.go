// Package signals assigns traffic-signal priority at every intersection for
// each time period.
//
// An intersection is any node that is the destination of a flow record or
// of an emergency record. For each intersection and period:
//
//  1. Every inbound flow is classified by compass direction from the
//     coordinates of its endpoints (Estimate): the dominant axis of the
//     delta decides east/west or north/south; a missing coordinate gives
//     Unknown.
//  2. Volumes are summed per direction.
//  3. Greedy choice: the direction with the strictly largest positive
//     total wins. Ties resolve in the order north, south, east, west,
//     unknown. No positive volume gives Unknown.
//  4. Emergency pre-emption: if an emergency record enters the
//     intersection in that period, the direction of the first such record
//     replaces the greedy choice.
//
// PolicyGreedy (default) reports one direction per period. PolicyProportional
// additionally splits a fixed cycle (60 s unless WithCycle) across compass
// directions in proportion to volume, truncating to whole seconds; an
// emergency gives its direction the whole cycle and the others zero. The
// reported priority is the same under both policies.
//
// Emergency direction is derived from the geometry of the emergency edge,
// not from a movement or phase plan; treat it as advisory input to a real
// controller.
package signals
