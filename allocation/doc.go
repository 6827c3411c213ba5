// Package allocation turns transit and road records into knapsack items and
// back into plans.
//
//   - ScheduleBuses: one item per bus route; value = passengers × stops ×
//     traffic weight (1.2 unless WithTrafficWeight), cost = max(1, stops)
//     buses. Capacity is the fleet size.
//   - ScheduleMetro: one item per metro line; value = passengers × stations,
//     cost = max(1, stations) trains.
//   - PlanMaintenance: one item per road in need of repair; cost =
//     (10 − condition) × 0.1 × distance (millions) in cents, value =
//     (10 − condition) × traffic level. Roads in perfect condition cost
//     nothing and are left out.
//
// Every schedule is all-or-nothing per route: a selected route receives its
// full requirement, any other route receives 0.
package allocation
