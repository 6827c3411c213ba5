// Package dsu provides a disjoint-set (Union-Find) forest.
//
// Forest is an arena of int indices 0..n-1 with iterative path halving and
// union by size, so Find is amortized near-constant and never recurses.
// Keyed[K] maps arbitrary comparable keys (node IDs) onto a Forest and grows
// on demand.
//
// Union reports whether two distinct components were merged. Spanning
// procedures accept an edge only when Union returns true, which is what
// keeps their output acyclic.
package dsu
