// Package dataset reads a city snapshot (locations, roads, candidate roads,
// transit lines and per-period traffic counts) from YAML or JSON and turns
// it into the inputs of the engine packages.
//
// A snapshot is validated in two passes: struct tags check each record
// (go-playground/validator) and a referential pass checks that every road,
// stop and traffic record names a known location.
//
// Traffic records identify a road as "FROM-TO". The record is both a
// directed flow FROM→TO for signal timing and an undirected volume entry for
// traffic-adjusted routing. A missing period column means "no data" and
// routing falls back to the default volume.
package dataset
