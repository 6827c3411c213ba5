package dataset

import (
	"errors"
)

// Sentinel errors for snapshot loading.
var (
	// ErrInvalid indicates a record that violates a field constraint.
	ErrInvalid = errors.New("dataset: invalid snapshot")

	// ErrUnknownEntity indicates a reference to a location that does not exist.
	ErrUnknownEntity = errors.New("dataset: unknown entity")

	// ErrBadRoadID indicates a traffic road_id not of the form "FROM-TO".
	ErrBadRoadID = errors.New("dataset: road_id must be FROM-TO")
)

// Location kinds.
const (
	KindNeighborhood = "neighborhood"
	KindFacility     = "facility"
)

// Location is a neighborhood or a facility.
type Location struct {
	ID         string  `yaml:"id" json:"id" validate:"required"`
	Name       string  `yaml:"name" json:"name"`
	X          float64 `yaml:"x" json:"x"`
	Y          float64 `yaml:"y" json:"y"`
	Kind       string  `yaml:"kind" json:"kind" validate:"oneof=neighborhood facility"`
	Type       string  `yaml:"type" json:"type"`
	Population int     `yaml:"population" json:"population" validate:"gte=0"`
}

// Road is an existing, undirected road.
type Road struct {
	From         string  `yaml:"from_id" json:"from_id" validate:"required"`
	To           string  `yaml:"to_id" json:"to_id" validate:"required"`
	Distance     float64 `yaml:"distance" json:"distance" validate:"gte=0"`
	TrafficLevel float64 `yaml:"traffic_level" json:"traffic_level" validate:"gte=0"`
	Condition    int     `yaml:"condition" json:"condition" validate:"gte=0,lte=10"`
}

// CandidateRoad is a road that could be built.
type CandidateRoad struct {
	From             string  `yaml:"from_id" json:"from_id" validate:"required"`
	To               string  `yaml:"to_id" json:"to_id" validate:"required"`
	ConstructionCost float64 `yaml:"construction_cost" json:"construction_cost" validate:"gte=0"`
}

// BusRoute is a bus line and its stops.
type BusRoute struct {
	RouteID         string   `yaml:"route_id" json:"route_id" validate:"required"`
	DailyPassengers int      `yaml:"daily_passengers" json:"daily_passengers" validate:"gte=0"`
	StopIDs         []string `yaml:"stop_ids" json:"stop_ids"`
}

// MetroLine is a metro line and its stations.
type MetroLine struct {
	LineID          string   `yaml:"line_id" json:"line_id" validate:"required"`
	DailyPassengers int      `yaml:"daily_passengers" json:"daily_passengers" validate:"gte=0"`
	StationIDs      []string `yaml:"station_ids" json:"station_ids"`
}

// TrafficRecord holds hourly volumes of one road per period. Nil means the
// period was not measured.
type TrafficRecord struct {
	RoadID    string   `yaml:"road_id" json:"road_id" validate:"required"`
	Morning   *float64 `yaml:"morning" json:"morning" validate:"omitempty,gte=0"`
	Afternoon *float64 `yaml:"afternoon" json:"afternoon" validate:"omitempty,gte=0"`
	Evening   *float64 `yaml:"evening" json:"evening" validate:"omitempty,gte=0"`
	Night     *float64 `yaml:"night" json:"night" validate:"omitempty,gte=0"`
}

// Snapshot is one city dataset.
type Snapshot struct {
	Locations      []Location      `yaml:"locations" json:"locations" validate:"dive"`
	Roads          []Road          `yaml:"roads" json:"roads" validate:"dive"`
	CandidateRoads []CandidateRoad `yaml:"candidate_roads" json:"candidate_roads" validate:"dive"`
	BusRoutes      []BusRoute      `yaml:"bus_routes" json:"bus_routes" validate:"dive"`
	MetroLines     []MetroLine     `yaml:"metro_lines" json:"metro_lines" validate:"dive"`
	Traffic        []TrafficRecord `yaml:"traffic" json:"traffic" validate:"dive"`
}
