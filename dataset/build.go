package dataset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cityflow/allocation"
	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/netdesign"
	"github.com/katalvlaran/cityflow/signals"
	"github.com/katalvlaran/cityflow/traffic"
)

// RoadGraph builds the undirected road graph: every location is a node and
// every road becomes two records weighted by distance and tagged with its
// traffic level.
func (s *Snapshot) RoadGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, l := range s.Locations {
		if err := g.AddNode(l.ID); err != nil {
			return nil, fmt.Errorf("dataset: location %q: %w", l.ID, err)
		}
	}
	for _, r := range s.Roads {
		if err := g.AddRoad(r.From, r.To, r.Distance, core.WithTraffic(r.TrafficLevel)); err != nil {
			return nil, fmt.Errorf("dataset: road %s-%s: %w", r.From, r.To, err)
		}
	}

	return g, nil
}

// Coordinates returns location ID → (x, y).
func (s *Snapshot) Coordinates() map[string]core.Point {
	out := make(map[string]core.Point, len(s.Locations))
	for _, l := range s.Locations {
		out[l.ID] = core.Point{X: l.X, Y: l.Y}
	}

	return out
}

// volumes returns the measured periods of t.
func (t TrafficRecord) volumes() map[traffic.Period]float64 {
	out := make(map[traffic.Period]float64, 4)
	for p, v := range map[traffic.Period]*float64{
		traffic.Morning:   t.Morning,
		traffic.Afternoon: t.Afternoon,
		traffic.Evening:   t.Evening,
		traffic.Night:     t.Night,
	} {
		if v != nil {
			out[p] = *v
		}
	}

	return out
}

// TrafficProfile returns the undirected per-period volumes. When both
// "A-B" and "B-A" are recorded, the later record wins for each period.
func (s *Snapshot) TrafficProfile() (traffic.Profile, error) {
	pr := make(traffic.Profile, len(s.Traffic))
	for _, t := range s.Traffic {
		from, to, err := SplitRoadID(t.RoadID)
		if err != nil {
			return nil, err
		}
		for p, v := range t.volumes() {
			if err := pr.Set(from, to, p, v); err != nil {
				return nil, err
			}
		}
	}

	return pr, nil
}

// Flows returns one directed flow per traffic record.
func (s *Snapshot) Flows() ([]signals.Flow, error) {
	out := make([]signals.Flow, 0, len(s.Traffic))
	for _, t := range s.Traffic {
		from, to, err := SplitRoadID(t.RoadID)
		if err != nil {
			return nil, err
		}
		out = append(out, signals.Flow{From: from, To: to, Volumes: t.volumes()})
	}

	return out, nil
}

// Candidates converts candidate roads for network design. A road connects a
// facility if either end is a facility; it is high-population if either end
// has at least threshold residents.
func (s *Snapshot) Candidates(threshold int) []netdesign.CandidateRoad {
	byID := s.index()
	out := make([]netdesign.CandidateRoad, 0, len(s.CandidateRoads))
	for _, c := range s.CandidateRoads {
		a, b := byID[c.From], byID[c.To]
		out = append(out, netdesign.CandidateRoad{
			From:             c.From,
			To:               c.To,
			BaseCost:         c.ConstructionCost,
			ConnectsFacility: a.Kind == KindFacility || b.Kind == KindFacility,
			HighPopulation:   a.Population >= threshold || b.Population >= threshold,
		})
	}

	return out
}

// ExistingRoads returns the existing roads as completion candidates.
func (s *Snapshot) ExistingRoads() []netdesign.ExistingRoad {
	out := make([]netdesign.ExistingRoad, len(s.Roads))
	for i, r := range s.Roads {
		out[i] = netdesign.ExistingRoad{From: r.From, To: r.To}
	}

	return out
}

// MaintenanceRoads returns the existing roads as maintenance candidates.
func (s *Snapshot) MaintenanceRoads() []allocation.Road {
	out := make([]allocation.Road, len(s.Roads))
	for i, r := range s.Roads {
		out[i] = allocation.Road{
			From: r.From, To: r.To,
			Distance: r.Distance, TrafficLevel: r.TrafficLevel, Condition: r.Condition,
		}
	}

	return out
}

// Buses returns the bus lines for fleet scheduling.
func (s *Snapshot) Buses() []allocation.BusRoute {
	out := make([]allocation.BusRoute, len(s.BusRoutes))
	for i, b := range s.BusRoutes {
		out[i] = allocation.BusRoute{ID: b.RouteID, DailyPassengers: b.DailyPassengers, Stops: b.StopIDs}
	}

	return out
}

// Metro returns the metro lines for train scheduling.
func (s *Snapshot) Metro() []allocation.MetroLine {
	out := make([]allocation.MetroLine, len(s.MetroLines))
	for i, m := range s.MetroLines {
		out[i] = allocation.MetroLine{ID: m.LineID, DailyPassengers: m.DailyPassengers, Stations: m.StationIDs}
	}

	return out
}

// Facilities returns IDs of facilities whose type matches typ
// case-insensitively, in input order.
func (s *Snapshot) Facilities(typ string) []string {
	var out []string
	for _, l := range s.Locations {
		if l.Kind == KindFacility && strings.EqualFold(l.Type, typ) {
			out = append(out, l.ID)
		}
	}

	return out
}

// Resolve maps a location ID or a case-insensitive name to its ID.
// IDs take precedence over names.
func (s *Snapshot) Resolve(nameOrID string) (string, error) {
	key := strings.TrimSpace(nameOrID)
	for _, l := range s.Locations {
		if l.ID == key {
			return l.ID, nil
		}
	}
	for _, l := range s.Locations {
		if l.Name != "" && strings.EqualFold(l.Name, key) {
			return l.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, nameOrID)
}

// Name returns the display name of id, or id itself if unnamed or unknown.
// For repeated lookups build the table once with Names.
func (s *Snapshot) Name(id string) string {
	for _, l := range s.Locations {
		if l.ID == id && l.Name != "" {
			return l.Name
		}
	}

	return id
}

// Names returns location ID → display name; unnamed locations map to their ID.
func (s *Snapshot) Names() map[string]string {
	out := make(map[string]string, len(s.Locations))
	for _, l := range s.Locations {
		out[l.ID] = l.ID
		if l.Name != "" {
			out[l.ID] = l.Name
		}
	}

	return out
}

func (s *Snapshot) index() map[string]Location {
	out := make(map[string]Location, len(s.Locations))
	for _, l := range s.Locations {
		out[l.ID] = l
	}

	return out
}
