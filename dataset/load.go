package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadFile reads and validates the snapshot at path.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode reads a YAML (or JSON, which is valid YAML) snapshot from r and
// validates it.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks field constraints, unique location IDs, that every
// referenced location exists, and that traffic road IDs parse.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.TrimPrefix(fe.Namespace(), "Snapshot."), fe.Tag()))
			}

			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	known := make(map[string]bool, len(s.Locations))
	for _, l := range s.Locations {
		if known[l.ID] {
			return fmt.Errorf("%w: duplicate location id %q", ErrInvalid, l.ID)
		}
		known[l.ID] = true
	}
	ref := func(where, id string) error {
		if !known[id] {
			return fmt.Errorf("%w: %s references %q", ErrUnknownEntity, where, id)
		}

		return nil
	}
	for i, r := range s.Roads {
		if err := firstErr(ref(fmt.Sprintf("roads[%d]", i), r.From), ref(fmt.Sprintf("roads[%d]", i), r.To)); err != nil {
			return err
		}
	}
	for i, c := range s.CandidateRoads {
		where := fmt.Sprintf("candidate_roads[%d]", i)
		if err := firstErr(ref(where, c.From), ref(where, c.To)); err != nil {
			return err
		}
	}
	for _, b := range s.BusRoutes {
		for _, id := range b.StopIDs {
			if err := ref("bus route "+b.RouteID, id); err != nil {
				return err
			}
		}
	}
	for _, m := range s.MetroLines {
		for _, id := range m.StationIDs {
			if err := ref("metro line "+m.LineID, id); err != nil {
				return err
			}
		}
	}
	for _, t := range s.Traffic {
		from, to, err := SplitRoadID(t.RoadID)
		if err != nil {
			return err
		}
		if err := firstErr(ref("traffic "+t.RoadID, from), ref("traffic "+t.RoadID, to)); err != nil {
			return err
		}
	}

	return nil
}

// SplitRoadID parses "FROM-TO". Location IDs may not contain '-'.
func SplitRoadID(id string) (from, to string, err error) {
	from, to, ok := strings.Cut(id, "-")
	if !ok || from == "" || to == "" || strings.Contains(to, "-") {
		return "", "", fmt.Errorf("%w: %q", ErrBadRoadID, id)
	}

	return from, to, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
