package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates that the merged configuration failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel    = "CITYFLOW_LOG_LEVEL"
	EnvLogFormat   = "CITYFLOW_LOG_FORMAT"
	EnvParallelism = "CITYFLOW_PARALLELISM"
)

// Config is the complete engine configuration.
type Config struct {
	Network    Network    `yaml:"network"`
	Routing    Routing    `yaml:"routing"`
	Allocation Allocation `yaml:"allocation"`
	Signals    Signals    `yaml:"signals"`
	Logging    Logging    `yaml:"logging"`
	Metrics    Metrics    `yaml:"metrics"`
}

// Network configures network design.
type Network struct {
	// Prioritize enables facility/population cost discounts.
	Prioritize       bool    `yaml:"prioritize"`
	FacilityFactor   float64 `yaml:"facility_factor" validate:"gt=0,lte=1"`
	PopulationFactor float64 `yaml:"population_factor" validate:"gt=0,lte=1"`

	// PopulationThreshold marks a neighborhood as high-population.
	PopulationThreshold int `yaml:"population_threshold" validate:"gte=0"`

	// Budget caps new-road cost; 0 means unlimited.
	Budget         float64 `yaml:"budget" validate:"gte=0"`
	CompletionCost float64 `yaml:"completion_cost" validate:"gte=0"`
}

// Routing configures shortest-path and emergency routing.
type Routing struct {
	FallbackVolume float64 `yaml:"fallback_volume" validate:"gte=0"`
	Parallelism    int     `yaml:"parallelism" validate:"gte=1,lte=256"`

	// HospitalType is the facility type searched by emergency routing.
	HospitalType string `yaml:"hospital_type" validate:"required"`
}

// Allocation configures the knapsack adapters.
type Allocation struct {
	TrafficWeight float64 `yaml:"traffic_weight" validate:"gte=0"`
	MaxCells      int     `yaml:"max_cells" validate:"gte=0"`
}

// Signals configures signal timing.
type Signals struct {
	Policy string `yaml:"policy" validate:"oneof=greedy proportional"`
	Cycle  int    `yaml:"cycle" validate:"gte=1"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" validate:"oneof=console json"`
	Development bool   `yaml:"development"`
}

// Metrics configures Prometheus collection.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"omitempty,alphanum"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Network: Network{
			Prioritize:          true,
			FacilityFactor:      0.7,
			PopulationFactor:    0.8,
			PopulationThreshold: 500000,
			CompletionCost:      1,
		},
		Routing: Routing{
			FallbackVolume: 1000,
			Parallelism:    1,
			HospitalType:   "Medical",
		},
		Allocation: Allocation{
			TrafficWeight: 1.2,
			MaxCells:      1 << 26,
		},
		Signals: Signals{Policy: "greedy", Cycle: 60},
		Logging: Logging{Level: "info", Format: "console"},
		Metrics: Metrics{Enabled: true, Namespace: "cityflow"},
	}
}

// Load returns Default() overlaid with the YAML file at path (if non-empty)
// and with environment variables, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables using lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvParallelism); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvParallelism, v)
		}
		c.Routing.Parallelism = n
	}

	return nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
