package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/cityflow/config"
	"github.com/katalvlaran/cityflow/core"
	"github.com/katalvlaran/cityflow/dataset"
	"github.com/katalvlaran/cityflow/metrics"
	"github.com/katalvlaran/cityflow/traffic"
	"go.uber.org/zap"
)

// ErrNilSnapshot indicates New was called without a snapshot.
var ErrNilSnapshot = errors.New("planner: snapshot is nil")

// ErrNoHospitals indicates the snapshot has no facility of the configured
// hospital type.
var ErrNoHospitals = errors.New("planner: no hospital facilities in snapshot")

// Engine runs planning operations over one snapshot. It is safe for
// concurrent use: all derived inputs are built in New and only read later.
type Engine struct {
	cfg     *config.Config
	snap    *dataset.Snapshot
	log     *zap.Logger
	metrics *metrics.Collector
	runID   string

	graph   *core.Graph
	coords  map[string]core.Point
	profile traffic.Profile
	display map[string]string // location ID → name
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics sets the metrics collector. Default none.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// New validates cfg (nil means config.Default()), builds the road graph,
// coordinates and traffic profile from snap, and returns the Engine.
func New(cfg *config.Config, snap *dataset.Snapshot, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	e := &Engine{
		cfg:   cfg,
		snap:  snap,
		log:   zap.NewNop(),
		runID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With(zap.String("run_id", e.runID))

	var err error
	if e.graph, err = snap.RoadGraph(); err != nil {
		return nil, err
	}
	if e.profile, err = snap.TrafficProfile(); err != nil {
		return nil, err
	}
	e.coords = snap.Coordinates()
	e.display = snap.Names()
	e.metrics.SetGraphSize(e.graph.NodeCount(), e.graph.EdgeCount())
	e.log.Info("engine ready",
		zap.Int("nodes", e.graph.NodeCount()),
		zap.Int("edges", e.graph.EdgeCount()),
		zap.Int("traffic_roads", len(e.profile)),
	)

	return e, nil
}

// RunID returns the UUID attached to every log line of this engine.
func (e *Engine) RunID() string { return e.runID }

// Graph returns the road graph built from the snapshot.
func (e *Engine) Graph() *core.Graph { return e.graph }

// observe logs and records the outcome of one operation.
func (e *Engine) observe(op string, started time.Time, err error, fields ...zap.Field) {
	e.metrics.Observe(op, started, err)
	fields = append(fields, zap.String("op", op), zap.Duration("took", time.Since(started)))
	if err != nil {
		e.log.Warn("operation failed", append(fields, zap.Error(err))...)
		return
	}
	e.log.Debug("operation done", fields...)
}

// resolve maps names or IDs to location IDs.
func (e *Engine) resolve(refs ...string) ([]string, error) {
	out := make([]string, len(refs))
	for i, r := range refs {
		id, err := e.snap.Resolve(r)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return out, nil
}

// names maps IDs to display names.
func (e *Engine) names(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id
		if name, ok := e.display[id]; ok {
			out[i] = name
		}
	}

	return out
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("planner: %s: %w", op, err)
}
