// Command cityplan runs cityflow planning operations over a city snapshot
// and prints the result as JSON on stdout. Logs go to stderr.
//
//	cityplan -data city.yaml -from Maadi -to "Nasr City" route
//	cityplan -data city.yaml -from Maadi -to "Nasr City" -period evening traffic-route
//	cityplan -data city.yaml -from Giza -period morning -emergency-out em.json emergency
//	cityplan -data city.yaml -emergency-in em.json signals
//	cityplan -data city.yaml -buses 40 -trains 12 -budget 250 allocate
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/cityflow/config"
	"github.com/katalvlaran/cityflow/dataset"
	"github.com/katalvlaran/cityflow/logging"
	"github.com/katalvlaran/cityflow/metrics"
	"github.com/katalvlaran/cityflow/planner"
	"github.com/katalvlaran/cityflow/signals"
	"github.com/katalvlaran/cityflow/traffic"
	"go.uber.org/zap"
)

var errUsage = errors.New("cityplan: usage")

const actions = "route | traffic-route | sim-route | emergency | network | fleet | maintenance | allocate | signals"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != errUsage && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
}

type options struct {
	configPath   string
	dataPath     string
	from, to     string
	period       string
	buses        int
	trains       int
	budget       float64
	seed         int64
	maxLevel     int
	emergencyIn  string
	emergencyOut string
	metricsOut   string
	logLevel     string
}

func parse(args []string, stderr io.Writer) (options, string, error) {
	var o options
	fs := flag.NewFlagSet("cityplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.dataPath, "data", "", "YAML city snapshot (required)")
	fs.StringVar(&o.from, "from", "", "origin location ID or name")
	fs.StringVar(&o.to, "to", "", "destination location ID or name")
	fs.StringVar(&o.period, "period", "morning", "time period: morning, afternoon, evening, night")
	fs.IntVar(&o.buses, "buses", 0, "buses available for scheduling")
	fs.IntVar(&o.trains, "trains", 0, "trains available for scheduling")
	fs.Float64Var(&o.budget, "budget", 0, "maintenance budget in millions")
	fs.Int64Var(&o.seed, "seed", 1, "seed for simulated traffic")
	fs.IntVar(&o.maxLevel, "max-level", traffic.DefaultMaxLevel, "maximum simulated traffic level")
	fs.StringVar(&o.emergencyIn, "emergency-in", "", "JSON emergency records for signal timing")
	fs.StringVar(&o.emergencyOut, "emergency-out", "", "write emergency records to this JSON file")
	fs.StringVar(&o.metricsOut, "metrics-out", "", "write Prometheus text metrics to this file on exit")
	fs.StringVar(&o.logLevel, "log-level", "", "override the configured log level")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: cityplan [flags] <%s>\n", actions)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, "", err
	}
	if fs.NArg() != 1 || o.dataPath == "" {
		fs.Usage()
		return o, "", errUsage
	}

	return o, fs.Arg(0), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	o, action, err := parse(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	snap, err := dataset.LoadFile(o.dataPath)
	if err != nil {
		return err
	}

	opts := []planner.Option{planner.WithLogger(log)}
	var col *metrics.Collector
	if cfg.Metrics.Enabled {
		if col, err = metrics.NewCollector(nil, cfg.Metrics.Namespace); err != nil {
			return err
		}
		opts = append(opts, planner.WithMetrics(col))
	}
	if o.metricsOut != "" {
		defer func() {
			if werr := writeMetrics(col, o.metricsOut); werr != nil && err == nil {
				err = werr
			}
		}()
	}

	eng, err := planner.New(cfg, snap, opts...)
	if err != nil {
		return err
	}
	log.Debug("dispatch", zap.String("action", action), zap.String("run_id", eng.RunID()))

	out, err := dispatch(ctx, eng, action, o)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func dispatch(ctx context.Context, eng *planner.Engine, action string, o options) (any, error) {
	period, err := traffic.ParsePeriod(o.period)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(action) {
	case "route":
		return eng.Route(o.from, o.to)
	case "traffic-route":
		return eng.RouteWithTraffic(o.from, o.to, period)
	case "sim-route":
		return eng.RouteSimulated(o.from, o.to, o.seed, o.maxLevel)
	case "emergency":
		res, err := eng.EmergencyRoute(ctx, o.from, period)
		if err != nil {
			return nil, err
		}
		if o.emergencyOut != "" {
			if err := writeJSON(o.emergencyOut, res.Records); err != nil {
				return nil, err
			}
		}
		return res, nil
	case "network":
		return eng.DesignNetwork()
	case "fleet":
		return eng.ScheduleFleet(o.buses, o.trains)
	case "maintenance":
		return eng.PlanMaintenance(o.budget)
	case "allocate":
		return eng.AllocateAll(ctx, o.buses, o.trains, o.budget)
	case "signals":
		var records []signals.EmergencyRecord
		if o.emergencyIn != "" {
			if records, err = readRecords(o.emergencyIn); err != nil {
				return nil, err
			}
		}
		return eng.TimeSignals(records)
	default:
		return nil, fmt.Errorf("%w: unknown action %q (want %s)", errUsage, action, actions)
	}
}

func readRecords(path string) ([]signals.EmergencyRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cityplan: read emergency records: %w", err)
	}
	var records []signals.EmergencyRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("cityplan: decode emergency records: %w", err)
	}

	return records, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeMetrics(col *metrics.Collector, path string) error {
	b, err := col.Dump()
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}
