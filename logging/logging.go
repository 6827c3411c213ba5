// Package logging builds the zap logger shared by the planner and the CLI.
// Engine packages never log.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadFormat indicates an output format other than "console" or "json".
var ErrBadFormat = errors.New("logging: format must be console or json")

// Config selects level, encoding and development mode.
type Config struct {
	Level       string
	Format      string
	Development bool
}

// New builds a logger writing to stderr. "json" uses the production
// encoder; "console" uses the human-readable development encoder.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Development = cfg.Development
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}
