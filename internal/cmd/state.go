package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gravitrone/setlist/internal/config"
	"github.com/gravitrone/setlist/internal/seed"
)

// Options are the flags shared by every command.
type Options struct {
	SeedFile string
	LogFile  string
	LogLevel string
}

// LoadConfig reads the config, falling back to defaults when it is missing,
// and applies flag overrides.
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	if opts.SeedFile != "" {
		cfg.SeedFile = opts.SeedFile
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadState reads the configured seed, or the built-in sample when none is
// configured.
func LoadState(cfg *config.Config) (*seed.State, error) {
	if cfg.SeedFile == "" {
		return seed.Default(), nil
	}
	state, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return state, nil
}

// NewLogger builds the slog logger for cfg. The terminal belongs to the UI,
// so without a log file everything is discarded. The returned close func
// is never nil.
func NewLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	noop := func() error { return nil }
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// errNoChange marks a command whose action did not reach the setter.
var errNoChange = errors.New("nothing changed")
