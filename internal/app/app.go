// Package app builds the services shared by the CLI and the dashboard from a
// configuration.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"indicomp/internal/catalog"
	"indicomp/internal/charts"
	"indicomp/internal/config"
	"indicomp/internal/logger"
	"indicomp/internal/narrator"
	"indicomp/internal/session"
	"indicomp/internal/worldbank"
)

// App holds the wired services.
type App struct {
	Config   *config.Config
	Logger   *logger.Logger
	Remote   *worldbank.Client
	Catalog  *catalog.FallbackCatalog
	Session  *session.Service
	Narrator *narrator.Narrator
	Palette  charts.Palette

	closers []io.Closer
}

// Options tune Bootstrap.
type Options struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	// LogWriter overrides where logs go. When nil, logs go to the configured
	// file or stderr.
	LogWriter io.Writer
	// Quiet discards logs unless a log file is configured. The dashboard
	// uses it so log lines never land on the screen it draws.
	Quiet bool
}

// Bootstrap loads configuration, resolves the narrator credential and wires
// every service.
func Bootstrap(opts Options) (*App, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var closers []io.Closer

	out := opts.LogWriter
	if out == nil {
		out = os.Stderr
		if opts.Quiet {
			out = io.Discard
		}

		if cfg.Logging.File != "" {
			f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}

			out = f
			closers = append(closers, f)
		}
	}

	log := logger.NewLoggerTo(out, cfg.Logging.Level)

	apiKey, err := config.LoadCredential(cfg.Narrator.APIKeyEnv, opts.EnvFile)
	if err != nil {
		log.Warn("Credential lookup failed, insights disabled", "error", err)
	}

	a := New(cfg, log, apiKey)
	a.closers = closers

	return a, nil
}

// New wires the services from an already loaded configuration.
func New(cfg *config.Config, log *logger.Logger, apiKey string) *App {
	if log == nil {
		log = logger.Discard()
	}

	remote := worldbank.NewClientFromConfig(cfg.Remote, log)
	entities := catalog.NewFallbackCatalog(remote, catalog.NewStaticCatalog(), log)

	return &App{
		Config:  cfg,
		Logger:  log,
		Remote:  remote,
		Catalog: entities,
		Session: session.NewService(session.Options{
			Source: remote,
			Lister: entities,
			Logger: log,
		}),
		Narrator: narrator.NewFromConfig(cfg.Narrator, apiKey, log),
		Palette:  charts.PaletteByName(cfg.Charts.Palette),
	}
}

// ChartSpec applies configured chart settings to a spec.
func (a *App) ChartSpec(kind charts.Kind, indicators []string) charts.ChartSpec {
	return charts.ChartSpec{
		Kind:       kind,
		Indicators: indicators,
		RadarLimit: a.Config.Charts.RadarMaxMetrics,
	}
}

// Close releases files opened by Bootstrap.
func (a *App) Close() error {
	var first error

	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	a.closers = nil

	return first
}
