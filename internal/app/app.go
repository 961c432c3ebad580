package app

import (
	"fmt"
	"log/slog"
	"os"

	"radixconv/internal/domain"
	"radixconv/internal/logging"
	conversionsvc "radixconv/internal/services/conversion"
	"radixconv/internal/store"
)

// App bundles the services and stores the commands use.
type App struct {
	Prefs     domain.PreferencesStore
	Converter domain.ConversionService
	Log       *slog.Logger
	Defaults  domain.Preferences
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	prefs := store.NewPrefsFileStore(cfg.Home)
	defaults, err := prefs.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	levelName := cfg.LogLevel
	if levelName == "" {
		levelName = defaults.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.New(out, level)
	logger.Debug("app.initialized", "home", cfg.Home, "level", level.String())

	return &App{
		Prefs:     prefs,
		Converter: conversionsvc.New(logger),
		Log:       logger,
		Defaults:  defaults,
	}, nil
}
