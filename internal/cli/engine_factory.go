package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aretw0/scrambler"
	"github.com/aretw0/scrambler/internal/config"
	"github.com/aretw0/scrambler/pkg/domain"
	"github.com/aretw0/scrambler/pkg/observability"
)

// Settings carries the persistent flags shared by every command.
type Settings struct {
	ConfigPath string
	// ConfigRequired is set when the user named the config file explicitly;
	// a missing file is then an error instead of falling back to defaults.
	ConfigRequired bool
	Debug          bool
	// Overrides holds flag values the user set explicitly, keyed like the
	// YAML file.
	Overrides map[string]any
}

// LoadConfig resolves the configuration for s. An empty ConfigPath skips
// the file and uses defaults, environment and overrides only.
func LoadConfig(s Settings) (config.Config, error) {
	cfg, err := config.Load(s.ConfigPath, s.ConfigRequired, s.Overrides)
	if err != nil {
		return config.Config{}, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// createEngine initializes a scrambler engine with standard CLI conventions.
// Extra hook sets (metrics) run after the debug hooks.
func createEngine(cfg config.Config, debug bool, logger *slog.Logger, extra ...domain.LifecycleHooks) *scrambler.Engine {
	engineOpts := []scrambler.Option{
		scrambler.WithLogger(logger),
		scrambler.WithLegacyDuplicateInverse(cfg.LegacyDuplicateInverse()),
	}

	hooks := extra
	if debug {
		hooks = append([]domain.LifecycleHooks{createDebugHooks(logger)}, hooks...)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, scrambler.WithLifecycleHooks(observability.Chain(hooks...)))
	}

	return scrambler.New(engineOpts...)
}

// openInput opens a line file, naming the role in the error.
func openInput(role, path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("missing %s file", role)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s file %q does not exist", role, path)
		}
		return nil, fmt.Errorf("failed to open %s file: %w", role, err)
	}
	return f, nil
}
