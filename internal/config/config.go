package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/scrambler/internal/logging"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "scrambler.yaml"

// EnvPrefix prefixes environment overrides, e.g. SCRAMBLER_LOG_LEVEL.
const EnvPrefix = "SCRAMBLER_"

const (
	DuplicateInverseCorrected = "corrected"
	DuplicateInverseLegacy    = "legacy"

	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the settings shared by every scrambler command.
type Config struct {
	DuplicateInverse string `mapstructure:"duplicate_inverse" yaml:"duplicate_inverse"`
	Output           string `mapstructure:"output" yaml:"output"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level"`
	ListenAddr       string `mapstructure:"listen_addr" yaml:"listen_addr"`
	Banner           bool   `mapstructure:"banner" yaml:"banner"`
}

// Keys lists the recognised settings in file order.
var Keys = []string{"duplicate_inverse", "output", "log_level", "listen_addr", "banner"}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"duplicate_inverse": DuplicateInverseCorrected,
		"output":            OutputText,
		"log_level":         "info",
		"listen_addr":       ":8080",
		"banner":            true,
	}
}

// Load layers defaults, the YAML file at path, SCRAMBLER_* environment
// variables and overrides (typically flags the user set), in that order.
// A missing file is not an error unless required is true.
func Load(path string, required bool, overrides map[string]any) (Config, error) {
	raw := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fromFile map[string]any
			if err := yaml.Unmarshal(data, &fromFile); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			for k, v := range fromFile {
				raw[k] = v
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for _, key := range Keys {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = v
		}
	}
	for k, v := range overrides {
		raw[k] = v
	}

	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.DuplicateInverse {
	case DuplicateInverseCorrected, DuplicateInverseLegacy:
	default:
		return fmt.Errorf("invalid config: duplicate_inverse must be %q or %q, got %q",
			DuplicateInverseCorrected, DuplicateInverseLegacy, c.DuplicateInverse)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid config: output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LegacyDuplicateInverse reports whether decode should use the historical
// multi-copy duplicate inverse.
func (c Config) LegacyDuplicateInverse() bool {
	return c.DuplicateInverse == DuplicateInverseLegacy
}
