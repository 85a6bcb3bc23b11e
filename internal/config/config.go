// Package config loads rng-rename defaults from a YAML file, an optional
// defaults.env file and RNG_RENAME_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rngrename/internal/charset"
	"rngrename/internal/errmode"
	"rngrename/internal/finalise"
	"rngrename/internal/namegen"
	"rngrename/internal/rename"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "RNG_RENAME_"
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = EnvPrefix + "CONFIG"

	dirName     = "rng-rename"
	fileName    = "config.yaml"
	envFileName = "defaults.env"
)

// Config holds the defaults for every rename flag. Flags given on the
// command line win over these.
type Config struct {
	Length        int    `yaml:"length" env:"LENGTH"`
	CharSet       string `yaml:"char_set" env:"CHAR_SET"`
	Case          string `yaml:"case" env:"CASE"`
	CustomChars   string `yaml:"custom_chars" env:"CUSTOM_CHARS"`
	ExtMode       string `yaml:"ext_mode" env:"EXT_MODE"`
	StaticExt     string `yaml:"static_ext" env:"STATIC_EXT"`
	Prefix        string `yaml:"prefix" env:"PREFIX"`
	Suffix        string `yaml:"suffix" env:"SUFFIX"`
	Confirm       string `yaml:"confirm" env:"CONFIRM"`
	ConfirmBatch  int    `yaml:"confirm_batch" env:"CONFIRM_BATCH"`
	ErrorHandling string `yaml:"error_handling" env:"ERROR_HANDLING"`
	Journal       string `yaml:"journal" env:"JOURNAL"`
	Color         string `yaml:"color" env:"COLOR"`

	Engine EngineConfig `yaml:"engine" envPrefix:"ENGINE_"`
}

// EngineConfig tunes name generation.
type EngineConfig struct {
	RatioThreshold  float64 `yaml:"ratio_threshold" env:"RATIO_THRESHOLD"`
	MaxFiles        int     `yaml:"max_files" env:"MAX_FILES"`
	MaxPermutations uint64  `yaml:"max_permutations" env:"MAX_PERMUTATIONS"`
}

// Limits converts the ceilings for the generator.
func (e EngineConfig) Limits() namegen.Limits {
	return namegen.Limits{MaxFiles: e.MaxFiles, MaxPermutations: e.MaxPermutations}
}

// Default returns the built-in configuration.
func Default() *Config {
	limits := namegen.DefaultLimits()
	return &Config{
		Length:        8,
		CharSet:       string(charset.Base16),
		ExtMode:       string(finalise.KeepLast),
		Confirm:       string(rename.Batch),
		ConfirmBatch:  rename.DefaultBatchSize,
		ErrorHandling: string(errmode.Warn),
		Color:         "auto",
		Engine: EngineConfig{
			RatioThreshold:  namegen.DefaultRatioThreshold,
			MaxFiles:        limits.MaxFiles,
			MaxPermutations: limits.MaxPermutations,
		},
	}
}

// DefaultPath returns $RNG_RENAME_CONFIG, or config.yaml under the user's
// config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the config from DefaultPath.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
// If the file does not exist, the defaults are used. Environment overrides
// and a defaults.env next to the file apply either way.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	environ, err := environment(filepath.Join(filepath.Dir(path), envFileName))
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// environment merges the process environment over the values in envFile.
// A missing envFile is not an error.
func environment(envFile string) (map[string]string, error) {
	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

func (c *Config) validate() error {
	if c.Length < 0 {
		return fmt.Errorf("length: must not be negative, got %d", c.Length)
	}
	if c.ConfirmBatch < 0 {
		return fmt.Errorf("confirm_batch: must not be negative, got %d", c.ConfirmBatch)
	}

	var (
		sel  charset.Selection
		cs   charset.Casing
		ext  finalise.ExtMode
		conf rename.ConfirmMode
		mode errmode.Mode
	)
	checks := []struct {
		key   string
		value string
		set   func(string) error
	}{
		{"char_set", c.CharSet, sel.Set},
		{"case", c.Case, cs.Set},
		{"ext_mode", c.ExtMode, ext.Set},
		{"confirm", c.Confirm, conf.Set},
		{"error_handling", c.ErrorHandling, mode.Set},
	}
	for _, chk := range checks {
		if chk.value == "" {
			continue
		}
		if err := chk.set(chk.value); err != nil {
			return fmt.Errorf("%s: %w", chk.key, err)
		}
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color: invalid mode %q (want auto, always or never)", c.Color)
	}

	e := c.Engine
	if e.RatioThreshold <= 0 || e.RatioThreshold > 1 {
		return fmt.Errorf("engine.ratio_threshold: must be in (0, 1], got %v", e.RatioThreshold)
	}
	if e.MaxFiles <= 0 {
		return fmt.Errorf("engine.max_files: must be positive, got %d", e.MaxFiles)
	}
	if e.MaxPermutations == 0 || e.MaxPermutations > 1<<32 {
		return fmt.Errorf("engine.max_permutations: must be in [1, %d], got %d", uint64(1)<<32, e.MaxPermutations)
	}
	return nil
}
