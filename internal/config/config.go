package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// IDStrategy selects how the store mints phase and task ids.
type IDStrategy string

const (
	IDSequence IDStrategy = "sequence"
	IDUUID     IDStrategy = "uuid"
)

// Config holds start-up settings for a roadmap session.
type Config struct {
	// SeedPath is a JSON or YAML document loaded into the first snapshot.
	SeedPath    string     `yaml:"seed"`
	IDStrategy  IDStrategy `yaml:"id_strategy"`
	LogUseCases bool       `yaml:"log_use_cases"`
	// StartEmpty skips the demo roadmap when no seed is configured.
	StartEmpty bool `yaml:"start_empty"`
}

// DefaultConfig returns a Config with sequence ids, no seed and use-case
// logging off.
func DefaultConfig() Config {
	return Config{
		IDStrategy: IDSequence,
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// named by ROADMAP_CONFIG (if any), then environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv("ROADMAP_CONFIG"); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file over the defaults without consulting
// the environment.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := mergeFile(&cfg, path); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ROADMAP_SEED"); v != "" {
		cfg.SeedPath = v
	}
	if v := os.Getenv("ROADMAP_ID_STRATEGY"); v != "" {
		cfg.IDStrategy = IDStrategy(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv("ROADMAP_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("ROADMAP_EMPTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StartEmpty = b
		}
	}
}

// Validate rejects settings the session cannot start with.
func (c Config) Validate() error {
	switch c.IDStrategy {
	case IDSequence, IDUUID:
		return nil
	case "":
		return errors.New("id_strategy is required")
	default:
		return fmt.Errorf("unknown id_strategy %q (want %s or %s)", c.IDStrategy, IDSequence, IDUUID)
	}
}
