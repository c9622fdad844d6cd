package util

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Values come from an optional YAML file,
// overridden by COMPANION_* environment variables, overridden by flags.
type Config struct {
	DSN          string  `yaml:"dsn"`          // sqlite file path or postgres:// URL
	SeedText     string  `yaml:"seed"`         // session seed for the simulated responder
	Language     string  `yaml:"language"`     // english|hindi (onboarding default)
	LocationMode string  `yaml:"locationMode"` // off|static|ip
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	LocationURL  string  `yaml:"locationUrl"` // override for the ip lookup endpoint
	Theme        string  `yaml:"theme"`       // ui palette name
}

// DefaultDataDir is where the sqlite file lives unless configured otherwise.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".companion"
	}
	return filepath.Join(home, ".companion")
}

// DefaultDSN returns the default local database path.
func DefaultDSN() string {
	return filepath.Join(DefaultDataDir(), "companion.db")
}

// DefaultConfigPath is the conventional config file location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load reads config from path. A missing file is not an error; env
// overrides apply either way.
func Load(path string) (Config, error) {
	cfg := Config{
		DSN:          DefaultDSN(),
		Language:     "english",
		LocationMode: "off",
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COMPANION_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("COMPANION_SEED"); v != "" {
		cfg.SeedText = v
	}
	if v := os.Getenv("COMPANION_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("COMPANION_LOCATION_MODE"); v != "" {
		cfg.LocationMode = v
	}
	if v := os.Getenv("COMPANION_LATITUDE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Latitude = f
		}
	}
	if v := os.Getenv("COMPANION_LONGITUDE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Longitude = f
		}
	}
	if v := os.Getenv("COMPANION_LOCATION_URL"); v != "" {
		cfg.LocationURL = v
	}
	if v := os.Getenv("COMPANION_THEME"); v != "" {
		cfg.Theme = v
	}
}
