package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.plazarc, $XDG_CONFIG_HOME/plaza/config.toml, ~/.config/plaza/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".plazarc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "plaza", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Stream
	if v := os.Getenv("PLAZA_STREAM_URL"); v != "" {
		cfg.Stream.Candidates = []string{v}
	}

	// Metadata
	if v := os.Getenv("PLAZA_METADATA_PRIMARY_URL"); v != "" {
		cfg.Metadata.PrimaryURL = v
	}
	if v := os.Getenv("PLAZA_METADATA_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Metadata.Interval = i
		}
	}

	// Player
	if v := os.Getenv("PLAZA_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Player.Volume = f
		}
	}
	if v := os.Getenv("PLAZA_DECODER_BINARY"); v != "" {
		cfg.Player.DecoderBinary = v
	}

	// TUI
	if v := os.Getenv("PLAZA_TUI_REFRESH_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.TUI.RefreshInterval = i
		}
	}

	// Log
	if v := os.Getenv("PLAZA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PLAZA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
