package config

import (
	"fmt"
	"os"
	"path/filepath"

	"river-stream/pkg/core"
)

const (
	AppDirName     = "river-stream"
	ConfigFileName = "config.toml"
)

// DefaultConfigPath returns $XDG_CONFIG_HOME/river-stream/config.toml.
func DefaultConfigPath() (string, error) {
	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(homeConfigDir, AppDirName, ConfigFileName), nil
}

// FindConfig locates and loads the configuration.
//
// An explicitly provided path must load. Otherwise the default path is used:
// a missing file is created with defaults, a broken one is reported and the
// defaults are used in its place.
func FindConfig(providedPath string, log core.Logger) (*Config, error) {
	log.Info("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		cfg, err := LoadFromFile(providedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return cfg, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return initializeConfig(defaultPath, log)
}

// initializeConfig creates or loads the config at path.
func initializeConfig(path string, log core.Logger) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		log.Info("Writing default configuration", "path", path)
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		log.Error("Failed to load configuration, using defaults", err, "path", path)
		cfg = DefaultConfig()
		// keep watching the broken file so a fix is picked up
		cfg.path = path
	}
	return cfg, nil
}
