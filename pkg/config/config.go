package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"river-stream/internal/layout"
)

var (
	ErrInvalidRemainder = errors.New("invalid remainder policy")
	ErrInvalidTier      = errors.New("invalid tier")
)

// Config holds the application configuration.
type Config struct {
	Namespace     string       `toml:"namespace"`
	SocketPath    string       `toml:"socket_path,omitempty"`
	NotifyCommand string       `toml:"notify_command,omitempty"`
	Log           LogConfig    `toml:"log"`
	Layout        LayoutConfig `toml:"layout"`

	// Internal fields
	path string
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

type LayoutConfig struct {
	// Remainder is "drop" or "distribute".
	Remainder string       `toml:"remainder"`
	Tiers     []TierConfig `toml:"tiers"`
}

// TierConfig is one row of the main area table. Match is "at_least" or
// "exact".
type TierConfig struct {
	Name       string `toml:"name"`
	Match      string `toml:"match"`
	Width      uint32 `toml:"width"`
	Height     uint32 `toml:"height"`
	MainWidth  uint32 `toml:"main_width"`
	MainHeight uint32 `toml:"main_height"`
}

// Path returns the file the config was loaded from, empty for built-in
// defaults.
func (c *Config) Path() string {
	return c.path
}

// GetSocketPath returns the configured socket path or the per-user default.
func (c *Config) GetSocketPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	return DefaultSocketPath()
}

// DefaultSocketPath lives in XDG_RUNTIME_DIR when available.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "river-stream.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("river-stream-%d.sock", os.Getuid()))
}

// GetLogLevel parses the configured level, defaulting to info.
func (c *Config) GetLogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.Log.Level)
}

// Tiers converts the configured tier table. An empty table yields nil so the
// engine keeps its built-in tiers.
func (c *Config) Tiers() ([]layout.Tier, error) {
	if len(c.Layout.Tiers) == 0 {
		return nil, nil
	}
	tiers := make([]layout.Tier, 0, len(c.Layout.Tiers))
	for i, tc := range c.Layout.Tiers {
		match, err := layout.ParseTierMatch(tc.Match)
		if err != nil {
			return nil, fmt.Errorf("%w: tiers[%d]: %v", ErrInvalidTier, i, err)
		}
		if tc.MainWidth == 0 || tc.MainHeight == 0 {
			return nil, fmt.Errorf("%w: tiers[%d]: main size must be non-zero", ErrInvalidTier, i)
		}
		tiers = append(tiers, layout.Tier{
			Name:       tc.Name,
			Match:      match,
			Width:      tc.Width,
			Height:     tc.Height,
			MainWidth:  tc.MainWidth,
			MainHeight: tc.MainHeight,
		})
	}
	return tiers, nil
}

// Validate checks every field that has a restricted value set.
func (c *Config) Validate() error {
	if _, err := layout.ParseRemainderPolicy(c.Layout.Remainder); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRemainder, err)
	}
	if _, err := c.Tiers(); err != nil {
		return err
	}
	if _, err := c.GetLogLevel(); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// EngineOptions turns the layout section into engine options.
func (c *Config) EngineOptions() ([]layout.Option, error) {
	remainder, err := layout.ParseRemainderPolicy(c.Layout.Remainder)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRemainder, err)
	}
	tiers, err := c.Tiers()
	if err != nil {
		return nil, err
	}
	return []layout.Option{
		layout.WithNamespace(c.Namespace),
		layout.WithTiers(tiers),
		layout.WithRemainder(remainder),
	}, nil
}

// NewEngine builds a layout engine from the config.
func (c *Config) NewEngine() (*layout.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	return layout.NewEngine(opts...), nil
}
