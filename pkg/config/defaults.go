package config

import "river-stream/internal/layout"

// DefaultConfig creates a default configuration.
func DefaultConfig() *Config {
	tiers := layout.DefaultTiers()
	tierConfigs := make([]TierConfig, 0, len(tiers))
	for _, t := range tiers {
		tierConfigs = append(tierConfigs, TierConfig{
			Name:       t.Name,
			Match:      t.Match.String(),
			Width:      t.Width,
			Height:     t.Height,
			MainWidth:  t.MainWidth,
			MainHeight: t.MainHeight,
		})
	}

	return &Config{
		Namespace: layout.DefaultNamespace,
		Log: LogConfig{
			Level: "info",
		},
		Layout: LayoutConfig{
			Remainder: layout.RemainderDrop.String(),
			Tiers:     tierConfigs,
		},
	}
}
