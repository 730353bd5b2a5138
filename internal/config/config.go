// Package config defines the gridtop configuration and its viper-based
// loader. All display flags are consumed at widget construction; nothing
// rereads config after startup.
package config

import (
	"time"

	"github.com/gridtop/gridtop/internal/errors"
)

// Config holds every user-tunable setting.
type Config struct {
	// RefreshInterval is the delay between metric refresh ticks.
	RefreshInterval time.Duration `mapstructure:"refresh_interval" yaml:"refresh_interval"`
	// TimeWindow is the span of history shown in the charts. Used to derive
	// the history size when history_size is not set explicitly.
	TimeWindow time.Duration `mapstructure:"time_window" yaml:"time_window"`
	// HistorySize overrides the derived per-series sample count when > 0.
	HistorySize int `mapstructure:"history_size" yaml:"history_size,omitempty"`

	// DotMarker plots one dot per cell instead of braille sub-cell markers.
	DotMarker bool `mapstructure:"dot_marker" yaml:"dot_marker"`
	// ShowBorder draws a border around each widget.
	ShowBorder bool `mapstructure:"show_border" yaml:"show_border"`
	// ShowScrollIndex renders a "n of m" marker on table headers.
	ShowScrollIndex bool `mapstructure:"show_scroll_index" yaml:"show_scroll_index"`
	// TableGap leaves a blank row between table headers and data.
	TableGap bool `mapstructure:"table_gap" yaml:"table_gap"`
	// LeftLegend places the CPU legend left of the graph instead of right.
	LeftLegend bool `mapstructure:"left_legend" yaml:"left_legend"`

	// Cores is the core count of the synthetic metric source.
	Cores int `mapstructure:"cores" yaml:"cores"`
	// Seed seeds the synthetic metric source; 0 picks a time-based seed.
	Seed int64 `mapstructure:"seed" yaml:"seed,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		RefreshInterval: time.Second,
		TimeWindow:      60 * time.Second,
		ShowBorder:      true,
		ShowScrollIndex: true,
		Cores:           8,
	}
}

// EffectiveHistorySize returns the per-series sample count: the explicit
// override when set, otherwise the time window divided by the refresh
// interval, never fewer than two samples.
func (c *Config) EffectiveHistorySize() int {
	if c.HistorySize > 0 {
		return c.HistorySize
	}
	if c.RefreshInterval <= 0 {
		return 2
	}
	n := int(c.TimeWindow / c.RefreshInterval)
	if n < 2 {
		n = 2
	}
	return n
}

// Validate checks the configuration for values the dashboard cannot run
// with.
func (c *Config) Validate() error {
	if c.RefreshInterval < 100*time.Millisecond {
		return errors.New(errors.ErrConfig,
			"Refresh interval too short",
			"Use a refresh_interval of at least 100ms")
	}
	if c.TimeWindow < c.RefreshInterval {
		return errors.New(errors.ErrConfig,
			"Time window shorter than the refresh interval",
			"Increase time_window or decrease refresh_interval")
	}
	if c.HistorySize < 0 {
		return errors.New(errors.ErrConfig,
			"Negative history size",
			"Use a positive history_size, or omit it to derive from time_window")
	}
	if c.Cores < 1 {
		return errors.New(errors.ErrConfig,
			"Core count must be at least 1",
			"Set cores to the number of CPU series to simulate")
	}
	return nil
}
