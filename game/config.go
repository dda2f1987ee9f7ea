package game

import (
	"github.com/pthm-cable/life/config"
	"github.com/pthm-cable/life/session"
	"github.com/pthm-cable/life/telemetry"
)

// Options holds configuration for game initialization.
type Options struct {
	Seed              int64
	SeedDensity       float64 // zero selects session.DefaultSeedDensity
	WindowGenerations int
	PerfWindowTicks   int
	BookmarkHistory   int
	LogStats          bool
	OutputDir         string

	// Config is written to the output directory when both are set.
	Config *config.Config

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)

	// BookmarkCallback receives every bookmark the detector raises.
	BookmarkCallback func(telemetry.Bookmark)
}

// OptionsFromConfig fills the tunable options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SeedDensity:       cfg.Seed.Density,
		WindowGenerations: cfg.Telemetry.WindowGenerations,
		PerfWindowTicks:   cfg.Telemetry.PerfWindowTicks,
		BookmarkHistory:   cfg.Telemetry.BookmarkHistory,
		LogStats:          cfg.Telemetry.LogStats,
		Config:            cfg,
	}
}

func (o Options) withDefaults() Options {
	if o.SeedDensity <= 0 {
		o.SeedDensity = session.DefaultSeedDensity
	}
	if o.WindowGenerations <= 0 {
		o.WindowGenerations = 50
	}
	if o.PerfWindowTicks <= 0 {
		o.PerfWindowTicks = 600
	}
	if o.BookmarkHistory <= 0 {
		o.BookmarkHistory = 10
	}
	return o
}
