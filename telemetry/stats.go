// Package telemetry aggregates per-generation statistics into windows and
// writes them out as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a run of generations.
type WindowStats struct {
	Window          int `csv:"window"`
	FirstGeneration int `csv:"first_generation"`
	LastGeneration  int `csv:"last_generation"`
	Samples         int `csv:"samples"`

	// Population distribution over the window
	PopulationMean   float64 `csv:"population_mean"`
	PopulationStd    float64 `csv:"population_std"`
	PopulationMin    float64 `csv:"population_min"`
	PopulationMax    float64 `csv:"population_max"`
	PopulationMedian float64 `csv:"population_median"`

	// Cell flips during the window
	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Navigation
	Rewinds    int `csv:"rewinds"`
	MaxHistory int `csv:"max_history"`
}

// PopulationStats calculates mean, standard deviation, min, max and median.
// Returns all zeros for an empty slice.
func PopulationStats(values []float64) (mean, std, min, max, median float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}
	min = floats.Min(values)
	max = floats.Max(values)

	// Quantile needs sorted input
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return mean, std, min, max, median
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window", s.Window),
		slog.Int("first_generation", s.FirstGeneration),
		slog.Int("last_generation", s.LastGeneration),
		slog.Int("samples", s.Samples),
		slog.Float64("population_mean", s.PopulationMean),
		slog.Float64("population_std", s.PopulationStd),
		slog.Float64("population_min", s.PopulationMin),
		slog.Float64("population_max", s.PopulationMax),
		slog.Float64("population_median", s.PopulationMedian),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("rewinds", s.Rewinds),
		slog.Int("max_history", s.MaxHistory),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
