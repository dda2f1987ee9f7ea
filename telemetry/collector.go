package telemetry

import "github.com/pthm-cable/life/life"

// Collector accumulates per-generation samples and produces WindowStats
// every windowGenerations recorded generations.
type Collector struct {
	windowGenerations int
	window            int

	// Current window tracking
	firstGeneration int
	lastGeneration  int
	populations     []float64
	births          int
	deaths          int
	rewinds         int
	maxHistory      int
}

// NewCollector creates a collector flushing every windowGenerations samples.
func NewCollector(windowGenerations int) *Collector {
	if windowGenerations < 1 {
		windowGenerations = 1
	}
	return &Collector{
		windowGenerations: windowGenerations,
		populations:       make([]float64, 0, windowGenerations),
	}
}

// RecordGeneration records one advanced generation.
func (c *Collector) RecordGeneration(generation, population int, ch life.Change, historyDepth int) {
	if len(c.populations) == 0 {
		c.firstGeneration = generation
	}
	c.lastGeneration = generation
	c.populations = append(c.populations, float64(population))
	c.births += ch.Births
	c.deaths += ch.Deaths
	if historyDepth > c.maxHistory {
		c.maxHistory = historyDepth
	}
}

// RecordRewind records a step backwards.
func (c *Collector) RecordRewind() {
	c.rewinds++
}

// Pending returns the number of generations recorded in the current window.
func (c *Collector) Pending() int {
	return len(c.populations)
}

// ShouldFlush returns true once the window holds enough generations.
func (c *Collector) ShouldFlush() bool {
	return len(c.populations) >= c.windowGenerations
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush() WindowStats {
	mean, std, min, max, median := PopulationStats(c.populations)

	stats := WindowStats{
		Window:           c.window,
		FirstGeneration:  c.firstGeneration,
		LastGeneration:   c.lastGeneration,
		Samples:          len(c.populations),
		PopulationMean:   mean,
		PopulationStd:    std,
		PopulationMin:    min,
		PopulationMax:    max,
		PopulationMedian: median,
		Births:           c.births,
		Deaths:           c.deaths,
		Rewinds:          c.rewinds,
		MaxHistory:       c.maxHistory,
	}

	c.window++
	c.Discard()
	return stats
}

// Discard drops the current window without producing a row.
func (c *Collector) Discard() {
	c.populations = c.populations[:0]
	c.firstGeneration = 0
	c.lastGeneration = 0
	c.births = 0
	c.deaths = 0
	c.rewinds = 0
	c.maxHistory = 0
}

// WindowGenerations returns the number of generations per window.
func (c *Collector) WindowGenerations() int {
	return c.windowGenerations
}
