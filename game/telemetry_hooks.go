package game

import (
	"log/slog"

	"github.com/pthm-cable/life/telemetry"
)

// flushTelemetry emits the stats window once it holds enough generations.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}
	g.emitWindow(g.collector.Flush())
}

// closeWindow ends the current window early when the grid is reset, so no
// row spans two runs.
func (g *Game) closeWindow() {
	if g.collector.Pending() > 0 {
		g.emitWindow(g.collector.Flush())
	} else {
		g.collector.Discard()
	}
	g.bookmarks.Reset()
}

func (g *Game) emitWindow(stats telemetry.WindowStats) {
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
	}

	if err := g.outputManager.WriteWindow(stats); err != nil {
		slog.Warn("failed to write telemetry", "error", err)
	}

	for _, b := range g.bookmarks.Check(stats) {
		b.LogBookmark()
		if g.bookmarkCallback != nil {
			g.bookmarkCallback(b)
		}
	}
}

// flushPerf emits update timings once per perf window.
func (g *Game) flushPerf() {
	if g.tick%int64(g.perf.WindowSize()) != 0 {
		return
	}

	stats := g.perf.Stats()
	if g.logStats {
		stats.LogStats()
	}
	if err := g.outputManager.WritePerf(stats.Row(g.tick)); err != nil {
		slog.Warn("failed to write perf", "error", err)
	}
}
