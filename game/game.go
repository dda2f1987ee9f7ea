// Package game drives a session from a frontend: it polls commands, ticks
// the session, hands frames to the frontend to draw and feeds telemetry.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/life/session"
	"github.com/pthm-cable/life/telemetry"
)

// Frontend is the input and drawing capability the game runs against.
// Commands is called once per tick before the session advances; Render is
// called once per frame with the state after the tick.
type Frontend interface {
	Commands(view session.View) []session.Command
	Render(view session.View)
}

// Game holds a session and everything observing it.
type Game struct {
	session  *session.Session
	frontend Frontend

	// Telemetry
	collector        *telemetry.Collector
	bookmarks        *telemetry.BookmarkDetector
	perf             *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	bookmarkCallback func(telemetry.Bookmark)
	logStats         bool

	tick int64
	quit bool
}

// NewGameWithOptions creates a game driven by frontend.
func NewGameWithOptions(frontend Frontend, opts Options) (*Game, error) {
	opts = opts.withDefaults()

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	if opts.Config != nil {
		if err := om.WriteConfig(opts.Config); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
	}

	sess := session.New(session.Options{
		SeedDensity: opts.SeedDensity,
		Rand:        rand.New(rand.NewSource(opts.Seed)),
	})

	return &Game{
		session:          sess,
		frontend:         frontend,
		collector:        telemetry.NewCollector(opts.WindowGenerations),
		bookmarks:        telemetry.NewBookmarkDetector(opts.BookmarkHistory),
		perf:             telemetry.NewPerfCollector(opts.PerfWindowTicks),
		outputManager:    om,
		statsCallback:    opts.StatsCallback,
		bookmarkCallback: opts.BookmarkCallback,
		logStats:         opts.LogStats,
	}, nil
}

// Update polls the frontend and runs one session tick.
func (g *Game) Update() {
	g.perf.Begin(telemetry.PhaseInput)
	cmds := g.frontend.Commands(g.session)

	g.perf.Switch(telemetry.PhaseSession)
	out := g.session.Tick(cmds)
	g.tick++

	g.perf.Switch(telemetry.PhaseTelemetry)
	g.observe(out)

	g.perf.End()
	g.flushPerf()
}

// Draw hands the current state to the frontend.
func (g *Game) Draw() {
	g.perf.RecordFrame()
	g.frontend.Render(g.session)
}

// observe logs transitions and records telemetry for one tick's outcome.
func (g *Game) observe(out session.Outcome) {
	if out.Quit {
		slog.Info("quit requested", "tick", g.tick)
		g.quit = true
	}

	if out.Transitioned() {
		slog.Info("mode changed",
			"from", out.From.String(),
			"to", out.To.String(),
			"tick", g.tick,
		)
		if out.To == session.ModeSimulation {
			slog.Info("seeded", "population", g.session.Population())
		}
	}

	if out.Cleared {
		slog.Debug("grid cleared", "tick", g.tick)
	}
	if out.Rewound {
		g.collector.RecordRewind()
	}
	if out.Reset {
		g.closeWindow()
	}
	// A generation stepped before a same-tick clear belongs to the discarded grid
	if out.Steps > 0 && g.session.Generation() > 0 {
		g.collector.RecordGeneration(
			g.session.Generation(),
			g.session.Population(),
			out.Change,
			g.session.HistorySize(),
		)
	}

	g.flushTelemetry()
}

// Done reports whether the session asked to quit.
func (g *Game) Done() bool {
	return g.quit
}

// Tick returns the number of updates run so far.
func (g *Game) Tick() int64 {
	return g.tick
}

// Session returns a read-only view of the session.
func (g *Game) Session() session.View {
	return g.session
}

// Unload flushes any partial stats window and closes output files.
func (g *Game) Unload() error {
	if g.collector.Pending() > 0 {
		g.emitWindow(g.collector.Flush())
	}
	return g.outputManager.Close()
}
