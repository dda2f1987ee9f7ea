package main

import (
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/integrii/flaggy"

	"github.com/pthm-cable/life/config"
	"github.com/pthm-cable/life/game"
	"github.com/pthm-cable/life/renderer"
	"github.com/pthm-cable/life/ui"
)

type cliOptions struct {
	configPath  string
	headless    bool
	generations int
	seed        int64
	logStats    bool
	outputDir   string
	printGrid   bool
	noColor     bool
}

func main() {
	var cli cliOptions

	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life with a step-back history")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&cli.configPath, "c", "config", "Path to config.yaml (empty = use defaults)")
	flaggy.Bool(&cli.headless, "", "headless", "Run without graphics on a random seed")
	flaggy.Int(&cli.generations, "g", "generations", "Generations to run headless (0 = use config)")
	flaggy.Int64(&cli.seed, "s", "seed", "RNG seed (0 = time-based)")
	flaggy.Bool(&cli.logStats, "", "log-stats", "Output stats windows via slog")
	flaggy.String(&cli.outputDir, "o", "output-dir", "Output directory for CSV logs and config snapshot")
	flaggy.Bool(&cli.printGrid, "p", "print", "Print the final grid after a headless run")
	flaggy.Bool(&cli.noColor, "", "no-color", "Disable colored terminal output")
	flaggy.Parse()

	// Initialize config before anything else
	if err := config.Init(cli.configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := cli.seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.OptionsFromConfig(cfg)
	opts.Seed = rngSeed
	opts.OutputDir = cli.outputDir
	if cli.logStats {
		opts.LogStats = true
	}

	var err error
	if cli.headless {
		err = runHeadless(cfg, opts, cli)
	} else {
		err = runWindow(cfg, opts)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runHeadless(cfg *config.Config, opts game.Options, cli cliOptions) error {
	generations := cfg.Headless.Generations
	if cli.generations > 0 {
		generations = cli.generations
	}

	g, err := game.NewGameWithOptions(game.NewHeadless(), opts)
	if err != nil {
		return err
	}
	defer unload(g)

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"generations", generations,
		"window_generations", opts.WindowGenerations,
	)

	if err := game.RunHeadless(g, generations, os.Stderr); err != nil {
		return err
	}

	colors := !cli.noColor
	if err := game.PrintSummary(os.Stderr, g.Session(), colors); err != nil {
		return err
	}
	if cli.printGrid {
		return game.PrintGrid(os.Stderr, g.Session().Cells(), colors)
	}
	return nil
}

func runWindow(cfg *config.Config, opts game.Options) error {
	rl.InitWindow(ui.ScreenWidth, ui.ScreenHeight, cfg.Screen.Title)
	defer rl.CloseWindow()

	// ESC returns to the menu instead of closing the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(renderer.NewWindow(), opts)
	if err != nil {
		return err
	}
	defer unload(g)

	for !rl.WindowShouldClose() && !g.Done() {
		g.Update()
		g.Draw()
	}
	return nil
}

// unloader is satisfied by *game.Game.
type unloader interface {
	Unload() error
}

// unload flushes telemetry, reporting failures that a bare defer would drop.
func unload(g unloader) {
	if err := g.Unload(); err != nil {
		slog.Warn("failed to close telemetry output", "error", err)
	}
}
