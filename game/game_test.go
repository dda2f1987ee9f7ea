package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/life/config"
	"github.com/pthm-cable/life/session"
	"github.com/pthm-cable/life/telemetry"
)

// recorder wraps a scripted frontend and remembers what it was asked to draw.
type recorder struct {
	*Headless
	renders int
	last    session.Mode
}

func (r *recorder) Render(v session.View) {
	r.renders++
	r.last = v.Mode()
}

func newTestGame(t *testing.T, front Frontend, opts Options) *Game {
	t.Helper()
	g, err := NewGameWithOptions(front, opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(func() { g.Unload() })
	return g
}

func TestUpdateDrivesSession(t *testing.T) {
	front := &recorder{Headless: NewScripted(
		[]session.Command{session.Cmd(session.CmdStart)},
		[]session.Command{session.Cmd(session.CmdChooseBlank)},
		[]session.Command{session.Draw(1, 1), session.Cmd(session.CmdTogglePause)},
	)}
	g := newTestGame(t, front, Options{Seed: 1})

	g.Update()
	g.Draw()
	if front.last != session.ModeSeedSelect {
		t.Fatalf("rendered %v, want seed_select", front.last)
	}

	g.Update()
	g.Update()
	g.Draw()
	if front.last != session.ModeSimulation || front.renders != 2 {
		t.Fatalf("renders=%d last=%v", front.renders, front.last)
	}
	if !g.Session().Paused() || g.Session().Population() != 1 {
		t.Errorf("paused=%v population=%d", g.Session().Paused(), g.Session().Population())
	}
	if g.Tick() != 3 {
		t.Errorf("tick = %d, want 3", g.Tick())
	}
}

func TestQuitFromMenu(t *testing.T) {
	g := newTestGame(t, NewScripted([]session.Command{session.Cmd(session.CmdQuit)}), Options{})
	if g.Done() {
		t.Fatal("done before any update")
	}
	g.Update()
	if !g.Done() {
		t.Error("quit command did not end the game")
	}
}

func TestStatsCallbackPerWindow(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newTestGame(t, NewHeadless(), Options{
		Seed:              42,
		WindowGenerations: 2,
		StatsCallback:     func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	if err := RunHeadless(g, 4, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	if windows[0].FirstGeneration != 1 || windows[1].LastGeneration != 4 {
		t.Errorf("window bounds: %+v / %+v", windows[0], windows[1])
	}
	for _, w := range windows {
		if w.Samples != 2 {
			t.Errorf("window %d has %d samples", w.Window, w.Samples)
		}
	}
}

func TestOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	opts := OptionsFromConfig(config.Default())
	opts.Seed = 5
	opts.WindowGenerations = 3
	opts.OutputDir = dir

	g, err := NewGameWithOptions(NewHeadless(), opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	if err := RunHeadless(g, 7, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	// Two full windows plus one partial flushed on unload.
	if err := g.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("got %d csv lines, want 4:\n%s", len(lines), data)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot: %v", err)
	}
}

func TestRunHeadlessReachesGeneration(t *testing.T) {
	g := newTestGame(t, NewHeadless(), Options{Seed: 7})
	if err := RunHeadless(g, 25, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	v := g.Session()
	if v.Mode() != session.ModeSimulation || v.Generation() != 25 {
		t.Errorf("mode=%v generation=%d", v.Mode(), v.Generation())
	}
	if v.HistorySize() != 25 {
		t.Errorf("history = %d, want 25", v.HistorySize())
	}
	// Two menu ticks, then one generation every AutoAdvanceTicks.
	if want := int64(2 + 25*session.AutoAdvanceTicks); g.Tick() != want {
		t.Errorf("tick = %d, want %d", g.Tick(), want)
	}
}

func TestRunHeadlessStallsWithoutStart(t *testing.T) {
	g := newTestGame(t, NewScripted(), Options{})
	err := RunHeadless(g, 3, nil)
	if err == nil {
		t.Fatal("expected stall error")
	}
	if !strings.Contains(err.Error(), "menu") {
		t.Errorf("error %q does not name the stuck mode", err)
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	g := newTestGame(t, NewScripted([]session.Command{session.Cmd(session.CmdQuit)}), Options{})
	if err := RunHeadless(g, 3, nil); err == nil {
		t.Fatal("expected error after quit")
	}
}

func TestRunHeadlessZeroGenerations(t *testing.T) {
	g := newTestGame(t, NewHeadless(), Options{})
	if err := RunHeadless(g, 0, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if g.Tick() != 0 {
		t.Errorf("tick = %d, want 0", g.Tick())
	}
}

func TestPerfRowsPerWindow(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, NewHeadless(), Options{Seed: 3, PerfWindowTicks: 10, OutputDir: dir})

	if err := RunHeadless(g, 25, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if g.Tick() != 152 {
		t.Fatalf("tick = %d, want 152", g.Tick())
	}
	if err := g.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 16 {
		t.Errorf("got %d perf lines, want header + 15 rows", len(lines))
	}
}

func TestExtinctionBookmark(t *testing.T) {
	var bookmarks []telemetry.Bookmark
	front := NewScripted(
		[]session.Command{session.Cmd(session.CmdStart)},
		[]session.Command{session.Cmd(session.CmdChooseBlank)},
		[]session.Command{session.Draw(5, 5)},
	)
	g := newTestGame(t, front, Options{
		WindowGenerations: 1,
		BookmarkCallback: func(b telemetry.Bookmark) {
			bookmarks = append(bookmarks, b)
		},
	})

	// A lone cell dies on the first generation and the grid stays empty.
	if err := RunHeadless(g, 4, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("got %d bookmarks, want 1: %+v", len(bookmarks), bookmarks)
	}
	if bookmarks[0].Type != telemetry.BookmarkExtinction || bookmarks[0].Generation != 1 {
		t.Errorf("bookmark = %+v, want extinction at generation 1", bookmarks[0])
	}
}

func idle(n int) [][]session.Command {
	return make([][]session.Command, n)
}

func TestResetClosesStatsWindow(t *testing.T) {
	script := [][]session.Command{
		{session.Cmd(session.CmdStart)},
		{session.Cmd(session.CmdChooseRandom)},
	}
	script = append(script, idle(18)...) // three generations
	script = append(script,
		[]session.Command{session.Cmd(session.CmdEscapeToMenu)},
		[]session.Command{session.Cmd(session.CmdStart)},
		[]session.Command{session.Cmd(session.CmdChooseRandom)},
	)

	var windows []telemetry.WindowStats
	g := newTestGame(t, NewScripted(script...), Options{
		Seed:              11,
		WindowGenerations: 5,
		StatsCallback:     func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	// 23 scripted ticks, then five generations of the second seed
	for i := 0; i < 23+5*session.AutoAdvanceTicks; i++ {
		g.Update()
	}
	if g.Session().Generation() != 5 {
		t.Fatalf("generation = %d, want 5", g.Session().Generation())
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(windows), windows)
	}
	first, second := windows[0], windows[1]
	if first.FirstGeneration != 1 || first.LastGeneration != 3 || first.Samples != 3 {
		t.Errorf("first run window = %+v, want generations 1-3", first)
	}
	if second.FirstGeneration != 1 || second.LastGeneration != 5 || second.Samples != 5 {
		t.Errorf("second run window = %+v, want generations 1-5", second)
	}
	if second.Window != first.Window+1 {
		t.Errorf("window indices %d, %d not consecutive", first.Window, second.Window)
	}
}

func TestClearGridClosesStatsWindow(t *testing.T) {
	script := [][]session.Command{
		{session.Cmd(session.CmdStart)},
		{session.Cmd(session.CmdChooseRandom)},
	}
	script = append(script, idle(12)...) // two generations
	script = append(script, []session.Command{session.Cmd(session.CmdClearGrid)})

	var windows []telemetry.WindowStats
	g := newTestGame(t, NewScripted(script...), Options{
		Seed:              4,
		WindowGenerations: 10,
		StatsCallback:     func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	for i := 0; i < len(script); i++ {
		g.Update()
	}
	if len(windows) != 1 || windows[0].Samples != 2 || windows[0].LastGeneration != 2 {
		t.Errorf("windows after clear = %+v, want one window of generations 1-2", windows)
	}
}

func TestBlankSeedRaisesNoBookmark(t *testing.T) {
	var bookmarks []telemetry.Bookmark
	front := NewScripted(
		[]session.Command{session.Cmd(session.CmdStart)},
		[]session.Command{session.Cmd(session.CmdChooseBlank)},
	)
	g := newTestGame(t, front, Options{
		WindowGenerations: 1,
		BookmarkCallback: func(b telemetry.Bookmark) {
			bookmarks = append(bookmarks, b)
		},
	})

	if err := RunHeadless(g, 3, nil); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Errorf("empty grid raised bookmarks: %+v", bookmarks)
	}
}
