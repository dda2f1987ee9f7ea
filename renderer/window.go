// Package renderer presents a session in a raylib window and turns mouse and
// keyboard input into session commands.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/life/session"
	"github.com/pthm-cable/life/ui"
)

// Window is the interactive frontend. It must be created after rl.InitWindow.
type Window struct {
	ui     *ui.Renderer
	hud    *ui.HUD
	width  int32
	height int32

	// Button clicks are only known while drawing, so they are delivered on
	// the following poll.
	pending []session.Command
}

// NewWindow creates a frontend sized to the fixed grid.
func NewWindow() *Window {
	r := ui.NewRenderer()
	r.ApplyStyle()
	return &Window{
		ui:     r,
		hud:    ui.NewHUD(r),
		width:  ui.ScreenWidth,
		height: ui.ScreenHeight,
	}
}

// Commands gathers this frame's input for the current mode.
func (w *Window) Commands(view session.View) []session.Command {
	cmds := w.pending
	w.pending = nil

	switch view.Mode() {
	case session.ModeMenu:
		// Buttons only
	case session.ModeSeedSelect:
		if rl.IsKeyPressed(rl.KeyEscape) {
			cmds = append(cmds, session.Cmd(session.CmdBack))
		}
	case session.ModeSimulation:
		cmds = append(cmds, pointerCommands(ui.CellSize)...)
		cmds = append(cmds, keyCommands(simulationKeys)...)
	default:
		panic(fmt.Sprintf("renderer: unhandled mode %v", view.Mode()))
	}
	return cmds
}

// Render draws one frame.
func (w *Window) Render(view session.View) {
	rl.BeginDrawing()
	rl.ClearBackground(w.ui.Theme.Background)

	switch view.Mode() {
	case session.ModeMenu:
		w.pending = append(w.pending, w.ui.DrawMenu(ui.MainMenu, w.width, w.height)...)
	case session.ModeSeedSelect:
		w.pending = append(w.pending, w.ui.DrawMenu(ui.SeedMenu, w.width, w.height)...)
	case session.ModeSimulation:
		w.ui.DrawCells(view.Cells())
		w.hud.Draw(ui.HUDData{
			Paused:      view.Paused(),
			HistorySize: view.HistorySize(),
			Generation:  view.Generation(),
			Population:  view.Population(),
		}, w.width)
		w.hud.DrawControls(w.height)
	default:
		panic(fmt.Sprintf("renderer: unhandled mode %v", view.Mode()))
	}

	rl.EndDrawing()
}
