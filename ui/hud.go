package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Status lines shown while the simulation screen is active.
const (
	StatusPaused  = "PAUSED (SPACE: play | LEFT/RIGHT: step back/forward)"
	StatusRunning = "RUNNING (SPACE to pause)"
	ControlsHelp  = "Left Click: Draw | Right Click: Erase | C: Clear | ESC: Menu"
)

// HUDData holds all the data needed to render the simulation HUD.
type HUDData struct {
	Paused      bool
	HistorySize int
	Generation  int
	Population  int
}

// HUD renders the simulation heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw renders the status line, history depth and counters.
func (h *HUD) Draw(data HUDData, screenWidth int32) {
	t := h.renderer.Theme

	status := StatusRunning
	if data.Paused {
		status = StatusPaused
	}
	rl.DrawText(status, t.Padding, 10, t.StatusFontSize, t.StatusColor)

	// History depth only matters while stepping by hand
	if data.Paused {
		rl.DrawText(fmt.Sprintf("History: %d states", data.HistorySize), t.Padding, 35, t.InfoFontSize, t.HistoryColor)
	}

	counters := fmt.Sprintf("Gen: %d | Cells: %d", data.Generation, data.Population)
	width := rl.MeasureText(counters, t.InfoFontSize)
	rl.DrawText(counters, screenWidth-width-t.Padding, 35, t.InfoFontSize, t.HistoryColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	t := h.renderer.Theme
	rl.DrawText(ControlsHelp, t.Padding, screenHeight-30, t.HintFontSize, t.HintColor)
}
