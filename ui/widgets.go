package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/life/life"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// ApplyStyle pushes the theme into raygui. Call after the window exists.
func (r *Renderer) ApplyStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, r.Theme.ButtonFontSize)
}

// DrawCenteredText draws text horizontally centered on a screen of the given width.
func (r *Renderer) DrawCenteredText(text string, screenWidth, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (screenWidth-width)/2, y, fontSize, color)
}

// Button draws a raygui button and reports whether it was clicked this frame.
func (r *Renderer) Button(bounds rl.Rectangle, label string) bool {
	return gui.Button(bounds, label)
}

// DrawCells draws every live cell as a square one pixel smaller than the cell
// so the grid lines show through.
func (r *Renderer) DrawCells(cells life.Cells) {
	size := int32(CellSize)
	for y := 0; y < cells.Height(); y++ {
		for x := 0; x < cells.Width(); x++ {
			if cells.Alive(x, y) {
				rl.DrawRectangle(int32(x)*size, int32(y)*size, size-1, size-1, r.Theme.Cell)
			}
		}
	}
}
