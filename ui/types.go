// Package ui provides raylib drawing primitives for the visualizer: menu
// screens built from raygui buttons, the grid and the simulation HUD.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/life/life"
)

// CellSize is the edge length of one cell in pixels.
const CellSize = 10

// Screen dimensions derived from the fixed grid.
const (
	ScreenWidth  = life.GridWidth * CellSize
	ScreenHeight = life.GridHeight * CellSize
)

// Theme holds UI styling constants.
type Theme struct {
	Background   rl.Color
	Cell         rl.Color
	Title        rl.Color
	StatusColor  rl.Color
	HistoryColor rl.Color
	HintColor    rl.Color

	TitleFontSize  int32
	ButtonFontSize int64
	StatusFontSize int32
	InfoFontSize   int32
	HintFontSize   int32

	ButtonWidth   float32
	ButtonHeight  float32
	ButtonSpacing float32
	Padding       int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:   rl.Black,
		Cell:         rl.White,
		Title:        rl.White,
		StatusColor:  rl.Green,
		HistoryColor: rl.LightGray,
		HintColor:    rl.Gray,

		TitleFontSize:  40,
		ButtonFontSize: 30,
		StatusFontSize: 20,
		InfoFontSize:   16,
		HintFontSize:   20,

		ButtonWidth:   300,
		ButtonHeight:  60,
		ButtonSpacing: 80,
		Padding:       10,
	}
}
