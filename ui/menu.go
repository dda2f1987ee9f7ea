package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/life/session"
)

// MenuButton is one clickable entry on a menu screen.
type MenuButton struct {
	Label   string
	Command session.CommandKind
}

// MenuScreen describes a title and a column of centered buttons.
type MenuScreen struct {
	Title   string
	TitleY  int32
	FirstY  float32
	Buttons []MenuButton
	Hint    string // drawn bottom-left, optional
}

// MainMenu is the title screen.
var MainMenu = MenuScreen{
	Title:  "CONWAY'S GAME OF LIFE",
	TitleY: 150,
	FirstY: 250,
	Buttons: []MenuButton{
		{Label: "START", Command: session.CmdStart},
		{Label: "QUIT", Command: session.CmdQuit},
	},
}

// SeedMenu picks the initial grid.
var SeedMenu = MenuScreen{
	Title:  "SELECT INITIAL SEED",
	TitleY: 100,
	FirstY: 220,
	Buttons: []MenuButton{
		{Label: "BLANK", Command: session.CmdChooseBlank},
		{Label: "RANDOM SEED", Command: session.CmdChooseRandom},
	},
	Hint: "Press ESC to go back",
}

// ButtonBounds returns the rectangle of the i-th button on a screen of the given width.
func (r *Renderer) ButtonBounds(m MenuScreen, i int, screenWidth int32) rl.Rectangle {
	t := r.Theme
	return rl.Rectangle{
		X:      (float32(screenWidth) - t.ButtonWidth) / 2,
		Y:      m.FirstY + float32(i)*t.ButtonSpacing,
		Width:  t.ButtonWidth,
		Height: t.ButtonHeight,
	}
}

// DrawMenu draws a menu screen and returns the commands of clicked buttons.
func (r *Renderer) DrawMenu(m MenuScreen, screenWidth, screenHeight int32) []session.Command {
	t := r.Theme
	r.DrawCenteredText(m.Title, screenWidth, m.TitleY, t.TitleFontSize, t.Title)

	var clicked []session.Command
	for i, b := range m.Buttons {
		if r.Button(r.ButtonBounds(m, i, screenWidth), b.Label) {
			clicked = append(clicked, session.Cmd(b.Command))
		}
	}

	if m.Hint != "" {
		rl.DrawText(m.Hint, t.Padding, screenHeight-30, t.HintFontSize, t.HintColor)
	}
	return clicked
}
