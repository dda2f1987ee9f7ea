package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/life/session"
)

// keyBinding maps a key press to a simulation command.
type keyBinding struct {
	Key  int32
	Kind session.CommandKind
}

var simulationKeys = []keyBinding{
	{Key: rl.KeySpace, Kind: session.CmdTogglePause},
	{Key: rl.KeyRight, Kind: session.CmdStepForward},
	{Key: rl.KeyLeft, Kind: session.CmdStepBackward},
	{Key: rl.KeyC, Kind: session.CmdClearGrid},
	{Key: rl.KeyEscape, Kind: session.CmdEscapeToMenu},
}

// cellAt converts a screen position to grid coordinates. Positions left of or
// above the window floor to negative indices, which the grid ignores.
func cellAt(pos rl.Vector2, cellSize int) (int, int) {
	x := int(math.Floor(float64(pos.X) / float64(cellSize)))
	y := int(math.Floor(float64(pos.Y) / float64(cellSize)))
	return x, y
}

// pointerCommands turns held mouse buttons into paint commands. Both may be
// held at once; the session applies them in order.
func pointerCommands(cellSize int) []session.Command {
	var cmds []session.Command
	left := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	right := rl.IsMouseButtonDown(rl.MouseButtonRight)
	if !left && !right {
		return nil
	}

	x, y := cellAt(rl.GetMousePosition(), cellSize)
	if left {
		cmds = append(cmds, session.Draw(x, y))
	}
	if right {
		cmds = append(cmds, session.Erase(x, y))
	}
	return cmds
}

// keyCommands returns the commands for bindings pressed this frame.
func keyCommands(bindings []keyBinding) []session.Command {
	var cmds []session.Command
	for _, b := range bindings {
		if rl.IsKeyPressed(b.Key) {
			cmds = append(cmds, session.Cmd(b.Kind))
		}
	}
	return cmds
}
