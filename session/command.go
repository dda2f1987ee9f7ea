package session

import (
	"fmt"
	"sort"
)

// CommandKind enumerates the inputs a frontend can send.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdQuit
	CmdChooseBlank
	CmdChooseRandom
	CmdBack
	CmdTogglePause
	CmdDrawCell
	CmdEraseCell
	CmdStepForward
	CmdStepBackward
	CmdClearGrid
	CmdEscapeToMenu
)

var commandNames = map[CommandKind]string{
	CmdStart:        "start",
	CmdQuit:         "quit",
	CmdChooseBlank:  "choose_blank",
	CmdChooseRandom: "choose_random",
	CmdBack:         "back",
	CmdTogglePause:  "toggle_pause",
	CmdDrawCell:     "draw_cell",
	CmdEraseCell:    "erase_cell",
	CmdStepForward:  "step_forward",
	CmdStepBackward: "step_backward",
	CmdClearGrid:    "clear_grid",
	CmdEscapeToMenu: "escape_to_menu",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one discrete input sampled during a tick. X and Y are grid
// coordinates and only meaningful for CmdDrawCell and CmdEraseCell.
type Command struct {
	Kind CommandKind
	X, Y int
}

// Cmd builds a command without coordinates.
func Cmd(kind CommandKind) Command { return Command{Kind: kind} }

// Draw builds a command that brings (x, y) to life.
func Draw(x, y int) Command { return Command{Kind: CmdDrawCell, X: x, Y: y} }

// Erase builds a command that kills (x, y).
func Erase(x, y int) Command { return Command{Kind: CmdEraseCell, X: x, Y: y} }

func (c Command) String() string {
	if c.Kind == CmdDrawCell || c.Kind == CmdEraseCell {
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.X, c.Y)
	}
	return c.Kind.String()
}

// simulationRank orders commands inside a simulation tick: edits, pause,
// step forward, step back, clear, then leaving the screen.
func simulationRank(k CommandKind) int {
	switch k {
	case CmdDrawCell, CmdEraseCell:
		return 0
	case CmdTogglePause:
		return 1
	case CmdStepForward:
		return 2
	case CmdStepBackward:
		return 3
	case CmdClearGrid:
		return 4
	case CmdBack, CmdEscapeToMenu:
		return 5
	default:
		return 6
	}
}

// orderForSimulation returns a copy of cmds sorted by simulationRank,
// keeping arrival order within a rank.
func orderForSimulation(cmds []Command) []Command {
	ordered := make([]Command, len(cmds))
	copy(ordered, cmds)
	sort.SliceStable(ordered, func(i, j int) bool {
		return simulationRank(ordered[i].Kind) < simulationRank(ordered[j].Kind)
	})
	return ordered
}
