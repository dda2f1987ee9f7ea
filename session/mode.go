// Package session holds the interactive state of a Game of Life run: the
// live grid, its history, the active screen and the pause/auto-advance
// clock. It has no rendering or input dependencies.
package session

import "fmt"

// Mode is the active screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSeedSelect
	ModeSimulation

	numModes
)

// Modes returns every mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, 0, numModes)
	for m := Mode(0); m < numModes; m++ {
		modes = append(modes, m)
	}
	return modes
}

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeSeedSelect:
		return "seed_select"
	case ModeSimulation:
		return "simulation"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
