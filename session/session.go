package session

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/life/life"
)

// AutoAdvanceTicks is the number of unpaused ticks between generations.
const AutoAdvanceTicks = 6

// DefaultSeedDensity is the fraction of live cells in a random seed.
const DefaultSeedDensity = 0.3

// View is the read-only state a frontend needs to draw a frame.
type View interface {
	Mode() Mode
	Cells() life.Cells
	Paused() bool
	HistorySize() int
	Generation() int
	Population() int
}

// Options configures a new Session. Zero values select the fixed defaults.
type Options struct {
	Width, Height   int
	HistoryCapacity int
	SeedDensity     float64
	Rand            *rand.Rand
}

// Outcome describes what a single tick did.
type Outcome struct {
	From, To Mode
	Quit     bool
	Steps    int         // generations advanced this tick
	Change   life.Change // births and deaths summed over Steps
	Rewound  bool
	Cleared  bool
	Reset    bool // grid, history and generation went back to zero
}

// Transitioned reports whether the tick changed the active mode.
func (o Outcome) Transitioned() bool { return o.From != o.To }

// Session bundles all mutable state of one interactive run.
type Session struct {
	grid    *life.Grid
	scratch *life.Grid
	history *life.History

	mode       Mode
	paused     bool
	counter    int
	generation int

	density float64
	rng     *rand.Rand
}

// New creates a session in the menu with an empty grid and history.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = life.GridWidth
	}
	if opts.Height <= 0 {
		opts.Height = life.GridHeight
	}
	if opts.HistoryCapacity <= 0 {
		opts.HistoryCapacity = life.HistoryCapacity
	}
	if opts.SeedDensity <= 0 {
		opts.SeedDensity = DefaultSeedDensity
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	return &Session{
		grid:    life.NewGrid(opts.Width, opts.Height),
		scratch: life.NewGrid(opts.Width, opts.Height),
		history: life.NewHistory(opts.HistoryCapacity),
		mode:    ModeMenu,
		paused:  true,
		density: opts.SeedDensity,
		rng:     opts.Rand,
	}
}

// Tick applies one frame worth of commands and advances the auto-step clock.
func (s *Session) Tick(cmds []Command) Outcome {
	out := Outcome{From: s.mode}

	switch s.mode {
	case ModeMenu:
		s.tickMenu(cmds, &out)
	case ModeSeedSelect:
		s.tickSeedSelect(cmds, &out)
	case ModeSimulation:
		s.tickSimulation(cmds, &out)
	default:
		panic(fmt.Sprintf("session: unhandled mode %v", s.mode))
	}

	out.To = s.mode
	return out
}

// tickMenu handles the title screen. Only start and quit are meaningful.
func (s *Session) tickMenu(cmds []Command, out *Outcome) {
	for _, c := range cmds {
		switch c.Kind {
		case CmdStart:
			s.mode = ModeSeedSelect
			return
		case CmdQuit:
			out.Quit = true
			return
		}
	}
}

// tickSeedSelect handles the seed picker. The first transition wins.
func (s *Session) tickSeedSelect(cmds []Command, out *Outcome) {
	for _, c := range cmds {
		switch c.Kind {
		case CmdChooseBlank:
			s.enterSimulation(false, out)
			return
		case CmdChooseRandom:
			s.enterSimulation(true, out)
			return
		case CmdBack, CmdEscapeToMenu:
			s.mode = ModeMenu
			return
		}
	}
}

func (s *Session) tickSimulation(cmds []Command, out *Outcome) {
	for _, c := range orderForSimulation(cmds) {
		switch c.Kind {
		case CmdDrawCell:
			s.grid.Set(c.X, c.Y, true)
		case CmdEraseCell:
			s.grid.Set(c.X, c.Y, false)
		case CmdTogglePause:
			s.paused = !s.paused
		case CmdStepForward:
			if s.paused {
				s.advance(out)
			}
		case CmdStepBackward:
			if s.paused {
				s.rewind(out)
			}
		case CmdClearGrid:
			s.reset(out)
			out.Cleared = true
		case CmdBack, CmdEscapeToMenu:
			s.reset(out)
			s.paused = true
			s.counter = 0
			s.mode = ModeMenu
			return
		}
	}

	if s.paused {
		return
	}
	s.counter++
	if s.counter >= AutoAdvanceTicks {
		s.advance(out)
		s.counter = 0
	}
}

func (s *Session) enterSimulation(random bool, out *Outcome) {
	s.reset(out)
	if random {
		s.grid.Randomize(s.rng, s.density)
	}
	s.counter = 0
	s.paused = false
	s.mode = ModeSimulation
}

// reset clears the grid and everything derived from it.
func (s *Session) reset(out *Outcome) {
	s.grid.Clear()
	s.history.Clear()
	s.generation = 0
	out.Reset = true
}

// advance records the current grid and replaces it with the next generation.
func (s *Session) advance(out *Outcome) {
	s.history.Push(s.grid.Snapshot())
	ch := life.StepInto(s.scratch, s.grid)
	s.grid, s.scratch = s.scratch, s.grid
	s.generation++

	out.Steps++
	out.Change.Births += ch.Births
	out.Change.Deaths += ch.Deaths
}

// rewind restores the most recent snapshot, if any.
func (s *Session) rewind(out *Outcome) {
	snap, ok := s.history.Pop()
	if !ok {
		return
	}
	s.grid.Restore(snap)
	if s.generation > 0 {
		s.generation--
	}
	out.Rewound = true
}

// Mode returns the active screen.
func (s *Session) Mode() Mode { return s.mode }

// Cells returns a read-only view of the live grid.
func (s *Session) Cells() life.Cells { return s.grid }

// Paused reports whether auto-advance is stopped.
func (s *Session) Paused() bool { return s.paused }

// HistorySize returns the number of generations available to step back.
func (s *Session) HistorySize() int { return s.history.Len() }

// Generation returns the number of generations since the grid was seeded or cleared.
func (s *Session) Generation() int { return s.generation }

// Population returns the number of live cells.
func (s *Session) Population() int { return s.grid.Population() }

// TickCounter returns the auto-advance clock.
func (s *Session) TickCounter() int { return s.counter }
