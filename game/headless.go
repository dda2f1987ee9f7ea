package game

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/pthm-cable/life/session"
)

// Headless is a frontend that replays a fixed command script, one entry
// per tick, and then stays idle. It draws nothing.
type Headless struct {
	script [][]session.Command
	next   int
}

// NewHeadless returns a frontend that starts a randomly seeded simulation.
func NewHeadless() *Headless {
	return NewScripted(
		[]session.Command{session.Cmd(session.CmdStart)},
		[]session.Command{session.Cmd(session.CmdChooseRandom)},
	)
}

// NewScripted returns a frontend that sends script[i] on the i-th tick.
func NewScripted(script ...[]session.Command) *Headless {
	return &Headless{script: script}
}

// Commands returns the next scripted batch, or nothing once exhausted.
func (h *Headless) Commands(session.View) []session.Command {
	if h.next >= len(h.script) {
		return nil
	}
	cmds := h.script[h.next]
	h.next++
	return cmds
}

// Render is a no-op.
func (h *Headless) Render(session.View) {}

// RunHeadless updates g until the session reaches the given generation,
// reporting progress to w. Pass a nil writer to disable the progress bar.
func RunHeadless(g *Game, generations int, w io.Writer) error {
	if generations <= 0 {
		return nil
	}
	if w == nil {
		w = io.Discard
	}

	bar := pb.New(generations)
	bar.SetWriter(w)
	bar.Start()
	defer bar.Finish()

	// Enough ticks to get through the menus and every generation.
	limit := g.Tick() + int64(generations+2)*session.AutoAdvanceTicks + 16

	for g.Session().Generation() < generations {
		if g.Done() {
			return fmt.Errorf("session quit at generation %d", g.Session().Generation())
		}
		if g.Tick() >= limit {
			return fmt.Errorf("headless run stalled in %s at generation %d",
				g.Session().Mode(), g.Session().Generation())
		}
		g.Update()
		bar.SetCurrent(int64(g.Session().Generation()))
	}
	return nil
}
