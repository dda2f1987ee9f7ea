package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/pthm-cable/life/life"
	"github.com/pthm-cable/life/session"
)

// Glyphs used when printing a grid to a terminal.
const (
	liveGlyph = "█"
	deadGlyph = "·"
)

// PrintGrid writes cells to w, one text line per row.
func PrintGrid(w io.Writer, cells life.Cells, colors bool) error {
	au := aurora.NewAurora(colors)
	live := au.Green(liveGlyph).String()
	dead := au.Faint(deadGlyph).String()

	var sb strings.Builder
	for y := 0; y < cells.Height(); y++ {
		for x := 0; x < cells.Width(); x++ {
			if cells.Alive(x, y) {
				sb.WriteString(live)
			} else {
				sb.WriteString(dead)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintSummary writes a one-line description of the session state.
func PrintSummary(w io.Writer, view session.View, colors bool) error {
	au := aurora.NewAurora(colors)
	_, err := fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		au.Bold("generation"), view.Generation(),
		au.Bold("population"), view.Population(),
		au.Bold("history"), view.HistorySize(),
	)
	return err
}
