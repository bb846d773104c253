package model

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// TerminalRenderer writes grids as text
type TerminalRenderer struct {
	Out io.Writer
}

// Display writes the grid rendering
func (r *TerminalRenderer) Display(g *Grid) error {
	if _, err := io.WriteString(r.Out, g.Render()); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Header writes a one-line status for the grid
func (r *TerminalRenderer) Header(g *Grid) error {
	living := g.Population()
	density := float64(living) / float64(g.Rows()*g.Cols()) * 100
	_, err := fmt.Fprintf(r.Out, "Gen: %d | Living: %d | Density: %.1f%%\n", g.Generation(), living, density)
	return errors.Wrap(err, "[Header] failed to write status")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
