package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	glyphDead  = '◻'
	glyphAlive = '◼'

	clearCmd = "clear"
)

// Render draws the universe as height lines of width glyphs, each ending in a newline
func (u *Universe) Render() string {
	var sb strings.Builder
	sb.Grow(len(u.cells)*3 + int(u.height))
	for row := range u.height {
		for col := range u.width {
			if u.cells[u.index(row, col)] == Alive {
				sb.WriteRune(glyphAlive)
			} else {
				sb.WriteRune(glyphDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer
func (u *Universe) String() string {
	return u.Render()
}

// TerminalRenderer writes rendered generations to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display writes the universe to the renderer's output
func (r *TerminalRenderer) Display(u *Universe) error {
	_, err := io.WriteString(r.Out, u.Render())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
