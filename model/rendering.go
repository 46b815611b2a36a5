package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	cellAlive = "[]"
	cellEmpty = "  "

	ansiHighlight = "\x1B[7;31m"
	ansiReset     = "\x1B[0m"
	ansiHome      = "\x1B[0;0H"

	clearCmd = "clear"
)

// TerminalRenderer draws boards as text
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer renders to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board inside a frame. In debug mode every cell shows
// its 3x3 neighbourhood total and live cells are highlighted.
func (r *TerminalRenderer) Display(b *Board, debug bool) {
	var sb strings.Builder
	border := "||==" + strings.Repeat("==", Size) + "==||\n"
	padding := "||  " + strings.Repeat("  ", Size) + "  ||\n"

	sb.WriteString(border)
	sb.WriteString(padding)
	for y := range Size {
		sb.WriteString("||  ")
		for x := range Size {
			alive := b.Read(x, y)
			switch {
			case !debug && alive:
				sb.WriteString(cellAlive)
			case !debug:
				sb.WriteString(cellEmpty)
			case alive:
				fmt.Fprintf(&sb, "%s[%d%s", ansiHighlight, b.NeighborhoodSumAt(x, y), ansiReset)
			default:
				fmt.Fprintf(&sb, " %d", b.NeighborhoodSumAt(x, y))
			}
		}
		sb.WriteString("  ||\n")
	}
	sb.WriteString(padding)
	sb.WriteString(border)

	fmt.Fprint(r.Out, sb.String())
}

// Home moves the cursor to the top-left corner so the next frame overdraws the last
func (r *TerminalRenderer) Home() {
	fmt.Fprint(r.Out, ansiHome)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
