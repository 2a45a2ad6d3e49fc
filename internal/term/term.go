// Package term holds the small amount of terminal detection the CLI needs.
package term

import (
	"os"

	xterm "golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
