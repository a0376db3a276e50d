//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size returns the dimensions of the terminal attached to f, or 80x24
func Size(f *os.File) (width, height int) {
	if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
