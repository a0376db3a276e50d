//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the dimensions of the terminal attached to f
// Falls back to a winsize ioctl, then to 80x24
func Size(f *os.File) (width, height int) {
	fd := int(f.Fd())
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
