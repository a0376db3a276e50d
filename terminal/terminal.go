package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery when the canvas cannot be restored normally
func EmergencyReset(w io.Writer) {
	w.Write(csiReset)
	w.Write(csiCursorShow)
	w.Write([]byte("\r\n"))

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
