package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/ascii-race/terminal"
)

// Restorer is anything that can put the terminal back the way the user expects
type Restorer interface {
	Restore()
}

var (
	crashMu       sync.Mutex
	crashTerminal Restorer

	// exit is swapped in tests
	exit = os.Exit
)

// RegisterCrashTerminal sets the surface restored by HandleCrash, nil clears it
func RegisterCrashTerminal(r Restorer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = r
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	rt := crashTerminal
	crashMu.Unlock()

	if rt != nil {
		rt.Restore()
	}
	terminal.EmergencyReset(os.Stdout)

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
