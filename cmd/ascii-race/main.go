package main

import (
	"os"

	"github.com/lixenwraith/ascii-race/core"
)

func main() {
	// Panic recovery: the terminal is reset even if setup crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(Execute(os.Args[1:]))
}
