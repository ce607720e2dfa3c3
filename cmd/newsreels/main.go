package main

import (
	"os"
	"runtime"

	"github.com/newsai/newsreels/cmd/newsreels/commands"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
