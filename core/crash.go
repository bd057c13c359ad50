package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal to a sane state; satisfied by
// tcell.Screen. Registered once at startup so crash paths can clean up
// without importing the terminal backend.
type Finisher interface {
	Fini()
}

var crashScreen atomic.Value

// RegisterCrashScreen records the screen to restore on crash
func RegisterCrashScreen(f Finisher) {
	crashScreen.Store(f)
}

// HandleCrash is the unified panic handler: restore the terminal, then
// print the stack trace. A nil recover value is a no-op so it can sit
// directly in a deferred recover.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f, ok := crashScreen.Load().(Finisher); ok && f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash off the main
// goroutine still restores the terminal.
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
