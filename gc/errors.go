package gc

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
)

var diagOut = colorable.NewColorableStderr()

// Debug enables trace output from the allocator, mark, and sweep phases.
var Debug = false

// fatalf writes a diagnostic and terminates the process. The reference
// implementation's registry overflows are abort()s, not recoverable errors:
// the corrupted/exhausted tables can't be safely continued from, so this
// package follows suit rather than returning an error the caller could
// ignore.
func fatalf(format string, args ...any) {
	fmt.Fprintf(diagOut, "\033[31mgc: "+format+"\033[0m\n", args...)
	os.Exit(2)
}

func debugf(format string, args ...any) {
	if Debug {
		fmt.Fprintf(diagOut, "gc: "+format+"\n", args...)
	}
}
