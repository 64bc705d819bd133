package cmd

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// defaultFallbackTermWidth keeps output readable when no size can be
// detected at all (CI, plain pipes).
const defaultFallbackTermWidth = 80

// Indirection for tests.
var (
	termGetSize    = term.GetSize
	termIsTerminal = term.IsTerminal
)

// detectTerminalWidth returns the best-effort terminal width by probing
// stdout, stderr, and stdin, then falling back to $COLUMNS.
func detectTerminalWidth() int {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, _, err := termGetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return defaultFallbackTermWidth
}

func stdoutIsTerminal() bool {
	return termIsTerminal(int(os.Stdout.Fd()))
}
