package ui

import (
	"os"

	"golang.org/x/term"
)

// ShouldUseColor reports whether stdout should get ANSI colors: on for a
// terminal, off when NO_COLOR (https://no-color.org) is set to anything.
// The --no-color flag overrides this through ForceNoColor.
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is a terminal, i.e. whether the
// enrollment prompt can actually ask the operator anything.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
