package ui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

var (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow
)

// ColorEnabled reports whether stdout is an interactive terminal.
func ColorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColor blanks every color code so output stays plain when piped.
func DisableColor() {
	ColorReset, ColorGray, ColorWhite = "", "", ""
	ColorRed, ColorGreen, ColorYellow = "", "", ""
}

// WaitForCancel returns a context that is canceled on Ctrl+C
func WaitForCancel(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
