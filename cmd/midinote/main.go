package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"midinote/debug"
	"midinote/prompt"
)

// Exit codes
const (
	exitOK         = 0
	exitRangeError = 1
	exitAbort      = 101
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

func main() {
	if _, err := debug.EnableFromEnv(os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("debug log: "+err.Error()))
	}
	code := run(os.Stdin, os.Stdout, os.Stderr)
	debug.Disable()
	os.Exit(code)
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	err := prompt.Run(stdin, stdout)
	if err == nil {
		return exitOK
	}

	var rangeErr *prompt.RangeError
	if errors.As(err, &rangeErr) {
		fmt.Fprintln(stdout, errStyle.Render("Error: "+rangeErr.Error()))
		return exitRangeError
	}

	// Anything else is fatal
	fmt.Fprintln(stderr, errStyle.Render("fatal: "+err.Error()))
	return exitAbort
}
