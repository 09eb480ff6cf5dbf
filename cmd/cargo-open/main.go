package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Set via -ldflags at build time.
var version = "dev"

var errPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

func main() {
	rootCmd := newRootCmd(os.LookupEnv)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err, term.IsTerminal(int(os.Stderr.Fd()))))
		os.Exit(1)
	}
}

// formatError renders err as a single-line diagnostic.
func formatError(err error, color bool) string {
	prefix := "error:"
	if color {
		prefix = errPrefixStyle.Render(prefix)
	}
	return prefix + " " + err.Error()
}
