// cmd/glossa/main.go
//
// This is the entry point for the Glossa walkthrough.
// When you run `glossa` from any directory, this is what executes.
//
// Flow:
// 1. Initialize the .glossa folder in the current project
// 2. Launch the TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miravel/glossa/internal/config"
	"github.com/miravel/glossa/internal/tui"
)

func main() {
	// The current working directory is the "project" the language lives in
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitGlossaDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .glossa directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting Glossa: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
