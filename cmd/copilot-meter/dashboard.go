package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwolczyk/copilot-meter/internal/config"
	"github.com/mwolczyk/copilot-meter/internal/gh"
	"github.com/mwolczyk/copilot-meter/internal/history"
	"github.com/mwolczyk/copilot-meter/internal/tui"
)

func runDashboard() {
	store := config.DefaultStore()
	client := gh.NewClient()

	// The trend line is optional; a broken history DB must not keep the
	// dashboard from starting.
	var hist tui.UsageHistory
	if s, err := history.Open(history.DefaultPath(config.ConfigDir())); err != nil {
		log.Printf("history unavailable: %v", err)
	} else {
		hist = s
		defer s.Close()
	}

	model := tui.NewModel(client, store, hist)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
}
