package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/efi-boot-control/internal/efi"
	"github.com/atomicstack/efi-boot-control/internal/logging/events"
	"github.com/atomicstack/efi-boot-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Tool      string
	RebootCmd string
	Countdown int
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	snapshot, err := efi.Fetch(cfg.Tool)
	if err != nil {
		return fmt.Errorf("read boot entries: %w", err)
	}
	events.App.Inventory(len(snapshot.Entries), snapshot.Order, snapshot.Current)

	model := ui.NewModel(snapshot, ui.Options{
		Tool:      cfg.Tool,
		RebootCmd: cfg.RebootCmd,
		Countdown: cfg.Countdown,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
