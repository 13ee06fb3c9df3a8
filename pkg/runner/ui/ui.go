// Package ui launches the interactive dashboard.
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/tui"
)

// UI runs the bubbletea dashboard until the user quits.
type UI struct {
	Source   tui.Source
	Filter   buckets.Filter
	Later    bool
	Location *time.Location
}

// Do starts the program.
func (n *UI) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not start ui, no source")
	}
	model := tui.New(n.Source, n.Filter, n.Later, n.Location)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
