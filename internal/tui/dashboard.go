package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
)

// RunDashboard runs the interactive daily dashboard until the user
// quits.
func RunDashboard(ctx context.Context, profiles *engine.ProfileStore, goals *engine.GoalTracker, out io.Writer) error {
	m := newDashboardModel(ctx, profiles, goals)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
