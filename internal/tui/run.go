package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
)

// Run starts the interactive screen and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, eng *engine.Engine, opts ...Option) error {
	program := tea.NewProgram(
		New(ctx, eng, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
