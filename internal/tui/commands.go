package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// addItemCmd runs the classifier lookup off the update loop.
func addItemCmd(ctx context.Context, eng *engine.Engine, name string, frozen bool) tea.Cmd {
	return func() tea.Msg {
		result, err := eng.Add(ctx, name, frozen)
		return itemAddedMsg{result: result, err: err}
	}
}

func editItemCmd(ctx context.Context, eng *engine.Engine, id, name string, category model.Category) tea.Cmd {
	return func() tea.Msg {
		entry, err := eng.Edit(ctx, id, name, category)
		return itemEditedMsg{entry: entry, err: err}
	}
}

func removeItemCmd(ctx context.Context, eng *engine.Engine, id string) tea.Cmd {
	return func() tea.Msg {
		entry, err := eng.Remove(ctx, id)
		return itemRemovedMsg{entry: entry, err: err}
	}
}
