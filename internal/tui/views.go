package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/italianiroberto75-cyber/FRIGO/internal/cli"
	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(cli.FridgeIcon + " My Fridge"),
		m.renderFacetBar(),
	}

	switch m.mode {
	case ModeAdd:
		sections = append(sections, m.renderAddForm())
	case ModeEdit:
		sections = append(sections, m.renderEditForm())
	}

	sections = append(sections, m.renderList())

	if m.status != "" {
		style := m.theme.StatusInfo
		if m.statusError {
			style = m.theme.StatusError
		}
		sections = append(sections, style.Render(m.status))
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFacetBar() string {
	parts := make([]string, 0, len(m.view.Facets))
	for _, f := range m.view.Facets {
		if f == m.view.Active {
			parts = append(parts, m.theme.FacetActive.Render(f))
		} else {
			parts = append(parts, m.theme.Facet.Render(f))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderAddForm() string {
	storage := "[ ] Freezer"
	if m.frozen {
		storage = "[x] Freezer"
	}

	lines := []string{
		m.theme.Bold.Render("Add an item"),
		m.nameInput.View(),
		storage + m.theme.Help.Render("  (Ctrl+F to toggle)"),
	}
	if m.busy {
		lines = append(lines, m.spinner.View()+" Asking about shelf life...")
	}

	return m.theme.Input.Render(strings.Join(lines, "\n"))
}

func (m Model) renderEditForm() string {
	category := model.Categories[m.editCategory]
	lines := []string{
		m.theme.Bold.Render("Edit item"),
		m.editInput.View(),
		fmt.Sprintf("Category: ‹ %s %s ›", cli.Glyph(category.Icon()), category),
	}
	return m.theme.Input.Render(strings.Join(lines, "\n"))
}

func (m Model) renderList() string {
	if m.view.IsEmpty() {
		return m.theme.Subtitle.Render(cli.EmptyFridgeMessage)
	}

	var b strings.Builder
	index := 0
	for _, group := range m.view.Groups {
		b.WriteString(m.theme.Category.Render(fmt.Sprintf("%s %s", cli.Glyph(group.Category.Icon()), group.Category)))
		b.WriteString("\n")
		for _, item := range group.Items {
			b.WriteString(m.renderItem(item, index == m.cursor))
			b.WriteString("\n")
			index++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderItem(item engine.ItemView, selected bool) string {
	name := item.Entry.Name
	if item.Entry.IsFrozen {
		name += " ❄"
	}

	status := m.theme.Severity(item.Status.Severity).
		Render(severityLabel(item.Status.Severity) + " " + item.Status.Text)
	line := fmt.Sprintf("%s %-24s %s", cli.Glyph(item.Entry.Icon), name, status)

	if selected && m.mode == ModeBrowse {
		return m.theme.Selected.Render("› " + line)
	}
	return "  " + line
}

func (m Model) renderHelp() string {
	if m.showHelp {
		return m.help.FullHelpView(m.keymap.FullHelp())
	}
	return m.help.ShortHelpView(m.keymap.ShortHelp())
}
