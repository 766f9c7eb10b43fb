// Package tui implements the interactive fridge screen with bubbletea.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/italianiroberto75-cyber/FRIGO/internal/common"
	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
	"github.com/italianiroberto75-cyber/FRIGO/internal/inventory"
	"github.com/italianiroberto75-cyber/FRIGO/internal/model"
	"github.com/italianiroberto75-cyber/FRIGO/internal/tui/themes"
)

// Mode is what the keyboard currently drives.
type Mode int

// Modes.
const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeEdit
)

// Model holds the TUI state. Inventory state (items, selected facet, edited
// item) lives in the store; the model keeps only widget state.
type Model struct {
	ctx          context.Context
	eng          *engine.Engine
	theme        themes.Theme
	keymap       KeyMap
	help         help.Model
	nameInput    textinput.Model
	editInput    textinput.Model
	spinner      spinner.Model
	status       string
	view         engine.View
	mode         Mode
	cursor       int
	editCategory int
	width        int
	height       int
	frozen       bool
	busy         bool
	statusError  bool
	showHelp     bool
	quitting     bool
}

// New creates the model for eng.
func New(ctx context.Context, eng *engine.Engine, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	name := textinput.New()
	name.Placeholder = "e.g. Milk, Chicken breast, Frozen peas"
	name.CharLimit = 80
	name.Prompt = "Name: "

	edit := textinput.New()
	edit.CharLimit = 80
	edit.Prompt = "Name: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.StatusInfo

	m := Model{
		ctx:       ctx,
		eng:       eng,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		nameInput: name,
		editInput: edit,
		spinner:   sp,
		width:     cfg.Width,
		height:    cfg.Height,
		showHelp:  cfg.ShowHelp,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemAddedMsg:
		return m.handleAdded(msg), nil

	case itemEditedMsg:
		return m.handleEdited(msg), nil

	case itemRemovedMsg:
		return m.handleRemoved(msg), nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case ModeAdd:
			return m.updateAdd(msg)
		case ModeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visibleItems())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.NextFacet):
		m.cycleFacet(1)

	case key.Matches(msg, m.keymap.PrevFacet):
		m.cycleFacet(-1)

	case key.Matches(msg, m.keymap.Add):
		m.mode = ModeAdd
		m.clearStatus()
		return m, m.nameInput.Focus()

	case key.Matches(msg, m.keymap.Edit):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.eng.Store().Dispatch(m.ctx, inventory.StartEdit{ID: item.Entry.ID})
		m.mode = ModeEdit
		m.editInput.SetValue(item.Entry.Name)
		m.editInput.CursorEnd()
		m.editCategory = max(slices.Index(model.Categories, item.Entry.Category), 0)
		m.clearStatus()
		return m, m.editInput.Focus()

	case key.Matches(msg, m.keymap.Delete):
		item, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		return m, removeItemCmd(m.ctx, m.eng, item.Entry.ID)
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.mode = ModeBrowse
		m.nameInput.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleFrozen):
		m.frozen = !m.frozen
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		if m.busy {
			return m, nil
		}
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.setError("Please enter a food name")
			return m, nil
		}
		m.busy = true
		m.clearStatus()
		return m, tea.Batch(m.spinner.Tick, addItemCmd(m.ctx, m.eng, name, m.frozen))
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.eng.Store().State().EditingID

	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.eng.Store().Dispatch(m.ctx, inventory.CancelEdit{})
		m.mode = ModeBrowse
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.NextCategory):
		m.editCategory = (m.editCategory + 1) % len(model.Categories)
		return m, nil

	case key.Matches(msg, m.keymap.PrevCategory):
		m.editCategory = (m.editCategory - 1 + len(model.Categories)) % len(model.Categories)
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m, editItemCmd(m.ctx, m.eng, id, m.editInput.Value(), model.Categories[m.editCategory])
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleAdded(msg itemAddedMsg) Model {
	m.busy = false
	if msg.err != nil {
		m.setError(common.UserMessage(msg.err))
		return m
	}

	entry := msg.result.Entry
	status := fmt.Sprintf("Added %s to %s", entry.Name, entry.Category)
	if msg.result.UsedFallback {
		status += " (default shelf life)"
	}
	m.setInfo(status)
	m.nameInput.Reset()
	m.frozen = false
	m.refresh()
	m.noteSaveError()
	return m
}

func (m Model) handleEdited(msg itemEditedMsg) Model {
	if msg.err != nil {
		m.setError(common.UserMessage(msg.err))
		return m
	}

	m.mode = ModeBrowse
	m.editInput.Blur()
	m.setInfo(fmt.Sprintf("Updated %s", msg.entry.Name))
	m.refresh()
	m.noteSaveError()
	return m
}

func (m Model) handleRemoved(msg itemRemovedMsg) Model {
	if msg.err != nil {
		m.setError(common.UserMessage(msg.err))
		return m
	}

	m.setInfo(fmt.Sprintf("Removed %s", msg.entry.Name))
	m.refresh()
	m.noteSaveError()
	return m
}

// refresh rebuilds the view from the store and resets a stale facet.
func (m *Model) refresh() {
	state := m.eng.Store().State()
	m.view = m.eng.View(state.Facet)
	if m.view.Active != state.Facet {
		m.eng.Store().Dispatch(m.ctx, inventory.SelectFacet{Facet: m.view.Active})
	}

	if n := len(m.visibleItems()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) cycleFacet(step int) {
	facets := m.view.Facets
	if len(facets) == 0 {
		return
	}
	i := max(slices.Index(facets, m.view.Active), 0)
	next := facets[(i+step+len(facets))%len(facets)]

	m.eng.Store().Dispatch(m.ctx, inventory.SelectFacet{Facet: next})
	m.cursor = 0
	m.refresh()
}

func (m Model) visibleItems() []engine.ItemView {
	var items []engine.ItemView
	for _, g := range m.view.Groups {
		items = append(items, g.Items...)
	}
	return items
}

func (m Model) selected() (engine.ItemView, bool) {
	items := m.visibleItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return engine.ItemView{}, false
	}
	return items[m.cursor], true
}

func (m *Model) noteSaveError() {
	if err := m.eng.LastSaveError(); err != nil {
		m.setError("Changes are kept in memory but could not be saved: " + err.Error())
	}
}

func (m *Model) setInfo(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusError = false
}

// severityLabel is the short tag shown next to an item.
func severityLabel(s expiry.Severity) string {
	switch s {
	case expiry.SeverityExpired:
		return "!"
	case expiry.SeveritySoon:
		return "~"
	case expiry.SeverityFrozen:
		return "*"
	default:
		return " "
	}
}
