// Package themes defines the color schemes of the fridge TUI.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Category      lipgloss.Style
	FacetActive   lipgloss.Style
	Facet         lipgloss.Style
	Input         lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusFrozen  lipgloss.Style
	StatusFresh   lipgloss.Style
	StatusSoon    lipgloss.Style
	StatusExpired lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Help          lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#5dadec"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5dadec")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#1f4e79")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Category: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a0d8ef")).
		MarginTop(1),
	FacetActive: lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color("#5dadec")).
		Foreground(lipgloss.Color("#0b0b0b")).
		Padding(0, 1),
	Facet: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 1),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#5dadec")).
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	StatusFrozen: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a0d8ef")),
	StatusFresh: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	StatusSoon: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusExpired: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

// Mono is a colorless theme for plain terminals.
var Mono = Theme{
	Title:         lipgloss.NewStyle().Bold(true),
	Subtitle:      lipgloss.NewStyle(),
	Normal:        lipgloss.NewStyle(),
	Bold:          lipgloss.NewStyle().Bold(true),
	Selected:      lipgloss.NewStyle().Reverse(true),
	Category:      lipgloss.NewStyle().Bold(true).MarginTop(1),
	FacetActive:   lipgloss.NewStyle().Reverse(true).Padding(0, 1),
	Facet:         lipgloss.NewStyle().Padding(0, 1),
	Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	RoundedBox:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	StatusFrozen:  lipgloss.NewStyle(),
	StatusFresh:   lipgloss.NewStyle(),
	StatusSoon:    lipgloss.NewStyle().Bold(true),
	StatusExpired: lipgloss.NewStyle().Bold(true).Underline(true),
	StatusError:   lipgloss.NewStyle().Bold(true),
	StatusInfo:    lipgloss.NewStyle(),
	Help:          lipgloss.NewStyle().Faint(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "mono":
		return Mono
	default:
		return Default
	}
}

// Severity returns the style for an expiry severity.
func (t Theme) Severity(s expiry.Severity) lipgloss.Style {
	switch s {
	case expiry.SeverityFrozen:
		return t.StatusFrozen
	case expiry.SeveritySoon:
		return t.StatusSoon
	case expiry.SeverityExpired:
		return t.StatusExpired
	default:
		return t.StatusFresh
	}
}
