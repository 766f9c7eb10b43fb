// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/italianiroberto75-cyber/FRIGO/internal/expiry"
)

var (
	// PrimaryColor is the main theme color (frost blue).
	PrimaryColor = lipgloss.Color("#5DADEC")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFB347") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// FrozenColor marks items deep in the freezer.
	FrozenColor = lipgloss.Color("#A0D8EF") // Ice
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// CategoryStyle is used for category headings in listings.
	CategoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333"))

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// FrozenStyle formats frozen item statuses.
	FrozenStyle = lipgloss.NewStyle().
			Foreground(FrozenColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// ActiveFacetStyle highlights the selected filter.
	ActiveFacetStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000")).
				Background(PrimaryColor).
				Padding(0, 1)

	// FacetStyle formats the other filters.
	FacetStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	FridgeIcon  = "🧊"
	RobotIcon   = "🤖"
)

// glyphs maps FontAwesome class names to terminal glyphs.
var glyphs = map[string]string{
	"fa-apple-whole":          "🍎",
	"fa-carrot":               "🥕",
	"fa-drumstick-bite":       "🍗",
	"fa-fish":                 "🐟",
	"fa-fish-fins":            "🐟",
	"fa-cheese":               "🧀",
	"fa-egg":                  "🥚",
	"fa-bread-slice":          "🍞",
	"fa-jar":                  "🫙",
	"fa-bottle-water":         "🥤",
	"fa-utensils":             "🍴",
	"fa-lemon":                "🍋",
	"fa-pepper-hot":           "🌶️",
	"fa-bacon":                "🥓",
	"fa-burger":               "🍔",
	"fa-pizza-slice":          "🍕",
	"fa-ice-cream":            "🍨",
	"fa-wine-bottle":          "🍷",
	"fa-mug-hot":              "☕",
	"fa-cookie":               "🍪",
	"fa-bowl-rice":            "🍚",
	"fa-snowflake":            "❄️",
	"fa-triangle-exclamation": "⚠️",
	"fa-hourglass-half":       "⏳",
	"fa-leaf":                 "🌿",
}

// Glyph returns the terminal glyph for a FontAwesome icon name.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return glyphs["fa-utensils"]
}

// SeverityStyle returns the style used for a status.
func SeverityStyle(s expiry.Severity) lipgloss.Style {
	switch s {
	case expiry.SeverityExpired:
		return ErrorStyle
	case expiry.SeveritySoon:
		return WarningStyle
	case expiry.SeverityFrozen:
		return FrozenStyle
	default:
		return SuccessStyle
	}
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the fridge icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(FridgeIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, boxTitle, content))
}
