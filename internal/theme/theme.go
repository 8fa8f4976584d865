package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Text           *lipgloss.Style
	Bold           *lipgloss.Style
	Match          *lipgloss.Style
	CursorLine     *lipgloss.Style
	LineIndicator  *lipgloss.Style
	CursorMarker   *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Mode           *lipgloss.Style
	Search         *lipgloss.Style
	SearchPrompt   *lipgloss.Style
	SearchHint     *lipgloss.Style
	ScrollPosition *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Bold: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	CursorLine: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("238")),
	),
	LineIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	CursorMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Mode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ScrollPosition: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
