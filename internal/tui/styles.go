package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#2563EB")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// labelWidth aligns form labels and result labels
const labelWidth = 22

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(labelWidth)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(labelWidth)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// RenderError formats err for the result pane
func RenderError(err string) string {
	return ErrorMessageStyle.Render("Fehler: " + err)
}
