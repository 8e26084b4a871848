// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/listing"
)

var (
	// PrimaryColor is the main brand color.
	PrimaryColor = lipgloss.Color("#4F46E5") // Indigo
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#16A34A") // Green
	// WarningColor indicates warnings or work in progress.
	WarningColor = lipgloss.Color("#CA8A04") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#DC2626") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#2563EB") // Blue
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#6B7280") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for section headings below a title.
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SubtleColor)

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

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D1D5DB")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)

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
	RocketIcon  = "🚀"
	ChartIcon   = "📊"
)

// ToneStyle returns the text style for a status tone.
func ToneStyle(tone listing.Tone) lipgloss.Style {
	switch tone {
	case listing.ToneSuccess:
		return SuccessStyle
	case listing.ToneWarning:
		return WarningStyle
	case listing.ToneError:
		return ErrorStyle
	default:
		return SubtleStyle
	}
}

// StatusBadge renders a record status in the color of its tone.
func StatusBadge(status string) string {
	return ToneStyle(listing.Classify(status)).Render(status)
}

// ComponentBadge renders a component state in the color of its tone.
func ComponentBadge(state string) string {
	return ToneStyle(listing.ComponentTone(state)).Render(state)
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

// FormatTitle formats a title with the rocket icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(RocketIcon + " " + title)
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

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
