// Package themes defines the color schemes of the dashboard.
package themes

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary   lipgloss.Color
	OnPrimary lipgloss.Color
	Text      lipgloss.Color
	Subtle    lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
}

// Theme holds the styles the dashboard renders with.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// New builds a theme from a palette.
func New(p Palette) Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.Text).MarginBottom(1),
		Subtitle:    lipgloss.NewStyle().Foreground(p.Subtle).MarginBottom(1),
		Normal:      lipgloss.NewStyle().Foreground(p.Text),
		Bold:        lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Selected:    lipgloss.NewStyle().Background(p.Primary).Foreground(p.OnPrimary).Bold(true),
		Box:         lipgloss.NewStyle().Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		StatusWarning: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		StatusInfo:    lipgloss.NewStyle().Foreground(p.Info).Bold(true),
		StatusPending: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),

		Primary: p.Primary,
		Muted:   p.Muted,
		Border:  p.Border,
	}
}

var palettes = map[string]Palette{
	"default": {
		Primary:   lipgloss.Color("#4f46e5"),
		OnPrimary: lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#f9fafb"),
		Subtle:    lipgloss.Color("#9ca3af"),
		Muted:     lipgloss.Color("#6b7280"),
		Border:    lipgloss.Color("#374151"),
		Success:   lipgloss.Color("#22c55e"),
		Warning:   lipgloss.Color("#eab308"),
		Error:     lipgloss.Color("#ef4444"),
		Info:      lipgloss.Color("#3b82f6"),
	},
	"light": {
		Primary:   lipgloss.Color("#4338ca"),
		OnPrimary: lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#111827"),
		Subtle:    lipgloss.Color("#4b5563"),
		Muted:     lipgloss.Color("#6b7280"),
		Border:    lipgloss.Color("#d1d5db"),
		Success:   lipgloss.Color("#15803d"),
		Warning:   lipgloss.Color("#a16207"),
		Error:     lipgloss.Color("#b91c1c"),
		Info:      lipgloss.Color("#1d4ed8"),
	},
	"catppuccin-mocha": {
		Primary:   lipgloss.Color("#cba6f7"),
		OnPrimary: lipgloss.Color("#1e1e2e"),
		Text:      lipgloss.Color("#cdd6f4"),
		Subtle:    lipgloss.Color("#a6adc8"),
		Muted:     lipgloss.Color("#6c7086"),
		Border:    lipgloss.Color("#45475a"),
		Success:   lipgloss.Color("#a6e3a1"),
		Warning:   lipgloss.Color("#f9e2af"),
		Error:     lipgloss.Color("#f38ba8"),
		Info:      lipgloss.Color("#89dceb"),
	},
}

// Default is the theme used when none is chosen.
var Default = New(palettes["default"])

// Names lists the available themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	p, ok := palettes[name]
	if !ok {
		return Default
	}
	return New(p)
}

// ToneStyle returns the status style for a tone.
func (t Theme) ToneStyle(tone listing.Tone) lipgloss.Style {
	switch tone {
	case listing.ToneSuccess:
		return t.StatusSuccess
	case listing.ToneWarning:
		return t.StatusWarning
	case listing.ToneError:
		return t.StatusError
	default:
		return t.StatusPending
	}
}

// Status renders a record status in its tone.
func (t Theme) Status(status string) string {
	return t.ToneStyle(listing.Classify(status)).Render(status)
}

// ScoreStyle returns the style for an AI score band.
func (t Theme) ScoreStyle(band model.ScoreBand) lipgloss.Style {
	switch band {
	case model.ScoreHigh:
		return t.StatusSuccess
	case model.ScoreMedium:
		return t.StatusWarning
	case model.ScoreLow:
		return t.StatusError
	default:
		return t.StatusPending
	}
}
