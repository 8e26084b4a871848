package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

const cardWidth = 24

// RenderStatCards lays the cards out in a row, or in a grid of two when
// the width does not fit four.
func RenderStatCards(cards []viewmodel.StatCard, theme themes.Theme, width int) string {
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = renderCard(card, theme)
	}

	perRow := len(rendered)
	if total := (cardWidth + 2) * perRow; total > width {
		perRow = max(width/(cardWidth+2), 1)
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(card viewmodel.StatCard, theme themes.Theme) string {
	value := theme.Bold.Render(card.Value)
	if card.Tone != listing.ToneNeutral {
		value = theme.ToneStyle(card.Tone).Bold(true).Render(card.Value)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(theme.Muted).Render(card.Title),
		value,
		lipgloss.NewStyle().Foreground(theme.Muted).Render(viewmodel.TruncateString(card.Detail, cardWidth-2)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(cardWidth).
		Render(content)
}

// RenderActivity renders the recent activity feed.
func RenderActivity(items []viewmodel.ActivityItem, theme themes.Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("Recent Activity"))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render("No recent activity"))
		return b.String()
	}

	for i, item := range items {
		title := viewmodel.TruncateString(item.Title, max(width-24, 10))
		line := theme.ToneStyle(item.Tone).Render("●") + " " + title + "  " +
			lipgloss.NewStyle().Foreground(theme.Muted).Render(item.Age)
		b.WriteString(line)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderComponents renders backend component health.
func RenderComponents(items []viewmodel.ComponentItem, theme themes.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Bold.Render("System Status"))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Muted).Render("Status unavailable"))
		return b.String()
	}

	for i, item := range items {
		b.WriteString(theme.ToneStyle(item.Tone).Render("●"))
		b.WriteString(" " + item.Name + " ")
		b.WriteString(theme.ToneStyle(item.Tone).Render(item.State))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
