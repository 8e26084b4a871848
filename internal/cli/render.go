package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

// RenderTable renders rows under headers with the shared table styles.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.PaddingRight(2)
			}
			return TableCellStyle
		})
	return t.String()
}

// PerkTable renders perks with their status and age relative to now.
func PerkTable(perks []model.Perk, now time.Time) string {
	rows := make([][]string, 0, len(perks))
	for _, p := range perks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Category,
			StatusBadge(string(p.Status)),
			p.Value,
			listing.FormatRelative(p.LastUpdated, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "STATUS", "VALUE", "UPDATED"}, rows)
}

// ApplicationTable renders applications with their score and review state.
func ApplicationTable(apps []model.Application, now time.Time) string {
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", a.ID),
			a.TeamName,
			a.Sector,
			a.Stage,
			StatusBadge(string(a.Status)),
			ScoreText(a),
			string(a.HumanReview),
			listing.FormatRelative(a.SubmissionDate, now),
		})
	}
	return RenderTable([]string{"ID", "TEAM", "SECTOR", "STAGE", "STATUS", "SCORE", "REVIEW", "SUBMITTED"}, rows)
}

// ScoreText renders an AI score colored by its band, or a dash when the
// application has not been scored.
func ScoreText(a model.Application) string {
	switch a.Band() {
	case model.ScoreHigh:
		return SuccessStyle.Render(fmt.Sprintf("%d", *a.AIScore))
	case model.ScoreMedium:
		return WarningStyle.Render(fmt.Sprintf("%d", *a.AIScore))
	case model.ScoreLow:
		return ErrorStyle.Render(fmt.Sprintf("%d", *a.AIScore))
	default:
		return SubtleStyle.Render("-")
	}
}

// SummaryLine renders status counts as "status: n" pairs in status order.
func SummaryLine(s listing.Summary, statuses []string) string {
	parts := make([]string, 0, len(statuses)+1)
	parts = append(parts, fmt.Sprintf("%s %d total", ChartIcon, s.Total))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%s: %d", StatusBadge(status), s.Count(status)))
	}
	return strings.Join(parts, "  ")
}

// RateLines renders one "category  rate%" line per category, sorted by name.
func RateLines(s listing.Summary) string {
	categories := make([]string, 0, len(s.RateByCategory))
	for c := range s.RateByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&b, "  %-24s %5.1f%%\n", c, s.Rate(c))
	}
	return b.String()
}

// SystemStatusTable renders component states sorted by component name.
func SystemStatusTable(status model.SystemStatus) string {
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, ComponentBadge(string(status[name]))})
	}
	return RenderTable([]string{"COMPONENT", "STATE"}, rows)
}
