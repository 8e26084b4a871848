package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/tui/components"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderBody()
	if m.showHelp {
		body = m.renderHelp()
	}

	bodyHeight := max(m.height-4, 5)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body),
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)
}

// renderHeader renders the title and the screen tabs.
func (m Model) renderHeader() string {
	title := m.theme.Bold.Foreground(m.theme.Primary).Render("🚀 Venture Labs Ops")

	tabs := make([]string, 0, len(viewmodel.Tabs))
	current := m.screen
	if current == viewmodel.ScreenDetail {
		current = viewmodel.ScreenApplications
	}
	for _, s := range viewmodel.Tabs {
		label := " " + s.String() + " "
		if s == current {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(tabs, " "))
}

// renderBody renders the current screen according to its load state.
func (m Model) renderBody() string {
	d := m.screens[m.screen]

	switch d.state {
	case viewmodel.StateLoading:
		return m.spinner.View() + " " +
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading "+strings.ToLower(m.screen.String())+"...")
	case viewmodel.StateError:
		return m.renderError(d.err)
	}

	switch m.screen {
	case viewmodel.ScreenOverview:
		return m.renderOverview()
	case viewmodel.ScreenPerks:
		return m.perks.View()
	case viewmodel.ScreenApplications:
		return m.apps.View()
	case viewmodel.ScreenDetail:
		return m.detail.View()
	}
	return ""
}

func (m Model) renderOverview() string {
	if m.stats == nil {
		return ""
	}

	now := m.now()
	cards := components.RenderStatCards(viewmodel.BuildStatCards(*m.stats, now), m.theme, m.width)
	activity := components.RenderActivity(viewmodel.BuildActivity(m.activity, now), m.theme, m.width/2)
	health := components.RenderComponents(viewmodel.BuildComponents(m.status), m.theme)

	var lower string
	if m.width >= 100 {
		left := lipgloss.NewStyle().Width(m.width / 2).Render(activity)
		lower = lipgloss.JoinHorizontal(lipgloss.Top, left, health)
	} else {
		lower = lipgloss.JoinVertical(lipgloss.Left, activity, "", health)
	}

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("S scrape all perks · A analyze all pending")
	return lipgloss.JoinVertical(lipgloss.Left, cards, "", lower, "", hint)
}

func (m Model) renderError(err error) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Could not load "+strings.ToLower(m.screen.String())),
		"",
		m.theme.Normal.Render(errorText(err)),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press r to retry"),
	)
	return m.theme.BorderedBox.Render(content)
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Venture Labs Ops - Help"),
		h.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)
	return m.theme.BorderedBox.Render(content)
}

// renderStatusBar renders the screen name and the latest status message.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.screen.String())

	var msg string
	if m.statusText != "" {
		style := m.theme.StatusSuccess
		if m.statusErr {
			style = m.theme.StatusError
		}
		msg = style.Render(viewmodel.TruncateString(m.statusText, max(m.width-20, 10)))
	}

	return left + "  " + msg
}
