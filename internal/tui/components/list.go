package components

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// Column is one table column of a record list.
type Column[R listing.Record] struct {
	Value func(r R, now time.Time) string
	Title string
	Width int
}

// ListLayout configures a record list screen.
type ListLayout[R listing.Record] struct {
	Title string
	// CategoryName labels the category dimension, e.g. "category" or "sector".
	CategoryName string
	// RateStatus is the status counted by the per-category rate.
	RateStatus string
	RateLabel  string
	Columns    []Column[R]
	// Statuses are the status filter options in display order.
	Statuses []string
}

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// ListModel is a filterable table of records. The filter is view state
// owned by the model; every change re-runs the query over the full set.
type ListModel[R listing.Record] struct {
	theme       themes.Theme
	now         func() time.Time
	filter      listing.Filter
	result      listing.Result[R]
	layout      ListLayout[R]
	records     []R
	categories  []string
	searchInput textinput.Model
	table       table.Model
	mode        ListMode
	width       int
	height      int
}

// NewList creates an empty list.
func NewList[R listing.Record](layout ListLayout[R], theme themes.Theme, now func() time.Time) ListModel[R] {
	columns := make([]table.Column, len(layout.Columns))
	for i, c := range layout.Columns {
		columns[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	keys := table.DefaultKeyMap()
	keys.PageUp = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up"))
	keys.PageDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down"))
	keys.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up"))
	keys.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(keys),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search " + strings.ToLower(layout.Title) + "..."
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 64

	m := ListModel[R]{
		theme:       theme,
		now:         now,
		filter:      listing.DefaultFilter(),
		layout:      layout,
		searchInput: searchInput,
		table:       t,
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

// SetRecords replaces the records and re-applies the current filter.
func (m *ListModel[R]) SetRecords(records []R) {
	m.records = records
	m.categories = listing.DistinctCategories(records)
	m.refresh()
}

// SetFilter replaces the filter.
func (m *ListModel[R]) SetFilter(f listing.Filter) {
	m.filter = f
	m.searchInput.SetValue(f.SearchTerm)
	m.refresh()
}

// Filter returns the current filter.
func (m ListModel[R]) Filter() listing.Filter {
	return m.filter
}

// Result returns the visible records and the summary of all records.
func (m ListModel[R]) Result() listing.Result[R] {
	return m.result
}

// Records returns the unfiltered records.
func (m ListModel[R]) Records() []R {
	return m.records
}

// Searching reports whether the search input has focus.
func (m ListModel[R]) Searching() bool {
	return m.mode == ModeSearch
}

// Selected returns the record under the cursor.
func (m ListModel[R]) Selected() (R, bool) {
	var zero R
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Visible) {
		return zero, false
	}
	return m.result.Visible[i], true
}

// Resize sets the space available to the list.
func (m *ListModel[R]) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	// Header, summary, search, rates and footer take six lines.
	m.table.SetHeight(max(height-6, 3))
}

func (m *ListModel[R]) refresh() {
	m.result = listing.Query(m.records, m.filter, m.layout.RateStatus)

	now := m.now()
	rows := make([]table.Row, len(m.result.Visible))
	for i, r := range m.result.Visible {
		row := make(table.Row, len(m.layout.Columns))
		for j, c := range m.layout.Columns {
			row[j] = viewmodel.SanitizeForDisplay(c.Value(r, now))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Update handles messages.
func (m ListModel[R]) Update(msg tea.Msg) (ListModel[R], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == ModeSearch {
		return m.handleSearchMode(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		m.mode = ModeSearch
		return m, m.searchInput.Focus()
	case "f":
		m.filter.Status = viewmodel.CycleOption(m.filter.Status, m.layout.Statuses)
		m.refresh()
		return m, nil
	case "F":
		m.filter.Category = viewmodel.CycleOption(m.filter.Category, m.categories)
		m.refresh()
		return m, nil
	case "esc":
		m.SetFilter(listing.DefaultFilter())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ListModel[R]) handleSearchMode(msg tea.KeyMsg) (ListModel[R], tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filter.SearchTerm = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.filter.SearchTerm {
		m.filter.SearchTerm = m.searchInput.Value()
		m.refresh()
	}
	return m, cmd
}

// View renders the list.
func (m ListModel[R]) View() string {
	sections := []string{
		m.renderSummary(),
		m.renderFilterLine(),
	}

	if len(m.result.Visible) == 0 {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderRates(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ListModel[R]) renderSummary() string {
	summary := m.result.Summary
	parts := []string{m.theme.Bold.Render(fmt.Sprintf("%d %s", summary.Total, strings.ToLower(m.layout.Title)))}
	for _, status := range m.layout.Statuses {
		style := m.theme.ToneStyle(listing.Classify(status))
		parts = append(parts, style.Render(fmt.Sprintf("%s %d", status, summary.Count(status))))
	}
	return strings.Join(parts, "  ·  ")
}

func (m ListModel[R]) renderFilterLine() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	if m.mode == ModeSearch {
		return m.searchInput.View()
	}

	desc := viewmodel.DescribeFilter(m.filter, m.layout.CategoryName)
	if desc == "" {
		return muted.Render("No filters · / search · f status · F " + m.layout.CategoryName)
	}
	return m.theme.StatusInfo.Render("Filtered by "+desc) + muted.Render(" · esc to clear")
}

func (m ListModel[R]) renderEmpty() string {
	msg := "No " + strings.ToLower(m.layout.Title) + " yet"
	if !m.filter.IsDefault() {
		msg = "No " + strings.ToLower(m.layout.Title) + " match the current filters"
	}
	return m.theme.Box.Render(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(msg))
}

func (m ListModel[R]) renderRates() string {
	rates := m.result.Summary.RateByCategory
	if len(rates) == 0 {
		return ""
	}

	categories := make([]string, 0, len(rates))
	for c := range rates {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, fmt.Sprintf("%s %s", c, viewmodel.FormatRate(rates[c])))
	}

	line := m.layout.RateLabel + ": " + strings.Join(parts, " · ")
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(viewmodel.TruncateString(line, max(m.width, 20)))
}

func (m ListModel[R]) renderFooter() string {
	footer := fmt.Sprintf("Showing %d of %d", len(m.result.Visible), m.result.Summary.Total)
	if latest := m.result.Summary.LatestUpdate; !latest.IsZero() {
		footer += " · latest " + listing.FormatRelative(latest, m.now())
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(footer)
}
