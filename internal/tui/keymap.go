package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	NextTab key.Binding
	PrevTab key.Binding
	Open    key.Binding
	Back    key.Binding

	// Lists
	Search         key.Binding
	FilterStatus   key.Binding
	FilterCategory key.Binding

	// Actions
	Scrape     key.Binding
	ScrapeAll  key.Binding
	Analyze    key.Binding
	AnalyzeAll key.Binding
	Approve    key.Binding
	Reject     key.Binding
	Comment    key.Binding
	Refresh    key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next screen"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous screen"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open application"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back/clear filters"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle status"),
		),
		FilterCategory: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "cycle category/sector"),
		),

		Scrape: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scrape perk"),
		),
		ScrapeAll: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "scrape all perks"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "analyze application"),
		),
		AnalyzeAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "analyze all pending"),
		),
		Approve: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "approve"),
		),
		Reject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "reject"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/Ctrl+C", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Search, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Open, k.Back},
		{k.Search, k.FilterStatus, k.FilterCategory, k.Refresh},
		{k.Scrape, k.ScrapeAll, k.Analyze, k.AnalyzeAll},
		{k.Approve, k.Reject, k.Comment},
		{k.Help, k.Quit},
	}
}
