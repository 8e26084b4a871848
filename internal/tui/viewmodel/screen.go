// Package viewmodel holds the presentation state of the dashboard as plain
// data, independent of bubbletea and lipgloss.
package viewmodel

import "fmt"

// Screen identifies a dashboard screen.
type Screen int

const (
	// ScreenOverview shows headline stats, activity and system health.
	ScreenOverview Screen = iota
	// ScreenPerks lists perks.
	ScreenPerks
	// ScreenApplications lists pitch-deck applications.
	ScreenApplications
	// ScreenDetail shows one application.
	ScreenDetail
)

// Tabs are the screens reachable with tab navigation, in order.
var Tabs = []Screen{ScreenOverview, ScreenPerks, ScreenApplications}

// String returns the screen title.
func (s Screen) String() string {
	switch s {
	case ScreenOverview:
		return "Overview"
	case ScreenPerks:
		return "Perks"
	case ScreenApplications:
		return "Applications"
	case ScreenDetail:
		return "Application"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Next returns the tab after s. The detail screen belongs to Applications.
func (s Screen) Next() Screen {
	return Tabs[(s.tabIndex()+1)%len(Tabs)]
}

// Prev returns the tab before s.
func (s Screen) Prev() Screen {
	return Tabs[(s.tabIndex()+len(Tabs)-1)%len(Tabs)]
}

func (s Screen) tabIndex() int {
	if s == ScreenDetail {
		s = ScreenApplications
	}
	for i, t := range Tabs {
		if t == s {
			return i
		}
	}
	return 0
}

// AppState represents the load state of the current screen.
type AppState int

const (
	// StateLoading indicates a fetch is in flight and nothing is shown yet.
	StateLoading AppState = iota
	// StateReady indicates data is shown.
	StateReady
	// StateError indicates the last fetch failed and nothing is shown.
	StateError
)

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}
