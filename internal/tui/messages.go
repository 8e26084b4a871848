package tui

import (
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// Fetch results. gen is the generation of the fetch that produced them;
// results from superseded fetches are dropped.
type overviewLoadedMsg struct {
	err      error
	stats    *model.DashboardStats
	status   model.SystemStatus
	activity []model.Activity
	gen      uint64
}

type perksLoadedMsg struct {
	err   error
	perks []model.Perk
	gen   uint64
}

type applicationsLoadedMsg struct {
	err  error
	apps []model.Application
	gen  uint64
}

type applicationLoadedMsg struct {
	err error
	app *model.Application
	gen uint64
}

type analysisStatusMsg struct {
	err      error
	progress *model.AnalysisProgress
}

// actionDoneMsg reports the outcome of an action sent to the backend.
type actionDoneMsg struct {
	err     error
	message string
	// refresh lists the screens whose data the action changed.
	refresh []viewmodel.Screen
	// pollID is the application to fetch analysis progress for, if any.
	pollID int64
}

type clearStatusMsg struct {
	seq int
}
