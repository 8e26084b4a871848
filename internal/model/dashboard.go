package model

import (
	"math"
	"time"
)

// PerkTotals is the perks section of the dashboard statistics.
type PerkTotals struct {
	LastUpdated       time.Time `json:"lastUpdated"`
	Total             int       `json:"total"`
	SuccessfulUpdates int       `json:"successfulUpdates"`
	FailedUpdates     int       `json:"failedUpdates"`
}

// SuccessRate is the share of successful updates as a percentage rounded to
// one decimal. It is 0 when there are no perks.
func (p PerkTotals) SuccessRate() float64 {
	if p.Total == 0 {
		return 0
	}
	return math.Round(float64(p.SuccessfulUpdates)/float64(p.Total)*1000) / 10
}

// PitchDeckTotals is the applications section of the dashboard statistics.
type PitchDeckTotals struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Analyzed int `json:"analyzed"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DashboardStats holds the headline numbers of the overview screen.
type DashboardStats struct {
	Perks      PerkTotals      `json:"perks"`
	PitchDecks PitchDeckTotals `json:"pitchdecks"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Type      string    `json:"type" yaml:"type"`
	Title     string    `json:"title" yaml:"title"`
	Status    string    `json:"status" yaml:"status"`
	ID        int64     `json:"id" yaml:"id"`
}

// ComponentState is the health of a backend component.
type ComponentState string

// Component states.
const (
	ComponentOperational ComponentState = "operational"
	ComponentError       ComponentState = "error"
	ComponentMaintenance ComponentState = "maintenance"
)

// SystemStatus maps a component name (perks_scraper, pitchdeck_analyzer,
// database, api) to its state.
type SystemStatus map[string]ComponentState

// LogEntry is a single line from a backend service log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Level     string    `json:"level" yaml:"level"`
	Service   string    `json:"service" yaml:"service"`
	Message   string    `json:"message" yaml:"message"`
}

// ActionResult is the acknowledgement returned for asynchronous actions
// such as scrapes and analyses.
type ActionResult struct {
	Message string  `json:"message"`
	JobID   string  `json:"jobId,omitempty"`
	IDs     []int64 `json:"ids,omitempty"`
}
