package viewmodel

import (
	"fmt"
	"sort"
	"time"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

// StatCard is one headline number on the overview screen.
type StatCard struct {
	Title  string
	Value  string
	Detail string
	Tone   listing.Tone
}

// ActivityItem is one row of the recent activity feed.
type ActivityItem struct {
	Title  string
	Age    string
	Status string
	Tone   listing.Tone
}

// ComponentItem is the health of one backend component.
type ComponentItem struct {
	Name  string
	State string
	Tone  listing.Tone
}

// BuildStatCards returns the four overview cards for stats.
func BuildStatCards(stats model.DashboardStats, now time.Time) []StatCard {
	updated := "never updated"
	if !stats.Perks.LastUpdated.IsZero() {
		updated = "Last updated " + listing.FormatRelative(stats.Perks.LastUpdated, now)
	}

	failedTone := listing.ToneNeutral
	if stats.Perks.FailedUpdates > 0 {
		failedTone = listing.ToneError
	}

	return []StatCard{
		{
			Title:  "Total Perks",
			Value:  fmt.Sprintf("%d", stats.Perks.Total),
			Detail: updated,
		},
		{
			Title:  "Pitch Decks",
			Value:  fmt.Sprintf("%d", stats.PitchDecks.Total),
			Detail: fmt.Sprintf("%d pending analysis", stats.PitchDecks.Pending),
			Tone:   listing.ToneWarning,
		},
		{
			Title:  "Successful Updates",
			Value:  fmt.Sprintf("%d", stats.Perks.SuccessfulUpdates),
			Detail: FormatRate(stats.Perks.SuccessRate()) + " success rate",
			Tone:   listing.ToneSuccess,
		},
		{
			Title:  "Failed Updates",
			Value:  fmt.Sprintf("%d", stats.Perks.FailedUpdates),
			Detail: "Require attention",
			Tone:   failedTone,
		},
	}
}

// BuildActivity converts the activity feed for display, keeping its order.
func BuildActivity(activity []model.Activity, now time.Time) []ActivityItem {
	items := make([]ActivityItem, 0, len(activity))
	for _, a := range activity {
		items = append(items, ActivityItem{
			Title:  SanitizeForDisplay(a.Title),
			Age:    listing.FormatRelative(a.Timestamp, now),
			Status: a.Status,
			Tone:   listing.Classify(a.Status),
		})
	}
	return items
}

// BuildComponents lists component health sorted by name.
func BuildComponents(status model.SystemStatus) []ComponentItem {
	names := make([]string, 0, len(status))
	for name := range status {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]ComponentItem, 0, len(names))
	for _, name := range names {
		state := string(status[name])
		items = append(items, ComponentItem{
			Name:  name,
			State: state,
			Tone:  listing.ComponentTone(state),
		})
	}
	return items
}
