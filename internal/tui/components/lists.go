package components

import (
	"fmt"
	"time"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// PerkList is the list model of the perks screen.
type PerkList = ListModel[listing.PerkRecord]

// ApplicationList is the list model of the applications screen.
type ApplicationList = ListModel[listing.ApplicationRecord]

// NewPerkList creates the perks table.
func NewPerkList(theme themes.Theme, now func() time.Time) PerkList {
	statuses := make([]string, len(model.PerkStatuses))
	for i, s := range model.PerkStatuses {
		statuses[i] = string(s)
	}

	return NewList(ListLayout[listing.PerkRecord]{
		Title:        "Perks",
		CategoryName: "category",
		RateStatus:   string(model.PerkActive),
		RateLabel:    "Active by category",
		Statuses:     statuses,
		Columns: []Column[listing.PerkRecord]{
			{Title: "Name", Width: 30, Value: func(p listing.PerkRecord, _ time.Time) string { return p.Name }},
			{Title: "Category", Width: 16, Value: func(p listing.PerkRecord, _ time.Time) string { return p.Category }},
			{Title: "Status", Width: 9, Value: func(p listing.PerkRecord, _ time.Time) string { return string(p.Status) }},
			{Title: "Value", Width: 22, Value: func(p listing.PerkRecord, _ time.Time) string { return p.Value }},
			{Title: "Updated", Width: 10, Value: func(p listing.PerkRecord, now time.Time) string {
				return listing.FormatRelative(p.LastUpdated, now)
			}},
		},
	}, theme, now)
}

// NewApplicationList creates the applications table.
func NewApplicationList(theme themes.Theme, now func() time.Time) ApplicationList {
	statuses := make([]string, len(model.ApplicationStatuses))
	for i, s := range model.ApplicationStatuses {
		statuses[i] = string(s)
	}

	return NewList(ListLayout[listing.ApplicationRecord]{
		Title:        "Applications",
		CategoryName: "sector",
		RateStatus:   string(model.ApplicationApproved),
		RateLabel:    "Approved by sector",
		Statuses:     statuses,
		Columns: []Column[listing.ApplicationRecord]{
			{Title: "ID", Width: 5, Value: func(a listing.ApplicationRecord, _ time.Time) string { return fmt.Sprintf("%d", a.ID) }},
			{Title: "Team", Width: 22, Value: func(a listing.ApplicationRecord, _ time.Time) string { return a.TeamName }},
			{Title: "Sector", Width: 14, Value: func(a listing.ApplicationRecord, _ time.Time) string { return a.Sector }},
			{Title: "Stage", Width: 10, Value: func(a listing.ApplicationRecord, _ time.Time) string { return a.Stage }},
			{Title: "Status", Width: 9, Value: func(a listing.ApplicationRecord, _ time.Time) string { return string(a.Status) }},
			{Title: "Score", Width: 6, Value: func(a listing.ApplicationRecord, _ time.Time) string { return viewmodel.FormatScore(a.AIScore) }},
			{Title: "Review", Width: 12, Value: func(a listing.ApplicationRecord, _ time.Time) string { return string(a.HumanReview) }},
			{Title: "Submitted", Width: 10, Value: func(a listing.ApplicationRecord, now time.Time) string {
				return listing.FormatRelative(a.SubmissionDate, now)
			}},
		},
	}, theme, now)
}
