package listing

import (
	"time"

	"github.com/venturelabs/vlops/internal/model"
)

// PerkRecord adapts a perk to Record. Search covers name and category.
type PerkRecord struct {
	model.Perk
}

// SearchFields implements Record.
func (p PerkRecord) SearchFields() []string { return []string{p.Name, p.Category} }

// StatusValue implements Record.
func (p PerkRecord) StatusValue() string { return string(p.Status) }

// CategoryValue implements Record.
func (p PerkRecord) CategoryValue() string { return p.Category }

// Timestamp implements Record.
func (p PerkRecord) Timestamp() time.Time { return p.LastUpdated }

// ApplicationRecord adapts an application to Record. Search covers team,
// company and sector; the category filter applies to the sector.
type ApplicationRecord struct {
	model.Application
}

// SearchFields implements Record.
func (a ApplicationRecord) SearchFields() []string {
	return []string{a.TeamName, a.CompanyName, a.Sector}
}

// StatusValue implements Record.
func (a ApplicationRecord) StatusValue() string { return string(a.Status) }

// CategoryValue implements Record.
func (a ApplicationRecord) CategoryValue() string { return a.Sector }

// Timestamp implements Record.
func (a ApplicationRecord) Timestamp() time.Time { return a.SubmissionDate }

// Perks wraps perks as records, preserving order.
func Perks(perks []model.Perk) []PerkRecord {
	out := make([]PerkRecord, len(perks))
	for i, p := range perks {
		out[i] = PerkRecord{Perk: p}
	}
	return out
}

// Applications wraps applications as records, preserving order.
func Applications(apps []model.Application) []ApplicationRecord {
	out := make([]ApplicationRecord, len(apps))
	for i, a := range apps {
		out[i] = ApplicationRecord{Application: a}
	}
	return out
}

// PendingIDs returns the ids of applications still waiting for analysis, in
// input order.
func PendingIDs(apps []model.Application) []int64 {
	var ids []int64
	for _, a := range apps {
		if a.Status == model.ApplicationPending {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
