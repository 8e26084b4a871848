// Package model defines the records and payloads exchanged with the operations API.
package model

import "time"

// PerkStatus is the scrape state of a perk as reported by the API.
type PerkStatus string

// Perk status constants.
const (
	PerkActive  PerkStatus = "active"
	PerkError   PerkStatus = "error"
	PerkPending PerkStatus = "pending"
	PerkExpired PerkStatus = "expired"
)

// PerkStatuses lists the statuses the API is documented to return, in display order.
var PerkStatuses = []PerkStatus{PerkActive, PerkError, PerkPending, PerkExpired}

// Perk is a third-party benefit offer such as cloud credits.
type Perk struct {
	LastUpdated       time.Time  `json:"lastUpdated" yaml:"lastUpdated"`
	Name              string     `json:"name" yaml:"name"`
	Category          string     `json:"category" yaml:"category"`
	Status            PerkStatus `json:"status" yaml:"status"`
	URL               string     `json:"url" yaml:"url"`
	Requirements      string     `json:"requirements" yaml:"requirements"`
	Value             string     `json:"value" yaml:"value"`
	ApplicationWindow string     `json:"applicationWindow,omitempty" yaml:"applicationWindow,omitempty"`
	Availability      string     `json:"availability" yaml:"availability"`
	Description       string     `json:"description,omitempty" yaml:"description,omitempty"`
	ID                int64      `json:"id" yaml:"id"`
}

// PerkInput is the payload for creating or updating a perk.
type PerkInput struct {
	Name        string `json:"name,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// ScraperStatus reports the state of the perks scraper.
type ScraperStatus struct {
	LastRun   *time.Time `json:"lastRun,omitempty"`
	Message   string     `json:"message,omitempty"`
	Processed int        `json:"processed"`
	Failed    int        `json:"failed"`
	Running   bool       `json:"running"`
}
