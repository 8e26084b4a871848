// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/venturelabs/vlops/internal/model"
)

// ApplicationFilter narrows the application list on the server side.
// Empty fields are not sent.
type ApplicationFilter struct {
	Status string
	Sector string
	Search string
}

// PerkService is the perks half of the operations API.
type PerkService interface {
	ListPerks(ctx context.Context) ([]model.Perk, error)
	GetPerk(ctx context.Context, id int64) (*model.Perk, error)
	CreatePerk(ctx context.Context, input model.PerkInput) (*model.Perk, error)
	UpdatePerk(ctx context.Context, id int64, input model.PerkInput) (*model.Perk, error)
	DeletePerk(ctx context.Context, id int64) error

	// Scraping runs on the backend; these calls only request it.
	ScrapeAll(ctx context.Context) (*model.ActionResult, error)
	ScrapePerk(ctx context.Context, id int64) (*model.ActionResult, error)
	ScraperStatus(ctx context.Context) (*model.ScraperStatus, error)
}

// ApplicationService is the pitch-deck half of the operations API.
type ApplicationService interface {
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]model.Application, error)
	GetApplication(ctx context.Context, id int64) (*model.Application, error)
	UploadApplication(ctx context.Context, req model.UploadRequest) (*model.Application, error)

	AnalyzeApplication(ctx context.Context, id int64) (*model.ActionResult, error)
	AnalyzeBatch(ctx context.Context, ids []int64) (*model.ActionResult, error)
	AnalysisStatus(ctx context.Context, id int64) (*model.AnalysisProgress, error)

	UpdateReview(ctx context.Context, id int64, status model.ReviewStatus) (*model.Application, error)
	AddComment(ctx context.Context, id int64, comment string) (*model.Comment, error)
}

// SystemService exposes health, dashboard aggregates and logs.
type SystemService interface {
	SystemStatus(ctx context.Context) (model.SystemStatus, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]model.Activity, error)
	Logs(ctx context.Context, service string, limit int) ([]model.LogEntry, error)
}

// Provider is the full data source the console reads from and sends
// actions to.
type Provider interface {
	PerkService
	ApplicationService
	SystemService
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
