// Package fixtures serves a fixed dataset through the same interface as the
// API client. It backs the demo mode and offline development.
package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
)

// Dataset is the content of a fixtures file.
type Dataset struct {
	Status       model.SystemStatus  `yaml:"status"`
	Perks        []model.Perk        `yaml:"perks"`
	Applications []model.Application `yaml:"applications"`
	Activity     []model.Activity    `yaml:"activity"`
	Logs         []model.LogEntry    `yaml:"logs"`
}

// Provider is a read-only service.Provider over a Dataset. Every mutation
// returns common.ErrReadOnly.
type Provider struct {
	data Dataset
}

var _ service.Provider = (*Provider)(nil)

// New returns a provider over data after checking that ids are unique.
func New(data Dataset) (*Provider, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	return &Provider{data: data}, nil
}

// Load reads a YAML dataset from path.
func Load(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}

	provider, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return provider, nil
}

// Parse decodes a YAML dataset. Unknown keys are rejected.
func Parse(r io.Reader) (*Provider, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Dataset
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return New(data)
}

func validate(data Dataset) error {
	seen := make(map[int64]bool, len(data.Perks))
	for _, p := range data.Perks {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate perk id %d", common.ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true
	}

	clear(seen)
	for _, a := range data.Applications {
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate application id %d", common.ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

func readOnly(op string) error {
	return fmt.Errorf("%s: %w", op, common.ErrReadOnly)
}

// ListPerks returns every perk in file order.
func (p *Provider) ListPerks(_ context.Context) ([]model.Perk, error) {
	return slices.Clone(p.data.Perks), nil
}

// GetPerk returns the perk with the given id.
func (p *Provider) GetPerk(_ context.Context, id int64) (*model.Perk, error) {
	i := slices.IndexFunc(p.data.Perks, func(perk model.Perk) bool { return perk.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("perk %d: %w", id, common.ErrNotFound)
	}
	perk := p.data.Perks[i]
	return &perk, nil
}

// CreatePerk is not supported.
func (p *Provider) CreatePerk(_ context.Context, _ model.PerkInput) (*model.Perk, error) {
	return nil, readOnly("create perk")
}

// UpdatePerk is not supported.
func (p *Provider) UpdatePerk(_ context.Context, _ int64, _ model.PerkInput) (*model.Perk, error) {
	return nil, readOnly("update perk")
}

// DeletePerk is not supported.
func (p *Provider) DeletePerk(_ context.Context, _ int64) error {
	return readOnly("delete perk")
}

// ScrapeAll is not supported.
func (p *Provider) ScrapeAll(_ context.Context) (*model.ActionResult, error) {
	return nil, readOnly("scrape perks")
}

// ScrapePerk is not supported.
func (p *Provider) ScrapePerk(_ context.Context, _ int64) (*model.ActionResult, error) {
	return nil, readOnly("scrape perk")
}

// ScraperStatus reports an idle scraper whose last run covered the dataset.
func (p *Provider) ScraperStatus(_ context.Context) (*model.ScraperStatus, error) {
	summary := listing.Summarize(listing.Perks(p.data.Perks), string(model.PerkActive))
	status := &model.ScraperStatus{
		Processed: summary.Total,
		Failed:    summary.Count(string(model.PerkError)),
		Message:   "fixture data",
	}
	if !summary.LatestUpdate.IsZero() {
		last := summary.LatestUpdate
		status.LastRun = &last
	}
	return status, nil
}

// ListApplications applies the filter the way the server does: status and
// sector must match exactly and search is a substring match. The records
// returned are copies.
func (p *Provider) ListApplications(_ context.Context, filter service.ApplicationFilter) ([]model.Application, error) {
	f := listing.Filter{
		SearchTerm: filter.Search,
		Status:     filter.Status,
		Category:   filter.Sector,
	}

	apps := make([]model.Application, 0, len(p.data.Applications))
	for _, a := range p.data.Applications {
		if listing.Matches(listing.ApplicationRecord{Application: a}, f) {
			apps = append(apps, a.Clone())
		}
	}
	return apps, nil
}

// GetApplication returns the application with the given id.
func (p *Provider) GetApplication(_ context.Context, id int64) (*model.Application, error) {
	i := slices.IndexFunc(p.data.Applications, func(a model.Application) bool { return a.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("application %d: %w", id, common.ErrNotFound)
	}
	app := p.data.Applications[i].Clone()
	return &app, nil
}

// UploadApplication is not supported.
func (p *Provider) UploadApplication(_ context.Context, _ model.UploadRequest) (*model.Application, error) {
	return nil, readOnly("upload application")
}

// AnalyzeApplication is not supported.
func (p *Provider) AnalyzeApplication(_ context.Context, _ int64) (*model.ActionResult, error) {
	return nil, readOnly("analyze application")
}

// AnalyzeBatch is not supported.
func (p *Provider) AnalyzeBatch(_ context.Context, _ []int64) (*model.ActionResult, error) {
	return nil, readOnly("analyze applications")
}

// AnalysisStatus derives progress from whether the application has extracted
// fields.
func (p *Provider) AnalysisStatus(ctx context.Context, id int64) (*model.AnalysisProgress, error) {
	app, err := p.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	progress := &model.AnalysisProgress{ApplicationID: id, Status: model.AnalysisPending}
	if app.HasAnalysis() {
		progress.Status = model.AnalysisCompleted
		progress.Progress = 100
	}
	return progress, nil
}

// UpdateReview is not supported.
func (p *Provider) UpdateReview(_ context.Context, _ int64, _ model.ReviewStatus) (*model.Application, error) {
	return nil, readOnly("update review")
}

// AddComment is not supported.
func (p *Provider) AddComment(_ context.Context, _ int64, _ string) (*model.Comment, error) {
	return nil, readOnly("add comment")
}

// SystemStatus returns the component states from the dataset.
func (p *Provider) SystemStatus(_ context.Context) (model.SystemStatus, error) {
	status := make(model.SystemStatus, len(p.data.Status))
	for name, state := range p.data.Status {
		status[name] = state
	}
	return status, nil
}

// DashboardStats derives the headline numbers from the perks and
// applications in the dataset.
func (p *Provider) DashboardStats(_ context.Context) (*model.DashboardStats, error) {
	perks := listing.Summarize(listing.Perks(p.data.Perks), string(model.PerkActive))
	apps := listing.Summarize(listing.Applications(p.data.Applications), string(model.ApplicationApproved))

	return &model.DashboardStats{
		Perks: model.PerkTotals{
			LastUpdated:       perks.LatestUpdate,
			Total:             perks.Total,
			SuccessfulUpdates: perks.Count(string(model.PerkActive)),
			FailedUpdates:     perks.Count(string(model.PerkError)),
		},
		PitchDecks: model.PitchDeckTotals{
			Total:    apps.Total,
			Pending:  apps.Count(string(model.ApplicationPending)),
			Analyzed: apps.Count(string(model.ApplicationAnalyzed)),
			Approved: apps.Count(string(model.ApplicationApproved)),
			Rejected: apps.Count(string(model.ApplicationRejected)),
		},
	}, nil
}

// RecentActivity returns the activity feed in file order.
func (p *Provider) RecentActivity(_ context.Context) ([]model.Activity, error) {
	return slices.Clone(p.data.Activity), nil
}

// Logs returns up to limit entries for the named service. A limit of zero
// returns them all.
func (p *Provider) Logs(_ context.Context, svc string, limit int) ([]model.LogEntry, error) {
	svc = strings.TrimSpace(svc)
	if svc == "" {
		return nil, fmt.Errorf("%w: service name is required", common.ErrInvalidInput)
	}

	entries := []model.LogEntry{}
	for _, e := range p.data.Logs {
		if !strings.EqualFold(e.Service, svc) {
			continue
		}
		entries = append(entries, e)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}
