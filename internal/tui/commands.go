package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/venturelabs/vlops/internal/api"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// beginFetch starts a new generation for screen s and cancels the fetch it
// supersedes.
func (m *Model) beginFetch(s viewmodel.Screen) (context.Context, context.CancelFunc, uint64) {
	d := &m.screens[s]
	if d.cancel != nil {
		d.cancel()
	}

	ctx, cancel := context.WithTimeout(m.ctx, m.config.Timeout)
	d.gen++
	d.cancel = cancel
	if !d.loaded {
		d.state = viewmodel.StateLoading
	}
	return ctx, cancel, d.gen
}

// fetch returns the loader for screen s.
func (m *Model) fetch(s viewmodel.Screen) tea.Cmd {
	switch s {
	case viewmodel.ScreenOverview:
		return m.loadOverview()
	case viewmodel.ScreenPerks:
		return m.loadPerks()
	case viewmodel.ScreenApplications:
		return m.loadApplications()
	case viewmodel.ScreenDetail:
		if id := m.detail.ID(); id != 0 {
			return m.loadApplication(id)
		}
	}
	return nil
}

// loadOverview loads stats, activity and system status concurrently.
func (m *Model) loadOverview() tea.Cmd {
	ctx, cancel, gen := m.beginFetch(viewmodel.ScreenOverview)
	provider := m.provider

	return func() tea.Msg {
		defer cancel()

		msg := overviewLoadedMsg{gen: gen}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			stats, err := provider.DashboardStats(gctx)
			if err != nil {
				return fmt.Errorf("failed to load dashboard stats: %w", err)
			}
			msg.stats = stats
			return nil
		})
		g.Go(func() error {
			activity, err := provider.RecentActivity(gctx)
			if err != nil {
				return fmt.Errorf("failed to load activity: %w", err)
			}
			msg.activity = activity
			return nil
		})
		g.Go(func() error {
			status, err := provider.SystemStatus(gctx)
			if err != nil {
				return fmt.Errorf("failed to load system status: %w", err)
			}
			msg.status = status
			return nil
		})

		if err := g.Wait(); err != nil {
			return overviewLoadedMsg{gen: gen, err: err}
		}
		return msg
	}
}

func (m *Model) loadPerks() tea.Cmd {
	ctx, cancel, gen := m.beginFetch(viewmodel.ScreenPerks)
	provider := m.provider

	return func() tea.Msg {
		defer cancel()

		perks, err := provider.ListPerks(ctx)
		if err != nil {
			return perksLoadedMsg{gen: gen, err: fmt.Errorf("failed to load perks: %w", err)}
		}
		return perksLoadedMsg{gen: gen, perks: perks}
	}
}

// loadApplications fetches every application. Filtering is done locally so
// that headline counts cover the whole collection.
func (m *Model) loadApplications() tea.Cmd {
	ctx, cancel, gen := m.beginFetch(viewmodel.ScreenApplications)
	provider := m.provider

	return func() tea.Msg {
		defer cancel()

		apps, err := provider.ListApplications(ctx, service.ApplicationFilter{})
		if err != nil {
			return applicationsLoadedMsg{gen: gen, err: fmt.Errorf("failed to load applications: %w", err)}
		}
		return applicationsLoadedMsg{gen: gen, apps: apps}
	}
}

func (m *Model) loadApplication(id int64) tea.Cmd {
	ctx, cancel, gen := m.beginFetch(viewmodel.ScreenDetail)
	provider := m.provider

	return func() tea.Msg {
		defer cancel()

		app, err := provider.GetApplication(ctx, id)
		if err != nil {
			return applicationLoadedMsg{gen: gen, err: fmt.Errorf("failed to load application %d: %w", id, err)}
		}
		return applicationLoadedMsg{gen: gen, app: app}
	}
}

func (m Model) loadAnalysisStatus(id int64) tea.Cmd {
	parent, timeout, provider := m.ctx, m.config.Timeout, m.provider

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		progress, err := provider.AnalysisStatus(ctx, id)
		return analysisStatusMsg{progress: progress, err: err}
	}
}

// actionPlan names an action and the screens its success invalidates.
type actionPlan struct {
	name    string
	refresh []viewmodel.Screen
	// pollID is the application whose analysis progress is fetched on success.
	pollID int64
}

// action runs fn against the provider and reports the outcome. The screens
// in plan.refresh are re-fetched once the action completes.
func (m Model) action(plan actionPlan, fn func(ctx context.Context, p service.Provider) (string, error)) tea.Cmd {
	parent, timeout, provider := m.ctx, m.config.Timeout, m.provider

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		message, err := fn(ctx, provider)
		if err != nil {
			common.LogError(err, "Dashboard action failed", common.Fields{"action": plan.name})
			return actionDoneMsg{err: err, refresh: plan.refresh}
		}
		common.LogInfo("Dashboard action completed", common.Fields{"action": plan.name})
		return actionDoneMsg{message: message, refresh: plan.refresh, pollID: plan.pollID}
	}
}

func (m Model) scrapePerk(perk model.Perk) tea.Cmd {
	return m.action(actionPlan{name: "scrape_perk", refresh: []viewmodel.Screen{viewmodel.ScreenPerks}},
		func(ctx context.Context, p service.Provider) (string, error) {
			res, err := p.ScrapePerk(ctx, perk.ID)
			if err != nil {
				return "", err
			}
			return resultMessage(res, "Scrape started for "+perk.Name), nil
		})
}

func (m Model) scrapeAll() tea.Cmd {
	return m.action(actionPlan{name: "scrape_all", refresh: []viewmodel.Screen{viewmodel.ScreenPerks, viewmodel.ScreenOverview}},
		func(ctx context.Context, p service.Provider) (string, error) {
			res, err := p.ScrapeAll(ctx)
			if err != nil {
				return "", err
			}
			return resultMessage(res, "Scrape started for all perks"), nil
		})
}

func (m Model) analyze(app model.Application) tea.Cmd {
	plan := actionPlan{
		name:    "analyze",
		refresh: []viewmodel.Screen{viewmodel.ScreenApplications, viewmodel.ScreenDetail},
		pollID:  app.ID,
	}
	return m.action(plan, func(ctx context.Context, p service.Provider) (string, error) {
		res, err := p.AnalyzeApplication(ctx, app.ID)
		if err != nil {
			return "", err
		}
		return resultMessage(res, "Analysis started for "+app.TeamName), nil
	})
}

// analyzePending requests analysis of every application in pending status,
// as listed by the backend at the time of the request.
func (m Model) analyzePending() tea.Cmd {
	plan := actionPlan{
		name:    "analyze_batch",
		refresh: []viewmodel.Screen{viewmodel.ScreenApplications, viewmodel.ScreenOverview},
	}
	return m.action(plan, func(ctx context.Context, p service.Provider) (string, error) {
		apps, err := p.ListApplications(ctx, service.ApplicationFilter{})
		if err != nil {
			return "", fmt.Errorf("failed to list applications: %w", err)
		}

		ids := listing.PendingIDs(apps)
		if len(ids) == 0 {
			return "No applications are pending analysis", nil
		}

		res, err := p.AnalyzeBatch(ctx, ids)
		if err != nil {
			return "", err
		}
		return resultMessage(res, fmt.Sprintf("Analysis started for %d applications", len(ids))), nil
	})
}

func (m Model) review(app model.Application, status model.ReviewStatus) tea.Cmd {
	return m.action(actionPlan{name: "review", refresh: []viewmodel.Screen{viewmodel.ScreenApplications, viewmodel.ScreenDetail}},
		func(ctx context.Context, p service.Provider) (string, error) {
			if _, err := p.UpdateReview(ctx, app.ID, status); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s marked %s", app.TeamName, status), nil
		})
}

func (m Model) comment(id int64, text string) tea.Cmd {
	return m.action(actionPlan{name: "comment", refresh: []viewmodel.Screen{viewmodel.ScreenDetail}},
		func(ctx context.Context, p service.Provider) (string, error) {
			if _, err := p.AddComment(ctx, id, text); err != nil {
				return "", err
			}
			return "Comment added", nil
		})
}

func resultMessage(res *model.ActionResult, fallback string) string {
	if res != nil && res.Message != "" {
		return res.Message
	}
	return fallback
}

// errorText is the status line text for a failed request.
func errorText(err error) string {
	return api.UserMessage(err)
}
