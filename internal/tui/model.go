package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
	"github.com/venturelabs/vlops/internal/tui/components"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// screenData tracks the fetch state of one screen.
type screenData struct {
	err    error
	cancel context.CancelFunc
	gen    uint64
	state  viewmodel.AppState
	loaded bool
}

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	provider   service.Provider
	stats      *model.DashboardStats
	now        func() time.Time
	initCmd    tea.Cmd
	status     model.SystemStatus
	theme      themes.Theme
	activity   []model.Activity
	detailApp  model.Application
	perks      components.PerkList
	apps       components.ApplicationList
	detail     components.DetailModel
	help       help.Model
	spinner    spinner.Model
	keymap     KeyMap
	config     Config
	statusText string
	screens    [viewmodel.ScreenDetail + 1]screenData
	statusSeq  int
	screen     viewmodel.Screen
	width      int
	height     int
	statusErr  bool
	showHelp   bool
	quitting   bool
}

// newModel creates a new model with the given configuration. The overview
// fetch is prepared here and started by Init.
func newModel(ctx context.Context, cfg Config) Model {
	m := Model{
		ctx:      ctx,
		provider: cfg.Provider,
		now:      cfg.Now,
		theme:    cfg.Theme,
		perks:    components.NewPerkList(cfg.Theme, cfg.Now),
		apps:     components.NewApplicationList(cfg.Theme, cfg.Now),
		detail:   components.NewDetail(cfg.Theme),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		keymap:   DefaultKeyMap(),
		config:   cfg,
		screen:   viewmodel.ScreenOverview,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.spinner.Style = m.spinner.Style.Foreground(cfg.Theme.Primary)
	m.handleResize()
	m.initCmd = m.loadOverview()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initCmd)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case overviewLoadedMsg:
		ok, cmd := m.accept(viewmodel.ScreenOverview, msg.gen, msg.err)
		if ok {
			m.stats = msg.stats
			m.activity = msg.activity
			m.status = msg.status
		}
		return m, cmd

	case perksLoadedMsg:
		ok, cmd := m.accept(viewmodel.ScreenPerks, msg.gen, msg.err)
		if ok {
			m.perks.SetRecords(listing.Perks(msg.perks))
		}
		return m, cmd

	case applicationsLoadedMsg:
		ok, cmd := m.accept(viewmodel.ScreenApplications, msg.gen, msg.err)
		if ok {
			m.apps.SetRecords(listing.Applications(msg.apps))
		}
		return m, cmd

	case applicationLoadedMsg:
		ok, cmd := m.accept(viewmodel.ScreenDetail, msg.gen, msg.err)
		if ok && msg.app != nil {
			m.detailApp = *msg.app
			m.detail.SetApplication(*msg.app)
		}
		return m, cmd

	case analysisStatusMsg:
		if msg.err != nil {
			common.LogDebug("Analysis status unavailable", common.Fields{"error": msg.err.Error()})
			return m, nil
		}
		if msg.progress != nil {
			m.detail.SetProgress(*msg.progress)
		}
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case components.CommentSubmittedMsg:
		status := m.setStatus("Sending comment...", false)
		return m, tea.Batch(status, m.comment(msg.ID, msg.Text))

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusText = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m.updateActive(msg)
}

// accept applies the bookkeeping of a fetch result for screen s. It reports
// false for results of superseded fetches and for failures.
func (m *Model) accept(s viewmodel.Screen, gen uint64, err error) (bool, tea.Cmd) {
	d := &m.screens[s]
	if gen != d.gen {
		return false, nil
	}
	d.cancel = nil

	if err != nil {
		d.err = err
		if !d.loaded {
			d.state = viewmodel.StateError
		}
		common.LogError(err, "Dashboard fetch failed", common.Fields{"screen": s.String()})
		return false, m.setStatus(errorText(err), true)
	}

	d.err = nil
	d.loaded = true
	d.state = viewmodel.StateReady
	return true, nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusText = text
	m.statusErr = isErr

	seq := m.statusSeq
	return tea.Tick(m.config.StatusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.err != nil {
		cmds = append(cmds, m.setStatus(errorText(msg.err), true))
	} else if msg.message != "" {
		cmds = append(cmds, m.setStatus(msg.message, false))
	}

	for _, s := range msg.refresh {
		if s == viewmodel.ScreenDetail && !m.detail.Loaded() {
			continue
		}
		if m.screens[s].loaded || s == m.screen {
			cmds = append(cmds, m.fetch(s))
		}
	}

	if msg.pollID != 0 && m.detail.ID() == msg.pollID {
		cmds = append(cmds, m.loadAnalysisStatus(msg.pollID))
	}

	return m, tea.Batch(cmds...)
}

// capturingInput reports whether a text input on the current screen has
// focus and should receive every key.
func (m Model) capturingInput() bool {
	switch m.screen {
	case viewmodel.ScreenPerks:
		return m.perks.Searching()
	case viewmodel.ScreenApplications:
		return m.apps.Searching()
	case viewmodel.ScreenDetail:
		return m.detail.Commenting()
	}
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.capturingInput() {
		return m.updateActive(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.Help), key.Matches(msg, m.keymap.Back):
			m.showHelp = false
		case key.Matches(msg, m.keymap.Quit):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keymap.NextTab):
		return m.switchTo(m.screen.Next())
	case key.Matches(msg, m.keymap.PrevTab):
		return m.switchTo(m.screen.Prev())
	case key.Matches(msg, m.keymap.Refresh):
		cmd := m.fetch(m.screen)
		return m, cmd
	}

	switch m.screen {
	case viewmodel.ScreenOverview:
		switch {
		case key.Matches(msg, m.keymap.ScrapeAll):
			return m, m.scrapeAll()
		case key.Matches(msg, m.keymap.AnalyzeAll):
			return m, m.analyzePending()
		}

	case viewmodel.ScreenPerks:
		switch {
		case key.Matches(msg, m.keymap.Scrape):
			if perk, ok := m.perks.Selected(); ok {
				return m, m.scrapePerk(perk.Perk)
			}
			return m, nil
		case key.Matches(msg, m.keymap.ScrapeAll):
			return m, m.scrapeAll()
		}

	case viewmodel.ScreenApplications:
		app, selected := m.apps.Selected()
		switch {
		case key.Matches(msg, m.keymap.Open):
			if selected {
				return m.openDetail(app.Application)
			}
			return m, nil
		case key.Matches(msg, m.keymap.AnalyzeAll):
			return m, m.analyzePending()
		case key.Matches(msg, m.keymap.Analyze), key.Matches(msg, m.keymap.Approve), key.Matches(msg, m.keymap.Reject):
			if selected {
				return m, m.applicationAction(msg, app.Application)
			}
			return m, nil
		}

	case viewmodel.ScreenDetail:
		switch {
		case key.Matches(msg, m.keymap.Back):
			return m.switchTo(viewmodel.ScreenApplications)
		case key.Matches(msg, m.keymap.Comment):
			cmd := m.detail.StartComment()
			return m, cmd
		case key.Matches(msg, m.keymap.Analyze), key.Matches(msg, m.keymap.Approve), key.Matches(msg, m.keymap.Reject):
			if m.detail.Loaded() {
				return m, m.applicationAction(msg, m.detailApp)
			}
			return m, nil
		}
	}

	return m.updateActive(msg)
}

// applicationAction maps an action key to the request for app.
func (m Model) applicationAction(msg tea.KeyMsg, app model.Application) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Analyze):
		return m.analyze(app)
	case key.Matches(msg, m.keymap.Approve):
		return m.review(app, model.ReviewApproved)
	case key.Matches(msg, m.keymap.Reject):
		return m.review(app, model.ReviewRejected)
	}
	return nil
}

func (m Model) switchTo(s viewmodel.Screen) (tea.Model, tea.Cmd) {
	m.screen = s
	cmd := m.fetch(s)
	return m, cmd
}

// openDetail shows app right away from the list data and fetches the full
// record.
func (m Model) openDetail(app model.Application) (tea.Model, tea.Cmd) {
	m.detailApp = app
	m.detail.SetApplication(app)
	m.screens[viewmodel.ScreenDetail].loaded = true
	m.screens[viewmodel.ScreenDetail].state = viewmodel.StateReady
	m.screen = viewmodel.ScreenDetail
	cmd := m.loadApplication(app.ID)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	for i := range m.screens {
		if c := m.screens[i].cancel; c != nil {
			c()
		}
	}
	m.quitting = true
	return m, tea.Quit
}

// updateActive delegates msg to the component of the current screen.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case viewmodel.ScreenPerks:
		m.perks, cmd = m.perks.Update(msg)
	case viewmodel.ScreenApplications:
		m.apps, cmd = m.apps.Update(msg)
	case viewmodel.ScreenDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	// Header (2), status line (1) and help line (1).
	bodyHeight := max(m.height-4, 5)
	m.perks.Resize(m.width, bodyHeight)
	m.apps.Resize(m.width, bodyHeight)
	m.detail.Resize(m.width, bodyHeight)
	m.help.Width = m.width
}
