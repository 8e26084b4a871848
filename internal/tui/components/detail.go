package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/tui/themes"
	"github.com/venturelabs/vlops/internal/tui/viewmodel"
)

// CommentSubmittedMsg is sent when the reviewer confirms a comment.
type CommentSubmittedMsg struct {
	Text string
	ID   int64
}

// DetailModel shows one application with its extracted fields and comments.
type DetailModel struct {
	theme        themes.Theme
	progress     *model.AnalysisProgress
	detail       viewmodel.ApplicationDetail
	commentInput textinput.Model
	viewport     viewport.Model
	bar          progress.Model
	width        int
	height       int
	commenting   bool
	loaded       bool
}

// NewDetail creates an empty detail view.
func NewDetail(theme themes.Theme) DetailModel {
	input := textinput.New()
	input.Placeholder = "Add a comment..."
	input.Prompt = "› "
	input.CharLimit = 500

	return DetailModel{
		theme:        theme,
		commentInput: input,
		viewport:     viewport.New(80, 20),
		bar:          progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		width:        80,
		height:       24,
	}
}

// SetApplication replaces the application shown. Analysis progress is kept
// only when the application is the same.
func (m *DetailModel) SetApplication(app model.Application) {
	if m.loaded && m.detail.ID != app.ID {
		m.progress = nil
		m.viewport.GotoTop()
	}
	m.detail = viewmodel.BuildDetail(app)
	m.loaded = true
	m.render()
}

// SetProgress records analysis progress for the shown application.
func (m *DetailModel) SetProgress(p model.AnalysisProgress) {
	if !m.loaded || p.ApplicationID != m.detail.ID {
		return
	}
	m.progress = &p
	m.render()
}

// ID returns the id of the shown application, zero when none is loaded.
func (m DetailModel) ID() int64 {
	if !m.loaded {
		return 0
	}
	return m.detail.ID
}

// Loaded reports whether an application is shown.
func (m DetailModel) Loaded() bool {
	return m.loaded
}

// Commenting reports whether the comment input has focus.
func (m DetailModel) Commenting() bool {
	return m.commenting
}

// StartComment focuses the comment input.
func (m *DetailModel) StartComment() tea.Cmd {
	if !m.loaded {
		return nil
	}
	m.commenting = true
	m.commentInput.SetValue("")
	return m.commentInput.Focus()
}

// Resize sets the space available to the view.
func (m *DetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	// The comment input takes two lines.
	m.viewport.Height = max(height-2, 3)
	m.commentInput.Width = max(width-4, 10)
	m.bar.Width = min(max(width/3, 10), 40)
	m.render()
}

// Update handles messages.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.commenting {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(m.commentInput.Value())
			if text == "" {
				return m, nil
			}
			m.commenting = false
			m.commentInput.Blur()
			m.commentInput.SetValue("")
			id := m.detail.ID
			return m, func() tea.Msg {
				return CommentSubmittedMsg{ID: id, Text: text}
			}
		case "esc":
			m.commenting = false
			m.commentInput.Blur()
			m.commentInput.SetValue("")
			return m, nil
		}

		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen.
func (m DetailModel) View() string {
	if !m.loaded {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No application selected")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("c comment · y approve · n reject · a analyze · esc back")
	if m.commenting {
		footer = m.commentInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), "", footer)
}

func (m *DetailModel) render() {
	if !m.loaded {
		return
	}
	m.viewport.SetContent(m.content())
}

func (m DetailModel) content() string {
	d := m.detail
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	wrap := lipgloss.NewStyle().Width(max(m.width-4, 20))

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(d.Title))
	b.WriteString("\n")
	if d.Subtitle != "" {
		b.WriteString(m.theme.Subtitle.Render(d.Subtitle))
		b.WriteString("\n")
	}

	score := m.theme.ScoreStyle(d.Band).Render(d.Score)
	if d.Band != model.ScoreNone {
		score += muted.Render(fmt.Sprintf(" (%s)", d.Band))
	}
	fmt.Fprintf(&b, "Status %s   Review %s   Score %s\n",
		m.theme.ToneStyle(d.StatusTone).Render(d.Status),
		m.theme.ToneStyle(d.ReviewTone).Render(d.Review),
		score,
	)
	b.WriteString(muted.Render("Submitted " + d.Submitted))
	b.WriteString("\n\n")

	if m.progress != nil && m.progress.Status != model.AnalysisCompleted {
		b.WriteString(m.bar.ViewAs(float64(m.progress.Progress) / 100))
		if m.progress.Message != "" {
			b.WriteString(" " + muted.Render(m.progress.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Bold.Render("Extracted fields"))
	b.WriteString("\n")
	if d.Pending {
		b.WriteString(muted.Render("Analysis not available yet. Press a to analyze."))
		b.WriteString("\n")
	}
	for _, f := range d.Fields {
		b.WriteString(wrap.Render(m.theme.Bold.Render(f.Label+": ") + f.Value))
		b.WriteString("\n")
	}

	if len(d.Team) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Bold.Render(fmt.Sprintf("Team (%d)", len(d.Team))))
		b.WriteString("\n")
		for _, member := range d.Team {
			b.WriteString("  " + member + "\n")
		}
	}

	b.WriteString("\n")
	m.writeAnalysis(&b, wrap, muted)

	b.WriteString("\n")
	b.WriteString(m.theme.Bold.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))))
	b.WriteString("\n")
	if len(d.Comments) == 0 {
		b.WriteString(muted.Render("No comments yet"))
		b.WriteString("\n")
	}
	for _, c := range d.Comments {
		author := c.Author
		if c.Role != "" {
			author += ", " + c.Role
		}
		b.WriteString(m.theme.Bold.Render(author) + " " + muted.Render(c.When))
		b.WriteString("\n")
		b.WriteString(wrap.Render(c.Content))
		b.WriteString("\n")
	}

	return b.String()
}

func (m DetailModel) writeAnalysis(b *strings.Builder, wrap, muted lipgloss.Style) {
	a := m.detail.Analysis
	b.WriteString(m.theme.Bold.Render("Analysis"))
	b.WriteString("\n")
	if a == nil {
		b.WriteString(muted.Render("Analysis pending"))
		b.WriteString("\n")
		return
	}

	bullets := func(title string, style lipgloss.Style, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(title + "\n")
		for _, item := range items {
			b.WriteString(wrap.Render(style.Render("  • ") + item))
			b.WriteString("\n")
		}
	}

	b.WriteString("Requirements " + muted.Render(a.Requirements) + "\n")
	for _, c := range a.Criteria {
		mark := m.theme.StatusSuccess.Render("  ✓ ")
		if !c.Met {
			mark = m.theme.StatusError.Render("  ✗ ")
		}
		line := mark + c.Name
		if c.Note != "" {
			line += muted.Render(" " + c.Note)
		}
		b.WriteString(wrap.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("Due diligence " + muted.Render(a.DueDiligence) + "\n")
	for _, src := range a.Sources {
		b.WriteString(wrap.Render("  " + m.theme.Bold.Render(src.Source) + " " + src.Info))
		b.WriteString("\n")
	}
	bullets("Risk factors", m.theme.StatusError, a.Risks)
	bullets("Strengths", m.theme.StatusSuccess, a.Strengths)
	bullets("Areas for improvement", m.theme.StatusWarning, a.Weaknesses)

	if a.Recommendation != "" {
		b.WriteString(wrap.Render(m.theme.Bold.Render("Recommendation: ") + a.Recommendation))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render("Confidence " + a.Confidence))
	b.WriteString("\n")
}
