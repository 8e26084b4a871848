package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/venturelabs/vlops/internal/cli"
	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/config"
	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
	"github.com/venturelabs/vlops/internal/service"
)

func appsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications", "pitchdecks"},
		Short:   "Manage pitch-deck applications",
		Long:    `List and review pitch-deck applications, upload new decks, and request AI analysis.`,
	}

	// Subcommands
	cmd.AddCommand(appsListCmd(a))
	cmd.AddCommand(appsShowCmd(a))
	cmd.AddCommand(appsUploadCmd(a))
	cmd.AddCommand(appsAnalyzeCmd(a))
	cmd.AddCommand(appsAnalysisStatusCmd(a))
	cmd.AddCommand(appsReviewCmd(a))
	cmd.AddCommand(appsCommentCmd(a))

	return cmd
}

func applicationStatuses() []string {
	statuses := make([]string, len(model.ApplicationStatuses))
	for i, s := range model.ApplicationStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// serverValue maps the "all" filter value to an unset server parameter.
func serverValue(v string) string {
	if strings.EqualFold(v, listing.All) {
		return ""
	}
	return v
}

func appsListCmd(a *app) *cobra.Command {
	var remote bool
	filter := listing.DefaultFilter()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long: `List applications matching the filters. Filtering happens locally so that
headline counts and approval rates cover every application. With --remote
the backend filters instead and the counts cover the returned rows only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.provider()
			if err != nil {
				return err
			}

			var server service.ApplicationFilter
			local := filter
			if remote {
				server = service.ApplicationFilter{
					Status: serverValue(filter.Status),
					Sector: serverValue(filter.Category),
					Search: filter.SearchTerm,
				}
				local = listing.DefaultFilter()
			}

			apps, err := p.ListApplications(cmd.Context(), server)
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			records := listing.Applications(apps)
			result := listing.Query(records, local, string(model.ApplicationApproved))
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle("Pitch Decks"))
			fmt.Fprintln(out, cli.SummaryLine(result.Summary, withUnknown(applicationStatuses(), listing.DistinctStatuses(records))))
			fmt.Fprintln(out)

			if len(result.Visible) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No applications match the current filters."))
				return nil
			}

			visible := make([]model.Application, len(result.Visible))
			for i, r := range result.Visible {
				visible[i] = r.Application
			}
			fmt.Fprintln(out, cli.ApplicationTable(visible, a.now()))
			fmt.Fprintln(out, cli.SubtitleStyle.Render("Approval rate by sector"))
			fmt.Fprint(out, cli.RateLines(result.Summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.SearchTerm, "search", "", "Case-insensitive match on team, company, or sector")
	cmd.Flags().StringVar(&filter.Status, "status", listing.All, "Status to show (pending, analyzed, approved, rejected, all)")
	cmd.Flags().StringVar(&filter.Category, "sector", listing.All, "Sector to show, or all")
	cmd.Flags().BoolVar(&remote, "remote", false, "Let the backend apply the filters")

	return cmd
}

func appsShowCmd(a *app) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an application with its analysis and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			app, err := p.GetApplication(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get application %d: %w", id, err)
			}

			md := applicationMarkdown(*app)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			rendered, err := renderMarkdown(md, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 100, "Wrap width of the rendered output")

	return cmd
}

// applicationMarkdown describes an application as a markdown document.
func applicationMarkdown(app model.Application) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", app.TeamName)
	if app.CompanyName != "" {
		fmt.Fprintf(&b, "_%s_\n\n", app.CompanyName)
	}

	score := "not scored"
	if app.AIScore != nil {
		score = fmt.Sprintf("%d (%s)", *app.AIScore, app.Band())
	}

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | %d |\n", app.ID)
	fmt.Fprintf(&b, "| Status | %s |\n", app.Status)
	fmt.Fprintf(&b, "| Review | %s |\n", app.HumanReview)
	fmt.Fprintf(&b, "| AI score | %s |\n", score)
	fmt.Fprintf(&b, "| Sector | %s |\n", orDash(app.Sector))
	fmt.Fprintf(&b, "| Stage | %s |\n", orDash(app.Stage))
	fmt.Fprintf(&b, "| Funding asked | %s |\n", orDash(app.FundingAsked))
	fmt.Fprintf(&b, "| Submitted | %s |\n\n", listing.FormatTimestamp(app.SubmissionDate))

	b.WriteString("## Extracted fields\n\n")
	if !app.HasAnalysis() {
		b.WriteString("_Not extracted yet._\n\n")
	}
	for _, k := range app.ExtractedFields.Keys() {
		fmt.Fprintf(&b, "- **%s:** %s\n", model.Label(k), app.ExtractedFields[k])
	}
	if app.HasAnalysis() {
		b.WriteString("\n")
	}

	if len(app.TeamMembers) > 0 {
		fmt.Fprintf(&b, "## Team (%d)\n\n", len(app.TeamMembers))
		for _, member := range app.TeamMembers {
			fmt.Fprintf(&b, "- %s\n", member)
		}
		b.WriteString("\n")
	}

	writeAnalysisMarkdown(&b, app.AnalysisResults)

	fmt.Fprintf(&b, "## Comments (%d)\n\n", len(app.Comments))
	for _, c := range app.Comments {
		author := "**" + c.Author + "**"
		if c.Role != "" {
			author += " (" + c.Role + ")"
		}
		fmt.Fprintf(&b, "%s, %s\n\n> %s\n\n", author, listing.FormatTimestamp(c.Timestamp), c.Content)
	}

	return b.String()
}

func writeAnalysisMarkdown(b *strings.Builder, r *model.AnalysisResults) {
	b.WriteString("## Analysis\n\n")
	if r == nil {
		b.WriteString("_Analysis pending._\n\n")
		return
	}

	list := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(b, "**%s**\n\n", title)
		for _, item := range items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	req := r.RequirementsMatch
	fmt.Fprintf(b, "### Requirements: %d/100 (%d of %d criteria met)\n\n",
		req.Score, req.CriteriaMet(), len(req.Criteria))
	if req.Details != "" {
		fmt.Fprintf(b, "%s\n\n", req.Details)
	}
	for _, c := range req.Criteria {
		mark := "[x]"
		if !c.Met {
			mark = "[ ]"
		}
		line := fmt.Sprintf("- %s %s", mark, c.Name)
		if c.Note != "" {
			line += ": " + c.Note
		}
		b.WriteString(line + "\n")
	}
	if len(req.Criteria) > 0 {
		b.WriteString("\n")
	}

	dd := r.DueDiligence
	fmt.Fprintf(b, "### Due diligence: %d/100\n\n", dd.Score)
	for _, src := range dd.ExternalSources {
		fmt.Fprintf(b, "- **%s:** %s\n", src.Source, src.Info)
	}
	if len(dd.ExternalSources) > 0 {
		b.WriteString("\n")
	}
	list("Risk factors", dd.RiskFactors)

	oa := r.OverallAssessment
	b.WriteString("### Overall assessment\n\n")
	list("Strengths", oa.Strengths)
	list("Areas for improvement", oa.Weaknesses)
	if oa.Recommendation != "" {
		fmt.Fprintf(b, "> %s\n\n", oa.Recommendation)
	}
	fmt.Fprintf(b, "Confidence: %d%%\n\n", oa.Confidence)
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func appsUploadCmd(a *app) *cobra.Command {
	var req model.UploadRequest

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a pitch deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(args[0])
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open pitch deck: %w", err)
			}
			defer f.Close()

			p, err := a.provider()
			if err != nil {
				return err
			}

			req.File = f
			req.FileName = filepath.Base(path)
			app, err := p.UploadApplication(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to upload pitch deck: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Uploaded %s for %s (ID: %d)", req.FileName, app.TeamName, app.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.TeamName, "team", "", "Team name (required)")
	cmd.Flags().StringVar(&req.CompanyName, "company", "", "Company name (required)")
	cmd.Flags().StringVar(&req.Sector, "sector", "", "Sector, e.g. FinTech")
	cmd.Flags().StringVar(&req.Stage, "stage", "", "Funding stage, e.g. Seed")
	cmd.Flags().StringVar(&req.FundingAsked, "funding", "", "Funding asked, e.g. $2M")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func appsAnalyzeCmd(a *app) *cobra.Command {
	var pending, each bool

	cmd := &cobra.Command{
		Use:   "analyze [id...]",
		Short: "Request AI analysis",
		Long: `Ask the backend to analyze the given applications, or every pending one
with --pending. Several ids are sent as one batch unless --each is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pending == (len(args) > 0) {
				return fmt.Errorf("%w: give application ids or --pending, not both", common.ErrInvalidInput)
			}

			p, err := a.provider()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if pending {
				apps, err := p.ListApplications(ctx, service.ApplicationFilter{})
				if err != nil {
					return fmt.Errorf("failed to list applications: %w", err)
				}
				ids = listing.PendingIDs(apps)
				if len(ids) == 0 {
					fmt.Fprintln(out, cli.InfoStyle.Render("No applications are pending analysis."))
					return nil
				}
			}

			switch {
			case each:
				return runEach(ctx, cmd, "Analyzing applications", "applications", ids, func(ctx context.Context, id int64) error {
					_, err := p.AnalyzeApplication(ctx, id)
					return err
				})
			case len(ids) == 1:
				res, err := p.AnalyzeApplication(ctx, ids[0])
				if err != nil {
					return fmt.Errorf("failed to analyze application %d: %w", ids[0], err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(actionMessage(res, fmt.Sprintf("Analysis requested for application %d", ids[0]))))
			default:
				res, err := p.AnalyzeBatch(ctx, ids)
				if err != nil {
					return fmt.Errorf("failed to analyze applications: %w", err)
				}
				fmt.Fprintln(out, cli.FormatSuccess(actionMessage(res, fmt.Sprintf("Analysis requested for %d applications", len(ids)))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pending, "pending", false, "Analyze every pending application")
	cmd.Flags().BoolVar(&each, "each", false, "Request each application individually")

	return cmd
}

func appsAnalysisStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analysis-status <id>",
		Short: "Show the analysis progress of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			progress, err := p.AnalysisStatus(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get analysis status: %w", err)
			}

			line := fmt.Sprintf("Application %d: %s (%d%%)", id, cli.StatusBadge(string(progress.Status)), progress.Progress)
			if progress.Message != "" {
				line += " " + cli.SubtleStyle.Render(progress.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func appsReviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "review <id> <approved|rejected|pending>",
		Short:     "Record the human review decision",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(model.ReviewApproved), string(model.ReviewRejected), string(model.ReviewPending)},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := model.ReviewStatus(strings.ToLower(args[1]))
			if !status.Settable() {
				return fmt.Errorf("%w: review status must be approved, rejected or pending, got %q", common.ErrInvalidInput, args[1])
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			app, err := p.UpdateReview(cmd.Context(), id, status)
			if err != nil {
				return fmt.Errorf("failed to update review: %w", err)
			}

			name := app.TeamName
			if name == "" {
				name = fmt.Sprintf("Application %d", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s marked %s", name, status)))
			return nil
		},
	}
}

func appsCommentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <id> <text...>",
		Short: "Add a reviewer comment",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := a.provider()
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if _, err := p.AddComment(cmd.Context(), id, text); err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Comment added to application %d", id)))
			return nil
		},
	}
}
