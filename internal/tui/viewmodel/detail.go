package viewmodel

import (
	"fmt"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

// Field is one labelled value extracted from a pitch deck.
type Field struct {
	Label string
	Value string
}

// CommentItem is a reviewer comment ready for display.
type CommentItem struct {
	Author  string
	Role    string
	When    string
	Content string
}

// AnalysisView is the structured analysis result ready for display.
type AnalysisView struct {
	Requirements   string
	DueDiligence   string
	Recommendation string
	Confidence     string
	Criteria       []model.Criterion
	Sources        []model.ExternalSource
	Risks          []string
	Strengths      []string
	Weaknesses     []string
}

// ApplicationDetail is the content of the application detail screen.
// Analysis is nil until the analyzer has produced results.
type ApplicationDetail struct {
	Title      string
	Subtitle   string
	Score      string
	Band       model.ScoreBand
	Status     string
	Review     string
	Submitted  string
	Analysis   *AnalysisView
	Team       []string
	Fields     []Field
	Comments   []CommentItem
	StatusTone listing.Tone
	ReviewTone listing.Tone
	Pending    bool
	ID         int64
}

// BuildDetail prepares an application for the detail screen. Fields are
// ordered by key so that the layout is stable between refreshes.
func BuildDetail(app model.Application) ApplicationDetail {
	detail := ApplicationDetail{
		ID:         app.ID,
		Title:      SanitizeForDisplay(app.TeamName),
		Subtitle:   SanitizeForDisplay(app.CompanyName),
		Score:      FormatScore(app.AIScore),
		Band:       app.Band(),
		Status:     string(app.Status),
		StatusTone: listing.Classify(string(app.Status)),
		Review:     string(app.HumanReview),
		ReviewTone: listing.Classify(string(app.HumanReview)),
		Submitted:  listing.FormatTimestamp(app.SubmissionDate),
		Pending:    !app.HasAnalysis(),
	}

	for _, key := range app.ExtractedFields.Keys() {
		detail.Fields = append(detail.Fields, Field{
			Label: model.Label(key),
			Value: SanitizeForDisplay(app.ExtractedFields[key]),
		})
	}

	for _, member := range app.TeamMembers {
		detail.Team = append(detail.Team, SanitizeForDisplay(member))
	}
	detail.Analysis = buildAnalysis(app.AnalysisResults)

	for _, c := range app.Comments {
		detail.Comments = append(detail.Comments, CommentItem{
			Author:  c.Author,
			Role:    c.Role,
			When:    listing.FormatTimestamp(c.Timestamp),
			Content: c.Content,
		})
	}

	return detail
}

func buildAnalysis(r *model.AnalysisResults) *AnalysisView {
	if r == nil {
		return nil
	}

	req := r.RequirementsMatch
	view := &AnalysisView{
		Requirements: fmt.Sprintf("%d/100, %d of %d criteria met",
			req.Score, req.CriteriaMet(), len(req.Criteria)),
		DueDiligence:   fmt.Sprintf("%d/100", r.DueDiligence.Score),
		Recommendation: SanitizeForDisplay(r.OverallAssessment.Recommendation),
		Confidence:     fmt.Sprintf("%d%%", r.OverallAssessment.Confidence),
		Risks:          sanitizeAll(r.DueDiligence.RiskFactors),
		Strengths:      sanitizeAll(r.OverallAssessment.Strengths),
		Weaknesses:     sanitizeAll(r.OverallAssessment.Weaknesses),
	}
	for _, c := range req.Criteria {
		view.Criteria = append(view.Criteria, model.Criterion{
			Name: SanitizeForDisplay(c.Name),
			Note: SanitizeForDisplay(c.Note),
			Met:  c.Met,
		})
	}
	for _, src := range r.DueDiligence.ExternalSources {
		view.Sources = append(view.Sources, model.ExternalSource{
			Source: SanitizeForDisplay(src.Source),
			Info:   SanitizeForDisplay(src.Info),
		})
	}
	return view
}

func sanitizeAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = SanitizeForDisplay(v)
	}
	return out
}
