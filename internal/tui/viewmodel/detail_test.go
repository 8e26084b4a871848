package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelabs/vlops/internal/listing"
	"github.com/venturelabs/vlops/internal/model"
)

func TestBuildDetail_Analyzed(t *testing.T) {
	score := 85
	app := model.Application{
		ID:             1,
		TeamName:       "TechFlow AI",
		CompanyName:    "TechFlow Inc.",
		Status:         model.ApplicationAnalyzed,
		HumanReview:    model.ReviewPending,
		AIScore:        &score,
		SubmissionDate: time.Date(2024, 3, 13, 14, 5, 0, 0, time.UTC),
		ExtractedFields: model.ExtractedFields{
			"traction":       "100+ customers",
			"business_model": "SaaS B2B",
			"problem":        "Manual data processing",
		},
		Comments: []model.Comment{
			{Author: "Sarah Wilson", Role: "Program Manager", Content: "Impressive", Timestamp: time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)},
		},
		TeamMembers: []string{"John Doe (CEO)", "Jane\nSmith (CTO)"},
		AnalysisResults: &model.AnalysisResults{
			RequirementsMatch: model.RequirementsMatch{
				Score: 90,
				Criteria: []model.Criterion{
					{Name: "AI/Software Focus", Met: true, Note: "Core AI platform"},
					{Name: "Early Stage", Met: true},
					{Name: "Hardware", Met: false, Note: "Software only"},
				},
			},
			DueDiligence: model.DueDiligence{
				Score:           82,
				RiskFactors:     []string{"Market competition"},
				ExternalSources: []model.ExternalSource{{Source: "Crunchbase", Info: "Funding confirmed"}},
			},
			OverallAssessment: model.OverallAssessment{
				Strengths:      []string{"Clear value proposition"},
				Weaknesses:     []string{"Competitive market"},
				Recommendation: "Strong candidate",
				Confidence:     85,
			},
		},
	}

	detail := BuildDetail(app)

	assert.Equal(t, "TechFlow AI", detail.Title)
	assert.Equal(t, "85", detail.Score)
	assert.Equal(t, model.ScoreHigh, detail.Band)
	assert.Equal(t, listing.ToneWarning, detail.ReviewTone)
	assert.Equal(t, "Mar 13, 2024, 02:05 PM", detail.Submitted)
	assert.False(t, detail.Pending)
	assert.Equal(t, []Field{
		{Label: "Business model", Value: "SaaS B2B"},
		{Label: "Problem", Value: "Manual data processing"},
		{Label: "Traction", Value: "100+ customers"},
	}, detail.Fields)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Mar 15, 2024, 11:00 AM", detail.Comments[0].When)
	assert.Equal(t, []string{"John Doe (CEO)", "Jane Smith (CTO)"}, detail.Team)

	require.NotNil(t, detail.Analysis)
	assert.Equal(t, "90/100, 2 of 3 criteria met", detail.Analysis.Requirements)
	assert.Equal(t, "82/100", detail.Analysis.DueDiligence)
	assert.Equal(t, "85%", detail.Analysis.Confidence)
	assert.Equal(t, "Strong candidate", detail.Analysis.Recommendation)
	assert.Len(t, detail.Analysis.Criteria, 3)
	assert.False(t, detail.Analysis.Criteria[2].Met)
	assert.Equal(t, []string{"Market competition"}, detail.Analysis.Risks)
	assert.Equal(t, []model.ExternalSource{{Source: "Crunchbase", Info: "Funding confirmed"}}, detail.Analysis.Sources)
	assert.Equal(t, []string{"Clear value proposition"}, detail.Analysis.Strengths)
	assert.Equal(t, []string{"Competitive market"}, detail.Analysis.Weaknesses)
}

func TestBuildDetail_Pending(t *testing.T) {
	detail := BuildDetail(model.Application{
		ID:          2,
		TeamName:    "GreenTech Solutions",
		Status:      model.ApplicationPending,
		HumanReview: model.ReviewNotStarted,
	})

	assert.True(t, detail.Pending)
	assert.Empty(t, detail.Fields)
	assert.Equal(t, "-", detail.Score)
	assert.Equal(t, model.ScoreNone, detail.Band)
	assert.Equal(t, listing.ToneNeutral, detail.ReviewTone)
	assert.Equal(t, listing.ToneWarning, detail.StatusTone)
	assert.Nil(t, detail.Analysis)
	assert.Empty(t, detail.Team)
}
