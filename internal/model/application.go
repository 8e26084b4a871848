package model

import (
	"io"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ApplicationStatus is the pipeline state of a pitch-deck application.
type ApplicationStatus string

// Application status constants.
const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAnalyzed ApplicationStatus = "analyzed"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists the application statuses in display order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationPending, ApplicationAnalyzed, ApplicationApproved, ApplicationRejected,
}

// ReviewStatus is the human review decision on an application.
type ReviewStatus string

// Review status constants.
const (
	ReviewNotStarted ReviewStatus = "not_started"
	ReviewPending    ReviewStatus = "pending"
	ReviewApproved   ReviewStatus = "approved"
	ReviewRejected   ReviewStatus = "rejected"
)

// Settable reports whether the status can be sent as a review decision.
// not_started is only ever assigned by the API.
func (s ReviewStatus) Settable() bool {
	switch s {
	case ReviewApproved, ReviewRejected, ReviewPending:
		return true
	default:
		return false
	}
}

// AnalysisState is the state of the AI analysis for an application.
type AnalysisState string

// Analysis state constants.
const (
	AnalysisPending   AnalysisState = "pending"
	AnalysisCompleted AnalysisState = "completed"
)

// ExtractedFields maps a pitch-deck field name to the text the analyzer extracted.
type ExtractedFields map[string]string

// Keys returns the field names in sorted order.
func (f ExtractedFields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Label turns a field name such as business_model into "Business model".
func Label(key string) string {
	label := strings.ReplaceAll(strings.TrimSpace(key), "_", " ")
	if label == "" {
		return label
	}
	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:]
}

// Comment is a reviewer note attached to an application.
type Comment struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Author    string    `json:"author" yaml:"author"`
	Role      string    `json:"role,omitempty" yaml:"role,omitempty"`
	Content   string    `json:"content" yaml:"content"`
	ID        int64     `json:"id" yaml:"id"`
}

// Criterion is one program requirement checked by the analyzer.
type Criterion struct {
	Name string `json:"name" yaml:"name"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
	Met  bool   `json:"met" yaml:"met"`
}

// RequirementsMatch scores the application against the program criteria.
type RequirementsMatch struct {
	Details  string      `json:"details,omitempty" yaml:"details,omitempty"`
	Criteria []Criterion `json:"criteria" yaml:"criteria"`
	Score    int         `json:"score" yaml:"score"`
}

// CriteriaMet counts the criteria the application satisfies.
func (r RequirementsMatch) CriteriaMet() int {
	n := 0
	for _, c := range r.Criteria {
		if c.Met {
			n++
		}
	}
	return n
}

// ExternalSource is a third-party source consulted during due diligence.
type ExternalSource struct {
	Source string `json:"source" yaml:"source"`
	Info   string `json:"info" yaml:"info"`
}

// DueDiligence holds the outcome of the external validation.
type DueDiligence struct {
	MarketValidation     string           `json:"market_validation,omitempty" yaml:"market_validation,omitempty"`
	FinancialProjections string           `json:"financial_projections,omitempty" yaml:"financial_projections,omitempty"`
	TeamAssessment       string           `json:"team_assessment,omitempty" yaml:"team_assessment,omitempty"`
	RiskFactors          []string         `json:"risk_factors" yaml:"risk_factors"`
	ExternalSources      []ExternalSource `json:"external_sources" yaml:"external_sources"`
	Score                int              `json:"score" yaml:"score"`
}

// OverallAssessment is the analyzer's recommendation.
type OverallAssessment struct {
	Recommendation string   `json:"recommendation" yaml:"recommendation"`
	Strengths      []string `json:"strengths" yaml:"strengths"`
	Weaknesses     []string `json:"weaknesses" yaml:"weaknesses"`
	Confidence     int      `json:"confidence" yaml:"confidence"`
}

// AnalysisResults is the structured output of a completed analysis.
type AnalysisResults struct {
	RequirementsMatch RequirementsMatch `json:"requirements_match" yaml:"requirements_match"`
	DueDiligence      DueDiligence      `json:"due_diligence" yaml:"due_diligence"`
	OverallAssessment OverallAssessment `json:"overall_assessment" yaml:"overall_assessment"`
}

// Clone returns a copy that shares no slices with r.
func (r *AnalysisResults) Clone() *AnalysisResults {
	if r == nil {
		return nil
	}
	c := *r
	c.RequirementsMatch.Criteria = slices.Clone(r.RequirementsMatch.Criteria)
	c.DueDiligence.RiskFactors = slices.Clone(r.DueDiligence.RiskFactors)
	c.DueDiligence.ExternalSources = slices.Clone(r.DueDiligence.ExternalSources)
	c.OverallAssessment.Strengths = slices.Clone(r.OverallAssessment.Strengths)
	c.OverallAssessment.Weaknesses = slices.Clone(r.OverallAssessment.Weaknesses)
	return &c
}

// Application is a pitch-deck application submitted by a startup team.
// AnalysisResults is nil until the analyzer has run.
type Application struct {
	SubmissionDate  time.Time         `json:"submissionDate" yaml:"submissionDate"`
	AIScore         *int              `json:"aiScore" yaml:"aiScore"`
	AnalysisResults *AnalysisResults  `json:"analysisResults,omitempty" yaml:"analysisResults,omitempty"`
	ExtractedFields ExtractedFields   `json:"extractedFields" yaml:"extractedFields"`
	TeamName        string            `json:"teamName" yaml:"teamName"`
	CompanyName     string            `json:"companyName" yaml:"companyName"`
	Status          ApplicationStatus `json:"status" yaml:"status"`
	HumanReview     ReviewStatus      `json:"humanReview" yaml:"humanReview"`
	Stage           string            `json:"stage" yaml:"stage"`
	Sector          string            `json:"sector" yaml:"sector"`
	FundingAsked    string            `json:"fundingAsked" yaml:"fundingAsked"`
	PitchDeckURL    string            `json:"pitchDeckUrl,omitempty" yaml:"pitchDeckUrl,omitempty"`
	AnalysisStatus  AnalysisState     `json:"analysisStatus" yaml:"analysisStatus"`
	TeamMembers     []string          `json:"teamMembers,omitempty" yaml:"teamMembers,omitempty"`
	Comments        []Comment         `json:"comments,omitempty" yaml:"comments,omitempty"`
	ID              int64             `json:"id" yaml:"id"`
}

// Clone returns a copy that shares no maps or slices with a.
func (a Application) Clone() Application {
	a.AIScore = cloneScore(a.AIScore)
	a.AnalysisResults = a.AnalysisResults.Clone()
	a.ExtractedFields = maps.Clone(a.ExtractedFields)
	a.TeamMembers = slices.Clone(a.TeamMembers)
	a.Comments = slices.Clone(a.Comments)
	return a
}

func cloneScore(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}

// HasAnalysis reports whether extracted fields are available.
func (a Application) HasAnalysis() bool {
	return len(a.ExtractedFields) > 0
}

// ScoreBand is the coarse rating of an AI score.
type ScoreBand string

// Score bands.
const (
	ScoreNone   ScoreBand = "none"
	ScoreLow    ScoreBand = "low"
	ScoreMedium ScoreBand = "medium"
	ScoreHigh   ScoreBand = "high"
)

// Band rates the AI score. A missing score has no band; zero is a low score.
func (a Application) Band() ScoreBand {
	if a.AIScore == nil {
		return ScoreNone
	}
	switch score := *a.AIScore; {
	case score >= 80:
		return ScoreHigh
	case score >= 60:
		return ScoreMedium
	default:
		return ScoreLow
	}
}

// AnalysisProgress reports the analysis state of a single application.
type AnalysisProgress struct {
	Status        AnalysisState `json:"status"`
	Message       string        `json:"message,omitempty"`
	ApplicationID int64         `json:"applicationId"`
	Progress      int           `json:"progress"`
}

// UploadRequest describes a new application upload. File is streamed as the
// multipart body and is not closed by the uploader.
type UploadRequest struct {
	File         io.Reader
	FileName     string
	TeamName     string
	CompanyName  string
	Sector       string
	Stage        string
	FundingAsked string
}
