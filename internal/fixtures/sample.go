package fixtures

import (
	"time"

	"github.com/venturelabs/vlops/internal/model"
)

// Sample returns the built-in demo dataset with timestamps relative to now.
func Sample(now time.Time) Dataset {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	score := func(v int) *int { return &v }
	day := 24 * time.Hour

	return Dataset{
		Status: model.SystemStatus{
			"scraper":  model.ComponentOperational,
			"analyzer": model.ComponentOperational,
		},
		Perks: []model.Perk{
			{
				ID:                1,
				Name:              "AWS Activate",
				Category:          "Cloud Credits",
				Status:            model.PerkActive,
				LastUpdated:       ago(2 * time.Hour),
				URL:               "https://aws.amazon.com/activate/",
				Requirements:      "Early-stage startup, funding required",
				Value:             "$100,000 credits",
				ApplicationWindow: "Year-round",
				Availability:      "Available",
			},
			{
				ID:                2,
				Name:              "Google for Startups Cloud Program",
				Category:          "Cloud Credits",
				Status:            model.PerkActive,
				LastUpdated:       ago(4 * time.Hour),
				URL:               "https://cloud.google.com/startup",
				Requirements:      "Series A or earlier",
				Value:             "$200,000 credits",
				ApplicationWindow: "Year-round",
				Availability:      "Available",
			},
			{
				ID:                3,
				Name:              "Microsoft for Startups",
				Category:          "Cloud Credits",
				Status:            model.PerkError,
				LastUpdated:       ago(day),
				URL:               "https://startups.microsoft.com/",
				Requirements:      "B2B focused, funding stage",
				Value:             "$150,000 credits",
				ApplicationWindow: "Ongoing",
				Availability:      "Limited",
			},
			{
				ID:                4,
				Name:              "Stripe Atlas",
				Category:          "Legal/Finance",
				Status:            model.PerkActive,
				LastUpdated:       ago(6 * time.Hour),
				URL:               "https://stripe.com/atlas",
				Requirements:      "Delaware incorporation",
				Value:             "$5,000 credits",
				ApplicationWindow: "Year-round",
				Availability:      "Available",
			},
		},
		Applications: []model.Application{
			{
				ID:             1,
				TeamName:       "TechFlow AI",
				CompanyName:    "TechFlow Inc.",
				SubmissionDate: ago(2 * day),
				Status:         model.ApplicationAnalyzed,
				AIScore:        score(85),
				HumanReview:    model.ReviewPending,
				Stage:          "Series A",
				Sector:         "AI/ML",
				FundingAsked:   "$2M",
				PitchDeckURL:   "/uploads/techflow-pitch.pdf",
				AnalysisStatus: model.AnalysisCompleted,
				TeamMembers:    []string{"John Doe (CEO)", "Jane Smith (CTO)", "Mike Johnson (CPO)"},
				AnalysisResults: &model.AnalysisResults{
					RequirementsMatch: model.RequirementsMatch{
						Score:   90,
						Details: "Meets all technical requirements for the SW/AI program",
						Criteria: []model.Criterion{
							{Name: "AI/Software Focus", Met: true, Note: "Core AI automation platform"},
							{Name: "Early Stage", Met: true, Note: "Series A stage appropriate"},
							{Name: "Scalable Business Model", Met: true, Note: "SaaS model with proven traction"},
							{Name: "Technical Team", Met: true, Note: "Strong CTO with AI background"},
						},
					},
					DueDiligence: model.DueDiligence{
						Score:                82,
						MarketValidation:     "Strong market research with credible sources",
						FinancialProjections: "Conservative and realistic projections",
						TeamAssessment:       "Experienced team with relevant backgrounds",
						RiskFactors:          []string{"Market competition", "Customer acquisition cost"},
						ExternalSources: []model.ExternalSource{
							{Source: "Crunchbase", Info: "Company verified, funding rounds confirmed"},
							{Source: "LinkedIn", Info: "Team backgrounds validated"},
							{Source: "Industry reports", Info: "Market size data corroborated"},
						},
					},
					OverallAssessment: model.OverallAssessment{
						Strengths:      []string{"Clear value proposition", "Strong technical execution", "Proven market traction", "Experienced team"},
						Weaknesses:     []string{"Limited geographic presence", "Dependence on key customers", "Competitive market"},
						Recommendation: "Strong candidate for program acceptance",
						Confidence:     85,
					},
				},
				ExtractedFields: model.ExtractedFields{
					"problem":        "Manual data processing takes 80% of analyst time",
					"solution":       "AI-powered automation platform that reduces manual work by 90%",
					"market":         "$50B TAM in business automation, growing 15% annually",
					"business_model": "SaaS B2B subscription with per-seat pricing",
					"traction":       "100+ customers, $500K ARR, 40% month-over-month growth",
					"competition":    "Differentiated through proprietary AI models",
					"financials":     "Break-even projected in 18 months with current funding",
					"team":           "Strong technical team with relevant industry experience",
				},
				Comments: []model.Comment{
					{
						ID:        1,
						Author:    "Sarah Wilson",
						Role:      "Program Manager",
						Timestamp: ago(time.Hour),
						Content:   "Impressive AI implementation. The technical approach is solid and the market opportunity is significant.",
					},
					{
						ID:        2,
						Author:    "Dr. Michael Chen",
						Role:      "Technical Advisor",
						Timestamp: ago(30 * time.Minute),
						Content:   "Team has strong credentials. Recommend proceeding to technical interview stage.",
					},
				},
			},
			{
				ID:             2,
				TeamName:       "GreenTech Solutions",
				CompanyName:    "GreenTech Ltd.",
				SubmissionDate: ago(day),
				Status:         model.ApplicationPending,
				HumanReview:    model.ReviewNotStarted,
				Stage:          "Seed",
				Sector:         "CleanTech",
				FundingAsked:   "$500K",
				PitchDeckURL:   "/uploads/greentech-pitch.pdf",
				TeamMembers:    []string{"Anna Berg (CEO)", "Lars Holm (CTO)"},
				AnalysisStatus: model.AnalysisPending,
			},
			{
				ID:             3,
				TeamName:       "FinanceBot",
				CompanyName:    "FinanceBot GmbH",
				SubmissionDate: ago(3 * day),
				Status:         model.ApplicationApproved,
				AIScore:        score(92),
				HumanReview:    model.ReviewApproved,
				Stage:          "Pre-Seed",
				Sector:         "FinTech",
				FundingAsked:   "$1M",
				PitchDeckURL:   "/uploads/financebot-pitch.pdf",
				AnalysisStatus: model.AnalysisCompleted,
				TeamMembers:    []string{"Max Weber (CEO)", "Lena Vogt (CFO)"},
				AnalysisResults: &model.AnalysisResults{
					RequirementsMatch: model.RequirementsMatch{
						Score: 94,
						Criteria: []model.Criterion{
							{Name: "AI/Software Focus", Met: true, Note: "AI financial advisor"},
							{Name: "Early Stage", Met: true, Note: "Pre-seed"},
							{Name: "Scalable Business Model", Met: true, Note: "Subscription SaaS"},
						},
					},
					DueDiligence: model.DueDiligence{
						Score:           88,
						RiskFactors:     []string{"Regulatory approval for financial advice"},
						ExternalSources: []model.ExternalSource{{Source: "Crunchbase", Info: "Pilot customers confirmed"}},
					},
					OverallAssessment: model.OverallAssessment{
						Strengths:      []string{"Large underserved market", "Early pilot traction"},
						Weaknesses:     []string{"Small team"},
						Recommendation: "Accept into the program",
						Confidence:     90,
					},
				},
				ExtractedFields: model.ExtractedFields{
					"problem":        "Complex financial planning for SMEs",
					"solution":       "AI-driven financial advisor",
					"market":         "$20B TAM",
					"business_model": "Subscription SaaS",
					"traction":       "50+ pilot customers",
				},
			},
			{
				ID:             4,
				TeamName:       "DataViz Pro",
				CompanyName:    "DataViz Technologies",
				SubmissionDate: ago(4 * day),
				Status:         model.ApplicationRejected,
				AIScore:        score(45),
				HumanReview:    model.ReviewRejected,
				Stage:          "Series B",
				Sector:         "Enterprise Software",
				FundingAsked:   "$10M",
				PitchDeckURL:   "/uploads/dataviz-pitch.pdf",
				AnalysisStatus: model.AnalysisCompleted,
				AnalysisResults: &model.AnalysisResults{
					RequirementsMatch: model.RequirementsMatch{
						Score: 40,
						Criteria: []model.Criterion{
							{Name: "AI/Software Focus", Met: true, Note: "Visualization software"},
							{Name: "Early Stage", Met: false, Note: "Series B is past the program stage"},
							{Name: "Scalable Business Model", Met: false, Note: "No monetization plan"},
						},
					},
					DueDiligence: model.DueDiligence{
						Score:       50,
						RiskFactors: []string{"Crowded market", "Unclear differentiation"},
					},
					OverallAssessment: model.OverallAssessment{
						Strengths:      []string{"Working product"},
						Weaknesses:     []string{"Unclear problem statement", "No clear market size"},
						Recommendation: "Decline",
						Confidence:     80,
					},
				},
				ExtractedFields: model.ExtractedFields{
					"problem":        "Unclear problem statement",
					"solution":       "Generic visualization tool",
					"market":         "No clear market size",
					"business_model": "Unclear monetization",
					"traction":       "Limited traction shown",
				},
			},
		},
		Activity: []model.Activity{
			{ID: 1, Type: "perk_update", Title: "AWS Activate perk updated", Timestamp: ago(30 * time.Minute), Status: "success"},
			{ID: 2, Type: "pitchdeck_analysis", Title: "TechFlow AI pitch analyzed", Timestamp: ago(45 * time.Minute), Status: "success"},
			{ID: 3, Type: "perk_update", Title: "Microsoft for Startups update failed", Timestamp: ago(90 * time.Minute), Status: "error"},
		},
		Logs: []model.LogEntry{
			{Timestamp: ago(30 * time.Minute), Level: "INFO", Service: "scraper", Message: "Updated AWS Activate"},
			{Timestamp: ago(90 * time.Minute), Level: "ERROR", Service: "scraper", Message: "Microsoft for Startups: page layout changed, no offer found"},
			{Timestamp: ago(2 * time.Hour), Level: "INFO", Service: "scraper", Message: "Scrape run finished: 4 processed, 1 failed"},
			{Timestamp: ago(45 * time.Minute), Level: "INFO", Service: "analyzer", Message: "Analyzed TechFlow AI: score 85"},
			{Timestamp: ago(day), Level: "INFO", Service: "analyzer", Message: "Queued GreenTech Solutions for analysis"},
		},
	}
}
