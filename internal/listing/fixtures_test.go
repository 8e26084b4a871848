package listing

import (
	"time"

	"github.com/venturelabs/vlops/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testPerks() []model.Perk {
	return []model.Perk{
		{ID: 1, Name: "AWS Activate", Category: "Cloud Credits", Status: model.PerkActive, LastUpdated: testNow.Add(-2 * time.Hour)},
		{ID: 2, Name: "Google for Startups Cloud Program", Category: "Cloud Credits", Status: model.PerkActive, LastUpdated: testNow.Add(-4 * time.Hour)},
		{ID: 3, Name: "Microsoft for Startups", Category: "Cloud Credits", Status: model.PerkError, LastUpdated: testNow.Add(-24 * time.Hour)},
		{ID: 4, Name: "Stripe Atlas", Category: "Legal/Finance", Status: model.PerkActive, LastUpdated: testNow.Add(-6 * time.Hour)},
	}
}

func score(v int) *int { return &v }

func testApplications() []model.Application {
	return []model.Application{
		{ID: 1, TeamName: "TechFlow AI", CompanyName: "TechFlow Inc.", Sector: "AI/ML", Status: model.ApplicationAnalyzed, AIScore: score(85), SubmissionDate: testNow.Add(-48 * time.Hour)},
		{ID: 2, TeamName: "GreenTech Solutions", CompanyName: "GreenTech Ltd.", Sector: "CleanTech", Status: model.ApplicationPending, SubmissionDate: testNow.Add(-24 * time.Hour)},
		{ID: 3, TeamName: "FinanceBot", CompanyName: "FinanceBot GmbH", Sector: "FinTech", Status: model.ApplicationApproved, AIScore: score(92), SubmissionDate: testNow.Add(-72 * time.Hour)},
		{ID: 4, TeamName: "DataViz Pro", CompanyName: "DataViz Technologies", Sector: "Enterprise Software", Status: model.ApplicationRejected, AIScore: score(45), SubmissionDate: testNow.Add(-96 * time.Hour)},
		{ID: 5, TeamName: "LedgerLoop", CompanyName: "LedgerLoop Ltd.", Sector: "FinTech", Status: model.ApplicationPending, SubmissionDate: testNow.Add(-time.Hour)},
	}
}
