package model_test

import (
	"testing"

	"github.com/complypilot/complypilot/pkg/domain/model"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewRiskRegister(t *testing.T) {
	templates := []model.RiskTemplate{
		{
			Title:       "Ransomware Attack",
			Description: "Malicious encryption of business data",
			Likelihood:  types.LikelihoodHigh,
			Impact:      types.ImpactHigh,
			Category:    "Cyber Security",
			Mitigation:  "Regular backups, endpoint protection, staff training",
		},
		{
			Title:       "Unencrypted Data Storage",
			Description: "Personal data stored without encryption",
			Likelihood:  types.LikelihoodMedium,
			Impact:      types.ImpactMedium,
			Category:    "Data Security",
			Mitigation:  "Encryption at rest implementation, security audits",
		},
	}

	userID := types.NewUserID()
	register := model.NewRiskRegister(userID, types.BusinessTypeGeneral, "Retail trade", templates)

	gt.NoError(t, register.ID.Validate())
	gt.V(t, register.UserID).Equal(userID)
	gt.V(t, register.BusinessType).Equal(types.BusinessTypeGeneral)
	gt.A(t, register.Risks).Length(2)
	gt.V(t, register.TotalRisks).Equal(2)

	for _, risk := range register.Risks {
		gt.NoError(t, risk.ID.Validate())
		gt.V(t, risk.Status).Equal(types.RiskStatusIdentified)
		gt.V(t, risk.Owner).Equal("")
		gt.B(t, risk.DueDate == nil).True()
	}

	// Each instantiation assigns fresh IDs
	again := model.NewRiskRegister(userID, types.BusinessTypeGeneral, "", templates)
	gt.B(t, again.Risks[0].ID == register.Risks[0].ID).False()
}

func TestRiskRegister_FindRisk(t *testing.T) {
	register := model.NewRiskRegister(types.NewUserID(), types.BusinessTypeRetail, "", []model.RiskTemplate{
		{Title: "A", Description: "a", Likelihood: types.LikelihoodLow, Impact: types.ImpactLow, Category: "Data Security", Mitigation: "m"},
		{Title: "B", Description: "b", Likelihood: types.LikelihoodLow, Impact: types.ImpactLow, Category: "Data Security", Mitigation: "m"},
	})

	gt.V(t, register.FindRisk(register.Risks[1].ID)).Equal(1)
	gt.V(t, register.FindRisk(types.NewRiskID())).Equal(-1)
}

func TestRiskTemplate_Validate(t *testing.T) {
	tmpl := model.RiskTemplate{
		Title:       "Phishing and Social Engineering",
		Description: "Staff manipulation to disclose credentials or data",
		Likelihood:  types.LikelihoodHigh,
		Impact:      types.ImpactHigh,
		Category:    "Cyber Security",
		Mitigation:  "Security awareness training, email filtering, MFA",
	}
	gt.NoError(t, tmpl.Validate())

	broken := tmpl
	broken.Likelihood = "very-high"
	gt.Error(t, broken.Validate())

	broken = tmpl
	broken.Mitigation = ""
	gt.Error(t, broken.Validate())
}
