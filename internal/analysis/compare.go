package analysis

import (
	"capm-lab/internal/lab"
	"capm-lab/internal/model"
)

// LabComparison is one catalog entry with the outputs its preset
// prices to.
type LabComparison struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Params         model.Params    `json:"params"`
	RiskPremium    float64         `json:"risk_premium"`
	Class          model.BetaClass `json:"class"`
	ExpectedReturn float64         `json:"expected_return"`
}

// CompareLabs computes one row per lab, in catalog order. The table
// answers "what does each scenario pay?" at a glance.
func CompareLabs(labs []lab.Lab) []LabComparison {
	rows := make([]LabComparison, 0, len(labs))
	for _, l := range labs {
		rows = append(rows, LabComparison{
			Name:           l.Name,
			Title:          l.Title,
			Params:         l.Preset,
			RiskPremium:    l.Preset.MarketRiskPremium(),
			Class:          model.ClassifyBeta(l.Preset.Beta),
			ExpectedReturn: l.Preset.ExpectedReturn(),
		})
	}
	return rows
}
