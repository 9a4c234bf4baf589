// Package analysis derives comparison tables from the pricing model:
// beta sweeps, per-lab summaries, and portfolio-level results.
package analysis

import "capm-lab/internal/model"

// SweepRow is one beta evaluated against fixed market inputs.
type SweepRow struct {
	Name           string          `json:"name,omitempty"`
	Beta           float64         `json:"beta"`
	Class          model.BetaClass `json:"class"`
	ExpectedReturn float64         `json:"expected_return"`
}

// BetaSweep evaluates each beta at the given risk-free and market
// rates, preserving input order. It powers the "compare beta a vs
// beta b" lab exercises.
func BetaSweep(rf, rm float64, betas []float64) []SweepRow {
	rows := make([]SweepRow, 0, len(betas))
	for _, beta := range betas {
		rows = append(rows, SweepRow{
			Beta:           beta,
			Class:          model.ClassifyBeta(beta),
			ExpectedReturn: model.ExpectedReturn(rf, rm, beta),
		})
	}
	return rows
}

// NamedSweep is BetaSweep with a caller-supplied label per row.
func NamedSweep(rf, rm float64, names []string, betas []float64) []SweepRow {
	rows := BetaSweep(rf, rm, betas)
	for i := range rows {
		if i < len(names) {
			rows[i].Name = names[i]
		}
	}
	return rows
}
