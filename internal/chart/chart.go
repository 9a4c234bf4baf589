package chart

import (
	"fmt"

	"capm-lab/internal/model"
)

// Labels matching the original plot text. Front ends render these
// verbatim so the chart reads the same everywhere.
const (
	Title      = "Security Market Line (SML)"
	XAxisLabel = "Beta (β)"
	YAxisLabel = "Expected Return"

	smlSeriesLabel   = "Security Market Line (SML)"
	riskFreeLabel    = "Risk-Free Rate"
	assetLabelFormat = "Your Asset (β=%.2f)"
)

// Chart is the full payload a charting front end needs to draw one
// interaction: the SML series, the user's asset point, and the
// horizontal risk-free reference line. It is a pure function of the
// inputs; nothing here is cached or stored.
type Chart struct {
	Title string `json:"title"`
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`

	SMLLabel string           `json:"sml_label"`
	SML      []model.SMLPoint `json:"sml"`

	Asset        AssetPoint `json:"asset"`
	RiskFreeLine RefLine    `json:"risk_free_line"`
}

// AssetPoint is the single scatter point for the user's current inputs.
type AssetPoint struct {
	Beta           float64         `json:"beta"`
	ExpectedReturn float64         `json:"expected_return"`
	Label          string          `json:"label"`
	Class          model.BetaClass `json:"class"`
}

// RefLine is a horizontal reference line at a fixed y value.
type RefLine struct {
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Build assembles the chart payload for the given inputs. samples <= 0
// falls back to model.DefaultCurveSamples.
func Build(p model.Params, samples int) Chart {
	if samples <= 0 {
		samples = model.DefaultCurveSamples
	}
	expected := p.ExpectedReturn()
	return Chart{
		Title:    Title,
		XAxis:    XAxisLabel,
		YAxis:    YAxisLabel,
		SMLLabel: smlSeriesLabel,
		SML:      model.Curve(p.RiskFreeRate, p.MarketReturn, samples),
		Asset: AssetPoint{
			Beta:           p.Beta,
			ExpectedReturn: expected,
			Label:          fmt.Sprintf(assetLabelFormat, p.Beta),
			Class:          model.ClassifyBeta(p.Beta),
		},
		RiskFreeLine: RefLine{
			Y:     p.RiskFreeRate,
			Label: riskFreeLabel,
		},
	}
}
