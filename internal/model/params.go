package model

// Params bundles the three CAPM inputs for one evaluation.
// Units:
// - RiskFreeRate: decimal fraction per year (0.02 = 2%)
// - MarketReturn: decimal fraction per year
// - Beta: dimensionless sensitivity to market moves
//
// The evaluator accepts any real values, including negatives and values
// outside the advisory slider ranges; bounds exist only to describe the
// input widgets (see config.SliderBounds).
type Params struct {
	RiskFreeRate float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	MarketReturn float64 `json:"market_return" yaml:"market_return"`
	Beta         float64 `json:"beta" yaml:"beta"`
}

// DefaultParams is the reset state of the tool: rf=2%, rm=8%, beta=1.
func DefaultParams() Params {
	return Params{
		RiskFreeRate: 0.02,
		MarketReturn: 0.08,
		Beta:         1.0,
	}
}
