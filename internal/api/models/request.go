package models

// EvaluateRequest represents the request body for a point evaluation.
// Rate fields are pointers because zero is a legal value: binding can
// only tell "absent" from "zero" through the nil check.
type EvaluateRequest struct {
	RiskFreeRate *float64 `json:"risk_free_rate" binding:"required"`
	MarketReturn *float64 `json:"market_return" binding:"required"`
	Beta         *float64 `json:"beta" binding:"required"`
}

// CompareRequest represents a request to evaluate several betas
// against one set of market inputs
type CompareRequest struct {
	RiskFreeRate *float64        `json:"risk_free_rate" binding:"required"`
	MarketReturn *float64        `json:"market_return" binding:"required"`
	// dive makes the validator check each element's own binding tags.
	Variations []BetaVariation `json:"variations" binding:"required,dive"`
}

// BetaVariation defines one beta to evaluate
type BetaVariation struct {
	Name string   `json:"name,omitempty"`
	Beta *float64 `json:"beta" binding:"required"`
}

// PortfolioRequest represents a request to price a weighted portfolio
type PortfolioRequest struct {
	RiskFreeRate *float64             `json:"risk_free_rate" binding:"required"`
	MarketReturn *float64             `json:"market_return" binding:"required"`
	Components   []PortfolioComponent `json:"components" binding:"required"`
}

// PortfolioComponent is one holding: relative weight plus its beta.
// Negative weights express short positions.
type PortfolioComponent struct {
	Weight float64 `json:"weight"`
	Beta   float64 `json:"beta"`
}

// ChartRequest represents the query parameters for the chart payload.
// Absent values fall back to the default preset and configured samples.
type ChartRequest struct {
	RiskFreeRate *float64 `form:"rf"`
	MarketReturn *float64 `form:"rm"`
	Beta         *float64 `form:"beta"`
	Samples      int      `form:"samples"`
}

// UpdateParamsRequest represents a partial parameter update for a
// session. Every field is optional; at least one must be present.
type UpdateParamsRequest struct {
	RiskFreeRate *float64 `json:"risk_free_rate"`
	MarketReturn *float64 `json:"market_return"`
	Beta         *float64 `json:"beta"`
}
