package models

import "time"

// Params is the wire form of a parameter tuple
type Params struct {
	RiskFreeRate float64 `json:"risk_free_rate"`
	MarketReturn float64 `json:"market_return"`
	Beta         float64 `json:"beta"`
}

// EvaluateResponse represents the result of a point evaluation
type EvaluateResponse struct {
	Params            Params  `json:"params"`
	ExpectedReturn    float64 `json:"expected_return"`
	ExpectedReturnPct string  `json:"expected_return_pct"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	BetaClass         string  `json:"beta_class"` // "DEFENSIVE", "NEUTRAL", "AGGRESSIVE"
}

// CompareResponse represents the response from a beta comparison
type CompareResponse struct {
	RiskFreeRate float64         `json:"risk_free_rate"`
	MarketReturn float64         `json:"market_return"`
	Comparison   []ComparisonRow `json:"comparison"`
}

// ComparisonRow contains results for one variation
type ComparisonRow struct {
	Name              string  `json:"name,omitempty"`
	Beta              float64 `json:"beta"`
	BetaClass         string  `json:"beta_class"`
	ExpectedReturn    float64 `json:"expected_return"`
	ExpectedReturnPct string  `json:"expected_return_pct"`
}

// PortfolioResponse represents the result of pricing a portfolio
type PortfolioResponse struct {
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketReturn      float64 `json:"market_return"`
	PortfolioBeta     float64 `json:"portfolio_beta"`
	WeightSum         float64 `json:"weight_sum"`
	BetaClass         string  `json:"beta_class"`
	ExpectedReturn    float64 `json:"expected_return"`
	ExpectedReturnPct string  `json:"expected_return_pct"`
}

// ChartResponse represents the full chart payload
type ChartResponse struct {
	Title        string       `json:"title"`
	XAxisLabel   string       `json:"x_axis_label"`
	YAxisLabel   string       `json:"y_axis_label"`
	SMLLabel     string       `json:"sml_label"`
	SML          []ChartPoint `json:"sml"`
	Asset        AssetMarker  `json:"asset"`
	RiskFreeLine RefLine      `json:"risk_free_line"`
}

// ChartPoint is one sample on the line
type ChartPoint struct {
	Beta           float64 `json:"beta"`
	ExpectedReturn float64 `json:"expected_return"`
}

// AssetMarker is the scatter point for the asset under analysis
type AssetMarker struct {
	Beta           float64 `json:"beta"`
	ExpectedReturn float64 `json:"expected_return"`
	Label          string  `json:"label"`
	BetaClass      string  `json:"beta_class"`
}

// RefLine is a horizontal reference line
type RefLine struct {
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// LabInfo represents one lab with its computed outputs
type LabInfo struct {
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Scenario          string   `json:"scenario,omitempty"`
	Objective         string   `json:"objective,omitempty"`
	Steps             []string `json:"steps,omitempty"`
	Preset            Params   `json:"preset"`
	RiskPremium       float64  `json:"risk_premium"`
	BetaClass         string   `json:"beta_class"`
	ExpectedReturn    float64  `json:"expected_return"`
	ExpectedReturnPct string   `json:"expected_return_pct"`
}

// LabsResponse represents the lab catalog
type LabsResponse struct {
	Labs []LabInfo `json:"labs"`
}

// SectionInfo represents one content panel
type SectionInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContentResponse represents all content panels
type ContentResponse struct {
	Sections []SectionInfo `json:"sections"`
}

// SliderInfo describes one input widget
type SliderInfo struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ConfigResponse represents the advisory UI configuration
type ConfigResponse struct {
	ChartSamples int        `json:"chart_samples"`
	RiskFreeRate SliderInfo `json:"risk_free_rate"`
	MarketReturn SliderInfo `json:"market_return"`
	Beta         SliderInfo `json:"beta"`
}

// SessionResponse represents a session with its computed outputs
type SessionResponse struct {
	ID                string    `json:"id"`
	Params            Params    `json:"params"`
	Preset            string    `json:"preset,omitempty"`
	ExpectedReturn    float64   `json:"expected_return"`
	ExpectedReturnPct string    `json:"expected_return_pct"`
	MarketRiskPremium float64   `json:"market_risk_premium"`
	BetaClass         string    `json:"beta_class"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
