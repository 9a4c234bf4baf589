package model

import "fmt"

// ExpectedReturn computes the CAPM expected return:
//
//	E(Ri) = rf + beta * (rm - rf)
//
// It is a total function over the reals: no input combination fails, no
// rounding is applied, and identical inputs always produce identical
// output. Display formatting is the caller's concern.
func ExpectedReturn(rf, rm, beta float64) float64 {
	return rf + beta*(rm-rf)
}

// ExpectedReturn evaluates the CAPM formula at the bundled inputs.
func (p Params) ExpectedReturn() float64 {
	return ExpectedReturn(p.RiskFreeRate, p.MarketReturn, p.Beta)
}

// MarketRiskPremium is the excess return demanded for bearing market
// risk: rm - rf.
func MarketRiskPremium(rf, rm float64) float64 {
	return rm - rf
}

// MarketRiskPremium returns rm - rf for the bundled inputs.
func (p Params) MarketRiskPremium() float64 {
	return MarketRiskPremium(p.RiskFreeRate, p.MarketReturn)
}

// WeightedBeta is one portfolio component: an allocation weight and the
// component's beta. Weights are used as given; callers wanting them to
// sum to 1 must normalize first.
type WeightedBeta struct {
	Weight float64 `json:"weight" yaml:"weight"`
	Beta   float64 `json:"beta" yaml:"beta"`
}

// PortfolioBeta combines component betas into a blended portfolio beta:
//
//	beta_p = sum_i(w_i * beta_i)
func PortfolioBeta(components []WeightedBeta) float64 {
	total := 0.0
	for _, c := range components {
		total += c.Weight * c.Beta
	}
	return total
}

// FormatPercent renders a decimal rate as a percentage with two decimal
// places, e.g. 0.11 -> "11.00%". This is the tool's display convention
// for all rates.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
