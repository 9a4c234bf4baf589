package analysis

import (
	"errors"

	"capm-lab/internal/model"
)

// ErrNoComponents is returned when a portfolio has nothing in it.
var ErrNoComponents = errors.New("portfolio has no components")

// PortfolioResult is the blended risk level of an allocation and the
// expected return it prices to.
type PortfolioResult struct {
	Beta           float64         `json:"beta"`
	Class          model.BetaClass `json:"class"`
	ExpectedReturn float64         `json:"expected_return"`
	WeightSum      float64         `json:"weight_sum"`
}

// PortfolioReturn prices an allocation: portfolio beta is the weighted
// sum of component betas, then the single-asset formula applies at
// that blended beta. Weights are used exactly as given; they are not
// normalized, and negative weights (short positions) are allowed.
func PortfolioReturn(rf, rm float64, components []model.WeightedBeta) (PortfolioResult, error) {
	if len(components) == 0 {
		return PortfolioResult{}, ErrNoComponents
	}

	beta := model.PortfolioBeta(components)

	var weightSum float64
	for _, c := range components {
		weightSum += c.Weight
	}

	return PortfolioResult{
		Beta:           beta,
		Class:          model.ClassifyBeta(beta),
		ExpectedReturn: model.ExpectedReturn(rf, rm, beta),
		WeightSum:      weightSum,
	}, nil
}
