package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/analysis"
	"capm-lab/internal/api/models"
	"capm-lab/internal/model"
)

// EvaluateHandler handles pricing requests
type EvaluateHandler struct{}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	p := model.Params{
		RiskFreeRate: *req.RiskFreeRate,
		MarketReturn: *req.MarketReturn,
		Beta:         *req.Beta,
	}

	c.JSON(http.StatusOK, models.EvaluateResponse{
		Params:            wireParams(p),
		ExpectedReturn:    p.ExpectedReturn(),
		ExpectedReturnPct: model.FormatPercent(p.ExpectedReturn()),
		MarketRiskPremium: p.MarketRiskPremium(),
		BetaClass:         string(model.ClassifyBeta(p.Beta)),
	})
}

// Compare handles POST /api/v1/evaluate/compare
func (h *EvaluateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	names := make([]string, len(req.Variations))
	betas := make([]float64, len(req.Variations))
	for i, v := range req.Variations {
		if v.Beta == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: fmt.Sprintf("variations[%d]: beta is required", i),
				},
			})
			return
		}
		names[i] = v.Name
		betas[i] = *v.Beta
	}

	rows := analysis.NamedSweep(*req.RiskFreeRate, *req.MarketReturn, names, betas)

	comparison := make([]models.ComparisonRow, len(rows))
	for i, row := range rows {
		comparison[i] = models.ComparisonRow{
			Name:              row.Name,
			Beta:              row.Beta,
			BetaClass:         string(row.Class),
			ExpectedReturn:    row.ExpectedReturn,
			ExpectedReturnPct: model.FormatPercent(row.ExpectedReturn),
		}
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		RiskFreeRate: *req.RiskFreeRate,
		MarketReturn: *req.MarketReturn,
		Comparison:   comparison,
	})
}

// Portfolio handles POST /api/v1/portfolio
func (h *EvaluateHandler) Portfolio(c *gin.Context) {
	var req models.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	components := make([]model.WeightedBeta, len(req.Components))
	for i, comp := range req.Components {
		components[i] = model.WeightedBeta{Weight: comp.Weight, Beta: comp.Beta}
	}

	result, err := analysis.PortfolioReturn(*req.RiskFreeRate, *req.MarketReturn, components)
	if err != nil {
		if errors.Is(err, analysis.ErrNoComponents) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PORTFOLIO",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PORTFOLIO_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PortfolioResponse{
		RiskFreeRate:      *req.RiskFreeRate,
		MarketReturn:      *req.MarketReturn,
		PortfolioBeta:     result.Beta,
		WeightSum:         result.WeightSum,
		BetaClass:         string(result.Class),
		ExpectedReturn:    result.ExpectedReturn,
		ExpectedReturnPct: model.FormatPercent(result.ExpectedReturn),
	})
}

func wireParams(p model.Params) models.Params {
	return models.Params{
		RiskFreeRate: p.RiskFreeRate,
		MarketReturn: p.MarketReturn,
		Beta:         p.Beta,
	}
}
