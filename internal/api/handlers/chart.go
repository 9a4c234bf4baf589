package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/models"
	"capm-lab/internal/chart"
	"capm-lab/internal/config"
	"capm-lab/internal/model"
)

// ChartHandler handles chart payload and UI-config requests
type ChartHandler struct {
	cfg *config.Config
}

// NewChartHandler creates a new chart handler
func NewChartHandler(cfg *config.Config) *ChartHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &ChartHandler{cfg: cfg}
}

// GetChart handles GET /api/v1/chart
func (h *ChartHandler) GetChart(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	p := model.DefaultParams()
	if req.RiskFreeRate != nil {
		p.RiskFreeRate = *req.RiskFreeRate
	}
	if req.MarketReturn != nil {
		p.MarketReturn = *req.MarketReturn
	}
	if req.Beta != nil {
		p.Beta = *req.Beta
	}

	// Below 2 samples the line degenerates to a point; fall back to the
	// configured count, matching the config validation minimum.
	samples := req.Samples
	if samples < 2 {
		samples = h.cfg.Chart.Samples
	}

	c.JSON(http.StatusOK, convertChart(chart.Build(p, samples)))
}

// GetConfig handles GET /api/v1/config
func (h *ChartHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, models.ConfigResponse{
		ChartSamples: h.cfg.Chart.Samples,
		RiskFreeRate: sliderInfo(h.cfg.Sliders.RiskFreeRate),
		MarketReturn: sliderInfo(h.cfg.Sliders.MarketReturn),
		Beta:         sliderInfo(h.cfg.Sliders.Beta),
	})
}

func convertChart(ch chart.Chart) models.ChartResponse {
	points := make([]models.ChartPoint, len(ch.SML))
	for i, pt := range ch.SML {
		points[i] = models.ChartPoint{
			Beta:           pt.Beta,
			ExpectedReturn: pt.ExpectedReturn,
		}
	}

	return models.ChartResponse{
		Title:      ch.Title,
		XAxisLabel: ch.XAxis,
		YAxisLabel: ch.YAxis,
		SMLLabel:   ch.SMLLabel,
		SML:        points,
		Asset: models.AssetMarker{
			Beta:           ch.Asset.Beta,
			ExpectedReturn: ch.Asset.ExpectedReturn,
			Label:          ch.Asset.Label,
			BetaClass:      string(ch.Asset.Class),
		},
		RiskFreeLine: models.RefLine{
			Y:     ch.RiskFreeLine.Y,
			Label: ch.RiskFreeLine.Label,
		},
	}
}

func sliderInfo(b config.SliderBounds) models.SliderInfo {
	return models.SliderInfo{
		Min:     b.Min,
		Max:     b.Max,
		Step:    b.Step,
		Default: b.Default,
	}
}
