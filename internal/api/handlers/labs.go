package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/models"
	"capm-lab/internal/lab"
	"capm-lab/internal/model"
)

// LabHandler handles lab catalog requests
type LabHandler struct {
	labDir string
}

// NewLabHandler creates a new lab handler. labDir may be empty, in
// which case only the built-in labs are served.
func NewLabHandler(labDir string) *LabHandler {
	return &LabHandler{labDir: labDir}
}

// ListLabs handles GET /api/v1/labs
func (h *LabHandler) ListLabs(c *gin.Context) {
	catalog := h.loadCatalog()

	labs := catalog.All()
	infos := make([]models.LabInfo, len(labs))
	for i, l := range labs {
		infos[i] = labInfo(l)
	}

	c.JSON(http.StatusOK, models.LabsResponse{Labs: infos})
}

// GetLab handles GET /api/v1/labs/:name
func (h *LabHandler) GetLab(c *gin.Context) {
	catalog := h.loadCatalog()

	l, err := catalog.Find(c.Param("name"))
	if err != nil {
		if errors.Is(err, lab.ErrLabNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "LAB_NOT_FOUND",
					Message: err.Error(),
					Details: map[string]interface{}{
						"name": c.Param("name"),
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LAB_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, labInfo(l))
}

// loadCatalog re-reads the lab dir on every request so dropped-in
// files appear without a restart.
func (h *LabHandler) loadCatalog() *lab.Catalog {
	catalog, skipped := lab.LoadCatalog(h.labDir)
	for _, err := range skipped {
		log.Printf("Lab API: skipping lab file: %v", err)
	}
	return catalog
}

func labInfo(l lab.Lab) models.LabInfo {
	return models.LabInfo{
		Name:              l.Name,
		Title:             l.Title,
		Scenario:          l.Scenario,
		Objective:         l.Objective,
		Steps:             l.Steps,
		Preset:            wireParams(l.Preset),
		RiskPremium:       l.Preset.MarketRiskPremium(),
		BetaClass:         string(model.ClassifyBeta(l.Preset.Beta)),
		ExpectedReturn:    l.Preset.ExpectedReturn(),
		ExpectedReturnPct: model.FormatPercent(l.Preset.ExpectedReturn()),
	}
}
