package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/models"
	"capm-lab/internal/lab"
	"capm-lab/internal/model"
	"capm-lab/internal/session"
)

// SessionHandler handles interactive session requests
type SessionHandler struct {
	store  session.Store
	labDir string
}

// NewSessionHandler creates a new session handler. labDir feeds preset
// resolution so file labs can be applied by name too.
func NewSessionHandler(store session.Store, labDir string) *SessionHandler {
	return &SessionHandler{store: store, labDir: labDir}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.store.Create(model.DefaultParams(), model.DefaultPresetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(sess))
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(sess))
}

// UpdateParams handles PATCH /api/v1/sessions/:id/params
func (h *SessionHandler) UpdateParams(c *gin.Context) {
	var req models.UpdateParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	patch := session.ParamsPatch{
		RiskFreeRate: req.RiskFreeRate,
		MarketReturn: req.MarketReturn,
		Beta:         req.Beta,
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "at least one of risk_free_rate, market_return, beta is required",
			},
		})
		return
	}

	sess, err := h.store.Update(c.Param("id"), patch)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(sess))
}

// ApplyPreset handles POST /api/v1/sessions/:id/preset/:name
func (h *SessionHandler) ApplyPreset(c *gin.Context) {
	name := strings.ToLower(strings.TrimSpace(c.Param("name")))

	catalog, skipped := lab.LoadCatalog(h.labDir)
	for _, err := range skipped {
		log.Printf("Session API: skipping lab file: %v", err)
	}

	params, err := catalog.ResolvePreset(name)
	if err != nil {
		if errors.Is(err, model.ErrPresetNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "PRESET_NOT_FOUND",
					Message: err.Error(),
					Details: map[string]interface{}{
						"name": name,
					},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PRESET_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	sess, err := h.store.Apply(c.Param("id"), params, name)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Reset handles POST /api/v1/sessions/:id/reset
func (h *SessionHandler) Reset(c *gin.Context) {
	sess, err := h.store.Apply(c.Param("id"), model.DefaultParams(), model.DefaultPresetName)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_NOT_FOUND",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SESSION_ERROR",
			Message: err.Error(),
		},
	})
}

func sessionResponse(sess session.Session) models.SessionResponse {
	p := sess.Params
	return models.SessionResponse{
		ID:                sess.ID,
		Params:            wireParams(p),
		Preset:            sess.Preset,
		ExpectedReturn:    p.ExpectedReturn(),
		ExpectedReturnPct: model.FormatPercent(p.ExpectedReturn()),
		MarketRiskPremium: p.MarketRiskPremium(),
		BetaClass:         string(model.ClassifyBeta(p.Beta)),
		CreatedAt:         sess.CreatedAt,
		UpdatedAt:         sess.UpdatedAt,
	}
}
