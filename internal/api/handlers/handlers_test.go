package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/models"
	"capm-lab/internal/session"
)

func newRouter(t *testing.T) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Stop)

	evaluateHandler := NewEvaluateHandler()
	chartHandler := NewChartHandler(nil)
	labHandler := NewLabHandler("")
	sessionHandler := NewSessionHandler(store, "")

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/evaluate", evaluateHandler.Evaluate)
	api.POST("/evaluate/compare", evaluateHandler.Compare)
	api.POST("/portfolio", evaluateHandler.Portfolio)
	api.GET("/chart", chartHandler.GetChart)
	api.GET("/config", chartHandler.GetConfig)
	api.GET("/labs", labHandler.ListLabs)
	api.GET("/labs/:name", labHandler.GetLab)
	api.GET("/content", ListContent)
	api.GET("/content/:section", GetContent)
	api.POST("/sessions", sessionHandler.Create)
	api.GET("/sessions/:id", sessionHandler.Get)
	api.PATCH("/sessions/:id/params", sessionHandler.UpdateParams)
	api.POST("/sessions/:id/preset/:name", sessionHandler.ApplyPreset)
	api.POST("/sessions/:id/reset", sessionHandler.Reset)
	api.DELETE("/sessions/:id", sessionHandler.Delete)

	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	decode(t, w, &resp)
	return resp.Error.Code
}

func TestEvaluate_OK(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate",
		`{"risk_free_rate": 0.02, "market_return": 0.08, "beta": 1.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.EvaluateResponse
	decode(t, w, &resp)
	if math.Abs(resp.ExpectedReturn-0.11) > 1e-12 {
		t.Errorf("expected return 0.11, got %v", resp.ExpectedReturn)
	}
	if resp.ExpectedReturnPct != "11.00%" {
		t.Errorf("expected 11.00%%, got %q", resp.ExpectedReturnPct)
	}
	if resp.BetaClass != "AGGRESSIVE" {
		t.Errorf("expected AGGRESSIVE, got %q", resp.BetaClass)
	}
}

func TestEvaluate_ZeroValuesAccepted(t *testing.T) {
	router, _ := newRouter(t)

	// Zero is a legal rate; binding must not treat it as missing.
	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate",
		`{"risk_free_rate": 0.04, "market_return": 0.10, "beta": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.EvaluateResponse
	decode(t, w, &resp)
	if math.Abs(resp.ExpectedReturn-0.04) > 1e-12 {
		t.Errorf("beta zero should earn rf, got %v", resp.ExpectedReturn)
	}
}

func TestEvaluate_BadRequest(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{invalid-json}`},
		{"missing beta", `{"risk_free_rate": 0.02, "market_return": 0.08}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if code := errorCode(t, w); code != "INVALID_REQUEST" {
				t.Errorf("expected INVALID_REQUEST, got %q", code)
			}
		})
	}
}

func TestCompare_OK(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate/compare",
		`{"risk_free_rate": 0.02, "market_return": 0.08,
		  "variations": [{"name": "defensive", "beta": 0.5}, {"name": "aggressive", "beta": 2.0}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CompareResponse
	decode(t, w, &resp)
	if len(resp.Comparison) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Comparison))
	}
	if math.Abs(resp.Comparison[0].ExpectedReturn-0.05) > 1e-12 {
		t.Errorf("beta 0.5 row: expected 0.05, got %v", resp.Comparison[0].ExpectedReturn)
	}
	if math.Abs(resp.Comparison[1].ExpectedReturn-0.14) > 1e-12 {
		t.Errorf("beta 2.0 row: expected 0.14, got %v", resp.Comparison[1].ExpectedReturn)
	}
	if resp.Comparison[0].Name != "defensive" {
		t.Errorf("expected row name to survive, got %q", resp.Comparison[0].Name)
	}
}

func TestCompare_MissingBeta(t *testing.T) {
	router, _ := newRouter(t)

	// A variation without a beta must be rejected at binding, not
	// panic on dereference.
	w := doJSON(t, router, http.MethodPost, "/api/v1/evaluate/compare",
		`{"risk_free_rate": 0.02, "market_return": 0.08,
		  "variations": [{"name": "incomplete"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %q", code)
	}
}

func TestPortfolio_OK(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/portfolio",
		`{"risk_free_rate": 0.02, "market_return": 0.08,
		  "components": [{"weight": 0.6, "beta": 0.5}, {"weight": 0.4, "beta": 2.0}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.PortfolioResponse
	decode(t, w, &resp)
	if math.Abs(resp.PortfolioBeta-1.1) > 1e-12 {
		t.Errorf("expected portfolio beta 1.1, got %v", resp.PortfolioBeta)
	}
	if math.Abs(resp.ExpectedReturn-0.086) > 1e-12 {
		t.Errorf("expected return 0.086, got %v", resp.ExpectedReturn)
	}
}

func TestPortfolio_Empty(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/portfolio",
		`{"risk_free_rate": 0.02, "market_return": 0.08, "components": []}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "INVALID_PORTFOLIO" {
		t.Errorf("expected INVALID_PORTFOLIO, got %q", code)
	}
}

func TestChart_Defaults(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/chart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.ChartResponse
	decode(t, w, &resp)
	if len(resp.SML) != 100 {
		t.Errorf("expected 100 samples by default, got %d", len(resp.SML))
	}
	if resp.SML[0].Beta != 0 || resp.SML[len(resp.SML)-1].Beta != 3 {
		t.Errorf("curve should span [0, 3], got [%v, %v]",
			resp.SML[0].Beta, resp.SML[len(resp.SML)-1].Beta)
	}
	if resp.RiskFreeLine.Y != 0.02 {
		t.Errorf("risk-free line should sit at default rf, got %v", resp.RiskFreeLine.Y)
	}
}

func TestChart_ExplicitParams(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/chart?rf=0.03&rm=0.12&beta=2.0&samples=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.ChartResponse
	decode(t, w, &resp)
	if len(resp.SML) != 10 {
		t.Errorf("expected 10 samples, got %d", len(resp.SML))
	}
	if math.Abs(resp.Asset.ExpectedReturn-0.21) > 1e-12 {
		t.Errorf("asset point should be at 0.21, got %v", resp.Asset.ExpectedReturn)
	}
}

func TestChart_TinySamplesFallBack(t *testing.T) {
	router, _ := newRouter(t)

	// One sample cannot draw a line; counts below the config minimum
	// fall back to the configured default.
	w := doJSON(t, router, http.MethodGet, "/api/v1/chart?samples=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.ChartResponse
	decode(t, w, &resp)
	if len(resp.SML) != 100 {
		t.Errorf("expected fallback to 100 samples, got %d", len(resp.SML))
	}
}

func TestConfig_OK(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.ConfigResponse
	decode(t, w, &resp)
	if resp.ChartSamples != 100 {
		t.Errorf("expected 100 chart samples, got %d", resp.ChartSamples)
	}
	if resp.Beta.Max != 3.0 {
		t.Errorf("expected beta slider max 3.0, got %v", resp.Beta.Max)
	}
}

func TestLabs_ListAndGet(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/labs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list models.LabsResponse
	decode(t, w, &list)
	if len(list.Labs) != 5 {
		t.Fatalf("expected 5 built-in labs, got %d", len(list.Labs))
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/labs/lab3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var info models.LabInfo
	decode(t, w, &info)
	want := models.Params{RiskFreeRate: 0.01, MarketReturn: 0.05, Beta: 0.5}
	if info.Preset != want {
		t.Errorf("lab3 preset = %+v, want %+v", info.Preset, want)
	}
}

func TestLabs_NotFound(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/labs/lab99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "LAB_NOT_FOUND" {
		t.Errorf("expected LAB_NOT_FOUND, got %q", code)
	}
}

func TestContent_LookupAndNotFound(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/content/theory", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var s models.SectionInfo
	decode(t, w, &s)
	if s.Key != "theory" || s.Body == "" {
		t.Errorf("theory section came back empty: %+v", s)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/content/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "SECTION_NOT_FOUND" {
		t.Errorf("expected SECTION_NOT_FOUND, got %q", code)
	}
}

func TestSessions_Lifecycle(t *testing.T) {
	router, _ := newRouter(t)

	// Create starts from the default preset.
	w := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.SessionResponse
	decode(t, w, &created)
	if created.Params != (models.Params{RiskFreeRate: 0.02, MarketReturn: 0.08, Beta: 1.0}) {
		t.Fatalf("create: unexpected params %+v", created.Params)
	}
	if created.Preset != "default" {
		t.Errorf("create: expected preset marker, got %q", created.Preset)
	}

	// Partial update touches only the named field and clears the marker.
	// Each step decodes into a fresh struct: preset is omitempty, so an
	// absent field would otherwise keep the previous step's value.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/sessions/"+created.ID+"/params",
		`{"beta": 2.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var patched models.SessionResponse
	decode(t, w, &patched)
	if patched.Params.Beta != 2.5 || patched.Params.RiskFreeRate != 0.02 || patched.Params.MarketReturn != 0.08 {
		t.Errorf("patch: unexpected params %+v", patched.Params)
	}
	if patched.Preset != "" {
		t.Errorf("patch: preset marker should clear, got %q", patched.Preset)
	}

	// Applying lab3 overwrites all three values regardless of prior state.
	w = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+created.ID+"/preset/lab3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("preset: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var applied models.SessionResponse
	decode(t, w, &applied)
	if applied.Params != (models.Params{RiskFreeRate: 0.01, MarketReturn: 0.05, Beta: 0.5}) {
		t.Errorf("preset: lab3 should set exact tuple, got %+v", applied.Params)
	}
	if applied.Preset != "lab3" {
		t.Errorf("preset: expected marker lab3, got %q", applied.Preset)
	}
	if math.Abs(applied.ExpectedReturn-0.03) > 1e-12 {
		t.Errorf("preset: expected return 0.03, got %v", applied.ExpectedReturn)
	}

	// Reset restores the default tuple.
	w = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+created.ID+"/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}
	var reset models.SessionResponse
	decode(t, w, &reset)
	if reset.Params != (models.Params{RiskFreeRate: 0.02, MarketReturn: 0.08, Beta: 1.0}) {
		t.Errorf("reset: unexpected params %+v", reset.Params)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/sessions/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "SESSION_NOT_FOUND" {
		t.Errorf("expected SESSION_NOT_FOUND, got %q", code)
	}
}

func TestSessions_UnknownPreset(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "")
	var sess models.SessionResponse
	decode(t, w, &sess)

	w = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/preset/lab99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "PRESET_NOT_FOUND" {
		t.Errorf("expected PRESET_NOT_FOUND, got %q", code)
	}
}

func TestSessions_EmptyPatch(t *testing.T) {
	router, _ := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "")
	var sess models.SessionResponse
	decode(t, w, &sess)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/sessions/"+sess.ID+"/params", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %q", code)
	}
}
