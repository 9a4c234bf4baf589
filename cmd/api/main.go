package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"

	"capm-lab/internal/api/handlers"
	"capm-lab/internal/api/middleware"
	"capm-lab/internal/config"
	"capm-lab/internal/session"
)

// serverEnv is the environment-variable surface of the API binary.
// File config (CAPM_CONFIG) covers chart/slider/lab settings; env
// covers where and how the process runs.
type serverEnv struct {
	Port       string        `env:"API_PORT" envDefault:"8080"`
	Env        string        `env:"API_ENV" envDefault:"development"`
	ConfigPath string        `env:"CAPM_CONFIG"`
	LabDir     string        `env:"CAPM_LAB_DIR"`
	StaticDir  string        `env:"STATIC_DIR" envDefault:"./web/dist"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`
}

func main() {
	var e serverEnv
	if err := env.Parse(&e); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	cfg := config.Default()
	if e.ConfigPath != "" {
		loaded, err := config.Load(e.ConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", e.ConfigPath, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", e.ConfigPath)
	}

	// Env wins over file for the lab dir so deployments can relocate
	// labs without editing config.
	labDir := cfg.LabDir
	if e.LabDir != "" {
		labDir = e.LabDir
	}
	if labDir != "" {
		if info, err := os.Stat(labDir); err != nil || !info.IsDir() {
			log.Printf("Lab directory not found at %s, serving built-in labs only", labDir)
			labDir = ""
		} else {
			log.Printf("Lab directory: %s", labDir)
		}
	}

	if e.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	store := session.NewMemoryStore(e.SessionTTL)
	defer store.Stop()

	evaluateHandler := handlers.NewEvaluateHandler()
	chartHandler := handlers.NewChartHandler(cfg)
	labHandler := handlers.NewLabHandler(labDir)
	sessionHandler := handlers.NewSessionHandler(store, labDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.Evaluate)
		api.POST("/evaluate/compare", evaluateHandler.Compare)
		api.POST("/portfolio", evaluateHandler.Portfolio)

		api.GET("/chart", chartHandler.GetChart)
		api.GET("/config", chartHandler.GetConfig)

		api.GET("/labs", labHandler.ListLabs)
		api.GET("/labs/:name", labHandler.GetLab)

		api.GET("/content", handlers.ListContent)
		api.GET("/content/:section", handlers.GetContent)

		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.PATCH("/sessions/:id/params", sessionHandler.UpdateParams)
		api.POST("/sessions/:id/preset/:name", sessionHandler.ApplyPreset)
		api.POST("/sessions/:id/reset", sessionHandler.Reset)
		api.DELETE("/sessions/:id", sessionHandler.Delete)
	}

	// Serve the SPA build if one is present, with /api passthrough so
	// unknown API paths still 404 as JSON.
	if _, err := os.Stat(e.StaticDir); err == nil {
		staticDir := e.StaticDir
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.File(staticDir + "/index.html")
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", e.StaticDir)
	}

	addr := fmt.Sprintf(":%s", e.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
