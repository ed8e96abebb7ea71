package main

import (
	"fmt"
	"log"
	"time"

	"solar-calculator/internal/api"
	"solar-calculator/internal/config"
	"solar-calculator/internal/report"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment (and .env, if present)
	srv, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	cfg, err := config.Load(srv.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load calculator config: %v", err)
	}
	calc, err := cfg.Calculator()
	if err != nil {
		log.Fatalf("Invalid calculator config: %v", err)
	}
	if srv.ConfigPath != "" {
		log.Printf("Loaded calculator config from %s", srv.ConfigPath)
	}
	params := calc.Params()
	log.Printf("Calculator: units_per_kw=%g export_rate=%g currency=%q", params.UnitsPerKW, params.ExportRate, params.Currency)

	if srv.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	var cache *report.Cache
	if srv.CacheEnabled() {
		cache = report.NewCache(srv.ReportCacheTTL, 5*time.Minute)
		defer cache.Close()
	}

	router := api.NewRouter(calc, api.Options{
		AllowedOrigins: srv.AllowedOrigins,
		Cache:          cache,
	})

	// Start server
	addr := fmt.Sprintf(":%s", srv.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
