package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"bizworth/internal/config"
	"bizworth/internal/handler"
	"bizworth/internal/logo"
	"bizworth/internal/pipeline"
	"bizworth/internal/router"
	s3storage "bizworth/internal/storage/s3"
	"bizworth/internal/vendorpkg"
	"bizworth/internal/vendorpkg/bedrock"
	"bizworth/internal/vendorpkg/mistral"
	"bizworth/internal/vendorpkg/openai"
)

// @title        bizworth API
// @version      1.0
// @description  Financial document extraction and brand analysis service
// @BasePath     /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Vendor chain, cheapest first. Unconfigured vendors are skipped at
	// request time.
	vendors := []vendor.Adapter{
		mistral.NewTextAdapter(&cfg.Mistral),
		mistral.NewOCRAdapter(&cfg.Mistral),
		bedrock.NewAdapter(&cfg.Bedrock),
		openai.NewAdapter(&cfg.OpenAI),
	}
	controller := pipeline.NewController(vendors, cfg.Pipeline.ConfidenceThreshold)

	// Headless browser for logo and brand extraction
	var browser logo.Browser
	if cfg.Logo.BrowserEnabled {
		chrome := logo.NewChromeBrowser(
			time.Duration(cfg.Logo.NavTimeoutSecs)*time.Second,
			time.Duration(cfg.Logo.RenderWaitMs)*time.Millisecond,
		)
		defer chrome.Shutdown()
		browser = chrome
	} else {
		browser = logo.DisabledBrowser{}
	}
	logoSvc := logo.NewService(browser, mistral.NewChatClient(&cfg.Mistral))

	// Optional upload archival
	var archiver s3storage.Archiver
	if archive := s3storage.NewArchive(&cfg.Archive); archive != nil {
		archiver = archive
	}

	// Handlers
	docH := handler.NewDocumentHandler(controller, archiver, cfg.Pipeline.MaxUploadBytes())
	logoH := handler.NewLogoHandler(logoSvc)
	healthH := handler.NewHealthHandler(
		func() bool {
			for _, v := range vendors {
				if v.Configured() {
					return true
				}
			}
			return false
		},
		browser.Ready,
	)

	r := router.Setup(docH, logoH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
