// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spherical/image-analyzer/cmd/image-analyzer/handlers"
	"github.com/spherical/image-analyzer/cmd/image-analyzer/middleware"
	"github.com/spherical/image-analyzer/internal/analyze"
	"github.com/spherical/image-analyzer/internal/annotate"
	"github.com/spherical/image-analyzer/internal/classify"
	"github.com/spherical/image-analyzer/internal/config"
	"github.com/spherical/image-analyzer/internal/llm"
	"github.com/spherical/image-analyzer/internal/observability"
	"github.com/spherical/image-analyzer/internal/report"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware. No request timeout: /analyze blocks on model calls.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger) // Use chi's built-in logger
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"image-analyzer"}`))
	})

	// Create service dependencies
	model := llm.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.BaseURL, logger)
	classifier := classify.New(model, cfg.Analysis.ClassifyMaxTokens, logger)
	annotator := annotate.New(cfg.Storage.TempDir, logger)
	reports := report.NewBuilder(cfg.Storage.ReportsDir, logger)

	service := analyze.NewService(classifier, model, annotator, reports, analyze.Config{
		TempDir:   cfg.Storage.TempDir,
		MaxTokens: cfg.Analysis.AnalyzeMaxTokens,
	}, logger)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(logger, service)
	reportsHandler := handlers.NewReportsHandler(logger, cfg.Storage.ReportsDir)

	r.Post("/analyze", analyzeHandler.Analyze)
	r.Get("/reports/{filename}", reportsHandler.Download)

	return r
}
