// Package handlers provides HTTP handlers for the image analyzer API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/spherical/image-analyzer/internal/analyze"
	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/observability"
)

// AnalyzeHandler handles image analysis requests.
type AnalyzeHandler struct {
	logger  *observability.Logger
	service *analyze.Service
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(logger *observability.Logger, service *analyze.Service) *AnalyzeHandler {
	return &AnalyzeHandler{
		logger:  logger,
		service: service,
	}
}

// AnalyzeResponseDTO represents the API response for one analysis.
type AnalyzeResponseDTO struct {
	Domain           string                  `json:"domain"`
	Analysis         string                  `json:"analysis"`
	AnalysisSections domain.AnalysisSections `json:"analysis_sections"`
	Annotations      []domain.Annotation     `json:"annotations"`
	ReportURL        string                  `json:"report_url"`
}

// Analyze handles POST /analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}
	defer file.Close()

	result, err := h.service.Analyze(r.Context(), file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respDTO := AnalyzeResponseDTO{
		Domain:           string(result.Domain),
		Analysis:         result.Analysis,
		AnalysisSections: result.Sections,
		Annotations:      result.Annotations,
		ReportURL:        "/reports/" + result.ReportFile,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(respDTO); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError writes the flat single-key error payload API clients expect.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
