package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/spherical/image-analyzer/internal/observability"
)

// ReportsHandler serves generated PDF reports.
type ReportsHandler struct {
	logger     *observability.Logger
	reportsDir string
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(logger *observability.Logger, reportsDir string) *ReportsHandler {
	return &ReportsHandler{
		logger:     logger,
		reportsDir: reportsDir,
	}
}

// Download handles GET /reports/{filename}. Downloads are forced as
// attachments and lookups never escape the reports directory.
func (h *ReportsHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || filename != filepath.Base(filename) {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}

	path := filepath.Join(h.reportsDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		h.logger.Warn().Str("filename", filename).Msg("Requested report does not exist")
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
