package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/services"
)

// ReportsHandler serves the report generation endpoint.
type ReportsHandler struct {
	reportService services.ReportService
	logger        *zap.Logger
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(reportService services.ReportService, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// RegisterRoutes registers the report routes on the given mux.
func (h *ReportsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/reports/generate", h.GenerateReport)
}

// GenerateReport handles POST /api/reports/generate.
func (h *ReportsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	result, err := h.reportService.Generate(r.Context(), &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, result)
}
