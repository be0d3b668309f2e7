package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/services"
)

// AnalyzeHandler serves the column analysis endpoint.
type AnalyzeHandler struct {
	analysisService services.AnalysisService
	logger          *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService services.AnalysisService, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// RegisterRoutes registers the analysis routes on the given mux.
func (h *AnalyzeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze/columns", h.AnalyzeColumns)
}

// AnalyzeColumnsRequest is the body of POST /api/analyze/columns.
type AnalyzeColumnsRequest struct {
	TableName   string `json:"table_name"`
	Requirement string `json:"requirement"`
}

// AnalyzeColumns handles POST /api/analyze/columns.
func (h *AnalyzeHandler) AnalyzeColumns(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), req.TableName, req.Requirement)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, result)
}
