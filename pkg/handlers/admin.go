package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/services"
)

// AdminHandler serves the admin request registration endpoint.
type AdminHandler struct {
	adminService services.AdminRequestService
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService services.AdminRequestService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// RegisterRoutes registers the admin routes on the given mux.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/admin/register-query", h.RegisterQuery)
}

// RegisterQueryResponse is the body of POST /api/admin/register-query.
type RegisterQueryResponse struct {
	Success   bool   `json:"success"`
	RequestID int64  `json:"request_id"`
	Message   string `json:"message"`
}

// RegisterQuery handles POST /api/admin/register-query.
func (h *AdminHandler) RegisterQuery(w http.ResponseWriter, r *http.Request) {
	var input models.AdminRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	req, err := h.adminService.Register(r.Context(), &input)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, RegisterQueryResponse{
		Success:   true,
		RequestID: req.ID,
		Message:   "Query registered for admin review",
	})
}
