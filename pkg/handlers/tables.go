package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/querylab/analytics-engine/pkg/models"
	"github.com/querylab/analytics-engine/pkg/services"
)

// TablesHandler serves the reflected schema snapshot.
type TablesHandler struct {
	schemaService services.SchemaService
	logger        *zap.Logger
}

// NewTablesHandler creates a new TablesHandler.
func NewTablesHandler(schemaService services.SchemaService, logger *zap.Logger) *TablesHandler {
	return &TablesHandler{
		schemaService: schemaService,
		logger:        logger,
	}
}

// RegisterRoutes registers the schema browsing routes on the given mux.
func (h *TablesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tables", h.ListTables)
	mux.HandleFunc("GET /api/tables/{tableName}/schema", h.GetTableSchema)
}

// TablesListResponse is the body of GET /api/tables.
type TablesListResponse struct {
	Tables      []models.TableSummary `json:"tables"`
	TotalTables int                   `json:"total_tables"`
}

// ListTables handles GET /api/tables.
func (h *TablesHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables := h.schemaService.ListTables()
	_ = WriteJSON(w, http.StatusOK, TablesListResponse{
		Tables:      tables,
		TotalTables: len(tables),
	})
}

// TableSchemaResponse is the body of GET /api/tables/{tableName}/schema.
type TableSchemaResponse struct {
	TableName    string                    `json:"table_name"`
	Columns      []models.ColumnDescriptor `json:"columns"`
	TotalColumns int                       `json:"total_columns"`
}

// GetTableSchema handles GET /api/tables/{tableName}/schema.
func (h *TablesHandler) GetTableSchema(w http.ResponseWriter, r *http.Request) {
	tableName := r.PathValue("tableName")

	table, err := h.schemaService.GetTableSchema(tableName)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, TableSchemaResponse{
		TableName:    table.TableName,
		Columns:      table.Columns,
		TotalColumns: len(table.Columns),
	})
}
