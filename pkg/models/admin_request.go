package models

import "time"

// Admin request lifecycle values.
const (
	AdminRequestTypeMissingColumns = "missing_columns"
	AdminRequestStatusPending      = "pending"
)

// AdminRequestInput carries the fields needed to register a query for admin
// review when its required columns are missing from the schema.
type AdminRequestInput struct {
	OriginalQuery           string   `json:"original_query"`
	TechnicalInterpretation string   `json:"technical_interpretation"`
	TableName               string   `json:"table_name"`
	RequiredColumns         []string `json:"required_columns"`
	MissingColumns          []string `json:"missing_columns"`
	AvailableColumns        []string `json:"available_columns"`
}

// AdminRequest is a persisted admin review ticket.
type AdminRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RequestType string    `json:"request_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
