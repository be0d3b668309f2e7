package models

// ReportRequest describes a data extraction request: which columns to pull
// from a table, optional filter conditions, and a row cap.
type ReportRequest struct {
	TableName string         `json:"table_name"`
	Columns   []string       `json:"columns"`
	Filters   map[string]any `json:"filters,omitempty"`
	RowLimit  int            `json:"row_limit,omitempty"`
}

// ReportResult is the outcome of executing a report query.
type ReportResult struct {
	TableName     string           `json:"table_name"`
	Columns       []string         `json:"columns"`
	RowCount      int              `json:"row_count"`
	Data          []map[string]any `json:"data"`
	QueryExecuted string           `json:"query_executed"`
}
