package models

// RequirementPlan is the structured output of the requirement interpreter.
// RequiredColumns keeps the interpreter's original order and may contain names
// that do not exist in the schema; the interpreter is instructed to include a
// requested-but-nonexistent column rather than drop it, so the matcher can
// surface it as missing.
type RequirementPlan struct {
	TechnicalSummary string         `json:"technical_summary"`
	RequiredColumns  []string       `json:"required_columns"`
	OptionalColumns  []string       `json:"optional_columns"`
	SQLFilters       map[string]any `json:"sql_filters,omitempty"`
	Assumptions      string         `json:"assumptions"`
}

// MatchResult compares a RequirementPlan's required columns against a table's
// actual columns. AvailableColumns and MissingColumns are sorted ascending and
// partition the required set. Returned directly as the analyze response body.
type MatchResult struct {
	TechnicalSummary string         `json:"technical_summary"`
	RequiredColumns  []string       `json:"required_columns"`
	AvailableColumns []string       `json:"available_columns"`
	MissingColumns   []string       `json:"missing_columns"`
	OptionalColumns  []string       `json:"optional_columns"`
	SQLFilters       map[string]any `json:"sql_filters,omitempty"`
	Assumptions      string         `json:"assumptions"`
	Recommendations  []string       `json:"recommendations"`
	AnalysisComplete bool           `json:"analysis_complete"`
}
