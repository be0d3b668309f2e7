// Package prompts builds the LLM prompts used by the requirement interpreter.
package prompts

import (
	"fmt"
	"strings"

	"github.com/querylab/analytics-engine/pkg/models"
)

// ColumnPlannerSystemPrompt defines the interpreter's role and output rules.
const ColumnPlannerSystemPrompt = `You are an expert database analyst specializing in business intelligence and SQL query generation.

Your role is to analyze user requirements and determine:
1. What columns are REQUIRED (absolutely necessary)
2. What columns are OPTIONAL (would enhance analysis)
3. What SQL FILTERS should be applied (WHERE conditions)
4. Any assumptions you made in your interpretation

Column Selection Rules:
- REQUIRED columns: without these, the analysis cannot be performed
- OPTIONAL columns: these add context, enable filtering, or provide insights
- Use exact column names as shown in the schema for columns that DO exist
- If the user asks for a column that does not exist in the schema, still include
  it in required_columns so the system can detect it is missing; never drop it

Filter Extraction Rules:
- Comparisons: "greater than", "above", "more than" use the '>' operator
- Exact matches: "in Healthcare", "segment = Enterprise" use equality
- Boolean flags: "active customers" use 1 or 0
- Convert currency: "$100k" = 100000, "$5M" = 5000000
- If no filters are mentioned, set sql_filters to null

Output Format:
- Return valid JSON only, matching the requested structure exactly
- Be concise but informative in explanations`

// BuildColumnPlannerPrompt creates the user prompt for requirement analysis.
// It includes the table schema, the user's requirement, and the exact JSON
// shape the response must follow.
func BuildColumnPlannerPrompt(tableName string, columns []models.ColumnDescriptor, requirement string) string {
	var prompt strings.Builder

	prompt.WriteString("Analyze the following analytics requirement and determine what database columns are needed.\n\n")

	prompt.WriteString("## Table\n\n")
	prompt.WriteString(fmt.Sprintf("Name: %s\n\nColumns:\n", tableName))
	prompt.WriteString(FormatColumns(columns))

	prompt.WriteString("\n\n## Requirement\n\n")
	prompt.WriteString(fmt.Sprintf("%q\n\n", requirement))

	prompt.WriteString("## Task\n\n")
	prompt.WriteString("1. Understand what the user wants to accomplish\n")
	prompt.WriteString("2. Identify which columns are absolutely required\n")
	prompt.WriteString("3. Identify which columns would enhance the analysis (optional)\n")
	prompt.WriteString("4. Extract SQL filter conditions from the requirement\n")
	prompt.WriteString("5. Note any assumptions made in your interpretation\n\n")

	prompt.WriteString("Return your analysis in this exact JSON format:\n")
	prompt.WriteString(`{
  "technical_summary": "A clear technical interpretation of what analysis is needed",
  "required_columns": ["list", "of", "required", "column", "names"],
  "optional_columns": ["list", "of", "optional", "column", "names"],
  "sql_filters": {"column_name": "value"} or {"column_name": {"operator": value}} or null,
  "assumptions": "Any assumptions you made about the requirement"
}
`)
	prompt.WriteString("\nFilter operators are limited to: >, <, >=, <=, =, !=\n")
	prompt.WriteString("Example: \"ARR above $100k in Healthcare\" gives {\"arr\": {\">\": 100000}, \"industry\": \"Healthcare\"}\n")

	return prompt.String()
}

// FormatColumns renders column descriptors for LLM context, one per line:
// "- name (TYPE, PRIMARY KEY, NOT NULL)".
func FormatColumns(columns []models.ColumnDescriptor) string {
	lines := make([]string, 0, len(columns))
	for _, col := range columns {
		line := fmt.Sprintf("- %s (%s", col.Name, col.DataType)

		var tags []string
		if col.IsPrimaryKey {
			tags = append(tags, "PRIMARY KEY")
		}
		if !col.Nullable {
			tags = append(tags, "NOT NULL")
		}
		if len(tags) > 0 {
			line += ", " + strings.Join(tags, ", ")
		}
		line += ")"
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
