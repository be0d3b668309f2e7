// Package matcher compares an interpreter's required columns against a table's
// actual schema. Pure set logic: no I/O, no database, no provider calls.
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/querylab/analytics-engine/pkg/models"
)

// Recommendation message templates. The generic "consider adding" message is
// suppressed when any per-column suggestion (containing suggestionMarker) was
// already emitted.
const (
	msgAllAvailable    = "All required columns are available. Analysis can proceed."
	msgNoneAvailable   = "No required columns available. Analysis cannot proceed with this table."
	msgConsiderAdding  = "Consider adding these columns to your database schema."
	suggestionMarker   = "consider using"
	maxSuggestionNames = 3
)

// Match compares the plan's required columns against the schema's actual
// columns and produces a MatchResult with sorted available/missing partitions
// and ordered recommendations. Total over well-formed inputs; a nil schema or
// plan is a caller contract violation.
func Match(schema *models.TableSchema, plan *models.RequirementPlan) *models.MatchResult {
	actual := make(map[string]struct{}, len(schema.Columns))
	for _, col := range schema.Columns {
		actual[col.Name] = struct{}{}
	}

	required := make(map[string]struct{}, len(plan.RequiredColumns))
	for _, name := range plan.RequiredColumns {
		required[name] = struct{}{}
	}

	available := make([]string, 0, len(required))
	missing := make([]string, 0)
	for name := range required {
		if _, ok := actual[name]; ok {
			available = append(available, name)
		} else {
			missing = append(missing, name)
		}
	}
	// Sorted output keeps identical inputs producing identical sequences,
	// independent of map iteration order.
	sort.Strings(available)
	sort.Strings(missing)

	optional := plan.OptionalColumns
	if optional == nil {
		optional = []string{}
	}

	return &models.MatchResult{
		TechnicalSummary: plan.TechnicalSummary,
		RequiredColumns:  requiredInOriginalOrder(plan.RequiredColumns),
		AvailableColumns: available,
		MissingColumns:   missing,
		OptionalColumns:  optional,
		SQLFilters:       plan.SQLFilters,
		Assumptions:      plan.Assumptions,
		Recommendations:  buildRecommendations(missing, available, optional, schema),
		AnalysisComplete: len(missing) == 0,
	}
}

func requiredInOriginalOrder(required []string) []string {
	if required == nil {
		return []string{}
	}
	return required
}

// buildRecommendations produces the ordered recommendation list. Messages are
// appended in a fixed priority order; the complete-match branch returns early.
func buildRecommendations(missing, available, optional []string, schema *models.TableSchema) []string {
	recs := make([]string, 0, 4)

	if len(missing) == 0 {
		recs = append(recs, msgAllAvailable)

		var optionalAvailable []string
		for _, col := range optional {
			if schema.HasColumn(col) {
				optionalAvailable = append(optionalAvailable, col)
			}
		}
		if len(optionalAvailable) > 0 {
			recs = append(recs, fmt.Sprintf("Optional columns available for enhanced analysis: %s",
				strings.Join(optionalAvailable, ", ")))
		}
		return recs
	}

	recs = append(recs, fmt.Sprintf("Missing %d required column(s): %s",
		len(missing), strings.Join(missing, ", ")))

	if len(available) > 0 {
		recs = append(recs, fmt.Sprintf("Partial analysis possible with: %s",
			strings.Join(available, ", ")))
	} else {
		recs = append(recs, msgNoneAvailable)
	}

	for _, missingCol := range missing {
		similar := findSimilarColumns(missingCol, schema)
		if len(similar) == 0 {
			continue
		}
		if len(similar) > maxSuggestionNames {
			similar = similar[:maxSuggestionNames]
		}
		recs = append(recs, fmt.Sprintf("For '%s', %s: %s",
			missingCol, suggestionMarker, strings.Join(similar, ", ")))
	}

	if len(available) == 0 && !containsSuggestion(recs) {
		recs = append(recs, msgConsiderAdding)
	}

	return recs
}

func containsSuggestion(recs []string) bool {
	for _, r := range recs {
		if strings.Contains(r, suggestionMarker) {
			return true
		}
	}
	return false
}

// findSimilarColumns proposes alternatives for a missing column by substring
// token matching: the missing name is lowercased, underscores become spaces,
// and an actual column is suggested when any token longer than two characters
// occurs as a substring of its lowercased name. Suggestions follow schema
// column order and each column appears at most once. The rule is deliberately
// literal; intuitively-similar pairs like "created_at" vs "create_date" yield
// no suggestion because no token is an exact substring.
func findSimilarColumns(missingCol string, schema *models.TableSchema) []string {
	parts := strings.Fields(strings.ReplaceAll(strings.ToLower(missingCol), "_", " "))

	var similar []string
	for _, col := range schema.Columns {
		actualLower := strings.ToLower(col.Name)
		for _, part := range parts {
			if len(part) > 2 && strings.Contains(actualLower, part) {
				similar = append(similar, col.Name)
				break
			}
		}
	}
	return similar
}
