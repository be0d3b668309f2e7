// Package reports builds and executes parameterized extraction queries.
package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	sqlcheck "github.com/querylab/analytics-engine/pkg/sql"
)

// BuildQuery compiles a report request into a parameterized SELECT statement.
// Identifiers are quote-sanitized and every filter value is bound as a
// positional parameter. Filter columns are sorted so the generated SQL is
// deterministic for a given request.
func BuildQuery(tableName string, columns []string, filters map[string]any, limit int) (string, []any, error) {
	if tableName == "" {
		return "", nil, fmt.Errorf("table name cannot be empty")
	}
	if len(columns) == 0 {
		return "", nil, fmt.Errorf("at least one column is required")
	}
	if err := sqlcheck.ValidateFilters(filters); err != nil {
		return "", nil, err
	}

	selectList := make([]string, len(columns))
	for i, col := range columns {
		selectList[i] = pgx.Identifier{col}.Sanitize()
	}

	var query strings.Builder
	query.WriteString("SELECT ")
	query.WriteString(strings.Join(selectList, ", "))
	query.WriteString(" FROM ")
	query.WriteString(pgx.Identifier{tableName}.Sanitize())

	var args []any
	if len(filters) > 0 {
		filterColumns := make([]string, 0, len(filters))
		for col := range filters {
			filterColumns = append(filterColumns, col)
		}
		sort.Strings(filterColumns)

		conditions := make([]string, 0, len(filterColumns))
		for _, col := range filterColumns {
			condition := filters[col]
			operator := "="
			value := condition
			if opMap, ok := condition.(map[string]any); ok {
				for op, v := range opMap {
					operator = op
					value = v
				}
			}
			args = append(args, value)
			conditions = append(conditions, fmt.Sprintf("%s %s $%d",
				pgx.Identifier{col}.Sanitize(), operator, len(args)))
		}
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(conditions, " AND "))
	}

	query.WriteString(fmt.Sprintf(" LIMIT %d", limit))

	return query.String(), args, nil
}
