// Package sql provides validation helpers for filter conditions before they
// are compiled into parameterized queries.
package sql

import (
	"fmt"
)

// allowedOperators is the set of comparison operators accepted in filter
// conditions. Everything else is rejected before query construction.
var allowedOperators = map[string]struct{}{
	">":  {},
	"<":  {},
	">=": {},
	"<=": {},
	"=":  {},
	"!=": {},
}

// IsAllowedOperator reports whether op is a supported filter operator.
func IsAllowedOperator(op string) bool {
	_, ok := allowedOperators[op]
	return ok
}

// ValidateFilters checks every filter condition for structural validity:
// operator maps must contain exactly one entry with a supported operator,
// and no string value may carry a SQL injection pattern.
func ValidateFilters(filters map[string]any) error {
	for column, condition := range filters {
		if opMap, ok := condition.(map[string]any); ok {
			if len(opMap) != 1 {
				return fmt.Errorf("filter on %q must have exactly one operator, got %d", column, len(opMap))
			}
			for op := range opMap {
				if !IsAllowedOperator(op) {
					return fmt.Errorf("unsupported filter operator %q on column %q", op, column)
				}
			}
		}
	}

	if hits := CheckAllParameters(filters); len(hits) > 0 {
		return fmt.Errorf("filter value for %q rejected: possible SQL injection (fingerprint %s)",
			hits[0].ParamName, hits[0].Fingerprint)
	}
	return nil
}
