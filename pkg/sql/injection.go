package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a filter value.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	ParamName   string // Name of the filter column that failed the check
	ParamValue  any    // The value that was checked
}

// CheckParameterForInjection uses libinjection to detect SQL injection patterns
// in a filter value.
//
// Only string values are checked - numbers, booleans, and other types cannot
// contain SQL injection patterns and will return nil (no injection detected).
//
// Returns nil if no injection is detected, or an InjectionCheckResult with
// details about the detected pattern.
func CheckParameterForInjection(paramName string, value any) *InjectionCheckResult {
	// Only check string values - numbers/booleans can't contain injection
	strValue, ok := value.(string)
	if !ok {
		return nil
	}

	isSQLi, fingerprint := libinjection.IsSQLi(strValue)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
			ParamName:   paramName,
			ParamValue:  value,
		}
	}

	return nil
}

// CheckAllParameters validates every filter value for SQL injection attempts.
// Operator-map values ({">": 100000}) are unwrapped and their inner values
// checked.
//
// Returns a slice of InjectionCheckResult for each value that failed the
// check, or an empty slice if all values are clean.
func CheckAllParameters(filters map[string]any) []*InjectionCheckResult {
	var results []*InjectionCheckResult
	for name, value := range filters {
		if opMap, ok := value.(map[string]any); ok {
			for _, inner := range opMap {
				if result := CheckParameterForInjection(name, inner); result != nil {
					results = append(results, result)
				}
			}
			continue
		}
		if result := CheckParameterForInjection(name, value); result != nil {
			results = append(results, result)
		}
	}
	return results
}
