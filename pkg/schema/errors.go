package schema

import (
	"fmt"
	"sort"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// MissingKeys extracts the names of required-but-absent fields from a
// validation error, sorted for stable output. Returns nil for other errors.
func MissingKeys(err error) []string {
	aggr, ok := err.(*AggregateError)
	if !ok {
		return nil
	}
	var keys []string
	for _, e := range aggr.Errors {
		if ve, ok := e.(*ValidationError); ok && ve.Reason == "required" {
			keys = append(keys, ve.Key)
		}
	}
	sort.Strings(keys)
	return keys
}
