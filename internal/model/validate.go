package model

import (
	"fmt"
	"strings"
)

// ValidationError reports every required field missing from a record.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// requiredField pairs a field name with whether a value was supplied.
type requiredField struct {
	name    string
	present bool
}

// checkRequired collects the names of all absent fields into a single
// ValidationError so callers can report the full set at once.
func checkRequired(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
