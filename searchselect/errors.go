package searchselect

import (
	"errors"
	"fmt"
)

// ErrUnknownEntry is returned when an entry index or node does not belong
// to the current render list.
var ErrUnknownEntry = errors.New("searchselect: unknown entry")

// ConfigurationError reports a widget that cannot be built or fed from the
// given input.
type ConfigurationError struct {
	Field  string // configuration key or "locator"
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("searchselect: invalid %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvariantViolation is an internal consistency failure detected after a
// commit. The commit is rolled back before it is returned.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "searchselect: invariant violated: " + e.Reason
}
