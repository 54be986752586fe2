package domain

import "fmt"

// ValidationError reports a rejected ledger entry or a finalization that
// failed its preconditions. It is recoverable: the session stays active.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
