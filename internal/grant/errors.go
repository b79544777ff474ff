package grant

import "fmt"

// InvalidInputError rejects a calculation before any table lookup:
// non-positive counts or days, negative travel days, or more participants
// with fewer opportunities than participants.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
