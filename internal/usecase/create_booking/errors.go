package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotNotAvailable is returned when the requested time is no
	// longer among the available slots at submission time
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrRelayFailed is returned when the booking was recorded locally
	// but the sheet workflow did not confirm it. The ledger entry is
	// kept; the inconsistency is logged for manual reconciliation.
	ErrRelayFailed = errors.New("create_booking: relay to sheet failed")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError is one field-scoped validation violation, with the
// user-facing German message the booking form shows.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field violation of a submission so
// the form can surface all of them at once.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field
	}
	return fmt.Sprintf("create_booking: validation failed on fields: %s", strings.Join(parts, ", "))
}
