package get_available_slots

import "github.com/freshup-events/erlebnisbuchung/internal/domain"

// LedgerSource supplies a consistent snapshot of accepted bookings.
// Staleness is acceptable here; submissions re-validate on their own.
type LedgerSource interface {
	Snapshot() []domain.Booking
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
