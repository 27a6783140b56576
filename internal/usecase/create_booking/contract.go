package create_booking

import (
	"context"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/internal/integrations/sheets"
)

// Ledger is the booking ledger as seen by submissions. Reserve must
// run check and append as one critical section so two concurrent
// submissions can never both take the last free spot.
type Ledger interface {
	Reserve(b domain.Booking, check func(entries []domain.Booking) error) error
	Len() int
}

// SheetsClient relays accepted bookings to the spreadsheet workflow,
// which also sends the confirmation email.
type SheetsClient interface {
	SubmitBooking(ctx context.Context, record sheets.BookingRecord) error
}

// Metrics is the subset of service metrics the use case drives
type Metrics interface {
	BookingCreated(category string)
	BookingRejected(reason string)
	RelayFailed()
	SetLedgerSize(n int)
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
