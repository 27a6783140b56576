package reload_ledger

import (
	"context"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// LedgerStore is the ledger as seen by the reload operation
type LedgerStore interface {
	Replace(entries []domain.Booking)
	Len() int
}

// SheetsClient reads the current reservation rows from the sheet
type SheetsClient interface {
	FetchBookings(ctx context.Context) ([]domain.Booking, error)
}

// Metrics is the subset of service metrics the handler drives
type Metrics interface {
	SetLedgerSize(n int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
