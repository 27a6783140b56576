package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/freshup-events/erlebnisbuchung/internal/availability"
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/internal/integrations/sheets"
)

// UseCase validates a booking submission, reserves the slot in the
// ledger and relays the accepted booking to the sheet workflow.
type UseCase struct {
	ledger       Ledger
	sheetsClient SheetsClient
	metrics      Metrics
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(ledger Ledger, sheetsClient SheetsClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		ledger:       ledger,
		sheetsClient: sheetsClient,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute runs the submission pipeline. The availability re-check and
// the ledger append happen inside one critical section; the relay to
// the sheet happens after local acceptance and cannot undo it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: offering=%s date=%s time=%s",
		req.OfferingID, req.Date, req.Time)

	// 1. Field validation, collecting every violation
	if fields := validateRequest(req); len(fields) > 0 {
		uc.logger.Warn("CreateBooking: validation failed on %d fields", len(fields))
		uc.metrics.BookingRejected("validation")
		return nil, &ValidationError{Fields: fields}
	}

	offering, _ := domain.FindOffering(req.OfferingID)

	// 2. Build the ledger entry. The passenger count is recorded for
	// tandem flights and the helicopter experience flight, matching
	// the sheet columns; everything else implicitly counts as one.
	booking := domain.Booking{
		ID:         uuid.NewString(),
		OfferingID: offering.ID,
		Date:       req.Date,
		Time:       req.Time,
		Count:      passengerCount(offering),
	}

	// 3. Re-check availability and append atomically. This defends
	// against the race between slot-list rendering and submission.
	err := uc.ledger.Reserve(booking, func(entries []domain.Booking) error {
		if !availability.IsSlotAvailable(entries, offering, req.Date, req.Time) {
			return ErrSlotNotAvailable
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: slot %s %s not available for %s",
			req.Date, req.Time, offering.ID)
		uc.metrics.BookingRejected("capacity")
		return nil, err
	}

	uc.logger.Info("CreateBooking: accepted booking id=%s offering=%s date=%s time=%s",
		booking.ID, offering.ID, req.Date, req.Time)
	uc.metrics.BookingCreated(string(offering.Category))
	uc.metrics.SetLedgerSize(uc.ledger.Len())

	// 4. Relay to the sheet workflow. Local acceptance stands even if
	// the relay fails; the failure is surfaced to the caller and
	// logged for manual reconciliation.
	if err := uc.sheetsClient.SubmitBooking(ctx, buildRecord(offering, req)); err != nil {
		uc.logger.Error("CreateBooking: relay failed for booking id=%s (kept in ledger, reconcile manually): %v",
			booking.ID, err)
		uc.metrics.RelayFailed()
		return nil, fmt.Errorf("%w: booking id=%s: %v", ErrRelayFailed, booking.ID, err)
	}

	return &Response{
		ID:         booking.ID,
		OfferingID: offering.ID,
		Label:      offering.Label,
		Category:   offering.Category,
		Date:       booking.Date,
		Time:       booking.Time,
		Count:      booking.EffectiveCount(),
	}, nil
}

// passengerCount returns the recorded count for the new booking: 1 for
// tandem flights and for the helicopter experience flight, 0 (implicit
// one) for everything else.
func passengerCount(offering domain.Offering) int {
	if offering.Category == domain.CategoryTandemFlight {
		return 1
	}
	if offering.ID == domain.OfferingErlebnisflugHelikopter {
		return 1
	}
	return 0
}

// buildRecord maps the submission onto the flat sheet record. Exactly
// one of the fahrzeug and flugart columns is filled.
func buildRecord(offering domain.Offering, req *Request) sheets.BookingRecord {
	record := sheets.BookingRecord{
		Datum:        req.Date.String(),
		Uhrzeit:      req.Time.String(),
		Vorname:      req.FirstName,
		Nachname:     req.LastName,
		Strasse:      req.Street,
		PLZ:          req.PostalCode,
		Ort:          req.City,
		Geburtsdatum: req.BirthDate,
		Email:        req.Email,
	}

	if offering.IsVehicle() {
		record.Fahrzeug = offering.ID
	} else {
		record.Flugart = offering.ID
	}

	return record
}
