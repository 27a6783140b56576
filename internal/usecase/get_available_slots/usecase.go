package get_available_slots

import (
	"context"
	"fmt"

	"github.com/freshup-events/erlebnisbuchung/internal/availability"
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// UseCase computes the bookable slots for an offering and date
type UseCase struct {
	ledger LedgerSource
	logger Logger
}

// NewUseCase creates the use case
func NewUseCase(ledger LedgerSource, logger Logger) *UseCase {
	return &UseCase{
		ledger: ledger,
		logger: logger,
	}
}

// Execute validates the request and runs the availability engine
// against the current ledger snapshot. Querying twice without an
// intervening submission returns identical results.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if req.OfferingID == "" {
		return nil, fmt.Errorf("%w: offeringId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Resolve the offering from the catalog
	offering, ok := domain.FindOffering(req.OfferingID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: offering %q not found", req.OfferingID)
		return nil, ErrOfferingNotFound
	}

	// 3. Run the engine against a ledger snapshot
	slots := availability.AvailableSlots(uc.ledger.Snapshot(), offering, req.Date)

	uc.logger.Info("GetAvailableSlots: offering=%s date=%s slots=%d",
		offering.ID, req.Date, len(slots))

	return &Response{
		OfferingID: offering.ID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
