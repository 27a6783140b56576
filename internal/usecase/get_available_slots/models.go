package get_available_slots

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// Request asks for the bookable slots of one offering on one date
type Request struct {
	OfferingID string
	Date       domain.DateString
}

// Response lists the bookable slots in chronological order
type Response struct {
	OfferingID string
	Date       domain.DateString
	Slots      []types.TimeString
}
