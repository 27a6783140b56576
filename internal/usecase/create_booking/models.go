package create_booking

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// Request is a fully specified booking submission: the selected
// offering, the slot, and the contact data relayed to the sheet.
type Request struct {
	OfferingID string
	Date       domain.DateString
	Time       types.TimeString

	FirstName  string
	LastName   string
	Street     string
	PostalCode string
	City       string
	BirthDate  string // TT.MM.JJJJ
	Email      string
}

// Response describes the accepted booking
type Response struct {
	ID         string
	OfferingID string
	Label      string
	Category   domain.Category
	Date       domain.DateString
	Time       types.TimeString
	Count      int
}
