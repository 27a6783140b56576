package create_booking

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	createBooking "github.com/freshup-events/erlebnisbuchung/internal/usecase/create_booking"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// CreateBookingRequest HTTP request model. The field names mirror the
// sheet columns the booking form has always submitted; exactly one of
// fahrzeug and flugart is expected.
type CreateBookingRequest struct {
	Fahrzeug     string `json:"fahrzeug"`
	Flugart      string `json:"flugart"`
	Datum        string `json:"datum"`       // "17.05.2025"
	Uhrzeit      string `json:"uhrzeit"`     // "09:00"
	Vorname      string `json:"vorname"`
	Nachname     string `json:"nachname"`
	Strasse      string `json:"strasse"`
	PLZ          string `json:"plz"`
	Ort          string `json:"ort"`
	Geburtsdatum string `json:"geburtsdatum"` // "TT.MM.JJJJ"
	Email        string `json:"email"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID       string `json:"id"`
	Offering string `json:"offering"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Count    int    `json:"count"`
}

// ValidationErrorsResponse carries every field violation of a
// submission
type ValidationErrorsResponse struct {
	Errors []createBooking.FieldError `json:"errors"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// Date and time stay raw strings here; the use case validates them
// field by field so all violations are collected in one place.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	offeringID := r.Fahrzeug
	if offeringID == "" {
		offeringID = r.Flugart
	}

	return &createBooking.Request{
		OfferingID: offeringID,
		Date:       domain.DateString(r.Datum),
		Time:       types.TimeString(r.Uhrzeit),
		FirstName:  r.Vorname,
		LastName:   r.Nachname,
		Street:     r.Strasse,
		PostalCode: r.PLZ,
		City:       r.Ort,
		BirthDate:  r.Geburtsdatum,
		Email:      r.Email,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP
// response model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:       resp.ID,
		Offering: resp.OfferingID,
		Label:    resp.Label,
		Category: string(resp.Category),
		Date:     resp.Date.String(),
		Time:     resp.Time.String(),
		Count:    resp.Count,
	}
}
