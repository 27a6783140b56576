package get_available_slots

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	getAvailableSlots "github.com/freshup-events/erlebnisbuchung/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	OfferingID string   `json:"offeringId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

// ToUseCaseRequest builds the use case request from the path and query
// parameters, normalizing the date.
func ToUseCaseRequest(offeringID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := domain.NewDateStringFromString(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		OfferingID: offeringID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP
// response model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &AvailableSlotsResponse{
		OfferingID: resp.OfferingID,
		Date:       resp.Date.String(),
		Slots:      slots,
	}
}
