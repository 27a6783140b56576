package sheets

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// BookingRecord is the flat record the sheet workflow accepts on POST.
// Field names follow the sheet columns; exactly one of Fahrzeug and
// Flugart is set.
type BookingRecord struct {
	Fahrzeug     string `json:"fahrzeug"`
	Flugart      string `json:"flugart"`
	Datum        string `json:"datum"`
	Uhrzeit      string `json:"uhrzeit"`
	Vorname      string `json:"vorname"`
	Nachname     string `json:"nachname"`
	Strasse      string `json:"strasse"`
	PLZ          string `json:"plz"`
	Ort          string `json:"ort"`
	Geburtsdatum string `json:"geburtsdatum"`
	Email        string `json:"email"`
}

// SubmitResponse is the status envelope returned by the sheet workflow
type SubmitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// BookingRow is one reservation row as served by the sheet workflow.
// Anzahl is only filled for tandem and helicopter experience rows.
type BookingRow struct {
	Fahrzeug string `json:"fahrzeug"`
	Flugart  string `json:"flugart"`
	Datum    string `json:"datum"`
	Uhrzeit  string `json:"uhrzeit"`
	Anzahl   *int   `json:"anzahl,omitempty"`
}

// ToDomain converts a sheet row into a ledger entry. Absent counts
// become zero (effectively one passenger); identifiers are taken as-is
// and rows naming no catalog offering simply never match one.
func (r BookingRow) ToDomain() domain.Booking {
	offeringID := r.Fahrzeug
	if offeringID == "" {
		offeringID = r.Flugart
	}

	count := 0
	if r.Anzahl != nil {
		count = *r.Anzahl
	}

	return domain.Booking{
		OfferingID: offeringID,
		Date:       domain.DateString(r.Datum),
		Time:       types.TimeString(r.Uhrzeit),
		Count:      count,
	}
}
