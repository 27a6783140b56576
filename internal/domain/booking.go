package domain

import "github.com/freshup-events/erlebnisbuchung/pkg/types"

// Booking is one accepted reservation as held by the ledger. Contact
// data is not part of the ledger view; it only travels with the relay
// payload to the event sheet.
type Booking struct {
	// ID is assigned locally on submission. Rows seeded from the sheet
	// carry no ID.
	ID string

	OfferingID string
	Date       DateString
	Time       types.TimeString

	// Count is the passenger count of this reservation. Zero means
	// "not recorded" and counts as one, matching the sheet rows where
	// the column is only filled for tandem and helicopter experience
	// bookings.
	Count int
}

// EffectiveCount returns the passenger count, treating an absent count
// as a single passenger.
func (b Booking) EffectiveCount() int {
	if b.Count <= 0 {
		return 1
	}
	return b.Count
}

// Matches reports whether the booking occupies exactly the given
// (offering, date, time) slot.
func (b Booking) Matches(offeringID string, date DateString, t types.TimeString) bool {
	return b.OfferingID == offeringID && b.Date == date && b.Time == t
}
