package availability

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// AvailableSlots computes the bookable time slots for an offering on a
// date, given the current ledger entries. The result preserves the
// chronological order of the underlying slot grid and contains only
// slots that pass the date-eligibility gate, the tandem exclusion
// window and the capacity rule of the offering's category.
func AvailableSlots(entries []domain.Booking, offering domain.Offering, date domain.DateString) []types.TimeString {
	// Date-eligibility gate short-circuits everything else: the two
	// date-restricted helicopter offerings have no slots at all on the
	// wrong date, so the UI can never present them.
	if !offering.AvailableOnDate(date) {
		return []types.TimeString{}
	}

	rule := ruleFor(offering.Category)
	candidates := rule.slots(date)

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if rule.blockedByTandem && blockedByTandem(entries, date, slot) {
			continue
		}
		if slotFull(entries, offering.ID, date, slot, rule.capacity) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// IsSlotAvailable reports whether a specific time is among the
// currently bookable slots. Submissions call this under the ledger
// lock to defend against races between slot-list rendering and
// submission.
func IsSlotAvailable(entries []domain.Booking, offering domain.Offering, date domain.DateString, t types.TimeString) bool {
	for _, slot := range AvailableSlots(entries, offering, date) {
		if slot == t {
			return true
		}
	}
	return false
}

// slotFull applies the capacity rule for one slot. Capacity 1 is
// binary occupancy: any entry on the exact triple takes the slot.
// Larger capacities sum passenger counts across matching entries.
func slotFull(entries []domain.Booking, offeringID string, date domain.DateString, slot types.TimeString, capacity int) bool {
	if capacity <= 1 {
		for _, e := range entries {
			if e.Matches(offeringID, date, slot) {
				return true
			}
		}
		return false
	}

	total := 0
	for _, e := range entries {
		if e.Matches(offeringID, date, slot) {
			total += e.EffectiveCount()
		}
	}
	return total >= capacity
}

// blockedByTandem reports whether any tandem booking on the same date
// lies within the exclusion window of the slot. The blocking is
// one-directional: tandem bookings hide helicopter experience slots,
// never the other way around.
func blockedByTandem(entries []domain.Booking, date domain.DateString, slot types.TimeString) bool {
	for _, e := range entries {
		if e.Date != date {
			continue
		}

		category, ok := domain.CategoryOf(e.OfferingID)
		if !ok || category != domain.CategoryTandemFlight {
			continue
		}

		distance, err := slot.MinutesBetween(e.Time)
		if err != nil {
			// Malformed sheet rows never block anything
			continue
		}
		if distance < domain.TandemExclusionWindowMinutes {
			return true
		}
	}
	return false
}
