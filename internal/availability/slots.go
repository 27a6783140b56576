package availability

import (
	"fmt"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// generateSlots produces the ascending slot grid from start to end
// inclusive at the given step. The window constants are validated by
// tests; malformed bounds yield an empty grid.
func generateSlots(start, end string, stepMinutes int) []types.TimeString {
	startMin, err := types.TimeString(start).Minutes()
	if err != nil {
		return nil
	}
	endMin, err := types.TimeString(end).Minutes()
	if err != nil {
		return nil
	}

	slots := make([]types.TimeString, 0, (endMin-startMin)/stepMinutes+1)
	for m := startMin; m <= endMin; m += stepMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return slots
}

// VehicleSlots returns the candidate test-drive slots: every 10
// minutes from 08:00 to 21:00, the same grid on every date.
func VehicleSlots() []types.TimeString {
	return generateSlots(domain.VehicleSlotStart, domain.VehicleSlotEnd, domain.VehicleSlotStepMinutes)
}

// RegularSlots returns the candidate flight slots: every 30 minutes
// from 08:00 to 20:30, the same grid on every date. Helicopter
// experience flights share this grid.
func RegularSlots() []types.TimeString {
	return generateSlots(domain.RegularSlotStart, domain.RegularSlotEnd, domain.RegularSlotStepMinutes)
}

// TandemSlotsFor returns the fixed tandem slot list for a date, empty
// for dates outside the table.
func TandemSlotsFor(date domain.DateString) []types.TimeString {
	fixed, ok := domain.TandemSlots[date]
	if !ok {
		return []types.TimeString{}
	}

	out := make([]types.TimeString, len(fixed))
	copy(out, fixed)
	return out
}
