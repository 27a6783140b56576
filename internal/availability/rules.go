// Package availability implements slot generation and the capacity and
// exclusion rules of the event. Everything here is a pure function of
// a ledger snapshot plus the immutable catalog, so both the slot-list
// query and the submission re-check run the exact same code.
package availability

import (
	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

// categoryRule describes how one offering category allocates slots.
// Capacity 1 means binary occupancy on the exact (offering, date,
// time) triple; larger capacities sum passenger counts per slot.
type categoryRule struct {
	capacity        int
	blockedByTandem bool
	slots           func(date domain.DateString) []types.TimeString
}

var rulesByCategory = map[domain.Category]categoryRule{
	domain.CategoryVehicle: {
		capacity: 1,
		slots:    func(domain.DateString) []types.TimeString { return VehicleSlots() },
	},
	domain.CategoryRegularFlight: {
		capacity: 1,
		slots:    func(domain.DateString) []types.TimeString { return RegularSlots() },
	},
	domain.CategoryHelicopterFlight: {
		capacity:        domain.HelicopterSlotCapacity,
		blockedByTandem: true,
		slots:           func(domain.DateString) []types.TimeString { return RegularSlots() },
	},
	domain.CategoryTandemFlight: {
		capacity: domain.TandemSlotCapacity,
		slots:    TandemSlotsFor,
	},
}

// ruleFor returns the rule for a category. Unrecognized categories
// fall open to regular-flight behavior (binary occupancy on the
// generated 30-minute grid); callers relying on this must document it.
func ruleFor(category domain.Category) categoryRule {
	if rule, ok := rulesByCategory[category]; ok {
		return rule
	}
	return rulesByCategory[domain.CategoryRegularFlight]
}
