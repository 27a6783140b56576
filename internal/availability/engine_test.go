package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
	"github.com/freshup-events/erlebnisbuchung/pkg/types"
)

func mustOffering(t *testing.T, id string) domain.Offering {
	t.Helper()
	o, ok := domain.FindOffering(id)
	require.True(t, ok, "offering %s must exist in catalog", id)
	return o
}

func TestVehicleSlots(t *testing.T) {
	slots := VehicleSlots()

	require.Len(t, slots, 79) // 08:00..21:00 every 10 minutes
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, 10, cur-prev, "slot grid must be 10 minutes: %s -> %s", slots[i-1], slots[i])
	}
}

func TestRegularSlots(t *testing.T) {
	slots := RegularSlots()

	require.Len(t, slots, 26) // 08:00..20:30 every 30 minutes
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("20:30"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("21:00"))
}

func TestTandemSlotsFor(t *testing.T) {
	assert.Equal(t,
		[]types.TimeString{"09:00", "11:00", "13:00", "15:00", "17:00"},
		TandemSlotsFor(domain.FirstEventDate))

	assert.Equal(t,
		[]types.TimeString{"09:00", "11:00", "13:00", "15:00"},
		TandemSlotsFor(domain.SecondEventDate))

	assert.Empty(t, TandemSlotsFor("01.01.2030"))
}

func TestAvailableSlots_VehicleBinaryOccupancy(t *testing.T) {
	audi := mustOffering(t, "audi-q6")
	date := domain.FirstEventDate

	entries := []domain.Booking{
		{OfferingID: "audi-q6", Date: date, Time: "10:10"},
	}

	slots := AvailableSlots(entries, audi, date)

	assert.NotContains(t, slots, types.TimeString("10:10"))
	assert.Contains(t, slots, types.TimeString("10:00"))
	assert.Contains(t, slots, types.TimeString("10:20"))
	assert.Len(t, slots, 78)

	// A different vehicle at the same time does not occupy this one
	other := AvailableSlots([]domain.Booking{
		{OfferingID: "id-4", Date: date, Time: "10:10"},
	}, audi, date)
	assert.Contains(t, other, types.TimeString("10:10"))

	// Same vehicle on the other date does not occupy this one either
	otherDate := AvailableSlots(entries, audi, domain.SecondEventDate)
	assert.Contains(t, otherDate, types.TimeString("10:10"))
}

func TestAvailableSlots_RegularFlightBinaryOccupancy(t *testing.T) {
	flight := mustOffering(t, "erlebnisflug-bristel-b23")
	date := domain.SecondEventDate

	entries := []domain.Booking{
		{OfferingID: flight.ID, Date: date, Time: "09:30"},
	}

	slots := AvailableSlots(entries, flight, date)
	assert.NotContains(t, slots, types.TimeString("09:30"))
	assert.Len(t, slots, 25)
}

func TestAvailableSlots_TandemCapacity(t *testing.T) {
	tandem := mustOffering(t, domain.OfferingTandemflugHelikopter)
	date := domain.FirstEventDate

	bookingsAt := func(n int) []domain.Booking {
		entries := make([]domain.Booking, n)
		for i := range entries {
			entries[i] = domain.Booking{OfferingID: tandem.ID, Date: date, Time: "09:00", Count: 1}
		}
		return entries
	}

	tests := []struct {
		name     string
		entries  []domain.Booking
		wantFree bool
	}{
		{"empty ledger", nil, true},
		{"three passengers", bookingsAt(3), true},
		{"four passengers", bookingsAt(4), false},
		{"count column sums", []domain.Booking{
			{OfferingID: tandem.ID, Date: date, Time: "09:00", Count: 2},
			{OfferingID: tandem.ID, Date: date, Time: "09:00", Count: 2},
		}, false},
		{"absent count is one passenger", []domain.Booking{
			{OfferingID: tandem.ID, Date: date, Time: "09:00"},
			{OfferingID: tandem.ID, Date: date, Time: "09:00"},
			{OfferingID: tandem.ID, Date: date, Time: "09:00"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := AvailableSlots(tt.entries, tandem, date)
			if tt.wantFree {
				assert.Contains(t, slots, types.TimeString("09:00"))
			} else {
				assert.NotContains(t, slots, types.TimeString("09:00"))
			}
			// Other tandem slots stay unaffected
			assert.Contains(t, slots, types.TimeString("11:00"))
		})
	}
}

func TestAvailableSlots_HelicopterCapacity(t *testing.T) {
	heli := mustOffering(t, domain.OfferingSchnupperflugHelikopter)
	date := domain.FirstEventDate

	entries := []domain.Booking{
		{OfferingID: heli.ID, Date: date, Time: "09:30", Count: 1},
		{OfferingID: heli.ID, Date: date, Time: "09:30", Count: 1},
	}

	slots := AvailableSlots(entries, heli, date)
	assert.Contains(t, slots, types.TimeString("09:30"), "two of three spots taken")

	entries = append(entries, domain.Booking{OfferingID: heli.ID, Date: date, Time: "09:30", Count: 1})
	slots = AvailableSlots(entries, heli, date)
	assert.NotContains(t, slots, types.TimeString("09:30"), "all three spots taken")
}

func TestAvailableSlots_TandemExclusionWindow(t *testing.T) {
	heli := mustOffering(t, domain.OfferingSchnupperflugHelikopter)
	date := domain.FirstEventDate

	entries := []domain.Booking{
		{OfferingID: domain.OfferingTandemflugHelikopter, Date: date, Time: "10:00", Count: 1},
	}

	slots := AvailableSlots(entries, heli, date)

	// Strictly inside the 120-minute window: hidden
	for _, hidden := range []types.TimeString{"08:30", "09:00", "10:00", "11:00", "11:30"} {
		assert.NotContains(t, slots, hidden, "slot %s lies within 120 minutes of the tandem booking", hidden)
	}

	// Exactly 120 minutes away and beyond: bookable
	for _, free := range []types.TimeString{"08:00", "12:00", "12:30", "20:30"} {
		assert.Contains(t, slots, free, "slot %s lies outside the exclusion window", free)
	}
}

func TestAvailableSlots_ExclusionIsOneDirectional(t *testing.T) {
	tandem := mustOffering(t, domain.OfferingTandemflugHelikopter)
	date := domain.FirstEventDate

	// A helicopter experience booking never hides tandem slots
	entries := []domain.Booking{
		{OfferingID: domain.OfferingSchnupperflugHelikopter, Date: date, Time: "09:00", Count: 1},
	}

	slots := AvailableSlots(entries, tandem, date)
	assert.Equal(t, TandemSlotsFor(date), slots)
}

func TestAvailableSlots_ExclusionIsPerDate(t *testing.T) {
	heli := mustOffering(t, domain.OfferingErlebnisflugHelikopter)

	// Tandem booking on the first date does not block the second
	entries := []domain.Booking{
		{OfferingID: domain.OfferingTandemflugHelikopter, Date: domain.FirstEventDate, Time: "10:00", Count: 1},
	}

	slots := AvailableSlots(entries, heli, domain.SecondEventDate)
	assert.Contains(t, slots, types.TimeString("10:00"))
}

func TestAvailableSlots_DateEligibilityGate(t *testing.T) {
	schnupper := mustOffering(t, domain.OfferingSchnupperflugHelikopter)
	erlebnis := mustOffering(t, domain.OfferingErlebnisflugHelikopter)

	assert.NotEmpty(t, AvailableSlots(nil, schnupper, domain.FirstEventDate))
	assert.Empty(t, AvailableSlots(nil, schnupper, domain.SecondEventDate))

	assert.NotEmpty(t, AvailableSlots(nil, erlebnis, domain.SecondEventDate))
	assert.Empty(t, AvailableSlots(nil, erlebnis, domain.FirstEventDate))
}

func TestAvailableSlots_UnknownCategoryFailsOpenToRegular(t *testing.T) {
	odd := domain.Offering{ID: "segway", Category: domain.Category("segway")}
	date := domain.FirstEventDate

	slots := AvailableSlots(nil, odd, date)
	assert.Equal(t, RegularSlots(), slots)

	occupied := AvailableSlots([]domain.Booking{
		{OfferingID: "segway", Date: date, Time: "08:30"},
	}, odd, date)
	assert.NotContains(t, occupied, types.TimeString("08:30"))
}

func TestAvailableSlots_ToleratesPartialLedgerRows(t *testing.T) {
	heli := mustOffering(t, domain.OfferingSchnupperflugHelikopter)
	date := domain.FirstEventDate

	entries := []domain.Booking{
		// Row naming no catalog offering: never matches, never blocks
		{OfferingID: "retired-offering", Date: date, Time: "09:30"},
		// Malformed time on a tandem row: cannot block anything
		{OfferingID: domain.OfferingTandemflugHelikopter, Date: date, Time: "whenever"},
	}

	slots := AvailableSlots(entries, heli, date)
	assert.Equal(t, RegularSlots(), slots)
}

func TestAvailableSlots_Idempotent(t *testing.T) {
	tandem := mustOffering(t, domain.OfferingTandemflugHelikopter)
	entries := []domain.Booking{
		{OfferingID: tandem.ID, Date: domain.FirstEventDate, Time: "09:00", Count: 2},
	}

	first := AvailableSlots(entries, tandem, domain.FirstEventDate)
	second := AvailableSlots(entries, tandem, domain.FirstEventDate)
	assert.Equal(t, first, second)
}

func TestIsSlotAvailable(t *testing.T) {
	audi := mustOffering(t, "audi-q6")
	date := domain.FirstEventDate

	entries := []domain.Booking{
		{OfferingID: "audi-q6", Date: date, Time: "10:10"},
	}

	assert.False(t, IsSlotAvailable(entries, audi, date, "10:10"))
	assert.True(t, IsSlotAvailable(entries, audi, date, "10:20"))
	// Times off the grid are never available
	assert.False(t, IsSlotAvailable(nil, audi, date, "10:15"))
}
