package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "02.01.2006" // DD.MM.YYYY, as used by the event sheet
)

// Event dates. The event runs on exactly two calendar days.
const (
	FirstEventDate  DateString = "17.05.2025"
	SecondEventDate DateString = "18.05.2025"
)

// Capacity and exclusion rules
const (
	// TandemSlotCapacity is the passenger sum allowed per tandem slot
	TandemSlotCapacity = 4

	// HelicopterSlotCapacity is the passenger sum allowed per
	// helicopter experience slot
	HelicopterSlotCapacity = 3

	// TandemExclusionWindowMinutes hides helicopter experience slots
	// within this distance of an accepted tandem booking on the same
	// date. Strict inequality: a slot exactly 120 minutes away stays
	// bookable.
	TandemExclusionWindowMinutes = 120
)

// Slot generation windows
const (
	VehicleSlotStart       = "08:00"
	VehicleSlotEnd         = "21:00"
	VehicleSlotStepMinutes = 10

	RegularSlotStart       = "08:00"
	RegularSlotEnd         = "20:30"
	RegularSlotStepMinutes = 30
)

// Offering IDs referenced by name in the date-eligibility and
// passenger-count rules.
const (
	OfferingSchnupperflugHelikopter = "schnupperflug-helikopter"
	OfferingErlebnisflugHelikopter  = "erlebnisflug-helikopter"
	OfferingTandemflugHelikopter    = "tandemflug-helikopter"
)

// Contact field validation limits, mirrored by the booking form
const (
	MinNameLength       = 2
	MinStreetLength     = 5
	MinPostalCodeLength = 4
	MinCityLength       = 2
	BirthDateLength     = 10 // TT.MM.JJJJ
)
