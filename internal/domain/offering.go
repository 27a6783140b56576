package domain

// Category classifies an offering and selects its capacity and
// exclusion rules.
type Category string

const (
	CategoryVehicle          Category = "vehicle"
	CategoryRegularFlight    Category = "regular"
	CategoryHelicopterFlight Category = "helicopter"
	CategoryTandemFlight     Category = "tandem"
)

// Offering is one bookable item of the event catalog. The catalog is
// immutable and known at startup.
type Offering struct {
	ID       string
	Label    string
	Category Category

	// PriceCHF is zero for vehicles (test drives are free)
	PriceCHF int

	// OnlyOnDate restricts the offering to a single event date.
	// Empty means bookable on every event date.
	OnlyOnDate DateString

	// MinAge is the minimum participant age in years, zero if none
	MinAge int

	// MaxWeightKG is the maximum participant weight, zero if none
	MaxWeightKG int
}

// IsVehicle reports whether the offering is a test-drive vehicle
func (o Offering) IsVehicle() bool {
	return o.Category == CategoryVehicle
}

// IsFlight reports whether the offering is any kind of flight
func (o Offering) IsFlight() bool {
	return !o.IsVehicle()
}

// AvailableOnDate reports whether the offering may be booked on the
// given event date at all (date-eligibility gate; capacity is a
// separate concern).
func (o Offering) AvailableOnDate(date DateString) bool {
	return o.OnlyOnDate == "" || o.OnlyOnDate == date
}
