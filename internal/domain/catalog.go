package domain

import "github.com/freshup-events/erlebnisbuchung/pkg/types"

// Vehicles is the test-drive catalog for the event
var Vehicles = []Offering{
	{ID: "schraeglagenmotorrad", Label: "Schräglagenmotorrad", Category: CategoryVehicle, MinAge: 14},
	{ID: "audi-q6", Label: "Audi Q6", Category: CategoryVehicle, MinAge: 14},
	{ID: "id-4", Label: "ID 4", Category: CategoryVehicle, MinAge: 14},
	{ID: "cupra-born", Label: "Cupra Born", Category: CategoryVehicle, MinAge: 14},
	{ID: "scania", Label: "Scania", Category: CategoryVehicle, MinAge: 14},
	{ID: "scania-elektro", Label: "Scania elektro", Category: CategoryVehicle, MinAge: 14},
	{ID: "kran", Label: "Kran führen", Category: CategoryVehicle, MinAge: 14},
	{ID: "lkw-mercedes-1729", Label: "LKW Mercedes 1729", Category: CategoryVehicle, MinAge: 14},
	{ID: "setra", Label: "Setra", Category: CategoryVehicle, MinAge: 14},
	{ID: "fendt-211", Label: "Fendt 211", Category: CategoryVehicle, MinAge: 12},
	{ID: "fendt-314", Label: "Fendt 314", Category: CategoryVehicle, MinAge: 12},
	{ID: "fendt-620", Label: "Fendt 620", Category: CategoryVehicle, MinAge: 12},
}

// Flights is the flight catalog for the event
var Flights = []Offering{
	{ID: "erlebnisflug-pipistrel-elektro", Label: "Erlebnisflug Pipistrel Elektro – 50 CHF", Category: CategoryRegularFlight, PriceCHF: 50},
	{ID: "erlebnisflug-pipistrel-verbrenner", Label: "Erlebnisflug Pipistrel Verbrenner – 75 CHF", Category: CategoryRegularFlight, PriceCHF: 75},
	{ID: "erlebnisflug-bristel-b23", Label: "Erlebnisflug Bristel B23 – 100 CHF", Category: CategoryRegularFlight, PriceCHF: 100},
	{ID: "schnupperflug-pipistrel-elektro", Label: "Schnupperflug Pipistrel Elektro – 50 CHF", Category: CategoryRegularFlight, PriceCHF: 50},
	{ID: "schnupperflug-pipistrel-verbrenner", Label: "Schnupperflug Pipistrel Verbrenner – 75 CHF", Category: CategoryRegularFlight, PriceCHF: 75},
	{ID: "schnupperflug-bristel-b23", Label: "Schnupperflug Bristel B23 – 100 CHF", Category: CategoryRegularFlight, PriceCHF: 100},
	{ID: OfferingSchnupperflugHelikopter, Label: "Schnupperflug Helikopter – 150 CHF", Category: CategoryHelicopterFlight, PriceCHF: 150, OnlyOnDate: FirstEventDate},
	{ID: OfferingErlebnisflugHelikopter, Label: "Erlebnisflug Helikopter – 50 CHF", Category: CategoryHelicopterFlight, PriceCHF: 50, OnlyOnDate: SecondEventDate},
	{ID: OfferingTandemflugHelikopter, Label: "Tandemflug Helikopter – 380 CHF", Category: CategoryTandemFlight, PriceCHF: 380, MinAge: 12, MaxWeightKG: 100},
}

// TandemSlots is the fixed slot table for tandem flights, keyed by
// event date. Dates missing from the table have no tandem slots.
var TandemSlots = map[DateString][]types.TimeString{
	FirstEventDate:  {"09:00", "11:00", "13:00", "15:00", "17:00"},
	SecondEventDate: {"09:00", "11:00", "13:00", "15:00"},
}

var offeringsByID = buildOfferingIndex()

func buildOfferingIndex() map[string]Offering {
	idx := make(map[string]Offering, len(Vehicles)+len(Flights))
	for _, o := range Vehicles {
		idx[o.ID] = o
	}
	for _, o := range Flights {
		idx[o.ID] = o
	}
	return idx
}

// FindOffering looks up an offering by its catalog ID
func FindOffering(id string) (Offering, bool) {
	o, ok := offeringsByID[id]
	return o, ok
}

// CategoryOf returns the category of a catalog offering ID. Unknown
// IDs (e.g. stale sheet rows) report false and never participate in
// capacity rules.
func CategoryOf(id string) (Category, bool) {
	o, ok := offeringsByID[id]
	if !ok {
		return "", false
	}
	return o.Category, true
}
