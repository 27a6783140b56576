package get_offerings

import (
	"fmt"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// OfferingsResponse is the full catalog the booking wizard renders
type OfferingsResponse struct {
	Vehicles []OfferingModel `json:"vehicles"`
	Flights  []OfferingModel `json:"flights"`
	Dates    []DateModel     `json:"dates"`
}

// OfferingModel is one catalog entry with its display metadata
type OfferingModel struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Category   string   `json:"category"`
	PriceCHF   int      `json:"priceChf,omitempty"`
	OnlyOnDate string   `json:"onlyOnDate,omitempty"`
	Notices    []string `json:"notices"`
}

// DateModel is one event date with its display label
type DateModel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BuildResponse assembles the catalog response from the domain catalog
func BuildResponse() *OfferingsResponse {
	resp := &OfferingsResponse{
		Vehicles: make([]OfferingModel, len(domain.Vehicles)),
		Flights:  make([]OfferingModel, len(domain.Flights)),
		Dates:    make([]DateModel, len(domain.EventDates)),
	}

	for i, o := range domain.Vehicles {
		resp.Vehicles[i] = toModel(o)
	}
	for i, o := range domain.Flights {
		resp.Flights[i] = toModel(o)
	}
	for i, d := range domain.EventDates {
		resp.Dates[i] = DateModel{Value: d.Value.String(), Label: d.Label}
	}

	return resp
}

func toModel(o domain.Offering) OfferingModel {
	return OfferingModel{
		ID:         o.ID,
		Label:      o.Label,
		Category:   string(o.Category),
		PriceCHF:   o.PriceCHF,
		OnlyOnDate: o.OnlyOnDate.String(),
		Notices:    notices(o),
	}
}

// notices composes the German notice lines the form shows per offering
func notices(o domain.Offering) []string {
	switch o.Category {
	case domain.CategoryVehicle:
		lines := []string{
			fmt.Sprintf("Mindestalter %d Jahre", o.MinAge),
			"Unter Alkohol oder Drogeneinfluss darf nicht gefahren werden",
		}
		// Trucks, buses and cars take children along; tractors and the
		// motorcycle do not.
		if o.MinAge == 14 && o.ID != "schraeglagenmotorrad" {
			lines = append(lines, "Kinder (bis 14 Jahre) dürfen bei den Erwachsenen mitfahren")
		}
		return lines

	case domain.CategoryTandemFlight:
		return []string{
			fmt.Sprintf("Mindestalter %d Jahre", o.MinAge),
			fmt.Sprintf("Max. Gewicht %d Kg", o.MaxWeightKG),
			"Mind. leichte Turnschuhe",
			fmt.Sprintf("Es können max. %d Personen pro Flug teilnehmen", domain.TandemSlotCapacity),
		}

	default:
		lines := []string{"Kein Mindestalter"}
		if o.OnlyOnDate != "" {
			lines = append(lines, fmt.Sprintf("Hinweis: nur am %s verfügbar", o.OnlyOnDate))
		}
		return lines
	}
}
