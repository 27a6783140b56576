package domain

import (
	"fmt"
	"time"
)

// DateString is an event date in "DD.MM.YYYY" form. Only the dates of
// the catalog are ever valid; free-form input is normalized at the HTTP
// boundary.
type DateString string

// EventDate is a bookable calendar date with its display label
type EventDate struct {
	Value DateString
	Label string
}

// EventDates is the fixed set of dates the event runs on, in order
var EventDates = []EventDate{
	{Value: FirstEventDate, Label: "17.05.2025 (Samstag)"},
	{Value: SecondEventDate, Label: "18.05.2025 (Sonntag)"},
}

// NewDateStringFromString parses and validates a "DD.MM.YYYY" value
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format, expected DD.MM.YYYY: %q", s)
	}
	return DateString(s), nil
}

// IsEventDate reports whether the date is one of the event dates
func (d DateString) IsEventDate() bool {
	for _, ed := range EventDates {
		if ed.Value == d {
			return true
		}
	}
	return false
}

// String returns the "DD.MM.YYYY" representation
func (d DateString) String() string {
	return string(d)
}
