package get_available_slots

import "errors"

var (
	// ErrOfferingNotFound is returned when the offering ID names no
	// catalog entry
	ErrOfferingNotFound = errors.New("get_available_slots: offering not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
