package sheets

import "errors"

var (
	// ErrRelayRejected is returned when the sheet workflow answers
	// with a non-success status for a submitted booking
	ErrRelayRejected = errors.New("sheets client: workflow rejected booking")

	// ErrInternal is returned when the request could not be built or
	// executed (endpoint unreachable, timeout)
	ErrInternal = errors.New("sheets client: internal error")

	// ErrInvalidResponse is returned when the workflow answers with an
	// unexpected status code or undecodable body
	ErrInvalidResponse = errors.New("sheets client: invalid response")
)
