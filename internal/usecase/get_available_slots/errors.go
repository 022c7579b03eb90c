package get_available_slots

import "errors"

var (
	// ErrInvalidInput returned for a missing or malformed request
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal returned when the appointment snapshot cannot be obtained
	ErrInternal = errors.New("get_available_slots: internal error")
)
