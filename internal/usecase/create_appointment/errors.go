package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput returned for a missing or malformed field
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrNotBusinessDay returned for Sunday dates
	ErrNotBusinessDay = errors.New("create_appointment: not a business day")

	// ErrInvalidTimeSlot returned when the time is not a catalog slot
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable returned when the slot is already taken
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal returned for storage failures
	ErrInternal = errors.New("create_appointment: internal error")
)

// SlotConflictError carries the slots still free on the requested date so the caller can re-prompt.
// It matches ErrSlotNotAvailable with errors.Is.
type SlotConflictError struct {
	Date      string
	Time      string
	Available []string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrSlotNotAvailable, e.Date, e.Time)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
