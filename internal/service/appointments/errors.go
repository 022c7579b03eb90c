package appointments

import "errors"

var (
	// ErrAppointmentNotFound returned when neither the database nor the cache has the appointment
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidStatus returned for an unknown status value
	ErrInvalidStatus = errors.New("appointments: invalid status")

	// ErrStorageUnavailable returned when both the database and the cache fail
	ErrStorageUnavailable = errors.New("appointments: storage unavailable")
)
