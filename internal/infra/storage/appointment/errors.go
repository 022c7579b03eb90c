package appointment

import "errors"

var (
	// ErrAppointmentNotFound returned when no row matches the id
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken returned when the (date, time) unique index rejects an insert
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrConstraint returned when an insert breaks a table constraint other than the slot index
	ErrConstraint = errors.New("appointment.repository: constraint violation")

	// ErrBuildQuery returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery returned when the SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
