package snapshot

import "errors"

var (
	// ErrAppointmentNotFound returned when the cached snapshot has no such id
	ErrAppointmentNotFound = errors.New("snapshot.cache: appointment not found")

	// ErrRead returned when the snapshot cannot be read or decoded
	ErrRead = errors.New("snapshot.cache: failed to read snapshot")

	// ErrWrite returned when the snapshot cannot be encoded or written
	ErrWrite = errors.New("snapshot.cache: failed to write snapshot")
)
