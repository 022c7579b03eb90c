package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// SnapshotProvider supplies the latest appointment set for the pre-submit check
type SnapshotProvider interface {
	Fetch(ctx context.Context) (*models.Snapshot, error)
}

// AppointmentRepository persistent storage
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// SnapshotCache mirrors stored appointments and keeps those created while the database is down
type SnapshotCache interface {
	Add(ctx context.Context, appointment *domain.Appointment) error
	AddPending(ctx context.Context, appointment *domain.Appointment) error
}

// Metrics counters touched by the use case
type Metrics interface {
	IncAppointmentsCreated(storage string)
	IncSlotConflict(source string)
}

// IDGenerator generates appointment ids
type IDGenerator interface {
	NewID() string
}

// TimeProvider current time source, replaced in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator random (v4) uuids
type UUIDGenerator struct{}

// NewID returns a new uuid string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// RealTimeProvider wall clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
