package appointments

import (
	"context"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// AppointmentRepository persistent appointment storage
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// SnapshotCache last known appointment list, used when the repository fails
type SnapshotCache interface {
	Load(ctx context.Context) ([]*domain.Appointment, error)
	Save(ctx context.Context, appointments []*domain.Appointment) ([]*domain.Appointment, error)
	Pending(ctx context.Context) ([]*domain.Appointment, error)
	ClearPending(ctx context.Context, ids ...string) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// Notifier builds client notification links
type Notifier interface {
	NotificationLink(appointment *domain.Appointment) string
}

// Metrics counters touched by the service
type Metrics interface {
	IncDegradedSnapshot(operation string)
	IncSlotConflict(source string)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
