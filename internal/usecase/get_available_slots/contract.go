package get_available_slots

import (
	"context"

	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// SnapshotProvider supplies the appointment set the resolver reasons over
type SnapshotProvider interface {
	Fetch(ctx context.Context) (*models.Snapshot, error)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
