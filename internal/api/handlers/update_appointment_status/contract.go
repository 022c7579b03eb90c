package update_appointment_status

import (
	"context"

	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*models.StatusUpdateResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
