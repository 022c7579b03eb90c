package get_appointment

import (
	"context"

	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

type AppointmentService interface {
	Get(ctx context.Context, id string) (*models.AppointmentResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
