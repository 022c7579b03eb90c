package get_appointment

import (
	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Appointment  *domain.Appointment `json:"appointment"`
	StatusLabel  string              `json:"status_label"`
	WhatsAppLink string              `json:"whatsapp_link,omitempty"`
	Degraded     bool                `json:"degraded"`
}

// FromServiceResponse converts the service result into the HTTP model
func FromServiceResponse(result *models.AppointmentResult) *AppointmentResponse {
	return &AppointmentResponse{
		Appointment:  result.Appointment,
		StatusLabel:  domain.StatusLabels[result.Appointment.Status],
		WhatsAppLink: result.WhatsAppLink,
		Degraded:     result.Degraded,
	}
}
