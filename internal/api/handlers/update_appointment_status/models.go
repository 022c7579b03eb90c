package update_appointment_status

import (
	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model.
// WhatsAppLink is set for confirmed and completed appointments.
type UpdateStatusResponse struct {
	Appointment  *domain.Appointment `json:"appointment"`
	WhatsAppLink string              `json:"whatsapp_link,omitempty"`
	Degraded     bool                `json:"degraded"`
}

// FromServiceResponse converts the service result into the HTTP model
func FromServiceResponse(result *models.StatusUpdateResult) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Appointment:  result.Appointment,
		WhatsAppLink: result.WhatsAppLink,
		Degraded:     result.Degraded,
	}
}
