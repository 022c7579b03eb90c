package create_appointment

import (
	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	createAppointment "github.com/RRibeiro-047/carlach-detailing/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName      string  `json:"client_name"`
	Phone           string  `json:"phone"`
	CarModel        string  `json:"car_model"`
	CarSize         string  `json:"car_size"`
	ServiceType     string  `json:"service_type"`
	WaxApplication  bool    `json:"wax_application"`
	AppointmentDate string  `json:"appointment_date"` // "2025-03-10"
	AppointmentTime string  `json:"appointment_time"` // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Appointment *domain.Appointment `json:"appointment"`
	Degraded    bool                `json:"degraded"`
}

// SlotConflictResponse 409 body with the slots still free on the requested date
type SlotConflictResponse struct {
	Code           int      `json:"code"`
	Message        string   `json:"message"`
	AvailableSlots []string `json:"available_slots"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		ClientName:      r.ClientName,
		Phone:           r.Phone,
		CarModel:        r.CarModel,
		CarSize:         domain.CarSize(r.CarSize),
		ServiceType:     domain.ServiceType(r.ServiceType),
		WaxApplication:  r.WaxApplication,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Appointment: resp.Appointment,
		Degraded:    resp.Degraded,
	}
}
