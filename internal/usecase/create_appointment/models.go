package create_appointment

import "github.com/RRibeiro-047/carlach-detailing/internal/domain"

// Request booking form data
type Request struct {
	ClientName      string
	Phone           string
	CarModel        string
	CarSize         domain.CarSize
	ServiceType     domain.ServiceType
	WaxApplication  bool
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string // HH:MM
	Notes           *string
}

// Response created appointment.
// Degraded is true when it was stored only in the snapshot cache.
type Response struct {
	Appointment *domain.Appointment
	Degraded    bool
}
