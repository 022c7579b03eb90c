package models

import "github.com/RRibeiro-047/carlach-detailing/internal/domain"

// Snapshot appointment set as seen by the caller.
// Degraded is true when it came from the cache instead of the database.
type Snapshot struct {
	Appointments []*domain.Appointment
	Degraded     bool
}

// ListRequest admin list filters
type ListRequest struct {
	Status *string // nil = all statuses
	Search string
}

// DayGroup appointments of one date, ordered by time
type DayGroup struct {
	Date         string
	Appointments []*domain.Appointment
}

// ListResponse admin list grouped by date
type ListResponse struct {
	Days     []DayGroup
	Counts   map[domain.AppointmentStatus]int // per status, search applied
	Total    int                              // appointments in Days
	Degraded bool
}

// AppointmentResult single appointment plus the client notification link, if any
type AppointmentResult struct {
	Appointment  *domain.Appointment
	WhatsAppLink string
	Degraded     bool
}

// StatusUpdateResult updated appointment plus the client notification link, if any
type StatusUpdateResult struct {
	Appointment  *domain.Appointment
	WhatsAppLink string
	Degraded     bool
}
