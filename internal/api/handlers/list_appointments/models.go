package list_appointments

import (
	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// statusAll admin tab value meaning no status filter
const statusAll = "all"

// DayResponse appointments of one date
type DayResponse struct {
	Date         string                `json:"date"`
	Appointments []*domain.Appointment `json:"appointments"`
}

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Days     []DayResponse  `json:"days"`
	Counts   map[string]int `json:"counts"`
	Total    int            `json:"total"`
	Degraded bool           `json:"degraded"`
}

// ToServiceRequest builds the service request from query params
func ToServiceRequest(statusStr, search string) *models.ListRequest {
	req := &models.ListRequest{Search: search}
	if statusStr != "" && statusStr != statusAll {
		req.Status = &statusStr
	}
	return req
}

// FromServiceResponse converts the service response into the HTTP model
func FromServiceResponse(resp *models.ListResponse) *AppointmentListResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayResponse{Date: day.Date, Appointments: day.Appointments})
	}

	counts := make(map[string]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[string(status)] = resp.Counts[status]
	}

	return &AppointmentListResponse{
		Days:     days,
		Counts:   counts,
		Total:    resp.Total,
		Degraded: resp.Degraded,
	}
}
