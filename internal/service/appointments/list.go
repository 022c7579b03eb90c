package appointments

import (
	"sort"
	"strings"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments/models"
)

// matchesSearch case-insensitive match on client name and car model, substring on phone
func matchesSearch(appointment *domain.Appointment, term string) bool {
	if term == "" {
		return true
	}

	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(appointment.ClientName), lower) ||
		strings.Contains(appointment.Phone, term) ||
		strings.Contains(strings.ToLower(appointment.CarModel), lower)
}

// filterAppointments applies the admin filter, nil entries are dropped
func filterAppointments(appointments []*domain.Appointment, filter domain.AppointmentsFilter) []*domain.Appointment {
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment == nil {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		if !matchesSearch(appointment, filter.Search) {
			continue
		}
		filtered = append(filtered, appointment)
	}
	return filtered
}

// countByStatus counts every status, including those with zero appointments
func countByStatus(appointments []*domain.Appointment) map[domain.AppointmentStatus]int {
	counts := make(map[domain.AppointmentStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	for _, appointment := range appointments {
		counts[appointment.Status]++
	}
	return counts
}

// groupByDate groups by date ascending, times ascending within a day
func groupByDate(appointments []*domain.Appointment) []models.DayGroup {
	byDate := make(map[string][]*domain.Appointment)
	for _, appointment := range appointments {
		byDate[appointment.AppointmentDate] = append(byDate[appointment.AppointmentDate], appointment)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]models.DayGroup, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].AppointmentTime < day[j].AppointmentTime
		})
		groups = append(groups, models.DayGroup{Date: date, Appointments: day})
	}
	return groups
}
