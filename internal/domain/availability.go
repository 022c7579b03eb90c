package domain

// IsSlotAvailable reports whether no appointment other than excludeID occupies (date, time).
// Dates and times are compared as strings, so both sides must use the canonical
// YYYY-MM-DD / HH:MM formatting. Status is not consulted: a cancelled appointment
// still holds its slot until it is deleted.
// An empty excludeID excludes nothing.
func IsSlotAvailable(appointments []*Appointment, date, time, excludeID string) bool {
	for _, appointment := range appointments {
		if appointment == nil {
			continue
		}

		if excludeID != "" && appointment.ID == excludeID {
			continue
		}

		if appointment.AppointmentDate == date && appointment.AppointmentTime == time {
			return false
		}
	}
	return true
}

// AvailableSlots returns the catalog slots still free on date, in catalog order.
// It does not check the day of week; callers reject non-business days first.
func AvailableSlots(appointments []*Appointment, date, excludeID string) []string {
	available := make([]string, 0, len(slotCatalog))
	for _, slot := range slotCatalog {
		if IsSlotAvailable(appointments, date, slot, excludeID) {
			available = append(available, slot)
		}
	}
	return available
}
