package domain

import "time"

// slotCatalog hourly slots from opening to closing, lunch break excluded.
// Never mutated after init.
var slotCatalog = [...]string{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// BusinessDays weekdays the shop is open (Monday to Saturday)
var BusinessDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// AllSlots returns the bookable time labels of a business day in ascending order.
// The result is a fresh copy, callers may modify it.
func AllSlots() []string {
	slots := make([]string, len(slotCatalog))
	copy(slots, slotCatalog[:])
	return slots
}

// IsCatalogSlot returns true if label is one of the catalog slots
func IsCatalogSlot(label string) bool {
	for _, slot := range slotCatalog {
		if slot == label {
			return true
		}
	}
	return false
}

// IsBusinessDay reports whether date (YYYY-MM-DD) falls on Monday..Saturday.
// An empty date means the user has not picked one yet and is reported as true.
// An unparseable date is not a business day.
func IsBusinessDay(date string) bool {
	if date == "" {
		return true
	}

	// civil date, no time-of-day or zone drift
	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return false
	}

	weekday := day.Weekday()
	for _, d := range BusinessDays {
		if d == weekday {
			return true
		}
	}
	return false
}
