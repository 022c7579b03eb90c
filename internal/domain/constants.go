package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength      = 500
	MaxClientNameLength = 120
	MaxCarModelLength   = 120
	MaxPhoneLength      = 32
)

// Lunch break, never bookable
const (
	LunchBreakStart = "12:00"
	LunchBreakEnd   = "13:00"
)

// AllStatuses all statuses in lifecycle order
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// AllCarSizes car sizes in form order
var AllCarSizes = []CarSize{
	CarSizeSedan,
	CarSizeSUV,
	CarSizePickup,
}

// AllServiceTypes services in form order
var AllServiceTypes = []ServiceType{
	ServiceBasic,
	ServicePremium,
	ServiceDetailed,
}
