package domain

import "time"

// CarSize represents the car size class used for pricing
type CarSize string

const (
	CarSizeSedan  CarSize = "sedan"
	CarSizeSUV    CarSize = "suv"
	CarSizePickup CarSize = "pickup"
)

// ServiceType represents a detailing package
type ServiceType string

const (
	ServiceBasic    ServiceType = "basic"
	ServicePremium  ServiceType = "premium"
	ServiceDetailed ServiceType = "detailed"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a detailing appointment.
// AppointmentDate is a civil date (YYYY-MM-DD), AppointmentTime is one of the catalog labels (HH:MM).
type Appointment struct {
	ID              string            `json:"id"`
	ClientName      string            `json:"client_name"`
	Phone           string            `json:"phone"`
	CarModel        string            `json:"car_model"`
	CarSize         CarSize           `json:"car_size"`
	ServiceType     ServiceType       `json:"service_type"`
	WaxApplication  bool              `json:"wax_application"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Price           float64           `json:"price"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// IsValid returns true for a known car size
func (s CarSize) IsValid() bool {
	switch s {
	case CarSizeSedan, CarSizeSUV, CarSizePickup:
		return true
	}
	return false
}

// IsValid returns true for a known service type
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBasic, ServicePremium, ServiceDetailed:
		return true
	}
	return false
}

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// NotifiesClient returns true if moving to this status sends the client a message
func (s AppointmentStatus) NotifiesClient() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// AppointmentsFilter filter for the admin appointment list
type AppointmentsFilter struct {
	Status *AppointmentStatus // nil = all statuses
	Search string             // Matches client name, car model or phone
}
