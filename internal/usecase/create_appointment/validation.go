package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// validateRequest checks the form fields; day of week and slot occupancy are checked by the use case
func validateRequest(req *Request) error {
	if err := requiredText("clientName", req.ClientName, domain.MaxClientNameLength); err != nil {
		return err
	}

	if err := requiredText("phone", req.Phone, domain.MaxPhoneLength); err != nil {
		return err
	}

	if err := requiredText("carModel", req.CarModel, domain.MaxCarModelLength); err != nil {
		return err
	}

	if !req.CarSize.IsValid() {
		return fmt.Errorf("%w: unknown carSize %q", ErrInvalidInput, req.CarSize)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown serviceType %q", ErrInvalidInput, req.ServiceType)
	}

	if req.AppointmentDate == "" {
		return fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.AppointmentDate); err != nil {
		return fmt.Errorf("%w: appointmentDate must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	if req.AppointmentTime == "" {
		return fmt.Errorf("%w: appointmentTime is required", ErrInvalidInput)
	}

	if !domain.IsCatalogSlot(req.AppointmentTime) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.AppointmentTime)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func requiredText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, maxLen)
	}
	return nil
}
