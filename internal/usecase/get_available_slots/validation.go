package get_available_slots

import (
	"fmt"
	"time"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// validateRequest the resolver itself accepts any string, malformed dates are rejected here
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	return nil
}
