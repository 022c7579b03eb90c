package quote_price

import "fmt"

func validateRequest(req *Request) error {
	if !req.CarSize.IsValid() {
		return fmt.Errorf("%w: unknown carSize %q", ErrInvalidInput, req.CarSize)
	}
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown serviceType %q", ErrInvalidInput, req.ServiceType)
	}
	return nil
}
