package quote_price

import "github.com/RRibeiro-047/carlach-detailing/internal/domain"

// UseCase public price quote
type UseCase struct {
	logger Logger
}

func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute returns base, wax add-on and total for the requested combination.
// WaxPrice is reported even when the add-on is not selected so the form can show it.
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		CarSize:          req.CarSize,
		CarSizeLabel:     domain.CarSizeLabels[req.CarSize],
		ServiceType:      req.ServiceType,
		ServiceTypeLabel: domain.ServiceTypeLabels[req.ServiceType],
		BasePrice:        domain.BasePrice(req.ServiceType, req.CarSize),
		WaxPrice:         domain.WaxPrice(req.CarSize),
		Total:            domain.CalculatePrice(req.ServiceType, req.CarSize, req.WaxApplication),
	}

	uc.logger.Info("QuotePrice: service=%s, size=%s, wax=%t, total=%.2f",
		req.ServiceType, req.CarSize, req.WaxApplication, resp.Total)

	return resp, nil
}
