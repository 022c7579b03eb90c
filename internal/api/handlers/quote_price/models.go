package quote_price

import quotePrice "github.com/RRibeiro-047/carlach-detailing/internal/usecase/quote_price"

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	CarSize          string  `json:"car_size"`
	CarSizeLabel     string  `json:"car_size_label"`
	ServiceType      string  `json:"service_type"`
	ServiceTypeLabel string  `json:"service_type_label"`
	BasePrice        float64 `json:"base_price"`
	WaxPrice         float64 `json:"wax_price"`
	WaxApplication   bool    `json:"wax_application"`
	Total            float64 `json:"total"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *quotePrice.Response, wax bool) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		CarSize:          string(resp.CarSize),
		CarSizeLabel:     resp.CarSizeLabel,
		ServiceType:      string(resp.ServiceType),
		ServiceTypeLabel: resp.ServiceTypeLabel,
		BasePrice:        resp.BasePrice,
		WaxPrice:         resp.WaxPrice,
		WaxApplication:   wax,
		Total:            resp.Total,
	}
}
