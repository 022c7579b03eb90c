package quote_price

import "github.com/RRibeiro-047/carlach-detailing/internal/domain"

// Request quote parameters
type Request struct {
	CarSize        domain.CarSize
	ServiceType    domain.ServiceType
	WaxApplication bool
}

// Response price breakdown in BRL
type Response struct {
	CarSize          domain.CarSize
	CarSizeLabel     string
	ServiceType      domain.ServiceType
	ServiceTypeLabel string
	BasePrice        float64
	WaxPrice         float64
	Total            float64
}
