package get_catalog

import (
	"strings"

	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
)

// CatalogResponse fixed booking catalog shown by the booking form
type CatalogResponse struct {
	Slots        []string          `json:"slots"`
	BusinessDays []string          `json:"business_days"`
	LunchBreak   LunchBreak        `json:"lunch_break"`
	CarSizes     []CarSizeOption   `json:"car_sizes"`
	Services     []ServiceOption   `json:"services"`
	Statuses     map[string]string `json:"statuses"`
}

// LunchBreak never bookable interval
type LunchBreak struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CarSizeOption car size with its wax add-on price
type CarSizeOption struct {
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	WaxPrice float64 `json:"wax_price"`
}

// ServiceOption service with its price per car size
type ServiceOption struct {
	Value  string             `json:"value"`
	Label  string             `json:"label"`
	Prices map[string]float64 `json:"prices"`
}

// NewCatalogResponse builds the catalog from the domain tables
func NewCatalogResponse() *CatalogResponse {
	days := make([]string, 0, len(domain.BusinessDays))
	for _, d := range domain.BusinessDays {
		days = append(days, strings.ToLower(d.String()))
	}

	sizes := make([]CarSizeOption, 0, len(domain.AllCarSizes))
	for _, size := range domain.AllCarSizes {
		sizes = append(sizes, CarSizeOption{
			Value:    string(size),
			Label:    domain.CarSizeLabels[size],
			WaxPrice: domain.WaxPrice(size),
		})
	}

	services := make([]ServiceOption, 0, len(domain.AllServiceTypes))
	for _, service := range domain.AllServiceTypes {
		prices := make(map[string]float64, len(domain.AllCarSizes))
		for _, size := range domain.AllCarSizes {
			prices[string(size)] = domain.BasePrice(service, size)
		}
		services = append(services, ServiceOption{
			Value:  string(service),
			Label:  domain.ServiceTypeLabels[service],
			Prices: prices,
		})
	}

	statuses := make(map[string]string, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		statuses[string(status)] = domain.StatusLabels[status]
	}

	return &CatalogResponse{
		Slots:        domain.AllSlots(),
		BusinessDays: days,
		LunchBreak:   LunchBreak{Start: domain.LunchBreakStart, End: domain.LunchBreakEnd},
		CarSizes:     sizes,
		Services:     services,
		Statuses:     statuses,
	}
}
