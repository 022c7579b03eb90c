package domain

// servicePrices base price per service and car size (BRL)
var servicePrices = map[ServiceType]map[CarSize]float64{
	ServiceBasic: {
		CarSizeSedan:  60,
		CarSizeSUV:    70,
		CarSizePickup: 80,
	},
	ServicePremium: {
		CarSizeSedan:  90,
		CarSizeSUV:    110,
		CarSizePickup: 140,
	},
	ServiceDetailed: {
		CarSizeSedan:  250,
		CarSizeSUV:    300,
		CarSizePickup: 400,
	},
}

var waxPrices = map[CarSize]float64{
	CarSizeSedan:  40,
	CarSizeSUV:    50,
	CarSizePickup: 60,
}

// BasePrice returns the price of a service for a car size, 0 for unknown values
func BasePrice(service ServiceType, size CarSize) float64 {
	return servicePrices[service][size]
}

// WaxPrice returns the wax add-on price for a car size, 0 for unknown sizes
func WaxPrice(size CarSize) float64 {
	return waxPrices[size]
}

// CalculatePrice derives the total price fixed at creation time
func CalculatePrice(service ServiceType, size CarSize, wax bool) float64 {
	price := BasePrice(service, size)
	if wax {
		price += WaxPrice(size)
	}
	return price
}

// Labels for client-facing messages (pt-BR)
var (
	CarSizeLabels = map[CarSize]string{
		CarSizeSedan:  "Sedan",
		CarSizeSUV:    "SUV",
		CarSizePickup: "Caminhonete",
	}

	ServiceTypeLabels = map[ServiceType]string{
		ServiceBasic:    "Básica",
		ServicePremium:  "Premium",
		ServiceDetailed: "Detalhada",
	}

	StatusLabels = map[AppointmentStatus]string{
		StatusPending:   "Pendente",
		StatusConfirmed: "Confirmado",
		StatusCompleted: "Finalizado",
		StatusCancelled: "Cancelado",
	}
)
