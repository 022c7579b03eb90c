package quote_price

import quotePrice "github.com/RRibeiro-047/carlach-detailing/internal/usecase/quote_price"

type QuotePriceUseCase interface {
	Execute(req *quotePrice.Request) (*quotePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
