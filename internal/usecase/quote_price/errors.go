package quote_price

import "errors"

// ErrInvalidInput returned for an unknown car size or service type
var ErrInvalidInput = errors.New("quote_price: invalid input data")
