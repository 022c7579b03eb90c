package quote_price

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
