package get_catalog

type Logger interface {
	Info(format string, v ...interface{})
}
