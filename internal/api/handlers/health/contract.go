package health

import "context"

// Pinger checks a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
