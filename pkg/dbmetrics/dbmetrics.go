package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/RRibeiro-047/carlach-detailing/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB and *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB wraps *sql.DB and records query metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// DefaultStatsInterval pool stats collection period
const DefaultStatsInterval = 15 * time.Second

// Wrap wraps db without starting the pool stats collector
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and collects pool stats every DefaultStatsInterval until stopCh is closed
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(DefaultStatsInterval, stopCh)
	return wrapped
}

// ExecContext executes a query without returning rows
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), err, time.Since(start))
	return result, err
}

// QueryContext executes a query returning rows
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), err, time.Since(start))
	return rows, err
}

// QueryRowContext executes a query returning at most one row.
// Errors surface on Scan, so only the duration is meaningful here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery(operation(query), row.Err(), time.Since(start))
	return row
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordPoolStats()
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues().Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues().Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues().Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues().Set(float64(stats.WaitCount))
}

// operation extracts the SQL verb used as a metric label
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
