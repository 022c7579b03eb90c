package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics prometheus collectors of the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	AppointmentsCreated *prometheus.CounterVec
	SlotConflicts       *prometheus.CounterVec
	DegradedSnapshots   *prometheus.CounterVec
}

// New creates and registers the collectors in the default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates the collectors and registers them in reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Appointments created, by storage (database or cache)",
			ConstLabels: constLabels,
		}, []string{"storage"}),
		SlotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Create attempts rejected because the slot was taken",
			ConstLabels: constLabels,
		}, []string{"source"}),
		DegradedSnapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "degraded_snapshots_total",
			Help:        "Appointment snapshots served from the cache because the database failed",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.AppointmentsCreated,
		m.SlotConflicts,
		m.DegradedSnapshots,
	)

	return m
}

// ObserveHTTPRequest records a finished HTTP request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery records a finished database query
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncAppointmentsCreated storage is "database" or "cache"
func (m *Metrics) IncAppointmentsCreated(storage string) {
	m.AppointmentsCreated.WithLabelValues(storage).Inc()
}

// IncSlotConflict source is "snapshot" (resolver), "database" (unique index) or "replay" (pending cache write)
func (m *Metrics) IncSlotConflict(source string) {
	m.SlotConflicts.WithLabelValues(source).Inc()
}

// IncDegradedSnapshot counts a fallback to the cache
func (m *Metrics) IncDegradedSnapshot(operation string) {
	m.DegradedSnapshots.WithLabelValues(operation).Inc()
}
