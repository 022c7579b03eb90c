package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/get_catalog"
	healthHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/health"
	listAppointmentsHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/list_appointments"
	quotePriceHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/quote_price"
	updateAppointmentStatusHandler "github.com/RRibeiro-047/carlach-detailing/internal/api/handlers/update_appointment_status"
	"github.com/RRibeiro-047/carlach-detailing/internal/api/middleware"
	"github.com/RRibeiro-047/carlach-detailing/internal/config"
	"github.com/RRibeiro-047/carlach-detailing/internal/infra/cache/snapshot"
	appointmentRepo "github.com/RRibeiro-047/carlach-detailing/internal/infra/storage/appointment"
	"github.com/RRibeiro-047/carlach-detailing/internal/integrations/whatsapp"
	appointmentsService "github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
	createAppointmentUC "github.com/RRibeiro-047/carlach-detailing/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/RRibeiro-047/carlach-detailing/internal/usecase/get_available_slots"
	quotePriceUC "github.com/RRibeiro-047/carlach-detailing/internal/usecase/quote_price"
	"github.com/RRibeiro-047/carlach-detailing/pkg/dbmetrics"
	"github.com/RRibeiro-047/carlach-detailing/pkg/logger"
	"github.com/RRibeiro-047/carlach-detailing/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting carlach-detailing...")
	log.Info("Configuration loaded from %s", configPath)

	// Collectors always exist; when disabled they live in a private registry that is never exposed
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// An unreachable database is not fatal: reads and writes fall back to the snapshot cache
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn("Database unreachable at startup, serving from snapshot cache: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}
	pingCancel()

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, metricsCollector)
	}

	redisTimeout := time.Duration(cfg.Redis.Timeout) * time.Second
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  redisTimeout,
		ReadTimeout:  redisTimeout,
		WriteTimeout: redisTimeout,
	})
	defer rdb.Close()
	log.Info("Snapshot cache configured (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Redis.SnapshotKey)

	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	snapshotStore := snapshot.NewStore(rdb, cfg.Redis.SnapshotKey)
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp.CountryCode, cfg.WhatsApp.ShopName)

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		snapshotStore,
		whatsappClient,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentsSvc, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentsSvc,
		appointmentRepository,
		snapshotStore,
		metricsCollector,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	health := healthHandler.NewHandler(
		healthHandler.PingFunc(db.PingContext),
		healthHandler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		log,
	)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (booking form)
	// ============================================================

	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prices", quotePrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (HTTP Basic auth)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Username, cfg.Admin.PasswordHash, log))

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
