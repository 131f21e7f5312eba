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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	botCreateAppointmentHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/bot_create_appointment"
	botFindSlotsHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/bot_find_slots"
	calendarFeedHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/calendar_feed"
	cancelAppointmentHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/create_appointment"
	createDayBlockHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/create_day_block"
	deleteDayBlockHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/delete_day_block"
	getAppointmentHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/get_available_slots"
	getBusinessAppointmentsHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/get_business_appointments"
	getBusinessCalendarHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/get_business_calendar"
	getClientAppointmentsHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/get_client_appointments"
	listDayBlocksHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/list_day_blocks"
	updateAppointmentStatusHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/update_appointment_status"
	updateBusinessCalendarHandler "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers/update_business_calendar"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/middleware"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/config"
	appointmentRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/calendar"
	catalogRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/catalog"
	dayblockRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/dayblock"
	professionalRepo "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/infra/storage/professional"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/integrations/calendarbridge"
	appointmentsService "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments"
	calendarService "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/calendar"
	createAppointmentUC "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/usecase/get_available_slots"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/dbmetrics"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/logger"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/metrics"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/simpletxmanager"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AgendaFacil-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify connectivity
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the external calendar bridge client (when enabled).
	// The interfaces stay nil when disabled; a nil bridge means "don't push"
	// and bookings never depend on it.
	var (
		bridgeForService appointmentsService.BridgeClient
		bridgeForUseCase createAppointmentUC.BridgeClient
	)
	if cfg.CalendarBridge.Enabled {
		bridgeClient := calendarbridge.NewClient(
			cfg.CalendarBridge.URL,
			time.Duration(cfg.CalendarBridge.Timeout)*time.Second,
			log,
		)
		bridgeForService = bridgeClient
		bridgeForUseCase = bridgeClient
		log.Info("Calendar bridge client initialized (url=%s, timeout=%ds)",
			cfg.CalendarBridge.URL, cfg.CalendarBridge.Timeout)
	} else {
		log.Info("Calendar bridge disabled, appointments will not be pushed")
	}

	// Initialize repositories (with or without metrics)
	var (
		appointmentRepository  *appointmentRepo.Repository
		calendarRepository     *calendarRepo.Repository
		professionalRepository *professionalRepo.Repository
		catalogRepository      *catalogRepo.Repository
		dayBlockRepository     *dayblockRepo.Repository
	)

	// Transaction manager interface (used by the booking use case)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		dayBlockRepository = dayblockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		dayBlockRepository = dayblockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		bridgeForService,
		log,
	)
	calendarSvc := calendarService.NewService(
		calendarRepository,
		professionalRepository,
		dayBlockRepository,
		log,
	)

	// Initialize use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		professionalRepository,
		catalogRepository,
		dayBlockRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		calendarRepository,
		professionalRepository,
		catalogRepository,
		dayBlockRepository,
		bridgeForUseCase,
		txMgr,
		log,
	)

	// Initialize handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessCalendar := getBusinessCalendarHandler.NewHandler(calendarSvc, log)
	updateBusinessCalendar := updateBusinessCalendarHandler.NewHandler(calendarSvc, log)
	createDayBlock := createDayBlockHandler.NewHandler(calendarSvc, log)
	listDayBlocks := listDayBlocksHandler.NewHandler(calendarSvc, log)
	deleteDayBlock := deleteDayBlockHandler.NewHandler(calendarSvc, log)
	botFindSlots := botFindSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	botCreateAppointment := botCreateAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	calendarFeed := calendarFeedHandler.NewHandler(appointmentsSvc, calendarSvc, &calendarService.RealTimeProvider{}, log)

	// Configure router
	r := mux.NewRouter()

	// Metrics middleware (when metrics enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Available slots for the booking wizard
	api.HandleFunc("/businesses/{businessId}/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Business scheduling configuration
	api.HandleFunc("/businesses/{businessId}/calendar",
		getBusinessCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Appointments ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Client appointment history
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Business management ---
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/calendar", updateBusinessCalendar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/businesses/{businessId}/day-blocks", createDayBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/professionals/{professionalId}/day-blocks",
		listDayBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/day-blocks/{blockId}", deleteDayBlock.Handle).Methods(http.MethodDelete)

	// ============================================================
	// WEBHOOK ROUTES (require X-Webhook-Token header)
	// ============================================================

	webhooks := r.PathPrefix("/webhooks").Subrouter()
	webhooks.Use(middleware.WebhookAuth(cfg.Webhooks.Token, log))

	// Conversational bot (n8n)
	webhooks.HandleFunc("/n8n/find-slots", botFindSlots.Handle).Methods(http.MethodPost)
	webhooks.HandleFunc("/n8n/appointments", botCreateAppointment.Handle).Methods(http.MethodPost)

	// External calendar integration (free/busy feed)
	webhooks.HandleFunc("/calendar/businesses/{businessId}/feed", calendarFeed.Handle).Methods(http.MethodGet)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
