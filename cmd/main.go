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

	cancelAppointmentHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/create_appointment"
	createExceptionHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/create_exception"
	createMarginHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/create_margin"
	deleteExceptionHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/delete_exception"
	deleteMarginHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/delete_margin"
	deleteWorkingDayHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/delete_working_day"
	getAppointmentHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_customer_appointments"
	getScheduleHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_service"
	getServicesHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/get_services"
	listExceptionsHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/list_exceptions"
	rescheduleAppointmentHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/reschedule_appointment"
	updateMarginHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/update_margin"
	upsertWorkingDayHandler "github.com/ndelucca/lavadero-booking/internal/api/handlers/upsert_working_day"
	"github.com/ndelucca/lavadero-booking/internal/api/middleware"
	"github.com/ndelucca/lavadero-booking/internal/config"
	appointmentRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/appointment"
	exceptionRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/exception"
	scheduleRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/schedule"
	serviceConfigRepo "github.com/ndelucca/lavadero-booking/internal/infra/storage/serviceconfig"
	appointmentsService "github.com/ndelucca/lavadero-booking/internal/service/appointments"
	scheduleService "github.com/ndelucca/lavadero-booking/internal/service/schedule"
	createAppointmentUC "github.com/ndelucca/lavadero-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/ndelucca/lavadero-booking/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/ndelucca/lavadero-booking/internal/usecase/reschedule_appointment"
	"github.com/ndelucca/lavadero-booking/pkg/logger"
	"github.com/ndelucca/lavadero-booking/pkg/metrics"
	"github.com/ndelucca/lavadero-booking/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting lavadero-booking...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// The business timezone drives every civil to instant conversion.
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Business timezone: %s", cfg.Booking.Timezone)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories
	appointmentRepository := appointmentRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	exceptionRepository := exceptionRepo.NewRepository(db)
	serviceConfigRepository := serviceConfigRepo.NewRepository(db)

	storeTimeout := time.Duration(cfg.Booking.StoreTimeoutSeconds) * time.Second
	txManager := txmanager.New(db, storeTimeout)

	minLeadTime := time.Duration(cfg.Booking.MinLeadTimeMinutes) * time.Minute

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, exceptionRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		serviceConfigRepository,
		getAvailableSlotsUC.Params{
			Location:        location,
			SlotStepMinutes: cfg.Booking.SlotStepMinutes,
			MinLeadTime:     minLeadTime,
		},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		serviceConfigRepository,
		txManager,
		createAppointmentUC.Params{
			Location:    location,
			MinLeadTime: minLeadTime,
		},
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		exceptionRepository,
		txManager,
		rescheduleAppointmentUC.Params{
			Location:    location,
			MinLeadTime: minLeadTime,
		},
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(serviceConfigRepository, log)
	getService := getServiceHandler.NewHandler(serviceConfigRepository, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	upsertWorkingDay := upsertWorkingDayHandler.NewHandler(scheduleSvc, log)
	deleteWorkingDay := deleteWorkingDayHandler.NewHandler(scheduleSvc, log)
	createMargin := createMarginHandler.NewHandler(scheduleSvc, log)
	updateMargin := updateMarginHandler.NewHandler(scheduleSvc, log)
	deleteMargin := deleteMarginHandler.NewHandler(scheduleSvc, log)
	createException := createExceptionHandler.NewHandler(scheduleSvc, log)
	listExceptions := listExceptionsHandler.NewHandler(scheduleSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(scheduleSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Appointments
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// Schedule administration
	protected.HandleFunc("/schedule/days/{weekday}", upsertWorkingDay.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/days/{weekday}", deleteWorkingDay.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/schedule/days/{weekday}/margins", createMargin.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/margins/{marginId}", updateMargin.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/margins/{marginId}", deleteMargin.Handle).Methods(http.MethodDelete)

	// Closure exceptions
	protected.HandleFunc("/exceptions", createException.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/exceptions", listExceptions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
