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

	checkAvailabilityHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/check_availability"
	getAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_appointment"
	getCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_catalog"
	getResourceAppointmentsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_resource_appointments"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	gridCache "github.com/m04kA/SMC-CalendarService/internal/infra/cache/grid"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	resourceRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/resource"
	serviceRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-CalendarService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-CalendarService/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-CalendarService/internal/service/catalog/models"
	checkAvailabilityUC "github.com/m04kA/SMC-CalendarService/internal/usecase/check_availability"
	getCalendarUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы календаря (уже проверены в config.Validate)
	openTime, closeTime, err := cfg.Calendar.Hours()
	if err != nil {
		log.Fatal("Invalid calendar hours: %v", err)
	}
	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	log.Info("Calendar hours %s-%s, timezone=%s", openTime, closeTime, location)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		calendarMetrics  getCalendarUC.Metrics
		checkMetrics     checkAvailabilityUC.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		calendarMetrics = metricsCollector
		checkMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через обертку с метриками или напрямую с *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	resourceRepository := resourceRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Кэш сеток (опционально)
	var calendarCache getCalendarUC.GridCache
	if cfg.Cache.Enabled {
		redisClient, err := gridCache.NewClient(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			log.Warn("Grid cache disabled, redis unavailable: %v", err)
		} else {
			defer redisClient.Close()
			calendarCache = gridCache.NewCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
			log.Info("Grid cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
		}
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, location, log)
	catalogSvc := catalogService.NewService(
		resourceRepository,
		serviceRepository,
		catalogModels.BusinessHours{Open: openTime, Close: closeTime, Timezone: location.String()},
		log,
	)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		resourceRepository,
		appointmentRepository,
		getCalendarUC.BusinessHours{Open: openTime, Close: closeTime, Location: location},
		calendarCache,
		calendarMetrics,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		serviceRepository,
		resourceRepository,
		appointmentRepository,
		checkMetrics,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getResourceAppointments := getResourceAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Сетка календаря (день или неделя)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Проверка, какие услуги можно добавить к записи
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Справочники для формы записи
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Записи
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/appointments", getResourceAppointments.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
