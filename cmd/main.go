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
	"github.com/rs/cors"

	cancelBookingHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/create_booking"
	exportBookingICSHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/export_booking_ics"
	getAllBookingsHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_all_bookings"
	getBookingHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_booking"
	getFamilyBookingsHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_family_bookings"
	getMeHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_me"
	getMonthAvailabilityHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_month_availability"
	getOpenHoursHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/get_open_hours"
	listServicesHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/list_services"
	loginHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/login"
	registerHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/register"
	setAvailabilityDayHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/set_availability_day"
	updateBookingStatusHandler "github.com/lucerocare/LRM-BookingService/internal/api/handlers/update_booking_status"
	"github.com/lucerocare/LRM-BookingService/internal/api/middleware"
	"github.com/lucerocare/LRM-BookingService/internal/config"
	availabilityRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/booking"
	profileRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/profile"
	serviceRepo "github.com/lucerocare/LRM-BookingService/internal/infra/storage/service"
	authService "github.com/lucerocare/LRM-BookingService/internal/service/auth"
	availabilityService "github.com/lucerocare/LRM-BookingService/internal/service/availability"
	bookingsService "github.com/lucerocare/LRM-BookingService/internal/service/bookings"
	confirmBookingUC "github.com/lucerocare/LRM-BookingService/internal/usecase/confirm_booking"
	getMonthAvailabilityUC "github.com/lucerocare/LRM-BookingService/internal/usecase/get_month_availability"
	getOpenHoursUC "github.com/lucerocare/LRM-BookingService/internal/usecase/get_open_hours"
	"github.com/lucerocare/LRM-BookingService/pkg/dbmetrics"
	"github.com/lucerocare/LRM-BookingService/pkg/logger"
	"github.com/lucerocare/LRM-BookingService/pkg/metrics"
	"github.com/lucerocare/LRM-BookingService/pkg/simpletxmanager"
	"github.com/lucerocare/LRM-BookingService/pkg/txmanager"
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

	log.Info("Starting LRM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	caregiverID, err := cfg.Caregiver.CaregiverID()
	if err != nil {
		log.Fatal("Invalid caregiver id in config: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		profileRepository      *profileRepo.Repository
		serviceRepository      *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с оберткой метрик
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, availabilitySvc, txMgr, log)
	authSvc := authService.NewService(
		profileRepository,
		&authService.RealTimeProvider{},
		log,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	// Инициализируем use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		serviceRepository,
		txMgr,
		log,
		caregiverID,
		confirmBookingUC.Pricing{
			NearMetroRate: cfg.Pricing.NearMetroRate,
			StandardRate:  cfg.Pricing.StandardRate,
		},
	)

	getOpenHoursUseCase := getOpenHoursUC.NewUseCase(availabilitySvc, bookingRepository, log)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getOpenHours := getOpenHoursHandler.NewHandler(getOpenHoursUseCase, log)
	setAvailabilityDay := setAvailabilityDayHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getFamilyBookings := getFamilyBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	exportBookingICS := exportBookingICSHandler.NewHandler(bookingSvc, &bookingsService.RealTimeProvider{}, log)

	// Middleware аутентификации
	auth := middleware.NewAuth(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Календарь доступности (месяц и день)
	api.HandleFunc("/availability/{year:[0-9]+}/{month:[0-9]+}",
		getMonthAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{year:[0-9]+}/{month:[0-9]+}/{day:[0-9]+}",
		getOpenHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Authenticate)

	// --- Профиль ---
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Экспорт бронирования в iCalendar
	protected.HandleFunc("/bookings/{bookingId}/calendar.ics", exportBookingICS.Handle).Methods(http.MethodGet)

	// История бронирований семьи
	protected.HandleFunc("/families/{familyId}/bookings", getFamilyBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только admin/caregiver)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAvailabilityManager)

	// Редактирование открытых часов дня
	admin.HandleFunc("/availability/{year:[0-9]+}/{month:[0-9]+}/{day:[0-9]+}",
		setAvailabilityDay.Handle).Methods(http.MethodPut)

	// Все бронирования с фильтрацией
	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// CORS для фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
