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

	addVacationHandler "github.com/m04kA/SMC-VacationService/internal/api/handlers/add_vacation"
	deleteVacationHandler "github.com/m04kA/SMC-VacationService/internal/api/handlers/delete_vacation"
	showActiveHandler "github.com/m04kA/SMC-VacationService/internal/api/handlers/show_active"
	showUpcomingHandler "github.com/m04kA/SMC-VacationService/internal/api/handlers/show_upcoming"
	showVacationsHandler "github.com/m04kA/SMC-VacationService/internal/api/handlers/show_vacations"
	"github.com/m04kA/SMC-VacationService/internal/api/middleware"
	"github.com/m04kA/SMC-VacationService/internal/config"
	vacationRepo "github.com/m04kA/SMC-VacationService/internal/infra/storage/vacation"
	"github.com/m04kA/SMC-VacationService/internal/integrations/slackclient"
	notifierService "github.com/m04kA/SMC-VacationService/internal/service/notifier"
	vacationsService "github.com/m04kA/SMC-VacationService/internal/service/vacations"
	updateStatusUC "github.com/m04kA/SMC-VacationService/internal/usecase/update_status"
	"github.com/m04kA/SMC-VacationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VacationService/pkg/logger"
	"github.com/m04kA/SMC-VacationService/pkg/metrics"
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

	log.Info("Starting SMC-VacationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Инициализируем клиент мессенджера
	slackClient := slackclient.NewClient(
		cfg.Slack.BaseURL,
		cfg.Slack.Token,
		time.Duration(cfg.Slack.Timeout)*time.Second,
		log,
	)
	log.Info("Messenger client initialized (base_url=%s, timeout=%ds)", cfg.Slack.BaseURL, cfg.Slack.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var repository *vacationRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		repository = vacationRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		repository = vacationRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	notifier := notifierService.NewService(
		repository,
		slackClient,
		notifierMetrics(metricsCollector),
		log,
		cfg.Slack.ChannelNotificationEnabled,
		cfg.Slack.NotifiedChannelID,
	)
	vacationSvc := vacationsService.NewService(repository, notifier, log)

	// Запускаем фоновое обновление статусов
	if cfg.StatusUpdater.Enabled {
		statusUC := updateStatusUC.NewUseCase(
			repository,
			slackClient,
			statusMetrics(metricsCollector),
			log,
			cfg.StatusUpdater.Emoji,
		)
		interval := time.Duration(cfg.StatusUpdater.IntervalMinutes) * time.Minute
		go runStatusUpdater(statusUC, interval, stopCh, log)
		log.Info("Status updater started (interval=%s)", interval)
	}

	// Инициализируем handlers
	addVacation := addVacationHandler.NewHandler(vacationSvc, log)
	showVacations := showVacationsHandler.NewHandler(vacationSvc, log)
	deleteVacation := deleteVacationHandler.NewHandler(vacationSvc, log)
	showActive := showActiveHandler.NewHandler(vacationSvc, log)
	showUpcoming := showUpcomingHandler.NewHandler(vacationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Добавление отпуска
	api.HandleFunc("/vacations", addVacation.Handle).Methods(http.MethodPost)

	// Список отпусков пользователя
	api.HandleFunc("/teams/{teamId}/users/{userId}/vacations",
		showVacations.Handle).Methods(http.MethodGet)

	// Удаление отпуска
	api.HandleFunc("/teams/{teamId}/users/{userId}/vacations/{vacationId}",
		deleteVacation.Handle).Methods(http.MethodDelete)

	// Отпуска команды, активные на дату
	api.HandleFunc("/teams/{teamId}/vacations/active",
		showActive.Handle).Methods(http.MethodGet)

	// Предстоящие отпуска команды
	api.HandleFunc("/teams/{teamId}/vacations/upcoming",
		showUpcoming.Handle).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер
	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("SMC-VacationService stopped gracefully")
}

// runStatusUpdater периодически запускает проход обновления статусов
func runStatusUpdater(uc *updateStatusUC.UseCase, interval time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			result, err := uc.Execute(context.Background())
			if err != nil {
				log.Error("Status updater run failed: %v", err)
				continue
			}
			log.Info("Status updater run completed: scanned=%d, updated=%d", result.Scanned, result.Updated)
		case <-stopCh:
			return
		}
	}
}

// notifierMetrics приводит коллектор к интерфейсу диспетчера
// При выключенных метриках возвращает нетипизированный nil
func notifierMetrics(m *metrics.Metrics) notifierService.MetricsCollector {
	if m == nil {
		return nil
	}
	return m
}

// statusMetrics приводит коллектор к интерфейсу use case статусов
func statusMetrics(m *metrics.Metrics) updateStatusUC.MetricsCollector {
	if m == nil {
		return nil
	}
	return m
}
