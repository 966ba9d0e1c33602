package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hydromate/internal/backup"
	"hydromate/internal/config"
	"hydromate/internal/events"
	"hydromate/internal/hydration"
	"hydromate/internal/metrics"
	"hydromate/internal/reminders"
	"hydromate/internal/storage"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HYDROMATE_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	bus := events.NewBus()
	for _, eventType := range []string{
		events.TypeEntryAdded, events.TypeEntryDeleted,
		events.TypeGoalRecalculated, events.TypeOnboardingCompleted,
		events.TypeLogCleared,
	} {
		bus.Subscribe(eventType, func(e events.Event) {
			logger.Debug().Str("event", e.Type).Str("id", e.ID).Msg("store event")
		})
	}

	sqliteStore, err := storage.NewSQLiteStorage(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open storage error")
	}
	defer sqliteStore.Close()

	var medium storage.Storage = sqliteStore
	if cfg.Redis.Address != "" {
		redisStore, err := storage.NewRedisStorage(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, &logger)
		if err != nil {
			logger.Error().Err(err).Msg("redis unavailable, using local storage only")
		} else {
			defer redisStore.Close()
			medium = storage.NewFailoverStorage(redisStore, sqliteStore, &logger)
		}
	}

	store := hydration.NewStore(medium, bus, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Backup.Enabled {
		backupSvc := backup.NewService(cfg.Database.Path, backup.Config{
			Enabled:       true,
			Interval:      cfg.BackupInterval(),
			StoragePath:   cfg.Backup.Path,
			RetentionDays: cfg.Backup.RetentionDays,
		}, &logger)
		go backupSvc.Start(ctx)
	}

	if cfg.Monitoring.HealthCheckPort == 0 {
		cfg.Monitoring.HealthCheckPort = 8090
	}
	go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, sqliteStore, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	logger.Info().Msg("hydromate started")

	if cfg.Reminders.Enabled {
		scheduler := reminders.NewScheduler(reminders.Config{
			CheckInterval: cfg.ReminderCheckInterval(),
		}, store, logNotifier{logger: &logger}, &logger)
		scheduler.Start(ctx)
		return
	}

	<-ctx.Done()
}

// logNotifier surfaces reminders in the process log; the mobile shell plugs
// in the platform notification service instead.
type logNotifier struct {
	logger *zerolog.Logger
}

func (n logNotifier) Notify(_ context.Context, message string) error {
	n.logger.Info().Str("message", message).Msg("reminder")
	return nil
}

func startHealthServer(ctx context.Context, port int, store *storage.SQLiteStorage, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if store != nil {
			ctxGet, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			if _, err := store.Get(ctxGet, "readyz_probe"); err != nil && err != storage.ErrNotFound {
				http.Error(w, "storage not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
