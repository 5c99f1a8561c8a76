package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/api"
	events_service "github.com/SergeyKozhin/timeline-tracker/internal/business/events"
	preferences_service "github.com/SergeyKozhin/timeline-tracker/internal/business/preferences"
	"github.com/SergeyKozhin/timeline-tracker/internal/config"
	"github.com/SergeyKozhin/timeline-tracker/internal/database"
	"github.com/SergeyKozhin/timeline-tracker/internal/database/events"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/notifications"
	"github.com/SergeyKozhin/timeline-tracker/internal/redis"
	"github.com/SergeyKozhin/timeline-tracker/internal/seed"
	"github.com/SergeyKozhin/timeline-tracker/internal/storage/disk"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type eventsRepository interface {
	GetEvents(ctx context.Context) ([]*model.Event, error)
	SaveEvents(ctx context.Context, events []*model.Event) error
}

type preferencesRepository interface {
	GetPreferences(ctx context.Context) (*model.NotificationPreferences, error)
	SavePreferences(ctx context.Context, prefs *model.NotificationPreferences) error
}

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	eventsRepository, preferencesRepository, err := initStorage(ctx, logger)
	if err != nil {
		logger.Fatalw("unable to initialize storage", "storage", config.Storage(), "err", err)
	}

	eventsService := events_service.NewService(logger, eventsRepository)
	if err := eventsService.Load(ctx); err != nil {
		logger.Fatalw("unable to load events", "err", err)
	}

	if err := importSeed(ctx, logger, eventsService); err != nil {
		logger.Fatalw("unable to import seed events", "file", config.SeedFile(), "err", err)
	}

	preferencesService := preferences_service.NewService(logger, preferencesRepository)

	sender := notifications.NewSender(logger, eventsService, preferencesService, notifications.NewLogNotifier(logger), time.Now)
	if err := sender.Start(config.ReminderSchedule()); err != nil {
		logger.Fatalw("unable to start reminder sender", "schedule", config.ReminderSchedule(), "err", err)
	}

	api, err := api.NewApi(
		logger,
		config.MaxBodySize(),
		eventsService,
		preferencesService,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("server shutdown", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port(), "storage", config.Storage())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "err", err)
			closer.Close()
		}
	}()

	closer.Hold()
}

func initStorage(ctx context.Context, logger *zap.SugaredLogger) (eventsRepository, preferencesRepository, error) {
	switch config.Storage() {
	case config.StoragePostgres:
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, nil, fmt.Errorf("init db: %w", err)
		}
		if err := database.ApplyMigrations(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("migrate db: %w", err)
		}

		redisPool := redis.NewRedisPool(config.RedisURL(), logger)

		return events.NewRepository(db), redis.NewPreferencesRepository(redisPool, config.PreferencesKey(), logger), nil
	default:
		store := disk.New(config.DataDir())
		return store, store, nil
	}
}

func importSeed(ctx context.Context, logger *zap.SugaredLogger, eventsService *events_service.Service) error {
	if config.SeedFile() == "" || len(eventsService.All()) != 0 {
		return nil
	}

	seedEvents, err := seed.Load(config.SeedFile())
	if err != nil {
		return err
	}

	imported, err := eventsService.Import(ctx, seedEvents)
	if err != nil {
		return err
	}

	logger.Infow("seed events imported", "file", config.SeedFile(), "count", len(imported))
	return nil
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
