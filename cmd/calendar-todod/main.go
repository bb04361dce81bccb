package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/calendar-todo/backend/internal/api"
	events_service "github.com/calendar-todo/backend/internal/business/events"
	holidays_service "github.com/calendar-todo/backend/internal/business/holidays"
	tasks_service "github.com/calendar-todo/backend/internal/business/tasks"
	"github.com/calendar-todo/backend/internal/config"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/database/categories"
	"github.com/calendar-todo/backend/internal/database/events"
	"github.com/calendar-todo/backend/internal/database/exceptions"
	"github.com/calendar-todo/backend/internal/database/feeds"
	"github.com/calendar-todo/backend/internal/database/notes"
	"github.com/calendar-todo/backend/internal/database/rules"
	"github.com/calendar-todo/backend/internal/database/tasks"
	"github.com/calendar-todo/backend/internal/redis"
	"github.com/calendar-todo/backend/internal/reminders"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	if err := config.Load(); err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	redisPool := redis.NewRedisPool(logger)
	feedCache := redis.NewFeedCacheRepository(redisPool, logger)

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initialize db: %v", err)
	}
	eventsRepository := events.NewRepository()
	rulesRepository := rules.NewRepository()
	exceptionsRepository := exceptions.NewRepository()
	categoriesRepository := categories.NewRepository()
	tasksRepository := tasks.NewRepository()
	notesRepository := notes.NewRepository()
	feedsRepository := feeds.NewRepository()

	eventsService := events_service.NewService(db, logger, eventsRepository, rulesRepository, exceptionsRepository)
	tasksService := tasks_service.NewService(db, logger, tasksRepository)
	holidaysService := holidays_service.NewService(db, logger, feedsRepository, eventsRepository, categoriesRepository, feedCache)

	var leadTimes []time.Duration
	for _, lead := range reminders.DefaultLeadTimes {
		if lead <= config.ReminderLookahead() {
			leadTimes = append(leadTimes, lead)
		}
	}
	sender := reminders.NewSender(logger, eventsService, reminders.NewLogNotifier(logger), leadTimes)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(config.ReminderSchedule(), func() {
		sender.Scan(ctx)
	}); err != nil {
		logger.Fatalw("error scheduling reminder scan", "err", err)
	}
	if _, err := scheduler.AddFunc(config.FeedSyncSchedule(), func() {
		if err := holidaysService.SyncAll(ctx); err != nil {
			logger.Errorw("feed sync failed", "err", err)
		}
	}); err != nil {
		logger.Fatalw("error scheduling feed sync", "err", err)
	}
	scheduler.Start()
	closer.Bind(func() {
		<-scheduler.Stop().Done()
	})

	api, err := api.NewApi(
		logger,
		eventsService,
		tasksService,
		holidaysService,
		db,
		categoriesRepository,
		notesRepository,
		eventsRepository,
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

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
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
