package bootstrap

import (
	"time"

	"github.com/time-tracker/api/internal/config"
	"github.com/time-tracker/api/internal/infra/cache"
	"github.com/time-tracker/api/internal/infra/db"
	"github.com/time-tracker/api/internal/infra/logger"
	"github.com/time-tracker/api/internal/infra/queue"
	"github.com/time-tracker/api/internal/modules/handler"
	"github.com/time-tracker/api/internal/modules/repo"
	"github.com/time-tracker/api/internal/modules/service"
	"github.com/time-tracker/api/internal/rpc"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, only resolved when the summary cache is enabled
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SummaryCache, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Cache.Enabled {
			return service.NopSummaryCache{}, nil
		}
		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		return cache.NewCache(do.MustInvoke[*redis.Client](i), cfg.Cache.Prefix, ttl), nil
	})

	// RabbitMQ, only resolved when a broker URL is configured
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(do.MustInvoke[*amqp.Connection](i), cfg.RabbitMQ.Exchange, do.MustInvoke[*zap.Logger](i))
	})
	do.Provide(inj, func(i *do.Injector) (*service.Notifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if cfg.RabbitMQ.URL == "" {
			return service.NewNotifier(nil, log), nil
		}
		pub, err := do.Invoke[*queue.Publisher](i)
		if err != nil {
			log.Sugar().Warnw("rabbitmq unavailable, mutation events disabled", "err", err)
			return service.NewNotifier(nil, log), nil
		}
		return service.NewNotifier(pub, log), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskLogRepo, error) {
		return repo.NewTaskLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskLogDetailRepo, error) {
		return repo.NewTaskLogDetailRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReferenceRepo, error) {
		return repo.NewReferenceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CalendarRepo, error) {
		return repo.NewCalendarRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.SummaryCache](i),
			do.MustInvoke[*service.Notifier](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[service.SummaryCache](i),
			do.MustInvoke[*service.Notifier](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskLogService, error) {
		return service.NewTaskLogService(service.TaskLogServiceDeps{
			Logs:       do.MustInvoke[repo.TaskLogRepo](i),
			Tasks:      do.MustInvoke[repo.TaskRepo](i),
			Details:    do.MustInvoke[repo.TaskLogDetailRepo](i),
			References: do.MustInvoke[repo.ReferenceRepo](i),
			Cache:      do.MustInvoke[service.SummaryCache](i),
			Events:     do.MustInvoke[*service.Notifier](i),
			Log:        do.MustInvoke[*zap.Logger](i),
		}), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskLogDetailService, error) {
		return service.NewTaskLogDetailService(
			do.MustInvoke[repo.TaskLogDetailRepo](i),
			do.MustInvoke[*service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReferenceService, error) {
		return service.NewReferenceService(
			do.MustInvoke[repo.ReferenceRepo](i),
			do.MustInvoke[*service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CalendarService, error) {
		return service.NewCalendarService(do.MustInvoke[repo.CalendarRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*rpc.Router, error) {
		r := rpc.NewRouter(do.MustInvoke[*zap.Logger](i))
		handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)).Register(r)
		handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)).Register(r)
		handler.NewTaskLogHandler(do.MustInvoke[service.TaskLogService](i)).Register(r)
		handler.NewTaskLogDetailHandler(do.MustInvoke[service.TaskLogDetailService](i)).Register(r)
		handler.NewReferenceHandler(do.MustInvoke[service.ReferenceService](i)).Register(r)
		handler.NewCalendarHandler(do.MustInvoke[service.CalendarService](i)).Register(r)
		return r, nil
	})

	return inj
}
