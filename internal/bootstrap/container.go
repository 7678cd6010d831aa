package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/infra/cache"
	"github.com/serviceflow/serviceflow-api/internal/infra/db"
	"github.com/serviceflow/serviceflow-api/internal/infra/logger"
	mq "github.com/serviceflow/serviceflow-api/internal/infra/queue"
	"github.com/serviceflow/serviceflow-api/internal/modules/handler"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/serviceflow/serviceflow-api/internal/router"
)

// BuildContainer registers every provider lazily; nothing connects until
// the first MustInvoke that needs it.
func BuildContainer(cfg *config.Config) *do.Injector {
	inj := do.New()

	// config
	do.ProvideValue(inj, cfg)

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Telemetry.Enabled {
			if err := db.RegisterOpenTelemetryPlugin(d); err != nil {
				log.Sugar().Warnw("gorm tracing disabled", "err", err)
			}
		}
		if cfg.Database.AutoMigrate {
			if err := Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, only when enabled
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		rdb, err := cache.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Telemetry.Enabled {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				do.MustInvoke[*zap.Logger](i).Sugar().Warnw("redis tracing disabled", "err", err)
			}
		}
		return rdb, nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.APIKeyCache, error) {
		if !cfg.Redis.Enabled {
			return repo.NewAPIKeyCache(nil, cfg.Auth.PasswordPepper, cfg.APIKeyCacheTTL()), nil
		}
		rdb, err := do.Invoke[*redis.Client](i)
		if err != nil {
			return nil, err
		}
		return repo.NewAPIKeyCache(rdb, cfg.Auth.PasswordPepper, cfg.APIKeyCacheTTL()), nil
	})

	// RabbitMQ, only when enabled
	do.Provide(inj, func(i *do.Injector) (mq.DialFunc, error) {
		return mq.NewDialFunc(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		return mq.NewPublisher(do.MustInvoke[mq.DialFunc](i), do.MustInvoke[*zap.Logger](i), cfg)
	})
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		if !cfg.RabbitMQ.Enabled {
			return service.NopPublisher(), nil
		}
		p, err := do.Invoke[*mq.Publisher](i)
		if err != nil {
			return nil, err
		}
		return p, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ServiceRepo, error) {
		return repo.NewServiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.BookingRepo, error) {
		return repo.NewBookingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SubscriberRepo, error) {
		return repo.NewSubscriberRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.CredentialService, error) {
		return service.NewCredentialService(
			do.MustInvoke[repo.UserRepo](i),
			cfg,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AccessResolver, error) {
		return service.NewAccessResolver(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.APIKeyCache](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.APIKeyCache](i),
			do.MustInvoke[service.CredentialService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.APIKeyCache](i),
			cfg,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(
			do.MustInvoke[repo.ServiceRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.BookingService, error) {
		return service.NewBookingService(
			do.MustInvoke[repo.BookingRepo](i),
			do.MustInvoke[repo.ServiceRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SubscriberService, error) {
		return service.NewSubscriberService(
			do.MustInvoke[repo.SubscriberRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.CredentialService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ServiceHandler, error) {
		return handler.NewServiceHandler(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.BookingHandler, error) {
		return handler.NewBookingHandler(do.MustInvoke[service.BookingService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SubscriberHandler, error) {
		return handler.NewSubscriberHandler(do.MustInvoke[service.SubscriberService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PublicHandler, error) {
		return handler.NewPublicHandler(
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[service.BookingService](i),
			do.MustInvoke[service.SubscriberService](i),
		), nil
	})

	// Router
	do.Provide(inj, func(i *do.Injector) (*router.RouterDeps, error) {
		return &router.RouterDeps{
			Config:            cfg,
			Log:               do.MustInvoke[*zap.Logger](i),
			Credentials:       do.MustInvoke[service.CredentialService](i),
			Resolver:          do.MustInvoke[service.AccessResolver](i),
			AuthHandler:       do.MustInvoke[*handler.AuthHandler](i),
			UserHandler:       do.MustInvoke[*handler.UserHandler](i),
			ProjectHandler:    do.MustInvoke[*handler.ProjectHandler](i),
			ServiceHandler:    do.MustInvoke[*handler.ServiceHandler](i),
			BookingHandler:    do.MustInvoke[*handler.BookingHandler](i),
			SubscriberHandler: do.MustInvoke[*handler.SubscriberHandler](i),
			PublicHandler:     do.MustInvoke[*handler.PublicHandler](i),
		}, nil
	})

	return inj
}
