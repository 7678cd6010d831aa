package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/serviceflow/serviceflow-api/internal/config"
	"github.com/serviceflow/serviceflow-api/internal/infra/cache"
	"github.com/serviceflow/serviceflow-api/internal/infra/db"
	mq "github.com/serviceflow/serviceflow-api/internal/infra/queue"
)

// Close releases the external connections the container opened. Optional
// backends are only touched when enabled so shutdown never dials them.
func Close(inj *do.Injector, cfg *config.Config) {
	log := do.MustInvoke[*zap.Logger](inj)

	if cfg.RabbitMQ.Enabled {
		if p, err := do.Invoke[*mq.Publisher](inj); err == nil {
			if err := p.Close(); err != nil {
				log.Sugar().Warnw("close rabbitmq", "err", err)
			}
		}
	}
	if cfg.Redis.Enabled {
		if rdb, err := do.Invoke[*redis.Client](inj); err == nil {
			if err := cache.Close(rdb); err != nil {
				log.Sugar().Warnw("close redis", "err", err)
			}
		}
	}
	if d, err := do.Invoke[*gorm.DB](inj); err == nil {
		if err := db.Close(d); err != nil {
			log.Sugar().Warnw("close database", "err", err)
		}
	}
	_ = log.Sync()
}
