package repo

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/pkg/utils/tokens"
)

// APIKeyCache memoizes API key -> project resolution. Get reports a miss as
// (nil, nil).
type APIKeyCache interface {
	Get(ctx context.Context, apiKey string) (*model.Project, error)
	Set(ctx context.Context, p *model.Project) error
	Invalidate(ctx context.Context, apiKey string) error
}

type redisAPIKeyCache struct {
	rdb    *redis.Client
	pepper string
	ttl    time.Duration
}

// NewAPIKeyCache returns a Redis-backed cache, or a no-op cache when rdb is nil.
// Keys are HMACs of the API key so raw keys never reach Redis.
func NewAPIKeyCache(rdb *redis.Client, pepper string, ttl time.Duration) APIKeyCache {
	if rdb == nil {
		return nopAPIKeyCache{}
	}
	return &redisAPIKeyCache{rdb: rdb, pepper: pepper, ttl: ttl}
}

// cachedProject is the subset of a project the public façade needs.
type cachedProject struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

func (c *redisAPIKeyCache) key(apiKey string) string {
	return "serviceflow:apikey:" + tokens.HMAC256Hex(c.pepper, apiKey)
}

func (c *redisAPIKeyCache) Get(ctx context.Context, apiKey string) (*model.Project, error) {
	b, err := c.rdb.Get(ctx, c.key(apiKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cp cachedProject
	if err := sonic.Unmarshal(b, &cp); err != nil {
		return nil, err
	}
	return &model.Project{ID: cp.ID, UserID: cp.UserID, Name: cp.Name, APIKey: cp.APIKey}, nil
}

func (c *redisAPIKeyCache) Set(ctx context.Context, p *model.Project) error {
	b, err := sonic.Marshal(cachedProject{ID: p.ID, UserID: p.UserID, Name: p.Name, APIKey: p.APIKey})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(p.APIKey), b, c.ttl).Err()
}

func (c *redisAPIKeyCache) Invalidate(ctx context.Context, apiKey string) error {
	return c.rdb.Del(ctx, c.key(apiKey)).Err()
}

type nopAPIKeyCache struct{}

func (nopAPIKeyCache) Get(context.Context, string) (*model.Project, error) { return nil, nil }
func (nopAPIKeyCache) Set(context.Context, *model.Project) error           { return nil }
func (nopAPIKeyCache) Invalidate(context.Context, string) error            { return nil }
