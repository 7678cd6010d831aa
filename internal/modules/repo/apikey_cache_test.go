package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPIKeyCache(t *testing.T) (APIKeyCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAPIKeyCache(rdb, "pepper", time.Minute), mr
}

func TestAPIKeyCache_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupAPIKeyCache(t)

	got, err := cache.Get(ctx, "sf_missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	p := &model.Project{ID: 7, UserID: 3, Name: "Shop", APIKey: "sf_abc"}
	require.NoError(t, cache.Set(ctx, p))

	got, err = cache.Get(ctx, "sf_abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, uint(3), got.UserID)
	assert.Equal(t, "Shop", got.Name)

	// raw keys are never stored
	for _, k := range mr.Keys() {
		assert.NotContains(t, k, "sf_abc")
	}

	require.NoError(t, cache.Invalidate(ctx, "sf_abc"))
	got, err = cache.Get(ctx, "sf_abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAPIKeyCache_Expires(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupAPIKeyCache(t)

	require.NoError(t, cache.Set(ctx, &model.Project{ID: 1, APIKey: "sf_ttl"}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "sf_ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAPIKeyCache_Nop(t *testing.T) {
	ctx := context.Background()
	cache := NewAPIKeyCache(nil, "", time.Minute)

	assert.NoError(t, cache.Set(ctx, &model.Project{ID: 1, APIKey: "k"}))
	got, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.Invalidate(ctx, "k"))
}
