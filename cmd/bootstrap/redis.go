package bootstrap

import (
	"context"
	"log/slog"

	"havenmart/internal/infra/cache"
	"havenmart/internal/pkg/config"
	"havenmart/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewCatalogCache,
			fx.As(new(queries.CatalogCache)),
		),
	),
)

// NewRedisClient returns nil when no address is configured; the cache and
// the rate limiter both degrade to no-ops on a nil client.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("redis disabled, catalog cache and rate limiting are off")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewCatalogCache(client *redis.Client, cfg config.Config) *cache.CatalogCache {
	return cache.NewCatalogCache(client, cfg.Redis.CatalogTTL)
}
