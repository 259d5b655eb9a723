package bootstrap

import (
	"context"

	"stayfinder/internal/infra/rediscache"
	"stayfinder/internal/pkg/config"
	"stayfinder/internal/usecase/shared"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedisCache,
			fx.As(new(shared.Cache)),
		),
	),
)

func NewRedisCache(lc fx.Lifecycle, cfg config.Config) *rediscache.Cache {
	cache := rediscache.New(cfg.Redis, cfg.Storage.Timeout)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return cache.Close()
		},
	})

	return cache
}
