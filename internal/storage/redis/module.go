package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/bitenow/bitenow/internal/config"
	"github.com/bitenow/bitenow/internal/domain/repository"
)

// Module wires the Redis-backed cart snapshot store.
var Module = fx.Options(
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) repository.CartRepository { return s }),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newCartStore(p storeParams) (*CartStore, error) {
	return New(p.Ctx, p.Config.RedisAddress, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store *CartStore) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
