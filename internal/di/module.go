package di

import (
	"go.uber.org/fx"

	"github.com/bitenow/bitenow/internal/app"
	"github.com/bitenow/bitenow/internal/config"
	"github.com/bitenow/bitenow/internal/logger"
	"github.com/bitenow/bitenow/internal/pkg/auth"
	"github.com/bitenow/bitenow/internal/server/http/handlers"
	"github.com/bitenow/bitenow/internal/server/http/router"
	"github.com/bitenow/bitenow/internal/storage/postgres"
	"github.com/bitenow/bitenow/internal/storage/redis"
	"github.com/bitenow/bitenow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		usecase.Module,
		fx.Provide(func(f *app.BiteNowFacade) handlers.BiteNowFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
