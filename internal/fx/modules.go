package fx

import (
	"wot-tracker/internal/api"
	"wot-tracker/internal/config"
	"wot-tracker/internal/database"
	"wot-tracker/internal/live"
	"wot-tracker/internal/logger"
	"wot-tracker/internal/repository"
	"wot-tracker/internal/server"
	"wot-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(func(cfg *config.Config) zerolog.Logger {
		return logger.WithLevel(cfg.LogLevel)
	}),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewReplayRepository),
	fx.Provide(repository.NewAccountCacheRepository),
	// api client
	fx.Provide(api.NewWargamingClient),
	// live feed
	fx.Provide(live.NewHub),
	// svc
	fx.Provide(service.NewReplayService),
	fx.Provide(service.NewStatsService),
	// server
	fx.Provide(server.New),
)
