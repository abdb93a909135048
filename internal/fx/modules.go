package fx

import (
	"freefire-bot/internal/api"
	"freefire-bot/internal/bot"
	"freefire-bot/internal/cache"
	"freefire-bot/internal/config"
	"freefire-bot/internal/constants"
	"freefire-bot/internal/domain"
	"freefire-bot/internal/logger"
	"freefire-bot/internal/server"
	"freefire-bot/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func NewRegistry() *api.Registry {
	return api.NewRegistry()
}

func NewPlayerCache(log zerolog.Logger) *cache.Store[*domain.PlayerRecord] {
	return cache.New[*domain.PlayerRecord]("players", constants.CacheTTL, log)
}

func NewGuildCache(log zerolog.Logger) *cache.Store[*api.RawGuildPayload] {
	return cache.New[*api.RawGuildPayload]("guilds", constants.CacheTTL, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream sources
	fx.Provide(NewRegistry),
	fx.Provide(api.NewClient),
	// caches
	fx.Provide(NewPlayerCache),
	fx.Provide(NewGuildCache),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewGuildService),
	// surfaces
	fx.Provide(server.NewStatusServer),
	fx.Provide(bot.New),
)
