package service

import (
	"context"
	"fmt"

	"freefire-bot/internal/api"
	"freefire-bot/internal/cache"
	"freefire-bot/internal/constants"

	"github.com/rs/zerolog"
)

type GuildService struct {
	client   *api.Client
	registry *api.Registry
	cache    *cache.Store[*api.RawGuildPayload]
	logger   zerolog.Logger
}

func NewGuildService(client *api.Client, registry *api.Registry, store *cache.Store[*api.RawGuildPayload], logger zerolog.Logger) *GuildService {
	return &GuildService{client: client, registry: registry, cache: store, logger: logger}
}

func guildKey(guildID, region string) string {
	return fmt.Sprintf("guild-%s-%s", guildID, region)
}

// FetchGuildInfo resolves a guild to its raw upstream payload; guild data
// bypasses the normalizer. Both an upstream error envelope and a transport
// failure on every source read as absence.
func (s *GuildService) FetchGuildInfo(ctx context.Context, guildID, region string) (*api.RawGuildPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	key := guildKey(guildID, region)
	if g, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("guild_id", guildID).Str("region", region).Msg("returning cached guild info")
		return g, nil
	}

	for _, src := range s.registry.SourcesWith(api.EndpointGuildInfo) {
		fetchCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		guild, err := s.client.FetchGuild(fetchCtx, src, guildID, region)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Str("guild_id", guildID).Str("source", src.Name).Msg("source failed, trying next")
			continue
		}
		if guild.Error {
			s.logger.Info().Str("guild_id", guildID).Str("source", src.Name).Str("message", guild.Message).Msg("guild not found upstream")
			return nil, ErrNotFound
		}

		s.cache.Set(key, guild)
		s.logger.Info().Str("guild_id", guildID).Str("region", region).Str("source", src.Name).Msg("guild info fetched")
		return guild, nil
	}

	s.logger.Info().Str("guild_id", guildID).Str("region", region).Msg("guild not found on any source")
	return nil, ErrNotFound
}
