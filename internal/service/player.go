package service

import (
	"context"
	"errors"
	"fmt"

	"freefire-bot/internal/api"
	"freefire-bot/internal/cache"
	"freefire-bot/internal/constants"
	"freefire-bot/internal/domain"
	"freefire-bot/internal/stats"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	client   *api.Client
	registry *api.Registry
	cache    *cache.Store[*domain.PlayerRecord]
	logger   zerolog.Logger
}

func NewPlayerService(client *api.Client, registry *api.Registry, store *cache.Store[*domain.PlayerRecord], logger zerolog.Logger) *PlayerService {
	return &PlayerService{client: client, registry: registry, cache: store, logger: logger}
}

func playerKey(uid, region string) string {
	return fmt.Sprintf("stats-%s-%s", uid, region)
}

// FetchPlayerStats resolves a player to a normalized record. A fresh cache
// entry is returned without touching the network. Otherwise sources are
// tried in registry order: transport failures fall through to the next
// source, an explicit upstream error aborts with its message, and an
// exhausted registry collapses into ErrNotFound.
func (s *PlayerService) FetchPlayerStats(ctx context.Context, uid, region string) (*domain.PlayerRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	key := playerKey(uid, region)
	if rec, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("uid", uid).Str("region", region).Msg("returning cached player stats")
		return rec, nil
	}

	for _, src := range s.registry.Sources() {
		rec, err := s.fetchFromSource(ctx, src, uid, region)
		if err != nil {
			var upstreamErr *UpstreamError
			if errors.As(err, &upstreamErr) {
				s.logger.Info().Str("uid", uid).Str("source", src.Name).Str("message", upstreamErr.Message).Msg("upstream rejected player lookup")
				return nil, err
			}
			s.logger.Warn().Err(err).Str("uid", uid).Str("source", src.Name).Msg("source failed, trying next")
			continue
		}

		s.cache.Set(key, rec)
		s.logger.Info().Str("uid", uid).Str("region", region).Str("source", src.Name).Msg("player stats fetched")
		return rec, nil
	}

	s.logger.Info().Str("uid", uid).Str("region", region).Msg("player not found on any source")
	return nil, ErrNotFound
}

func (s *PlayerService) fetchFromSource(ctx context.Context, src api.SourceDescriptor, uid, region string) (*domain.PlayerRecord, error) {
	accountCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	account, err := s.client.FetchAccount(accountCtx, src, uid, region)
	if err != nil {
		return nil, fmt.Errorf("fetch account: %w", err)
	}
	if account.Error {
		return nil, &UpstreamError{Message: account.Message}
	}

	statsCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	statsPayload, err := s.client.FetchStats(statsCtx, src, uid, region)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	if statsPayload.Error {
		return nil, fmt.Errorf("stats endpoint rejected uid: %s", statsPayload.Message)
	}

	return stats.Combine(account, statsPayload, uid, region), nil
}
