package service

import (
	"context"
	"sync"

	"freefire-bot/internal/api"
	"freefire-bot/internal/constants"
	"freefire-bot/internal/domain"

	"golang.org/x/sync/errgroup"
)

// SearchPlayerByNickname fans out over every source that exposes a search
// endpoint and collects lightweight candidates. Per-source failures are
// logged and dropped; an empty slice is the only absence signal. Results
// are not cached, the search sources are best-effort.
func (s *PlayerService) SearchPlayerByNickname(ctx context.Context, nickname string) ([]domain.PlayerCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	var mu sync.Mutex
	var candidates []domain.PlayerCandidate

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range s.registry.SourcesWith(api.EndpointSearch) {
		src := src
		g.Go(func() error {
			searchCtx, cancel := context.WithTimeout(gctx, constants.ExternalAPITimeout)
			defer cancel()

			result, err := s.client.SearchByNickname(searchCtx, src, nickname)
			if err != nil {
				s.logger.Warn().Err(err).Str("nickname", nickname).Str("source", src.Name).Msg("search source failed")
				return nil
			}
			if result.Error {
				s.logger.Info().Str("nickname", nickname).Str("source", src.Name).Str("message", result.Message).Msg("search rejected upstream")
				return nil
			}

			mu.Lock()
			for _, r := range result.Results {
				candidates = append(candidates, domain.PlayerCandidate{
					Nickname: r.Nickname,
					UID:      r.UID,
					Level:    r.Level,
					Region:   r.Region,
				})
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(candidates) > constants.SearchResultLimit {
		candidates = candidates[:constants.SearchResultLimit]
	}
	s.logger.Info().Str("nickname", nickname).Int("count", len(candidates)).Msg("nickname search completed")
	return candidates, nil
}
