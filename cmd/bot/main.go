package main

import (
	"context"
	"fmt"
	"net/http"

	"freefire-bot/internal/api"
	"freefire-bot/internal/bot"
	"freefire-bot/internal/cache"
	"freefire-bot/internal/config"
	"freefire-bot/internal/constants"
	"freefire-bot/internal/domain"
	fxmodules "freefire-bot/internal/fx"
	"freefire-bot/internal/logger"
	"freefire-bot/internal/server"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(run),
	).Run()
}

func run(
	lc fx.Lifecycle,
	b *bot.Bot,
	statusServer *server.StatusServer,
	playerCache *cache.Store[*domain.PlayerRecord],
	guildCache *cache.Store[*api.RawGuildPayload],
	cfg *config.Config,
	log zerolog.Logger,
) {
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: statusServer.Handler(),
	}

	sweepCtx, stopSweepers := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go playerCache.Run(sweepCtx, constants.SweepInterval)
			go guildCache.Run(sweepCtx, constants.SweepInterval)

			if err := b.Start(); err != nil {
				return err
			}

			go func() {
				log.Info().Str("addr", srv.Addr).Msg("status server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("status server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopSweepers()

			if err := b.Stop(); err != nil {
				log.Warn().Err(err).Msg("error closing discord session")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("status server shutdown failed")
				return err
			}
			log.Info().Msg("stopped gracefully")
			return nil
		},
	})
}
