package config

import (
	"fmt"
	"os"

	"freefire-bot/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	BotToken      string
	ServerPort    string
	LogLevel      string
	DefaultRegion string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		BotToken:      getEnv("DISCORD_BOT_TOKEN", ""),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DefaultRegion: getEnv("DEFAULT_REGION", constants.DefaultRegion),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if !constants.IsValidRegion(cfg.DefaultRegion) {
		return nil, fmt.Errorf("DEFAULT_REGION %q is not a known region code", cfg.DefaultRegion)
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("default_region", cfg.DefaultRegion).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
