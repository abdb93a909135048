package bot

import (
	"fmt"

	"freefire-bot/internal/config"
	"freefire-bot/internal/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot is the chat front end: it parses slash commands, calls the fetch
// pipeline and renders records as Markdown messages.
type Bot struct {
	session       *discordgo.Session
	players       *service.PlayerService
	guilds        *service.GuildService
	logger        zerolog.Logger
	defaultRegion string
	registered    []*discordgo.ApplicationCommand
}

func New(cfg *config.Config, players *service.PlayerService, guilds *service.GuildService, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		session:       session,
		players:       players,
		guilds:        guilds,
		logger:        logger,
		defaultRegion: cfg.DefaultRegion,
	}
	session.AddHandler(b.handleInteraction)
	return b, nil
}

// Start opens the gateway connection and registers the slash commands
// globally. Registration failures for individual commands are logged but
// do not abort startup.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	for _, cmd := range commandDefinitions() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			b.logger.Error().Err(err).Str("command", cmd.Name).Msg("failed to register command")
			continue
		}
		b.registered = append(b.registered, created)
	}

	b.logger.Info().Int("commands", len(b.registered)).Msg("bot connected and commands registered")
	return nil
}

func (b *Bot) Stop() error {
	b.logger.Info().Msg("closing discord session")
	return b.session.Close()
}
