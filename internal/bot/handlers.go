package bot

import (
	"context"

	"freefire-bot/internal/constants"

	"github.com/bwmarrin/discordgo"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()

	commandID, err := gonanoid.New()
	if err != nil {
		commandID = "unknown"
	}
	logger := b.logger.With().Str("command", data.Name).Str("command_id", commandID).Logger()

	// Upstream fetches can take several seconds, so every command defers
	// first and fills the response in afterwards.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		logger.Error().Err(err).Msg("failed to defer interaction response")
		return
	}

	// Fetches can block for seconds; keep the gateway event loop free.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()

		content := b.dispatch(ctx, logger, data)
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
			logger.Error().Err(err).Msg("failed to edit interaction response")
		}
	}()
}

func (b *Bot) dispatch(ctx context.Context, logger zerolog.Logger, data discordgo.ApplicationCommandInteractionData) string {
	opts := optionMap(data.Options)

	switch data.Name {
	case "stats":
		return b.runStats(ctx, logger, opts)
	case "guild":
		return b.runGuild(ctx, logger, opts)
	case "search":
		return b.runSearch(ctx, logger, opts)
	case "regions":
		return renderRegions()
	case "help":
		return renderHelp()
	default:
		logger.Warn().Msg("unknown command received")
		return "Unknown command. Try `/help`."
	}
}

func (b *Bot) runStats(ctx context.Context, logger zerolog.Logger, opts map[string]string) string {
	uid := opts["uid"]
	region, ok := b.resolveRegion(opts["region"])
	if !ok {
		return renderBadRegion(opts["region"])
	}

	logger.Info().Str("uid", uid).Str("region", region).Msg("handling stats command")
	rec, err := b.players.FetchPlayerStats(ctx, uid, region)
	if err != nil {
		return renderLookupError(err, "No player found for that UID and region.")
	}
	return renderPlayer(rec)
}

func (b *Bot) runGuild(ctx context.Context, logger zerolog.Logger, opts map[string]string) string {
	guildID := opts["id"]
	region, ok := b.resolveRegion(opts["region"])
	if !ok {
		return renderBadRegion(opts["region"])
	}

	logger.Info().Str("guild_id", guildID).Str("region", region).Msg("handling guild command")
	guild, err := b.guilds.FetchGuildInfo(ctx, guildID, region)
	if err != nil {
		return renderLookupError(err, "No guild found for that ID and region.")
	}
	return renderGuild(guild)
}

func (b *Bot) runSearch(ctx context.Context, logger zerolog.Logger, opts map[string]string) string {
	nickname := opts["nickname"]

	logger.Info().Str("nickname", nickname).Msg("handling search command")
	candidates, err := b.players.SearchPlayerByNickname(ctx, nickname)
	if err != nil {
		logger.Error().Err(err).Msg("nickname search failed")
		return "Search is unavailable right now, try again later."
	}
	return renderCandidates(nickname, candidates)
}

func (b *Bot) resolveRegion(region string) (string, bool) {
	if region == "" {
		return b.defaultRegion, true
	}
	if !constants.IsValidRegion(region) {
		return "", false
	}
	return region, true
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			out[opt.Name] = opt.StringValue()
		}
	}
	return out
}
