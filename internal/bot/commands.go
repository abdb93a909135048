package bot

import "github.com/bwmarrin/discordgo"

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "stats",
			Description: "Look up a player's stats by UID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uid",
					Description: "Player UID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "region",
					Description: "Region code (default IND)",
					Required:    false,
				},
			},
		},
		{
			Name:        "guild",
			Description: "Look up a guild by its ID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "Guild ID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "region",
					Description: "Region code (default IND)",
					Required:    false,
				},
			},
		},
		{
			Name:        "search",
			Description: "Search players by nickname",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "nickname",
					Description: "Nickname to search for",
					Required:    true,
				},
			},
		},
		{
			Name:        "regions",
			Description: "List supported region codes",
		},
		{
			Name:        "help",
			Description: "Show available commands",
		},
	}
}
