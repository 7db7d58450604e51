package commands

import "github.com/bwmarrin/discordgo"

// GenerateCommands returns the slash command definitions for the jump panel
// feature set.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "make_buttons",
			Description: "Create a category panel with jump buttons (voice channels show occupancy)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category_id",
					Description: "Category id (numeric)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Caption shown above the buttons",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "channel_ids",
					Description: "Comma-separated channel ids inside the category (e.g. 111,222,333)",
					Required:    true,
				},
			},
		},
		{
			Name:        "buttons_refresh",
			Description: "Manually refresh the occupancy counts on this server's jump panels",
		},
		{
			Name:        "buttons_remove",
			Description: "Unregister a jump panel from automatic refresh",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message_id",
					Description: "Target message id (numeric)",
					Required:    true,
				},
			},
		},
	}
}
