package handlers

import (
	"log"

	"jumpbot/bot"
	"jumpbot/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"make_buttons": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requirePanelRole(s, i, b) {
				return
			}
			HandleMakeButtons(s, i, b)
		},
		"buttons_refresh": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requirePanelRole(s, i, b) {
				return
			}
			HandleButtonsRefresh(s, i, b)
		},
		"buttons_remove": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requirePanelRole(s, i, b) {
				return
			}
			HandleButtonsRemove(s, i, b)
		},
	}
}

// requirePanelRole gates the panel commands behind the configured role. An
// unset role id disables the gate.
func requirePanelRole(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) bool {
	roleID := b.GetConfig().PanelRoleID
	if roleID == "" {
		return true
	}
	if i.Member != nil {
		for _, r := range i.Member.Roles {
			if r == roleID {
				return true
			}
		}
	}
	utils.SendEphemeralResponse(s, i, "You do not have permission to use this command.")
	return false
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}
