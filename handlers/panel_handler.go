package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"jumpbot/bot"
	"jumpbot/panel"
	"jumpbot/utils"

	"github.com/bwmarrin/discordgo"
)

const panelGold = 0xF1C40F

// discordPublisher sends the panel message: gold embed with the category name
// and caption, rendered button rows below, optional banner image at the
// bottom.
type discordPublisher struct {
	session   *discordgo.Session
	bannerURL string
}

func (p *discordPublisher) PublishPanel(channelID, categoryName, description string, components []discordgo.MessageComponent) (string, error) {
	if description == "" {
		description = "\u200b"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Category: " + categoryName,
		Description: description,
		Color:       panelGold,
	}
	if p.bannerURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.bannerURL}
	}

	msg, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func HandleMakeButtons(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer make_buttons response: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	categoryID := strings.TrimSpace(optionMap["category_id"].StringValue())
	if !isNumericID(categoryID) {
		utils.SendFollowUpError(s, i.Interaction, "category_id must be numeric.")
		return
	}

	var channelIDs []string
	for _, raw := range strings.Split(optionMap["channel_ids"].StringValue(), ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if !isNumericID(id) {
			utils.SendFollowUpError(s, i.Interaction, "channel_ids contains a non-numeric value.")
			return
		}
		channelIDs = append(channelIDs, id)
	}
	if len(channelIDs) == 0 {
		utils.SendFollowUpError(s, i.Interaction, "channel_ids must contain at least one id.")
		return
	}

	description := optionMap["description"].StringValue()

	pub := &discordPublisher{session: s, bannerURL: b.GetConfig().BannerImageURL}
	result, err := b.Service.Create(pub, i.GuildID, categoryID, i.ChannelID, description, channelIDs)
	if err != nil {
		switch {
		case errors.Is(err, panel.ErrInvalidCategory):
			utils.SendFollowUpError(s, i.Interaction, "The given category_id is not a category.")
		case errors.Is(err, panel.ErrNoValidChannels):
			utils.SendFollowUpError(s, i.Interaction, "No valid channel ids inside the given category.")
		default:
			log.Printf("make_buttons: create failed in guild %s: %v", i.GuildID, err)
			utils.SendFollowUpError(s, i.Interaction, "Failed to send the panel message. Check the bot's permissions.")
		}
		return
	}

	note := ""
	if len(result.SkippedIDs) > 0 {
		note = fmt.Sprintf("\n⚠️ Skipped ids outside the category or invalid: %s", strings.Join(result.SkippedIDs, ", "))
	}
	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("✅ Panel created. (message_id: %s)%s", result.MessageID, note))
}

func HandleButtonsRefresh(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer buttons_refresh response: %v", err)
		return
	}
	count := b.Service.ManualRefresh(i.GuildID)
	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("Refreshed %d panel(s).", count))
}

func HandleButtonsRemove(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		utils.SendEphemeralResponse(s, i, "message_id is required.")
		return
	}
	messageID := strings.TrimSpace(options[0].StringValue())
	if !isNumericID(messageID) {
		utils.SendEphemeralResponse(s, i, "message_id must be numeric.")
		return
	}

	if b.Service.Remove(messageID) {
		utils.SendEphemeralResponse(s, i, fmt.Sprintf("Removed from automatic refresh (message_id: %s). Delete the message manually if needed.", messageID))
	} else {
		utils.SendEphemeralResponse(s, i, "No registered panel found for that message id.")
	}
}

func isNumericID(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
