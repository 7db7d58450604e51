package bot

import (
	"jumpbot/panel"

	"github.com/bwmarrin/discordgo"
)

// Gateway is the slice of platform capability the reconciler and service
// need: a readiness query, guild snapshots, and message fetch/edit/publish.
type Gateway interface {
	Ready() bool
	GuildSnapshot(guildID string) (panel.Snapshot, bool)
	FetchMessage(channelID, messageID string) error
	EditComponents(channelID, messageID string, components []discordgo.MessageComponent) error
}

// sessionGateway adapts a live discordgo session to the Gateway and
// panel.StateProvider interfaces.
type sessionGateway struct {
	session *discordgo.Session
}

func newSessionGateway(s *discordgo.Session) *sessionGateway {
	return &sessionGateway{session: s}
}

func (g *sessionGateway) Ready() bool {
	return g.session.DataReady
}

func (g *sessionGateway) GuildSnapshot(guildID string) (panel.Snapshot, bool) {
	guild, err := g.session.State.Guild(guildID)
	if err != nil {
		return nil, false
	}
	return panel.SnapshotGuild(guild), true
}

func (g *sessionGateway) FetchMessage(channelID, messageID string) error {
	_, err := g.session.ChannelMessage(channelID, messageID)
	return err
}

func (g *sessionGateway) EditComponents(channelID, messageID string, components []discordgo.MessageComponent) error {
	_, err := g.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: &components,
	})
	return err
}
