package panel

import "github.com/bwmarrin/discordgo"

// SnapshotGuild builds a renderer snapshot from a state-cached guild:
// channels plus current voice occupancy.
func SnapshotGuild(g *discordgo.Guild) Snapshot {
	occupancy := make(map[string]int)
	for _, vs := range g.VoiceStates {
		occupancy[vs.ChannelID]++
	}

	snap := make(Snapshot, len(g.Channels))
	for _, ch := range g.Channels {
		snap[ch.ID] = ChannelInfo{
			Name:       ch.Name,
			Kind:       kindOf(ch.Type),
			ParentID:   ch.ParentID,
			VoiceUsers: occupancy[ch.ID],
		}
	}
	return snap
}

func kindOf(t discordgo.ChannelType) ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return KindText
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return KindVoice
	case discordgo.ChannelTypeGuildCategory:
		return KindCategory
	default:
		return KindOther
	}
}
