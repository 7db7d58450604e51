package panel

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Discord hard limits for message components.
const (
	MaxButtonsPerRow = 5
	MaxRows          = 5
)

// ChannelKind is the closed set of channel shapes the renderer distinguishes.
type ChannelKind int

const (
	KindOther ChannelKind = iota
	KindText
	KindVoice
	KindCategory
)

// ChannelInfo is what the renderer needs to know about one live channel.
type ChannelInfo struct {
	Name       string
	Kind       ChannelKind
	ParentID   string
	VoiceUsers int
}

// Snapshot is a read-only view of a guild's channels at one point in time.
type Snapshot map[string]ChannelInfo

// Channel reports the info for a channel id and whether it resolved.
func (s Snapshot) Channel(id string) (ChannelInfo, bool) {
	info, ok := s[id]
	return info, ok
}

// RenderResult is the rendered button layout plus which input ids resolved.
type RenderResult struct {
	Rows       []discordgo.ActionsRow
	ValidIDs   []string
	InvalidIDs []string
}

// Components flattens the rows into the component list discordgo expects.
func (r RenderResult) Components() []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(r.Rows))
	for _, row := range r.Rows {
		components = append(components, row)
	}
	return components
}

// ChannelJumpURL builds the deep link a jump button targets.
func ChannelJumpURL(guildID, channelID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s", guildID, channelID)
}

func labelForChannel(info ChannelInfo) string {
	switch info.Kind {
	case KindText:
		return "#" + info.Name
	case KindVoice:
		return fmt.Sprintf("🔊 %s (%d)", info.Name, info.VoiceUsers)
	default:
		return info.Name
	}
}

// BuildButtons renders an ordered channel-id list against a snapshot into
// link-button rows. Ids that do not resolve land in InvalidIDs; they are data,
// not errors. Buttons beyond the 25-button message ceiling are dropped.
// Identical input produces identical output, so a refresh reproduces the same
// layout modulo occupancy counts.
func BuildButtons(guildID string, channelIDs []string, snap Snapshot) RenderResult {
	var result RenderResult
	var buttons []discordgo.MessageComponent

	for _, cid := range channelIDs {
		info, ok := snap.Channel(cid)
		if !ok {
			result.InvalidIDs = append(result.InvalidIDs, cid)
			continue
		}
		buttons = append(buttons, discordgo.Button{
			Label: labelForChannel(info),
			Style: discordgo.LinkButton,
			URL:   ChannelJumpURL(guildID, cid),
		})
		result.ValidIDs = append(result.ValidIDs, cid)
	}

	for len(buttons) > 0 && len(result.Rows) < MaxRows {
		n := len(buttons)
		if n > MaxButtonsPerRow {
			n = MaxButtonsPerRow
		}
		result.Rows = append(result.Rows, discordgo.ActionsRow{Components: buttons[:n]})
		buttons = buttons[n:]
	}

	return result
}
