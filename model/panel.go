package model

import "time"

// PanelRecord describes one published jump panel: where its message lives and
// which channels its buttons point at. The record is enough to re-render the
// panel on every refresh cycle.
type PanelRecord struct {
	GuildID          string    `json:"guild_id"`
	MessageChannelID string    `json:"message_channel_id"`
	MessageID        string    `json:"message_id"`
	ChannelIDs       []string  `json:"channel_ids"`
	CategoryID       string    `json:"category_id"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

// PanelDocument is the on-disk shape of the record collection.
type PanelDocument struct {
	JumpSets []PanelRecord `json:"jump_sets"`
}
