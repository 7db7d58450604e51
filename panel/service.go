package panel

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"jumpbot/model"
	"jumpbot/storage"

	"github.com/bwmarrin/discordgo"
)

// Validation failures surfaced to the caller. These are expected outcomes of
// bad input, not exceptional conditions.
var (
	ErrInvalidCategory = errors.New("category id does not resolve to a category")
	ErrNoValidChannels = errors.New("no valid channels under the given category")
)

// StateProvider answers point-in-time channel/voice questions about a guild.
type StateProvider interface {
	GuildSnapshot(guildID string) (Snapshot, bool)
}

// Publisher sends the initial panel message. The content and embed shape are
// the publisher's concern; the service only supplies the rendered rows.
type Publisher interface {
	PublishPanel(channelID, categoryName, description string, components []discordgo.MessageComponent) (messageID string, err error)
}

// Refresher runs one reconciliation pass over a guild's records.
type Refresher interface {
	RefreshGuild(guildID string) int
}

// CreateResult reports the outcome of publishing a new panel.
type CreateResult struct {
	MessageID    string
	CategoryName string
	ValidIDs     []string
	SkippedIDs   []string
}

// Service orchestrates panel creation and removal over the record store.
type Service struct {
	store     *storage.RecordStore
	state     StateProvider
	refresher Refresher
}

func NewService(store *storage.RecordStore, state StateProvider) *Service {
	return &Service{store: store, state: state}
}

// SetRefresher wires the reconciler in after construction; the reconciler
// itself depends on the store, so the two cannot reference each other at
// build time.
func (svc *Service) SetRefresher(r Refresher) {
	svc.refresher = r
}

// Create validates the category, filters the requested channel ids to those
// under it, renders the button layout, publishes the panel and registers the
// record. The record keeps only the ids that rendered as live buttons, so
// refresh cycles never chase ids that were already dead at creation time.
// Ids outside the category or unresolved are reported back as skipped.
func (svc *Service) Create(pub Publisher, guildID, categoryID, hostChannelID, description string, channelIDs []string) (*CreateResult, error) {
	snap, ok := svc.state.GuildSnapshot(guildID)
	if !ok {
		return nil, fmt.Errorf("guild %s is not available", guildID)
	}

	category, ok := snap.Channel(categoryID)
	if !ok || category.Kind != KindCategory {
		return nil, ErrInvalidCategory
	}

	var filtered, skipped []string
	for _, cid := range channelIDs {
		if ch, ok := snap.Channel(cid); ok && ch.ParentID == categoryID {
			filtered = append(filtered, cid)
		} else {
			skipped = append(skipped, cid)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNoValidChannels
	}

	rendered := BuildButtons(guildID, filtered, snap)

	messageID, err := pub.PublishPanel(hostChannelID, category.Name, description, rendered.Components())
	if err != nil {
		// No record without a backing message.
		return nil, fmt.Errorf("failed to publish panel: %w", err)
	}

	svc.store.Add(model.PanelRecord{
		GuildID:          guildID,
		MessageChannelID: hostChannelID,
		MessageID:        messageID,
		ChannelIDs:       rendered.ValidIDs,
		CategoryID:       categoryID,
		Description:      description,
		CreatedAt:        time.Now().UTC(),
	})

	log.Printf("panel: created panel message=%s guild=%s channels=%d skipped=%d",
		messageID, guildID, len(rendered.ValidIDs), len(skipped)+len(rendered.InvalidIDs))

	return &CreateResult{
		MessageID:    messageID,
		CategoryName: category.Name,
		ValidIDs:     rendered.ValidIDs,
		SkippedIDs:   dedupeSorted(append(skipped, rendered.InvalidIDs...)),
	}, nil
}

// Remove unregisters a panel from future refresh cycles. The remote message
// is left in place on purpose: deleting content is the operator's call.
func (svc *Service) Remove(messageID string) bool {
	return svc.store.Remove(messageID)
}

// ManualRefresh synchronously reconciles all panels of one guild and returns
// how many were updated.
func (svc *Service) ManualRefresh(guildID string) int {
	if svc.refresher == nil {
		return 0
	}
	return svc.refresher.RefreshGuild(guildID)
}

func dedupeSorted(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
