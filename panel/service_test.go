package panel

import (
	"errors"
	"testing"

	"jumpbot/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	snap Snapshot
	ok   bool
}

func (f fakeState) GuildSnapshot(string) (Snapshot, bool) {
	return f.snap, f.ok
}

type fakePublisher struct {
	messageID  string
	err        error
	calls      int
	components []discordgo.MessageComponent
}

func (f *fakePublisher) PublishPanel(channelID, categoryName, description string, components []discordgo.MessageComponent) (string, error) {
	f.calls++
	f.components = components
	if f.err != nil {
		return "", f.err
	}
	return f.messageID, nil
}

type fakeRefresher struct {
	guildID string
	count   int
}

func (f *fakeRefresher) RefreshGuild(guildID string) int {
	f.guildID = guildID
	return f.count
}

func serviceSnapshot() Snapshot {
	return Snapshot{
		"900": {Name: "Events", Kind: KindCategory},
		"111": {Name: "general", Kind: KindText, ParentID: "900"},
		"333": {Name: "lounge", Kind: KindVoice, ParentID: "900", VoiceUsers: 2},
		"444": {Name: "elsewhere", Kind: KindText, ParentID: "999"},
	}
}

func newTestService(t *testing.T, snap Snapshot) (*Service, *storage.RecordStore) {
	t.Helper()
	store := storage.NewRecordStore(storage.NewMemoryBackend())
	return NewService(store, fakeState{snap: snap, ok: true}), store
}

func TestCreatePanel(t *testing.T) {
	svc, store := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{messageID: "555"}

	// 222 does not exist anywhere in the snapshot.
	result, err := svc.Create(pub, "42", "900", "777", "jump around", []string{"111", "222", "333"})
	require.NoError(t, err)
	require.Equal(t, "555", result.MessageID)
	require.Equal(t, "Events", result.CategoryName)
	require.Equal(t, []string{"111", "333"}, result.ValidIDs)
	require.Equal(t, []string{"222"}, result.SkippedIDs)

	require.Equal(t, 1, pub.calls)
	require.Len(t, pub.components, 1)
	row, ok := pub.components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	records := store.Records()
	require.Len(t, records, 1)
	rec := records[0]
	require.Equal(t, "42", rec.GuildID)
	require.Equal(t, "777", rec.MessageChannelID)
	require.Equal(t, "555", rec.MessageID)
	require.Equal(t, []string{"111", "333"}, rec.ChannelIDs)
	require.Equal(t, "900", rec.CategoryID)
	require.Equal(t, "jump around", rec.Description)
	require.False(t, rec.CreatedAt.IsZero())
}

func TestCreateInvalidCategory(t *testing.T) {
	svc, store := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{messageID: "555"}

	_, err := svc.Create(pub, "42", "111", "777", "", []string{"111"})
	require.ErrorIs(t, err, ErrInvalidCategory, "a text channel is not a category")

	_, err = svc.Create(pub, "42", "123456", "777", "", []string{"111"})
	require.ErrorIs(t, err, ErrInvalidCategory, "unknown id is not a category")

	require.Zero(t, pub.calls)
	require.Empty(t, store.Records())
}

func TestCreateNoValidChannels(t *testing.T) {
	svc, store := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{messageID: "555"}

	// 444 exists but lives under another category.
	_, err := svc.Create(pub, "42", "900", "777", "", []string{"444", "222"})
	require.ErrorIs(t, err, ErrNoValidChannels)
	require.Zero(t, pub.calls)
	require.Empty(t, store.Records())
}

func TestCreateOutsideCategorySkipped(t *testing.T) {
	svc, _ := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{messageID: "555"}

	result, err := svc.Create(pub, "42", "900", "777", "", []string{"111", "444"})
	require.NoError(t, err)
	require.Equal(t, []string{"111"}, result.ValidIDs)
	require.Equal(t, []string{"444"}, result.SkippedIDs)
}

func TestCreatePublishFailureLeavesNoRecord(t *testing.T) {
	svc, store := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{err: errors.New("missing permissions")}

	_, err := svc.Create(pub, "42", "900", "777", "", []string{"111"})
	require.Error(t, err)
	require.Empty(t, store.Records())
}

func TestCreateGuildUnavailable(t *testing.T) {
	store := storage.NewRecordStore(storage.NewMemoryBackend())
	svc := NewService(store, fakeState{ok: false})
	pub := &fakePublisher{messageID: "555"}

	_, err := svc.Create(pub, "42", "900", "777", "", []string{"111"})
	require.Error(t, err)
	require.Zero(t, pub.calls)
}

func TestRemove(t *testing.T) {
	svc, store := newTestService(t, serviceSnapshot())
	pub := &fakePublisher{messageID: "555"}

	_, err := svc.Create(pub, "42", "900", "777", "", []string{"111"})
	require.NoError(t, err)

	require.True(t, svc.Remove("555"))
	require.Empty(t, store.Records())
	require.False(t, svc.Remove("555"), "second removal finds nothing")
}

func TestManualRefreshDelegates(t *testing.T) {
	svc, _ := newTestService(t, serviceSnapshot())
	require.Zero(t, svc.ManualRefresh("42"), "no refresher wired yet")

	ref := &fakeRefresher{count: 7}
	svc.SetRefresher(ref)
	require.Equal(t, 7, svc.ManualRefresh("42"))
	require.Equal(t, "42", ref.guildID)
}
