package panel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testSnapshot() Snapshot {
	return Snapshot{
		"100": {Name: "general", Kind: KindText, ParentID: "900"},
		"101": {Name: "lounge", Kind: KindVoice, ParentID: "900", VoiceUsers: 3},
		"102": {Name: "announcements", Kind: KindText, ParentID: "900"},
		"103": {Name: "stage-talk", Kind: KindVoice, ParentID: "900"},
		"104": {Name: "gallery", Kind: KindOther, ParentID: "900"},
		"900": {Name: "Community", Kind: KindCategory},
	}
}

func wideSnapshot(n int) Snapshot {
	snap := make(Snapshot, n)
	for i := 0; i < n; i++ {
		snap[fmt.Sprintf("%d", 200+i)] = ChannelInfo{Name: fmt.Sprintf("ch-%d", i), Kind: KindText}
	}
	return snap
}

func buttonAt(t *testing.T, rows []discordgo.ActionsRow, row, col int) discordgo.Button {
	t.Helper()
	if row >= len(rows) || col >= len(rows[row].Components) {
		t.Fatalf("no button at row %d col %d", row, col)
	}
	btn, ok := rows[row].Components[col].(discordgo.Button)
	if !ok {
		t.Fatalf("component at row %d col %d is not a button", row, col)
	}
	return btn
}

func TestBuildButtonsLabelsAndOrder(t *testing.T) {
	snap := testSnapshot()
	res := BuildButtons("42", []string{"100", "101", "104"}, snap)

	if !reflect.DeepEqual(res.ValidIDs, []string{"100", "101", "104"}) {
		t.Fatalf("valid ids = %v, want input order", res.ValidIDs)
	}
	if len(res.InvalidIDs) != 0 {
		t.Fatalf("invalid ids = %v, want none", res.InvalidIDs)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Rows))
	}

	if got := buttonAt(t, res.Rows, 0, 0); got.Label != "#general" {
		t.Errorf("text label = %q, want %q", got.Label, "#general")
	}
	if got := buttonAt(t, res.Rows, 0, 1); got.Label != "🔊 lounge (3)" {
		t.Errorf("voice label = %q, want %q", got.Label, "🔊 lounge (3)")
	}
	if got := buttonAt(t, res.Rows, 0, 2); got.Label != "gallery" {
		t.Errorf("other label = %q, want %q", got.Label, "gallery")
	}

	btn := buttonAt(t, res.Rows, 0, 0)
	if btn.Style != discordgo.LinkButton {
		t.Errorf("button style = %v, want link", btn.Style)
	}
	if btn.URL != "https://discord.com/channels/42/100" {
		t.Errorf("button url = %q", btn.URL)
	}
}

func TestBuildButtonsRowPartition(t *testing.T) {
	snap := wideSnapshot(12)
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", 200+i)
	}

	res := BuildButtons("42", ids, snap)
	if len(res.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(res.Rows))
	}
	for i, want := range []int{5, 5, 2} {
		if got := len(res.Rows[i].Components); got != want {
			t.Errorf("row %d has %d buttons, want %d", i, got, want)
		}
	}
}

func TestBuildButtonsCapsAtTwentyFive(t *testing.T) {
	snap := wideSnapshot(30)
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", 200+i)
	}

	res := BuildButtons("42", ids, snap)
	if len(res.Rows) != MaxRows {
		t.Fatalf("rows = %d, want %d", len(res.Rows), MaxRows)
	}
	total := 0
	for _, row := range res.Rows {
		total += len(row.Components)
	}
	if total != MaxButtonsPerRow*MaxRows {
		t.Fatalf("buttons = %d, want %d", total, MaxButtonsPerRow*MaxRows)
	}
	// All 30 ids resolved; the cap drops buttons, not validity.
	if len(res.ValidIDs) != 30 {
		t.Fatalf("valid ids = %d, want 30", len(res.ValidIDs))
	}
	last := buttonAt(t, res.Rows, 4, 4)
	if last.URL != "https://discord.com/channels/42/224" {
		t.Errorf("last button url = %q, want id 224", last.URL)
	}
}

func TestBuildButtonsUnresolvedIDsAreInvalid(t *testing.T) {
	snap := testSnapshot()
	res := BuildButtons("42", []string{"100", "999", "101"}, snap)

	if !reflect.DeepEqual(res.InvalidIDs, []string{"999"}) {
		t.Fatalf("invalid ids = %v, want [999]", res.InvalidIDs)
	}
	if !reflect.DeepEqual(res.ValidIDs, []string{"100", "101"}) {
		t.Fatalf("valid ids = %v, want [100 101]", res.ValidIDs)
	}
	if got := len(res.Rows[0].Components); got != 2 {
		t.Fatalf("buttons = %d, want 2", got)
	}
}

func TestBuildButtonsDeterministic(t *testing.T) {
	snap := testSnapshot()
	ids := []string{"100", "101", "102", "103", "104", "999"}

	first := BuildButtons("42", ids, snap)
	second := BuildButtons("42", ids, snap)

	a, err := json.Marshal(first.Components())
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second.Components())
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("re-rendering the same input produced a different layout")
	}
}

func TestBuildButtonsEmptySnapshot(t *testing.T) {
	res := BuildButtons("42", []string{"1", "2"}, Snapshot{})
	if len(res.Rows) != 0 || len(res.ValidIDs) != 0 {
		t.Fatalf("expected no rows for empty snapshot, got %d rows", len(res.Rows))
	}
	if !reflect.DeepEqual(res.InvalidIDs, []string{"1", "2"}) {
		t.Fatalf("invalid ids = %v", res.InvalidIDs)
	}
}
