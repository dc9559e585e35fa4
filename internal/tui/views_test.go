package tui

import (
	"strings"
	"testing"

	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/state"
	"github.com/arcanedm/arcanedm/pkg/story"
)

func TestStoryLinesSkipsRosterEntry(t *testing.T) {
	gs := &state.GameState{
		StoryHistory: []story.Entry{
			{Kind: story.EntryPlayer, Text: "roster prompt"},
			{Kind: story.EntryDM, Text: "The tavern is warm."},
			{Kind: story.EntryPlayer, Text: "Order an ale."},
		},
	}

	lines := storyLines(gs, 80)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if strings.Contains(line, "roster prompt") {
			t.Error("roster prompt should never be displayed")
		}
	}
	if !strings.Contains(lines[1], "Order an ale.") {
		t.Errorf("expected player action in second line, got %q", lines[1])
	}
}

func TestFormatEntryPlayerPrefix(t *testing.T) {
	line := formatEntry(story.Entry{Kind: story.EntryPlayer, Text: "Attack!"}, 80)
	if !strings.Contains(line, "> Attack!") {
		t.Errorf("player entries should carry the > prefix, got %q", line)
	}

	line = formatEntry(story.Entry{Kind: story.EntryDM, Text: "A dragon lands."}, 80)
	if strings.Contains(line, ">") {
		t.Errorf("dm entries should not carry the player prefix, got %q", line)
	}
}

func TestFormatEntryWraps(t *testing.T) {
	long := strings.Repeat("word ", 30)
	line := formatEntry(story.Entry{Kind: story.EntryDM, Text: long}, 40)
	for _, l := range strings.Split(line, "\n") {
		if len(l) > 60 {
			t.Errorf("line exceeds wrap width: %q", l)
		}
	}
}

func TestGridLinesFogOfWar(t *testing.T) {
	grid := &content.GridMap{
		ID:   "test_grid",
		Name: "Test Grid",
		Tiles: [][]content.Tile{
			{
				{X: 0, Y: 0, Terrain: content.TerrainForest, Icon: "🌲"},
				{X: 1, Y: 0, Terrain: content.TerrainPlains, Icon: "🌾"},
			},
			{
				{X: 0, Y: 1, Terrain: content.TerrainHills, Icon: "⛰"},
				{X: 1, Y: 1, Terrain: content.TerrainRoad, Icon: "🛤"},
			},
		},
	}
	gs := &state.GameState{
		PartyGridPosition: &content.Position{X: 0, Y: 0},
		VisitedTiles: map[string]bool{
			"0,0": true,
			"1,0": true,
		},
	}

	lines := gridLines(grid, gs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "@") {
		t.Errorf("party marker missing from row 0: %q", lines[0])
	}
	if !strings.Contains(lines[0], "🌾") {
		t.Errorf("visited tile icon missing from row 0: %q", lines[0])
	}
	if strings.Contains(lines[1], "⛰") || strings.Contains(lines[1], "🛤") {
		t.Errorf("unvisited tiles must stay fogged: %q", lines[1])
	}
	if !strings.Contains(lines[1], fogGlyph) {
		t.Errorf("fog glyph missing from row 1: %q", lines[1])
	}
}

func TestLocationLabel(t *testing.T) {
	tests := []struct {
		name string
		gs   *state.GameState
		want string
	}{
		{
			name: "city venue",
			gs: &state.GameState{
				CurrentMapID:          content.StartCityID,
				CurrentCityLocationID: "gilded_anvil_smith",
			},
			want: "The Gilded Anvil, Silverhaven",
		},
		{
			name: "city streets",
			gs:   &state.GameState{CurrentMapID: content.StartCityID},
			want: "Streets of Silverhaven",
		},
		{
			name: "grid tile",
			gs: &state.GameState{
				CurrentMapID:      content.WildernessMapID,
				PartyGridPosition: &content.Position{X: 5, Y: 9},
			},
			want: "Silverwood Forest (5,9)",
		},
		{
			name: "unknown map falls back to id",
			gs:   &state.GameState{CurrentMapID: "the_abyss"},
			want: "the_abyss",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := locationLabel(tc.gs); got != tc.want {
				t.Errorf("locationLabel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPartyLinesShowCombatStats(t *testing.T) {
	profiles := []party.CharacterProfile{
		{
			Name:  "Valerius",
			Race:  content.Race{Name: "Human"},
			Class: content.Class{Name: "Warrior"},
			Attributes: party.Attributes{
				Strength: 15, Dexterity: 16, Constitution: 14,
				Intelligence: 10, Wisdom: 10, Charisma: 10,
			},
		},
	}

	lines := partyLines(profiles)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Valerius (Human Warrior)") {
		t.Errorf("missing character header: %q", lines[0])
	}
	// HP 10 + con modifier, AC 10 + dex modifier.
	if !strings.Contains(lines[0], "HP 12") || !strings.Contains(lines[0], "AC 13") {
		t.Errorf("missing actor-derived combat stats: %q", lines[0])
	}
}

func TestRenderShop(t *testing.T) {
	out := renderShop([]story.ShopItem{
		{Name: "Healing Potion", Cost: "15 gold"},
		{Name: "Rope", Cost: "2 gold"},
	}, 42)

	if !strings.Contains(out, "Healing Potion — 15 gold") {
		t.Errorf("missing shop item: %q", out)
	}
	if !strings.Contains(out, "you have 42 gold") {
		t.Errorf("missing gold balance: %q", out)
	}
}

func TestRenderModalItem(t *testing.T) {
	if got := renderModalItem("New", true); !strings.Contains(got, "▸ New") {
		t.Errorf("selected item should carry the marker, got %q", got)
	}
	if got := renderModalItem("New", false); strings.Contains(got, "▸") {
		t.Errorf("unselected item should not carry the marker, got %q", got)
	}
}
