package content

import (
	"testing"
)

func TestCatalogLookups(t *testing.T) {
	race, ok := FindRace("Dwarf")
	if !ok {
		t.Fatal("expected to find Dwarf race")
	}
	if race.Speed != 25 {
		t.Errorf("expected Dwarf speed 25, got %d", race.Speed)
	}
	if race.AttributeBonuses["Constitution"] != 2 {
		t.Errorf("expected Dwarf Constitution bonus 2, got %d", race.AttributeBonuses["Constitution"])
	}

	class, ok := FindClass("Warrior")
	if !ok {
		t.Fatal("expected to find Warrior class")
	}
	if _, ok := class.Synergies["Dwarf"]; !ok {
		t.Error("expected Warrior to have a Dwarf synergy")
	}

	if _, ok := FindRace("Kobold"); ok {
		t.Error("did not expect to find Kobold race")
	}
	if _, ok := FindClass("Artificer"); ok {
		t.Error("did not expect to find Artificer class")
	}
}

func TestGearOptions(t *testing.T) {
	tests := []struct {
		class     string
		hasSpells bool
		maxSpells int
	}{
		{"Warrior", false, 0},
		{"Mage", true, 3},
		{"Cleric", true, 2},
		{"Paladin", true, 1},
		{"Monk", false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.class, func(t *testing.T) {
			gear, ok := GearFor(tc.class)
			if !ok {
				t.Fatalf("expected gear options for %s", tc.class)
			}
			if len(gear.WeaponStyles) == 0 {
				t.Error("expected at least one weapon style")
			}
			if len(gear.EquipmentPacks) == 0 {
				t.Error("expected at least one equipment pack")
			}
			if tc.hasSpells != (gear.Spells != nil) {
				t.Fatalf("spells presence mismatch: want %v", tc.hasSpells)
			}
			if gear.Spells != nil && gear.Spells.Max != tc.maxSpells {
				t.Errorf("expected max %d spells, got %d", tc.maxSpells, gear.Spells.Max)
			}
		})
	}
}

func TestMapCatalog(t *testing.T) {
	city, ok := LookupMap(StartCityID)
	if !ok {
		t.Fatal("expected silverhaven in map catalog")
	}
	if city.Kind != MapKindCity || city.City == nil || city.Grid != nil {
		t.Fatalf("silverhaven should be a city map, got kind %q", city.Kind)
	}
	if _, ok := city.City.Location(StartLocationID); !ok {
		t.Error("expected the starting tavern among silverhaven locations")
	}
	if _, ok := city.City.Location(city.City.EntryPointID); !ok {
		t.Error("entry point should be a known location")
	}

	wild, ok := LookupMap(WildernessMapID)
	if !ok {
		t.Fatal("expected silverwood_forest in map catalog")
	}
	if wild.Kind != MapKindGrid || wild.Grid == nil || wild.City != nil {
		t.Fatalf("silverwood_forest should be a grid map, got kind %q", wild.Kind)
	}
	if len(wild.Grid.Tiles) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(wild.Grid.Tiles))
	}
	for y, row := range wild.Grid.Tiles {
		if len(row) != 10 {
			t.Fatalf("row %d: expected 10 tiles, got %d", y, len(row))
		}
	}

	gate, ok := wild.Grid.TileAt(wild.Grid.StartPosition)
	if !ok {
		t.Fatal("start position should be in bounds")
	}
	if gate.Terrain != TerrainCityGate {
		t.Errorf("expected city_gate at start position, got %q", gate.Terrain)
	}
	if gate.EncounterChance != 0 {
		t.Errorf("gate tile should have no encounter chance, got %f", gate.EncounterChance)
	}

	forest, _ := wild.Grid.TileAt(Position{X: 4, Y: 4})
	if forest.Terrain != TerrainForest {
		t.Errorf("expected forest at 4,4, got %q", forest.Terrain)
	}

	if _, ok := wild.Grid.TileAt(Position{X: 10, Y: 0}); ok {
		t.Error("out of bounds lookup should fail")
	}
	if _, ok := wild.Grid.TileAt(Position{X: 0, Y: -1}); ok {
		t.Error("negative lookup should fail")
	}
}

func TestLoadMapsRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unknown legend symbol",
			data: `
grids:
  - id: broken
    name: Broken
    start: { x: 0, y: 0 }
    legend:
      F: { terrain: forest, icon: t, description: trees, encounter_chance: 0.3 }
    rows:
      - FX
`,
		},
		{
			name: "start out of bounds",
			data: `
grids:
  - id: broken
    name: Broken
    start: { x: 5, y: 0 }
    legend:
      F: { terrain: forest, icon: t, description: trees, encounter_chance: 0.3 }
    rows:
      - FF
`,
		},
		{
			name: "entry point missing",
			data: `
cities:
  - id: broken
    name: Broken
    entry_point: nowhere
    locations:
      - { id: somewhere, name: Somewhere, icon: x, description: a place }
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadMaps([]byte(tc.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTrackFor(t *testing.T) {
	tests := []struct {
		ambiance string
		want     string
	}{
		{"tavern", AmbianceTracks["tavern"]},
		{"Tavern Brawl", AmbianceTracks["tavern"]},
		{"combat", AmbianceTracks["combat"]},
		{"spooky crypt", AmbianceTracks["default"]},
		{"", AmbianceTracks["default"]},
	}

	for _, tc := range tests {
		if got := TrackFor(tc.ambiance); got != tc.want {
			t.Errorf("TrackFor(%q) = %q, want %q", tc.ambiance, got, tc.want)
		}
	}
}
