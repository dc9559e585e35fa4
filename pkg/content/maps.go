package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed maps.yaml
var mapsYAML []byte

// Well-known map and location ids for new campaigns.
const (
	StartCityID       = "silverhaven"
	StartLocationID   = "weary_wanderer_tavern"
	WildernessMapID   = "silverwood_forest"
)

// Terrain classifies a grid tile.
type Terrain string

const (
	TerrainForest    Terrain = "forest"
	TerrainPlains    Terrain = "plains"
	TerrainHills     Terrain = "hills"
	TerrainMountains Terrain = "mountains"
	TerrainSwamp     Terrain = "swamp"
	TerrainRoad      Terrain = "road"
	TerrainCityGate  Terrain = "city_gate"
)

// Position is a grid coordinate.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Tile is one square of a wilderness grid.
type Tile struct {
	X               int
	Y               int
	Terrain         Terrain
	Description     string
	Icon            string
	EncounterChance float64
}

// GridMap is a wilderness map of tiles explored square by square.
type GridMap struct {
	ID            string
	Name          string
	StartPosition Position
	Tiles         [][]Tile // indexed [y][x]
}

// TileAt returns the tile at p, or false if p is out of bounds.
func (m *GridMap) TileAt(p Position) (Tile, bool) {
	if p.Y < 0 || p.Y >= len(m.Tiles) {
		return Tile{}, false
	}
	row := m.Tiles[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return Tile{}, false
	}
	return row[p.X], true
}

// CityLocation is a named venue inside a city.
type CityLocation struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

// CityMap is a city with discrete locations rather than tiles.
type CityMap struct {
	ID           string
	Name         string
	EntryPointID string
	Locations    []CityLocation
}

// Location returns the city location with the given id.
func (m *CityMap) Location(id string) (CityLocation, bool) {
	for _, l := range m.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return CityLocation{}, false
}

// MapKind tags the two map variants.
type MapKind string

const (
	MapKindCity MapKind = "city"
	MapKindGrid MapKind = "grid"
)

// GameMap is the tagged union of the two map variants. Exactly one of
// City and Grid is non-nil, matching Kind.
type GameMap struct {
	ID   string
	Name string
	Kind MapKind
	City *CityMap
	Grid *GridMap
}

var allMaps map[string]GameMap

// LookupMap returns the map with the given id.
func LookupMap(id string) (GameMap, bool) {
	m, ok := allMaps[id]
	return m, ok
}

// MapIDs returns the ids of every known map.
func MapIDs() []string {
	ids := make([]string, 0, len(allMaps))
	for id := range allMaps {
		ids = append(ids, id)
	}
	return ids
}

// Wire shape of maps.yaml.
type mapsFile struct {
	Cities []struct {
		ID         string `yaml:"id"`
		Name       string `yaml:"name"`
		EntryPoint string `yaml:"entry_point"`
		Locations  []struct {
			ID          string `yaml:"id"`
			Name        string `yaml:"name"`
			Icon        string `yaml:"icon"`
			Description string `yaml:"description"`
		} `yaml:"locations"`
	} `yaml:"cities"`
	Grids []struct {
		ID     string   `yaml:"id"`
		Name   string   `yaml:"name"`
		Start  Position `yaml:"start"`
		Legend map[string]struct {
			Terrain         Terrain `yaml:"terrain"`
			Icon            string  `yaml:"icon"`
			Description     string  `yaml:"description"`
			EncounterChance float64 `yaml:"encounter_chance"`
		} `yaml:"legend"`
		Rows []string `yaml:"rows"`
	} `yaml:"grids"`
}

func loadMaps(data []byte) (map[string]GameMap, error) {
	var f mapsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse map catalog: %w", err)
	}

	maps := make(map[string]GameMap)
	for _, c := range f.Cities {
		city := &CityMap{
			ID:           c.ID,
			Name:         c.Name,
			EntryPointID: c.EntryPoint,
		}
		for _, l := range c.Locations {
			city.Locations = append(city.Locations, CityLocation{
				ID:          l.ID,
				Name:        l.Name,
				Icon:        l.Icon,
				Description: l.Description,
			})
		}
		if _, ok := city.Location(city.EntryPointID); !ok {
			return nil, fmt.Errorf("city %q: entry point %q not among locations", c.ID, c.EntryPoint)
		}
		maps[c.ID] = GameMap{ID: c.ID, Name: c.Name, Kind: MapKindCity, City: city}
	}

	for _, g := range f.Grids {
		grid := &GridMap{
			ID:            g.ID,
			Name:          g.Name,
			StartPosition: g.Start,
		}
		for y, row := range g.Rows {
			tiles := make([]Tile, 0, len([]rune(row)))
			for x, ch := range []rune(row) {
				leg, ok := g.Legend[string(ch)]
				if !ok {
					return nil, fmt.Errorf("grid %q: row %d has unknown legend symbol %q", g.ID, y, string(ch))
				}
				tiles = append(tiles, Tile{
					X:               x,
					Y:               y,
					Terrain:         leg.Terrain,
					Description:     leg.Description,
					Icon:            leg.Icon,
					EncounterChance: leg.EncounterChance,
				})
			}
			grid.Tiles = append(grid.Tiles, tiles)
		}
		if _, ok := grid.TileAt(grid.StartPosition); !ok {
			return nil, fmt.Errorf("grid %q: start position %d,%d out of bounds", g.ID, g.Start.X, g.Start.Y)
		}
		maps[g.ID] = GameMap{ID: g.ID, Name: g.Name, Kind: MapKindGrid, Grid: grid}
	}

	return maps, nil
}

func init() {
	m, err := loadMaps(mapsYAML)
	if err != nil {
		panic(err)
	}
	allMaps = m
}
