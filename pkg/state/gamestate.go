// Package state holds the campaign game state and the reducer that is
// the only way live state changes. Every mutation is expressed as an
// Event applied through Apply, which keeps the turn engine, storage
// mirror, and presentation layer working from one consistent model.
package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/prompts"
	"github.com/arcanedm/arcanedm/pkg/story"
)

// StartingGold is the party's shared purse at campaign creation.
const StartingGold = 50

// GameState is the complete, serializable state of one campaign.
// CurrentCityLocationID and PartyGridPosition are mutually exclusive:
// the party is either inside a city venue, on the city streets (both
// empty), or standing on a grid tile.
type GameState struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	CampaignType story.CampaignType `json:"campaignType"`
	LastUpdated  time.Time          `json:"lastUpdated"`

	CharacterProfiles []party.CharacterProfile `json:"characterProfiles"`

	// StoryHistory grows append-only, except for the single
	// summarization compaction. The first entry is the synthesized
	// roster prompt and is hidden from display.
	StoryHistory []story.Entry `json:"storyHistory"`

	SceneImage       string            `json:"sceneImage"`
	Ambiance         string            `json:"ambiance"`
	IsGameOver       bool              `json:"isGameOver"`
	GameOverReason   string            `json:"gameOverReason"`
	SuggestedActions []string          `json:"suggestedActions"`
	SkillCheck       *story.SkillCheck `json:"skillCheck,omitempty"`

	CurrentMapID          string            `json:"currentMapId"`
	CurrentCityLocationID string            `json:"currentCityLocationId,omitempty"`
	PartyGridPosition     *content.Position `json:"partyGridPosition,omitempty"`
	MovementPoints        int               `json:"movementPoints"`
	VisitedTiles          map[string]bool   `json:"visitedTiles"`
	PartyGold             int               `json:"partyGold"`
	RevealedMapIDs        []string          `json:"revealedMapIds,omitempty"`

	ShopInventory   []story.ShopItem `json:"shopInventory,omitempty"`
	ReadableContent *story.Readable  `json:"readableContent,omitempty"`
}

// NewGameState creates a campaign at the starting tavern with the
// roster prompt as the sole history entry.
func NewGameState(campaignType story.CampaignType, profiles []party.CharacterProfile) *GameState {
	return &GameState{
		ID:                uuid.New(),
		Name:              party.CampaignName(profiles),
		CampaignType:      campaignType,
		LastUpdated:       time.Now().UTC(),
		CharacterProfiles: profiles,
		StoryHistory: []story.Entry{
			{Kind: story.EntryPlayer, Text: prompts.BuildStartPrompt(profiles)},
		},
		Ambiance:              "tavern",
		CurrentMapID:          content.StartCityID,
		CurrentCityLocationID: content.StartLocationID,
		MovementPoints:        party.MovementPoints(profiles),
		VisitedTiles:          map[string]bool{},
		PartyGold:             StartingGold,
	}
}

// TileKey formats a grid position as a visited-tiles key.
func TileKey(p content.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// CurrentMap resolves the map the party is on.
func (gs *GameState) CurrentMap() (content.GameMap, bool) {
	return content.LookupMap(gs.CurrentMapID)
}

// InCityLocation reports whether the party is inside a city venue.
func (gs *GameState) InCityLocation() bool {
	return gs.CurrentCityLocationID != ""
}

// OnGrid reports whether the party is on a wilderness grid tile.
func (gs *GameState) OnGrid() bool {
	return gs.PartyGridPosition != nil
}

// HasPendingSkillCheck reports whether a roll is required before play
// can continue.
func (gs *GameState) HasPendingSkillCheck() bool {
	return gs.SkillCheck != nil
}

// IsFreshCampaign reports whether only the roster prompt has been
// recorded, meaning the opening narration has not run yet.
func (gs *GameState) IsFreshCampaign() bool {
	return len(gs.StoryHistory) == 1 && gs.StoryHistory[0].Kind == story.EntryPlayer
}

// Clone returns a deep copy. Storage and the presentation layer work
// from clones so the engine's copy is never aliased.
func (gs *GameState) Clone() *GameState {
	c := *gs

	c.CharacterProfiles = make([]party.CharacterProfile, len(gs.CharacterProfiles))
	copy(c.CharacterProfiles, gs.CharacterProfiles)
	for i := range c.CharacterProfiles {
		inv := make([]string, len(gs.CharacterProfiles[i].Inventory))
		copy(inv, gs.CharacterProfiles[i].Inventory)
		c.CharacterProfiles[i].Inventory = inv
	}

	c.StoryHistory = make([]story.Entry, len(gs.StoryHistory))
	copy(c.StoryHistory, gs.StoryHistory)

	if gs.SuggestedActions != nil {
		c.SuggestedActions = make([]string, len(gs.SuggestedActions))
		copy(c.SuggestedActions, gs.SuggestedActions)
	}
	if gs.SkillCheck != nil {
		sc := *gs.SkillCheck
		c.SkillCheck = &sc
	}
	if gs.PartyGridPosition != nil {
		p := *gs.PartyGridPosition
		c.PartyGridPosition = &p
	}
	if gs.VisitedTiles != nil {
		c.VisitedTiles = make(map[string]bool, len(gs.VisitedTiles))
		for k, v := range gs.VisitedTiles {
			c.VisitedTiles[k] = v
		}
	}
	if gs.RevealedMapIDs != nil {
		c.RevealedMapIDs = make([]string, len(gs.RevealedMapIDs))
		copy(c.RevealedMapIDs, gs.RevealedMapIDs)
	}
	if gs.ShopInventory != nil {
		c.ShopInventory = make([]story.ShopItem, len(gs.ShopInventory))
		copy(c.ShopInventory, gs.ShopInventory)
	}
	if gs.ReadableContent != nil {
		rc := *gs.ReadableContent
		c.ReadableContent = &rc
	}

	return &c
}
