package state

import (
	"fmt"
	"strings"

	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/story"
)

// Event is the closed union of everything that can change a campaign.
// The variants below are the complete set; Apply matches exhaustively.
type Event interface {
	isEvent()
}

// PlayerActed records a player action and clears the ephemeral turn
// fields (suggestions, pending check, contextual views).
type PlayerActed struct {
	Text string
}

// InfoAppended adds an engine notice to the history, such as a
// summarization failure or a transport error.
type InfoAppended struct {
	Text string
}

// HistoryCompacted replaces everything between the roster prompt and
// the latest entry with a recap. This is the single sanctioned
// exception to append-only history.
type HistoryCompacted struct {
	Summary string
}

// BackendResponded applies the narration and ephemeral fields of a
// story response. Transactions and game-over handling are separate
// events so their effects stay individually auditable.
type BackendResponded struct {
	Response *story.Response
}

// TransactionApplied settles an advisory buy or sell against live
// gold and inventories.
type TransactionApplied struct {
	Transaction *story.Transaction
}

// MapTransitioned moves the party between maps, venues, and tiles.
type MapTransitioned struct {
	MapID          string
	CityLocationID string            // venue the party enters, empty for streets or grid
	GridPosition   *content.Position // tile the party stands on, nil for city modes
	SpendMovement  bool              // charge one movement point for this move
	Info           string            // optional history notice
	ClearContext   bool              // drop shop and readable views
}

// SceneIllustrated attaches a generated scene image. An empty URL
// clears the previous image.
type SceneIllustrated struct {
	URL string
}

// SkillCheckResolved records a d20 roll against the pending check and
// clears it.
type SkillCheckResolved struct {
	Roll int
}

// GameEnded marks the campaign terminal. No later event un-ends it.
type GameEnded struct {
	Reason string
}

func (PlayerActed) isEvent()        {}
func (InfoAppended) isEvent()       {}
func (HistoryCompacted) isEvent()   {}
func (BackendResponded) isEvent()   {}
func (TransactionApplied) isEvent() {}
func (MapTransitioned) isEvent()    {}
func (SceneIllustrated) isEvent()   {}
func (SkillCheckResolved) isEvent() {}
func (GameEnded) isEvent()          {}

// Apply is the reducer: it returns a new state with the event applied,
// leaving the input untouched.
func Apply(gs *GameState, ev Event) *GameState {
	next := gs.Clone()

	switch e := ev.(type) {
	case PlayerActed:
		next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryPlayer, Text: e.Text})
		next.SuggestedActions = nil
		next.SkillCheck = nil
		next.ShopInventory = nil
		next.ReadableContent = nil

	case InfoAppended:
		next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryInfo, Text: e.Text})

	case HistoryCompacted:
		if len(next.StoryHistory) >= 3 {
			recap := story.Entry{
				Kind: story.EntryInfo,
				Text: "[Recap of past events]:\n" + e.Summary,
			}
			next.StoryHistory = []story.Entry{
				next.StoryHistory[0],
				recap,
				next.StoryHistory[len(next.StoryHistory)-1],
			}
		}

	case BackendResponded:
		resp := e.Response
		next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryDM, Text: resp.Scene})
		next.SuggestedActions = resp.SuggestedActions
		next.SkillCheck = resp.SkillCheck
		next.ShopInventory = resp.ShopInventory
		next.ReadableContent = resp.ReadableContent
		next.Ambiance = resp.Ambiance
		if next.Ambiance == "" {
			next.Ambiance = "default"
		}

	case TransactionApplied:
		applyTransaction(next, e.Transaction)

	case MapTransitioned:
		next.CurrentMapID = e.MapID
		next.CurrentCityLocationID = e.CityLocationID
		next.PartyGridPosition = nil
		if e.GridPosition != nil {
			p := *e.GridPosition
			next.PartyGridPosition = &p
			next.VisitedTiles[TileKey(p)] = true
		}
		if e.SpendMovement {
			next.MovementPoints--
		}
		if e.Info != "" {
			next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryInfo, Text: e.Info})
		}
		if e.ClearContext {
			next.ShopInventory = nil
			next.ReadableContent = nil
		}

	case SceneIllustrated:
		next.SceneImage = e.URL

	case SkillCheckResolved:
		if next.SkillCheck == nil {
			return next
		}
		text := fmt.Sprintf("The party attempts a %s check (DC %d). Rolled a d20: %d.",
			next.SkillCheck.Skill, next.SkillCheck.DifficultyClass, e.Roll)
		next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryInfo, Text: text})
		next.SkillCheck = nil

	case GameEnded:
		next.IsGameOver = true
		next.GameOverReason = e.Reason
		next.StoryHistory = append(next.StoryHistory, story.Entry{Kind: story.EntryInfo, Text: e.Reason})
		next.Ambiance = "default"
	}

	return next
}

// applyTransaction validates an advisory transaction against live
// state. Invalid proposals (unaffordable buys, sells of items nobody
// holds, negative costs) change nothing; the narration may disagree,
// but gold and inventories stay consistent.
func applyTransaction(gs *GameState, tx *story.Transaction) {
	if tx == nil || tx.Cost < 0 {
		return
	}

	switch tx.Type {
	case story.TransactionSell:
		for i := range gs.CharacterProfiles {
			inv := gs.CharacterProfiles[i].Inventory
			for j, item := range inv {
				if item == tx.ItemName {
					gs.CharacterProfiles[i].Inventory = append(inv[:j:j], inv[j+1:]...)
					gs.PartyGold += tx.Cost
					return
				}
			}
		}

	case story.TransactionBuy:
		if gs.PartyGold < tx.Cost || len(gs.CharacterProfiles) == 0 {
			return
		}
		gs.PartyGold -= tx.Cost
		lead := &gs.CharacterProfiles[0]
		lead.Inventory = append(lead.Inventory, tx.ItemName)

		if mapID, ok := revealedMapID(tx.ItemName); ok {
			for _, id := range gs.RevealedMapIDs {
				if id == mapID {
					return
				}
			}
			gs.RevealedMapIDs = append(gs.RevealedMapIDs, mapID)
		}
	}
}

// revealedMapID derives a map id from a purchased "Map of <Region>"
// item. Only ids present in the map catalog reveal anything.
func revealedMapID(itemName string) (string, bool) {
	lower := strings.ToLower(itemName)
	const prefix = "map of "
	if !strings.HasPrefix(lower, prefix) {
		return "", false
	}
	id := strings.Join(strings.Fields(strings.TrimPrefix(lower, prefix)), "_")
	if _, ok := content.LookupMap(id); !ok {
		return "", false
	}
	return id, true
}
