package state

import (
	"testing"

	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/story"
)

func countItem(inv []string, name string) int {
	n := 0
	for _, item := range inv {
		if item == name {
			n++
		}
	}
	return n
}

func TestBuyTransaction(t *testing.T) {
	gs := newTestState(t)

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Longsword", Cost: 15,
	}})

	if next.PartyGold != 35 {
		t.Errorf("expected 35 gold after purchase, got %d", next.PartyGold)
	}
	if countItem(next.CharacterProfiles[0].Inventory, "Longsword") != 1 {
		t.Error("purchased item should go to the lead character")
	}
	for i := 1; i < len(next.CharacterProfiles); i++ {
		if countItem(next.CharacterProfiles[i].Inventory, "Longsword") != 0 {
			t.Error("no other character should receive the item")
		}
	}
}

func TestBuyTransactionInsufficientGold(t *testing.T) {
	gs := newTestState(t)
	gs.PartyGold = 10

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Platemail", Cost: 400,
	}})

	if next.PartyGold != 10 {
		t.Errorf("gold must be unchanged, got %d", next.PartyGold)
	}
	if countItem(next.CharacterProfiles[0].Inventory, "Platemail") != 0 {
		t.Error("unaffordable purchase must not add the item")
	}
}

func TestSellTransaction(t *testing.T) {
	gs := newTestState(t)
	// Put one potion on the second character and two on the third.
	gs.CharacterProfiles[1].Inventory = append(gs.CharacterProfiles[1].Inventory, "Healing Potion")
	gs.CharacterProfiles[2].Inventory = append(gs.CharacterProfiles[2].Inventory, "Healing Potion", "Healing Potion")

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionSell, ItemName: "Healing Potion", Cost: 5,
	}})

	if next.PartyGold != StartingGold+5 {
		t.Errorf("expected %d gold after sale, got %d", StartingGold+5, next.PartyGold)
	}
	if countItem(next.CharacterProfiles[1].Inventory, "Healing Potion") != 0 {
		t.Error("sale should remove the potion from the first holder")
	}
	if countItem(next.CharacterProfiles[2].Inventory, "Healing Potion") != 2 {
		t.Error("sale should remove exactly one instance, from the first holder only")
	}
}

func TestSellTransactionNobodyHoldsItem(t *testing.T) {
	gs := newTestState(t)

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionSell, ItemName: "Crown of Silverhaven", Cost: 1000,
	}})

	if next.PartyGold != StartingGold {
		t.Errorf("gold must be unchanged for a phantom sale, got %d", next.PartyGold)
	}
}

func TestTransactionNegativeCostRejected(t *testing.T) {
	gs := newTestState(t)
	gs.CharacterProfiles[0].Inventory = append(gs.CharacterProfiles[0].Inventory, "Cursed Idol")

	sold := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionSell, ItemName: "Cursed Idol", Cost: -100,
	}})
	if sold.PartyGold != StartingGold {
		t.Errorf("negative-cost sale must change no gold, got %d", sold.PartyGold)
	}
	if countItem(sold.CharacterProfiles[0].Inventory, "Cursed Idol") != 1 {
		t.Error("negative-cost sale must not remove the item")
	}

	bought := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Rope", Cost: -5,
	}})
	if bought.PartyGold != StartingGold {
		t.Errorf("negative-cost purchase must change no gold, got %d", bought.PartyGold)
	}
	if countItem(bought.CharacterProfiles[0].Inventory, "Rope") != 0 {
		t.Error("negative-cost purchase must not add the item")
	}
}

func TestBuyMapRevealsRegion(t *testing.T) {
	gs := newTestState(t)

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Map of Silverwood Forest", Cost: 10,
	}})

	if len(next.RevealedMapIDs) != 1 || next.RevealedMapIDs[0] != content.WildernessMapID {
		t.Errorf("expected silverwood_forest revealed, got %v", next.RevealedMapIDs)
	}
	if countItem(next.CharacterProfiles[0].Inventory, "Map of Silverwood Forest") != 1 {
		t.Error("the map item itself should be in inventory")
	}

	// Buying the same map again adds the item but not a duplicate reveal.
	again := Apply(next, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Map of Silverwood Forest", Cost: 10,
	}})
	if len(again.RevealedMapIDs) != 1 {
		t.Errorf("expected no duplicate reveal, got %v", again.RevealedMapIDs)
	}
}

func TestBuyMapOfUnknownRegion(t *testing.T) {
	gs := newTestState(t)

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Map of Atlantis", Cost: 10,
	}})

	if len(next.RevealedMapIDs) != 0 {
		t.Errorf("unknown region must not reveal anything, got %v", next.RevealedMapIDs)
	}
	if countItem(next.CharacterProfiles[0].Inventory, "Map of Atlantis") != 1 {
		t.Error("the item purchase itself still goes through")
	}
	if next.PartyGold != StartingGold-10 {
		t.Errorf("expected gold debit, got %d", next.PartyGold)
	}
}

func TestTransactionWithEmptyParty(t *testing.T) {
	gs := NewGameState(story.CampaignNormal, nil)

	next := Apply(gs, TransactionApplied{Transaction: &story.Transaction{
		Type: story.TransactionBuy, ItemName: "Rope", Cost: 1,
	}})

	if next.PartyGold != StartingGold {
		t.Error("buy with no profiles should change nothing")
	}
}

func TestMapTransitions(t *testing.T) {
	profiles := party.Prebuilt()

	t.Run("leave city onto grid", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		start := content.Position{X: 5, Y: 9}

		next := Apply(gs, MapTransitioned{
			MapID:        content.WildernessMapID,
			GridPosition: &start,
			Info:         "The party leaves Silverhaven and enters the Silverwood Forest.",
			ClearContext: true,
		})

		if next.CurrentMapID != content.WildernessMapID {
			t.Errorf("expected wilderness map, got %q", next.CurrentMapID)
		}
		if next.CurrentCityLocationID != "" {
			t.Error("grid mode must clear the city location")
		}
		if next.PartyGridPosition == nil || *next.PartyGridPosition != start {
			t.Errorf("expected grid position %v, got %v", start, next.PartyGridPosition)
		}
		if !next.VisitedTiles["5,9"] {
			t.Error("start tile should be marked visited")
		}
		if next.MovementPoints != gs.MovementPoints {
			t.Error("entering the wilderness costs no movement")
		}
		last := next.StoryHistory[len(next.StoryHistory)-1]
		if last.Kind != story.EntryInfo {
			t.Error("expected an info entry for the transition")
		}
	})

	t.Run("grid move spends movement and marks tile", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		pos := content.Position{X: 5, Y: 8}

		next := Apply(gs, MapTransitioned{
			MapID:         content.WildernessMapID,
			GridPosition:  &pos,
			SpendMovement: true,
		})

		if next.MovementPoints != gs.MovementPoints-1 {
			t.Errorf("expected movement spent, got %d", next.MovementPoints)
		}
		if !next.VisitedTiles["5,8"] {
			t.Error("destination tile should be marked visited")
		}
	})

	t.Run("movement points may go negative", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		gs.MovementPoints = 0
		pos := content.Position{X: 4, Y: 8}

		next := Apply(gs, MapTransitioned{
			MapID:         content.WildernessMapID,
			GridPosition:  &pos,
			SpendMovement: true,
		})

		if next.MovementPoints != -1 {
			t.Errorf("expected -1 movement points, got %d", next.MovementPoints)
		}
	})

	t.Run("gate re-entry returns to city without cost", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		pos := content.Position{X: 5, Y: 9}
		gs = Apply(gs, MapTransitioned{MapID: content.WildernessMapID, GridPosition: &pos})
		moves := gs.MovementPoints

		next := Apply(gs, MapTransitioned{
			MapID: content.StartCityID,
			Info:  "The party returns to the gates of Silverhaven.",
		})

		if next.CurrentMapID != content.StartCityID {
			t.Errorf("expected city map, got %q", next.CurrentMapID)
		}
		if next.PartyGridPosition != nil || next.CurrentCityLocationID != "" {
			t.Error("gate re-entry puts the party on the city streets")
		}
		if next.MovementPoints != moves {
			t.Error("gate re-entry must not cost movement")
		}
	})

	t.Run("enter city venue", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		gs.CurrentCityLocationID = ""

		next := Apply(gs, MapTransitioned{
			MapID:          content.StartCityID,
			CityLocationID: "gilded_anvil_smith",
		})

		if next.CurrentCityLocationID != "gilded_anvil_smith" {
			t.Errorf("expected venue set, got %q", next.CurrentCityLocationID)
		}
		if next.PartyGridPosition != nil {
			t.Error("city venue and grid position are mutually exclusive")
		}
	})

	t.Run("return to streets clears contextual views", func(t *testing.T) {
		gs := NewGameState(story.CampaignNormal, profiles)
		gs.ShopInventory = []story.ShopItem{{Name: "Ale", Cost: "1 gold"}}
		gs.ReadableContent = &story.Readable{Title: "Menu", Text: "Stew, 2 coppers."}

		next := Apply(gs, MapTransitioned{
			MapID:        content.StartCityID,
			Info:         "The party returns to the city streets.",
			ClearContext: true,
		})

		if next.CurrentCityLocationID != "" {
			t.Error("expected the party on the streets")
		}
		if next.ShopInventory != nil || next.ReadableContent != nil {
			t.Error("contextual views should be cleared")
		}
	})
}
