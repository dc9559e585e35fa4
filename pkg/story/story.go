// Package story defines the narrative exchange types shared between the
// turn engine, the narrative backend client, and the presentation layer.
package story

// EntryKind identifies the author of a story entry.
type EntryKind string

const (
	EntryPlayer EntryKind = "player" // player-authored action text
	EntryDM     EntryKind = "dm"     // narration returned by the backend
	EntryInfo   EntryKind = "info"   // engine-authored notices (rolls, errors, summaries)
)

// Entry is a single element of a campaign's story history.
type Entry struct {
	Kind EntryKind `json:"kind"`
	Text string    `json:"text"`
}

// CampaignType selects the narrative tone of a campaign.
type CampaignType string

const (
	CampaignNormal CampaignType = "Normal"
	CampaignFamily CampaignType = "Family"
)

// SkillCheck is a backend request for a d20 roll before play continues.
type SkillCheck struct {
	Skill           string `json:"skill"`
	DifficultyClass int    `json:"difficultyClass"`
}

// ShopItem is one purchasable entry of a merchant's inventory. Cost is
// display text ("15 gold"); the authoritative price arrives on the
// transaction object when a purchase happens.
type ShopItem struct {
	Name string `json:"name"`
	Cost string `json:"cost"`
}

// Readable is in-world text the party can read, such as a letter or sign.
type Readable struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TransactionType distinguishes the two advisory shop operations.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionSell TransactionType = "sell"
)

// Transaction is a shop operation proposed by the backend. The engine
// treats it as advisory and validates it against live state before any
// gold or inventory changes.
type Transaction struct {
	Type     TransactionType `json:"type"`
	ItemName string          `json:"itemName"`
	Cost     int             `json:"cost"`
}

// Response is the structured payload of a single narrative turn.
type Response struct {
	Scene            string       `json:"scene"`
	SummaryForImage  string       `json:"summaryForImage"`
	Ambiance         string       `json:"ambiance"`
	IsGameOver       bool         `json:"isGameOver"`
	GameOverReason   string       `json:"gameOverReason,omitempty"`
	SuggestedActions []string     `json:"suggestedActions"`
	SkillCheck       *SkillCheck  `json:"skillCheck,omitempty"`
	ShopInventory    []ShopItem   `json:"shopInventory,omitempty"`
	ReadableContent  *Readable    `json:"readableContent,omitempty"`
	Transaction      *Transaction `json:"transaction,omitempty"`
}

// Fallback returns the safe response used when the backend payload is
// malformed or truncated. It keeps the turn loop alive without state
// side effects beyond the narration itself.
func Fallback() *Response {
	return &Response{
		Scene:            "The weave of fate is tangled. The world seems to shimmer and break. (Error: The DM's response was garbled). Please try a different action.",
		SummaryForImage:  "a glitch in a fantasy world, digital artifacts",
		Ambiance:         "default",
		SuggestedActions: []string{"Try again.", "Do something else..."},
	}
}

// Recommendation is a generated character name and backstory suggestion.
type Recommendation struct {
	SuggestedName      string `json:"suggestedName"`
	SuggestedBackstory string `json:"suggestedBackstory"`
}

// FallbackRecommendation is returned when recommendation generation
// yields an unparseable payload.
func FallbackRecommendation() *Recommendation {
	return &Recommendation{
		SuggestedName:      "Aleron the Lost",
		SuggestedBackstory: "Once a scholar with a promising future, they were exiled after an experiment went awry, and now seek to clear their name.",
	}
}
