// Package engine implements the turn engine. It owns the live
// GameState, funnels every player and synthesized action through one
// turn pipeline, and mirrors each resulting state to storage.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/arcanedm/arcanedm/internal/services"
	"github.com/arcanedm/arcanedm/internal/storage"
	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/prompts"
	"github.com/arcanedm/arcanedm/pkg/state"
	"github.com/arcanedm/arcanedm/pkg/story"
	"github.com/arcanedm/arcanedm/pkg/textfilter"
)

// SummarizationThreshold is the history length at which a turn first
// compacts the story before calling the backend.
const SummarizationThreshold = 11

var (
	ErrNoCampaign        = errors.New("no active campaign")
	ErrTurnInFlight      = errors.New("a turn is already in flight")
	ErrSkillCheckPending = errors.New("a skill check must be resolved first")
	ErrNoSkillCheck      = errors.New("no skill check is pending")
	ErrEmptyAction       = errors.New("action text is empty")
	ErrGameOver          = errors.New("the campaign has ended")
	ErrInvalidRoll       = errors.New("roll must be between 1 and 20")
)

// In-story notices for backend failures.
const (
	rateLimitNotice  = "You've made too many requests in a short time. Please wait a moment. (Error: API rate limit)"
	summarizeNotice  = "An error occurred while summarizing the story."
	transportNotice  = "The connection to the ethereal plane is unstable. (%s)"
	saveMirrorExpiry = 10 * time.Second
)

// leaveExitPattern detects leave-the-building intent in free text.
// This is a heuristic, not a parser: it keeps map state consistent
// even when the backend narrates movement on its own.
var leaveExitPattern = regexp.MustCompile(`(?i)leave|exit|go outside`)

// Engine runs campaign turns. All methods are safe for concurrent use;
// at most one turn is in flight at a time.
type Engine struct {
	narrative services.NarrativeService
	store     storage.Storage
	logger    *slog.Logger
	filter    *textfilter.ProfanityFilter

	mu   sync.Mutex
	busy bool
	gs   *state.GameState
}

// New creates a turn engine. The storage may be nil, in which case
// campaigns are not persisted.
func New(narrative services.NarrativeService, store storage.Storage, logger *slog.Logger) *Engine {
	return &Engine{
		narrative: narrative,
		store:     store,
		logger:    logger,
		filter:    textfilter.NewProfanityFilter(),
	}
}

// State returns a deep copy of the live state, or nil when no campaign
// is active.
func (e *Engine) State() *state.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gs == nil {
		return nil
	}
	return e.gs.Clone()
}

// Busy reports whether a turn is in flight.
func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// apply runs the reducer and swaps in the new state.
func (e *Engine) apply(ev state.Event) *state.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gs = state.Apply(e.gs, ev)
	return e.gs
}

// beginTurn acquires the single turn slot after running the guards.
// Extra guards run while the lock is held.
func (e *Engine) beginTurn(guards func(gs *state.GameState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gs == nil {
		return ErrNoCampaign
	}
	if e.busy {
		return ErrTurnInFlight
	}
	if guards != nil {
		if err := guards(e.gs); err != nil {
			return err
		}
	}
	e.busy = true
	return nil
}

func (e *Engine) endTurn() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

// StartCampaign creates a fresh campaign and runs the opening
// narration turn.
func (e *Engine) StartCampaign(ctx context.Context, campaignType story.CampaignType, profiles []party.CharacterProfile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("a campaign needs at least one character")
	}
	for i := range profiles {
		if err := profiles[i].Validate(); err != nil {
			return fmt.Errorf("character %d: %w", i+1, err)
		}
	}

	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrTurnInFlight
	}
	e.gs = state.NewGameState(campaignType, profiles)
	e.busy = true
	e.mu.Unlock()
	defer e.endTurn()

	e.runTurn(ctx, prompts.CityAction, false)
	return nil
}

// ResumeCampaign loads a saved campaign into the engine. If the
// campaign never got its opening narration, the next EnsureOpening
// call runs it.
func (e *Engine) ResumeCampaign(gs *state.GameState) error {
	if gs == nil {
		return ErrNoCampaign
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return ErrTurnInFlight
	}
	e.gs = gs.Clone()
	return nil
}

// EnsureOpening runs the opening narration for a campaign whose only
// history entry is the roster prompt. It is a no-op otherwise.
func (e *Engine) EnsureOpening(ctx context.Context) error {
	if err := e.beginTurn(nil); err != nil {
		return err
	}
	defer e.endTurn()

	if !e.State().IsFreshCampaign() {
		return nil
	}
	e.runTurn(ctx, prompts.CityAction, false)
	return nil
}

// SubmitAction runs one player turn: guards, leave/exit interception,
// history append, optional summarization, backend call, response
// application, conditional image, storage mirror.
func (e *Engine) SubmitAction(ctx context.Context, actionText string) error {
	actionText = strings.TrimSpace(actionText)
	if actionText == "" {
		return ErrEmptyAction
	}

	err := e.beginTurn(func(gs *state.GameState) error {
		if gs.IsGameOver {
			return ErrGameOver
		}
		if gs.HasPendingSkillCheck() {
			return ErrSkillCheckPending
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer e.endTurn()

	gs := e.State()

	// Leaving a building is handled client-side so map state stays
	// consistent regardless of what the backend narrates.
	if gs.InCityLocation() && leaveExitPattern.MatchString(actionText) {
		e.apply(state.MapTransitioned{
			MapID:        gs.CurrentMapID,
			Info:         "The party returns to the city streets.",
			ClearContext: true,
		})
		mapName := gs.CurrentMapID
		if m, ok := gs.CurrentMap(); ok {
			mapName = m.Name
		}
		e.apply(state.PlayerActed{Text: fmt.Sprintf("The party returns to the streets of %s.", mapName)})
		e.runTurn(ctx, prompts.CityAction, false)
		return nil
	}

	instruction := prompts.CityAction
	if gs.OnGrid() {
		instruction = prompts.Explore
	}

	e.apply(state.PlayerActed{Text: actionText})
	e.runTurn(ctx, instruction, true)
	return nil
}

// ResolveSkillCheck records a d20 roll against the pending check and
// continues the turn with mode-appropriate instructions.
func (e *Engine) ResolveSkillCheck(ctx context.Context, roll int) error {
	if roll < 1 || roll > 20 {
		return ErrInvalidRoll
	}

	err := e.beginTurn(func(gs *state.GameState) error {
		if gs.IsGameOver {
			return ErrGameOver
		}
		if !gs.HasPendingSkillCheck() {
			return ErrNoSkillCheck
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer e.endTurn()

	gs := e.apply(state.SkillCheckResolved{Roll: roll})

	instruction := prompts.CityAction
	if gs.OnGrid() {
		instruction = prompts.Explore
	}
	e.runTurn(ctx, instruction, false)
	return nil
}

// runTurn is the shared back half of every turn: summarize when due,
// call the backend, apply the response, illustrate, mirror. The caller
// holds the turn slot and has already appended the triggering entry.
func (e *Engine) runTurn(ctx context.Context, instruction string, allowSummarize bool) {
	gs := e.State()

	if allowSummarize && len(gs.StoryHistory) >= SummarizationThreshold {
		summary, err := e.narrative.SummarizeHistory(ctx, gs.StoryHistory, gs.CampaignType)
		if err != nil {
			e.logger.Warn("Summarization failed, continuing with full history", "error", err)
			e.apply(state.InfoAppended{Text: summarizeNotice})
		} else {
			e.apply(state.HistoryCompacted{Summary: summary})
		}
		gs = e.State()
	}

	resp, err := e.narrative.GenerateStory(ctx, gs.StoryHistory, gs.CampaignType, instruction)
	if err != nil {
		notice := fmt.Sprintf(transportNotice, err.Error())
		if errors.Is(err, services.ErrRateLimited) {
			notice = rateLimitNotice
		}
		e.logger.Error("Story generation failed", "error", err)
		e.apply(state.InfoAppended{Text: notice})
		e.mirror()
		return
	}

	if textfilter.ShouldFilterContent(gs.CampaignType) {
		resp.Scene = e.filter.FilterText(resp.Scene)
	}

	e.apply(state.BackendResponded{Response: resp})
	if resp.Transaction != nil {
		e.apply(state.TransactionApplied{Transaction: resp.Transaction})
	}
	if resp.IsGameOver {
		e.apply(state.GameEnded{Reason: resp.GameOverReason})
	}

	// Shop and readable views replace the scene illustration, so a new
	// image is only worth generating when neither is present.
	if len(resp.ShopInventory) == 0 && resp.ReadableContent == nil && resp.SummaryForImage != "" {
		if url, imgErr := e.narrative.GenerateSceneImage(ctx, resp.SummaryForImage); imgErr != nil {
			e.logger.Warn("Image generation failed, keeping previous scene image", "error", imgErr)
		} else {
			e.apply(state.SceneIllustrated{URL: url})
		}
	}

	e.mirror()
}

// RecommendCharacter suggests a name and backstory for a character
// concept. Parse failures inside the service already degrade to a
// fixed fallback pair.
func (e *Engine) RecommendCharacter(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error) {
	return e.narrative.GenerateCharacterRecommendations(ctx, race, class, loyalty)
}

// mirror persists the live state fire-and-forget. Persistence never
// fails a turn.
func (e *Engine) mirror() {
	if e.store == nil {
		return
	}
	gs := e.State()
	if gs == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveMirrorExpiry)
		defer cancel()
		if err := e.store.SaveCampaign(ctx, gs); err != nil {
			e.logger.Error("Failed to mirror campaign to storage", "error", err, "campaign", gs.ID)
		}
	}()
}

// MapActionKind enumerates the map transitions the presentation layer
// can request.
type MapActionKind string

const (
	MapActionTravelCity      MapActionKind = "travel_city"
	MapActionLeaveCity       MapActionKind = "leave_city"
	MapActionTravelGrid      MapActionKind = "travel_grid"
	MapActionReturnToCityMap MapActionKind = "return_to_city_map"
)

// MapAction is a navigation intent. LocationID applies to travel_city,
// To applies to travel_grid.
type MapAction struct {
	Kind       MapActionKind
	LocationID string
	To         content.Position
}

// HandleMapAction executes a map transition, synthesizing a narration
// turn where the transition calls for one.
func (e *Engine) HandleMapAction(ctx context.Context, action MapAction) error {
	err := e.beginTurn(func(gs *state.GameState) error {
		if gs.IsGameOver {
			return ErrGameOver
		}
		if gs.HasPendingSkillCheck() {
			return ErrSkillCheckPending
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer e.endTurn()

	gs := e.State()

	switch action.Kind {
	case MapActionTravelCity:
		m, ok := gs.CurrentMap()
		if !ok || m.Kind != content.MapKindCity {
			return fmt.Errorf("travel_city is only valid on a city map")
		}
		destination, ok := m.City.Location(action.LocationID)
		if !ok {
			return fmt.Errorf("unknown city location %q", action.LocationID)
		}
		e.apply(state.MapTransitioned{
			MapID:          gs.CurrentMapID,
			CityLocationID: destination.ID,
			ClearContext:   true,
		})
		e.apply(state.PlayerActed{Text: fmt.Sprintf("The party heads to %s.", destination.Name)})
		e.runTurn(ctx, prompts.CityAction, false)
		return nil

	case MapActionLeaveCity:
		m, ok := gs.CurrentMap()
		if !ok || m.Kind != content.MapKindCity {
			return fmt.Errorf("leave_city is only valid on a city map")
		}
		wild, ok := content.LookupMap(content.WildernessMapID)
		if !ok || wild.Kind != content.MapKindGrid {
			return fmt.Errorf("wilderness map %q not in catalog", content.WildernessMapID)
		}
		start := wild.Grid.StartPosition
		e.apply(state.MapTransitioned{
			MapID:        wild.ID,
			GridPosition: &start,
			Info:         fmt.Sprintf("The party leaves %s and enters the %s.", m.Name, wild.Name),
			ClearContext: true,
		})
		// Pure transition: the next player action drives narration.
		e.mirror()
		return nil

	case MapActionTravelGrid:
		m, ok := gs.CurrentMap()
		if !ok || m.Kind != content.MapKindGrid || !gs.OnGrid() {
			return fmt.Errorf("travel_grid is only valid on a grid map")
		}
		tile, ok := m.Grid.TileAt(action.To)
		if !ok {
			return fmt.Errorf("position %d,%d is out of bounds", action.To.X, action.To.Y)
		}

		if tile.Terrain == content.TerrainCityGate {
			city, ok := content.LookupMap(content.StartCityID)
			if !ok {
				return fmt.Errorf("city map %q not in catalog", content.StartCityID)
			}
			// Re-entering the city is transitional and costs no
			// movement.
			e.apply(state.MapTransitioned{
				MapID:        city.ID,
				Info:         fmt.Sprintf("The party returns to the gates of %s.", city.Name),
				ClearContext: true,
			})
			e.apply(state.PlayerActed{Text: fmt.Sprintf("The party arrives at the gates of %s.", city.Name)})
			e.runTurn(ctx, prompts.CityAction, false)
			return nil
		}

		pos := action.To
		e.apply(state.MapTransitioned{
			MapID:         gs.CurrentMapID,
			GridPosition:  &pos,
			SpendMovement: true,
			ClearContext:  true,
		})
		e.apply(state.PlayerActed{Text: fmt.Sprintf("The party moves through the %s to a new area.", tile.Terrain)})
		e.runTurn(ctx, prompts.Explore, false)
		return nil

	case MapActionReturnToCityMap:
		if !gs.InCityLocation() {
			return fmt.Errorf("return_to_city_map is only valid inside a city location")
		}
		e.apply(state.MapTransitioned{
			MapID:        gs.CurrentMapID,
			Info:         "The party returns to the city streets.",
			ClearContext: true,
		})
		e.mirror()
		return nil

	default:
		return fmt.Errorf("unknown map action %q", action.Kind)
	}
}
