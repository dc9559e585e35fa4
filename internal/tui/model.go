// Package tui is the bubbletea presentation layer. It renders the
// engine's GameState and forwards player intents (action text, rolls,
// map navigation) into the turn engine.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanedm/arcanedm/internal/engine"
	"github.com/arcanedm/arcanedm/internal/storage"
	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/state"
	"github.com/arcanedm/arcanedm/pkg/story"
)

const placeholderText = "What does the party do?"

// newCampaignOption is the extra row appended to the campaign list.
const newCampaignOption = "Start a new campaign"

// Model is the bubbletea model for the whole client.
type Model struct {
	engine *engine.Engine
	store  storage.Storage
	logger *slog.Logger

	storyViewport viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	err           error
	loading       bool
	loadingText   string
	progressTick  int
	notice        string

	// Campaign selection modal
	showCampaignModal bool
	loadingCampaigns  bool
	campaigns         []state.GameState
	selectedCampaign  int

	// New-campaign tone selection modal
	showToneModal bool
	selectedTone  int

	// Quit confirmation modal
	showQuitModal bool

	// Map modal
	showMapModal     bool
	selectedLocation int

	// Skill check modal input
	rollInput string
	rollError string
}

type campaignsLoadedMsg struct {
	campaigns []state.GameState
	err       error
}

// turnDoneMsg arrives when an engine operation finishes. The model
// re-reads engine.State afterwards.
type turnDoneMsg struct {
	err error
}

type suggestionMsg struct {
	rec *story.Recommendation
	err error
}

type progressTickMsg struct{}

// New creates the client model. The storage is used for the campaign
// selection list; turns go through the engine.
func New(eng *engine.Engine, store storage.Storage, logger *slog.Logger) Model {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return Model{
		engine:            eng,
		store:             store,
		logger:            logger,
		textarea:          ta,
		storyViewport:     vp,
		showCampaignModal: true,
		loadingCampaigns:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCampaigns()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showCampaignModal {
		return m.updateCampaignModal(msg)
	}
	if m.showToneModal {
		return m.updateToneModal(msg)
	}
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}
	if m.showMapModal {
		return m.updateMapModal(msg)
	}
	if gs := m.engine.State(); gs != nil && gs.HasPendingSkillCheck() && !m.loading {
		return m.updateSkillCheckModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.storyViewport, vpCmd = m.storyViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.writeStoryContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			m.textarea.Reset()
			return m.startTurn("The Dungeon Master is pondering...", m.submitAction(input))
		}

	case turnDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.notice = errorStyle.Render(msg.err.Error())
		}
		m.writeStoryContent()
		m.storyViewport.GotoBottom()
		return m, nil

	case suggestionMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = errorStyle.Render(fmt.Sprintf("Suggestion failed: %v", msg.err))
		} else {
			m.notice = fmt.Sprintf("Suggested: %s — %s", msg.rec.SuggestedName, msg.rec.SuggestedBackstory)
		}
		m.writeStoryContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeStoryContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.storyViewport, vpCmd = m.storyViewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// startTurn flips the loading state and kicks off an engine command
// with the progress animation.
func (m Model) startTurn(loadingText string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.loadingText = loadingText
	m.progressTick = 0
	m.notice = ""
	m.writeStoryContent()
	return m, tea.Batch(cmd, progressTick())
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	storyWidth := int(float64(m.width)*0.68) - 4
	m.storyViewport.Width = storyWidth - 2
	m.storyViewport.Height = m.height - 7
	m.textarea.SetWidth(storyWidth - 4)
	m.ready = true
}

// Engine commands. Each runs in its own goroutine via bubbletea.

func (m Model) loadCampaigns() tea.Cmd {
	return func() tea.Msg {
		if m.store == nil {
			return campaignsLoadedMsg{nil, nil}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		campaigns, err := m.store.ListCampaigns(ctx)
		return campaignsLoadedMsg{campaigns, err}
	}
}

func (m Model) startCampaign(campaignType story.CampaignType) tea.Cmd {
	return func() tea.Msg {
		err := m.engine.StartCampaign(context.Background(), campaignType, party.Prebuilt())
		return turnDoneMsg{err}
	}
}

func (m Model) resumeCampaign(gs state.GameState) tea.Cmd {
	return func() tea.Msg {
		if err := m.engine.ResumeCampaign(&gs); err != nil {
			return turnDoneMsg{err}
		}
		return turnDoneMsg{m.engine.EnsureOpening(context.Background())}
	}
}

func (m Model) submitAction(text string) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{m.engine.SubmitAction(context.Background(), text)}
	}
}

func (m Model) resolveSkillCheck(roll int) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{m.engine.ResolveSkillCheck(context.Background(), roll)}
	}
}

func (m Model) mapAction(action engine.MapAction) tea.Cmd {
	return func() tea.Msg {
		return turnDoneMsg{m.engine.HandleMapAction(context.Background(), action)}
	}
}

func (m Model) suggestCharacter(race, class, loyalty string) tea.Cmd {
	return func() tea.Msg {
		rec, err := m.engine.RecommendCharacter(context.Background(), race, class, loyalty)
		return suggestionMsg{rec, err}
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

// Slash commands.

func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	m.textarea.Reset()
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/help":
		m.notice = helpText
		m.writeStoryContent()
		return m, nil

	case "/map":
		m.showMapModal = true
		m.selectedLocation = 0
		return m, nil

	case "/copyid":
		gs := m.engine.State()
		if gs == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(gs.ID.String()); err != nil {
			m.notice = errorStyle.Render(fmt.Sprintf("Clipboard unavailable: %v", err))
		} else {
			m.notice = "Campaign ID copied to clipboard."
		}
		m.writeStoryContent()
		return m, nil

	case "/act":
		if len(fields) < 2 {
			m.notice = errorStyle.Render("Usage: /act <number>")
			m.writeStoryContent()
			return m, nil
		}
		n, err := strconv.Atoi(fields[1])
		gs := m.engine.State()
		if err != nil || gs == nil || n < 1 || n > len(gs.SuggestedActions) {
			m.notice = errorStyle.Render("No such suggested action.")
			m.writeStoryContent()
			return m, nil
		}
		return m.startTurn("The Dungeon Master is pondering...", m.submitAction(gs.SuggestedActions[n-1]))

	case "/suggest":
		if len(fields) != 4 {
			m.notice = errorStyle.Render("Usage: /suggest <race> <class> <loyalty>")
			m.writeStoryContent()
			return m, nil
		}
		return m.startTurn("Consulting the muses...", m.suggestCharacter(fields[1], fields[2], fields[3]))

	case "/quit":
		m.showQuitModal = true
		return m, nil

	default:
		m.notice = errorStyle.Render(fmt.Sprintf("Unknown command %s. Try /help.", cmd))
		m.writeStoryContent()
		return m, nil
	}
}

const helpText = `Commands:
/help            Show this help
/map             Open the map view
/act <n>         Take suggested action n
/copyid          Copy the campaign id to the clipboard
/suggest r c l   Suggest a character name and backstory
/quit            Quit

Type actions and press Enter. When a skill check is pending,
enter a roll (1-20) or press R for a digital d20.`

// Campaign selection modal.

func (m Model) updateCampaignModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case campaignsLoadedMsg:
		m.loadingCampaigns = false
		if msg.err != nil {
			// Storage being down only costs the continue option.
			m.logger.Warn("Failed to list campaigns", "error", msg.err)
		}
		m.campaigns = msg.campaigns

	case turnDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.showCampaignModal = false
		m.writeStoryContent()
		m.storyViewport.GotoBottom()
		m.textarea.Focus()
		return m, textarea.Blink

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}

	case tea.KeyMsg:
		if m.loadingCampaigns || m.loading {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.selectedCampaign > 0 {
				m.selectedCampaign--
			}
		case tea.KeyDown:
			if m.selectedCampaign < len(m.campaigns) {
				m.selectedCampaign++
			}
		case tea.KeyEnter:
			if m.selectedCampaign == len(m.campaigns) {
				m.showCampaignModal = false
				m.showToneModal = true
				return m, nil
			}
			m.loading = true
			m.progressTick = 0
			return m, tea.Batch(m.resumeCampaign(m.campaigns[m.selectedCampaign]), progressTick())
		}
	}

	return m, nil
}

// Tone selection modal for new campaigns.

func (m Model) updateToneModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case turnDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.showToneModal = false
		m.writeStoryContent()
		m.storyViewport.GotoBottom()
		m.textarea.Focus()
		return m, textarea.Blink

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showToneModal = false
			m.showCampaignModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedTone > 0 {
				m.selectedTone--
			}
		case tea.KeyDown:
			if m.selectedTone < 1 {
				m.selectedTone++
			}
		case tea.KeyEnter:
			campaignType := story.CampaignNormal
			if m.selectedTone == 1 {
				campaignType = story.CampaignFamily
			}
			m.loading = true
			m.progressTick = 0
			return m, tea.Batch(m.startCampaign(campaignType), progressTick())
		}
	}

	return m, nil
}

// Quit confirmation modal.

func (m Model) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

// Skill check modal. Accepts digits for a manual roll or R for a
// digital d20.

func (m Model) updateSkillCheckModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.writeStoryContent()

	case turnDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		}
		m.writeStoryContent()
		m.storyViewport.GotoBottom()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyBackspace:
			if len(m.rollInput) > 0 {
				m.rollInput = m.rollInput[:len(m.rollInput)-1]
			}
			return m, nil
		case tea.KeyEnter:
			roll, err := strconv.Atoi(m.rollInput)
			if err != nil || roll < 1 || roll > 20 {
				m.rollError = "Enter a number between 1 and 20."
				return m, nil
			}
			m.rollInput = ""
			m.rollError = ""
			return m.startTurn("Fate weighs the roll...", m.resolveSkillCheck(roll))
		default:
			s := msg.String()
			if s == "r" || s == "R" {
				roll := rand.Intn(20) + 1
				m.rollInput = ""
				m.rollError = ""
				return m.startTurn(fmt.Sprintf("The d20 clatters... %d!", roll), m.resolveSkillCheck(roll))
			}
			if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.rollInput) < 2 {
				m.rollInput += s
			}
			return m, nil
		}
	}

	return m, nil
}

// Map modal. City mode lists venues; grid mode moves the party with
// the arrow keys.

func (m Model) updateMapModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	gs := m.engine.State()
	if gs == nil {
		m.showMapModal = false
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case turnDoneMsg:
		m.loading = false
		m.showMapModal = false
		if msg.err != nil {
			m.err = msg.err
			m.notice = errorStyle.Render(msg.err.Error())
		}
		m.writeStoryContent()
		m.storyViewport.GotoBottom()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			return m, progressTick()
		}

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		if gs.OnGrid() {
			return m.updateGridMap(gs, msg)
		}
		return m.updateCityMap(gs, msg)
	}

	return m, nil
}

func (m Model) updateCityMap(gs *state.GameState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	gameMap, ok := gs.CurrentMap()
	if !ok || gameMap.Kind != content.MapKindCity {
		m.showMapModal = false
		return m, nil
	}
	locations := gameMap.City.Locations

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.showMapModal = false
		return m, nil
	case tea.KeyUp:
		if m.selectedLocation > 0 {
			m.selectedLocation--
		}
	case tea.KeyDown:
		if m.selectedLocation < len(locations)-1 {
			m.selectedLocation++
		}
	case tea.KeyEnter:
		dest := locations[m.selectedLocation]
		return m.startTurn("Traveling...", m.mapAction(engine.MapAction{
			Kind:       engine.MapActionTravelCity,
			LocationID: dest.ID,
		}))
	default:
		switch msg.String() {
		case "l", "L":
			return m.startTurn("Traveling...", m.mapAction(engine.MapAction{Kind: engine.MapActionLeaveCity}))
		case "b", "B":
			if gs.InCityLocation() {
				return m.startTurn("Traveling...", m.mapAction(engine.MapAction{Kind: engine.MapActionReturnToCityMap}))
			}
		}
	}

	return m, nil
}

func (m Model) updateGridMap(gs *state.GameState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pos := *gs.PartyGridPosition

	var to content.Position
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.showMapModal = false
		return m, nil
	case tea.KeyUp:
		to = content.Position{X: pos.X, Y: pos.Y - 1}
	case tea.KeyDown:
		to = content.Position{X: pos.X, Y: pos.Y + 1}
	case tea.KeyLeft:
		to = content.Position{X: pos.X - 1, Y: pos.Y}
	case tea.KeyRight:
		to = content.Position{X: pos.X + 1, Y: pos.Y}
	default:
		return m, nil
	}

	gameMap, ok := gs.CurrentMap()
	if !ok || gameMap.Kind != content.MapKindGrid {
		m.showMapModal = false
		return m, nil
	}
	if _, ok := gameMap.Grid.TileAt(to); !ok {
		return m, nil
	}

	return m.startTurn("Traveling...", m.mapAction(engine.MapAction{
		Kind: engine.MapActionTravelGrid,
		To:   to,
	}))
}
