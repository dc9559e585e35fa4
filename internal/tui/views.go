package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/arcanedm/arcanedm/pkg/content"
	"github.com/arcanedm/arcanedm/pkg/party"
	"github.com/arcanedm/arcanedm/pkg/state"
	"github.com/arcanedm/arcanedm/pkg/story"
)

var progressFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showCampaignModal {
		return m.centerModal(m.renderCampaignModal())
	}
	if m.showToneModal {
		return m.centerModal(m.renderToneModal())
	}
	if m.showQuitModal {
		return m.centerModal(m.renderQuitModal())
	}
	if m.showMapModal {
		return m.centerModal(m.renderMapModal())
	}

	storyWidth := int(float64(m.width) * 0.68)
	sideWidth := m.width - storyWidth - 2

	storyPanel := storyPanelStyle.Width(storyWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyViewport.View(),
			separatorStyle.Render(strings.Repeat("─", storyWidth-4)),
			m.renderInputArea(),
		),
	)
	sidePanel := sidePanelStyle.Width(sideWidth).Render(m.renderSidebar(sideWidth - 3))

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, sidePanel)
}

func (m Model) centerModal(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderInputArea() string {
	gs := m.engine.State()
	if gs != nil && gs.IsGameOver {
		return errorStyle.Render("The campaign has ended. Press Esc to quit.")
	}
	if gs != nil && gs.HasPendingSkillCheck() && !m.loading {
		return m.renderSkillCheckPrompt(gs.SkillCheck)
	}
	if m.loading {
		frame := progressFrames[m.progressTick%len(progressFrames)]
		return loadingStyle.Render(fmt.Sprintf("%s %s", frame, m.loadingText))
	}
	return m.textarea.View()
}

func (m Model) renderSkillCheckPrompt(check *story.SkillCheck) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Skill check: %s (DC %d)", check.Skill, check.DifficultyClass)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Enter your d20 roll and press Enter, or press R to roll: %s", m.rollInput))
	if m.rollError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.rollError))
	}
	return b.String()
}

// writeStoryContent re-renders the full story log into the viewport.
// Called on every state change.
func (m *Model) writeStoryContent() {
	gs := m.engine.State()
	if gs == nil {
		m.storyViewport.SetContent("")
		return
	}

	width := m.storyViewport.Width
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, line := range storyLines(gs, width) {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if gs.ReadableContent != nil {
		b.WriteString(renderReadable(gs.ReadableContent, width))
		b.WriteString("\n\n")
	}
	if len(gs.ShopInventory) > 0 {
		b.WriteString(renderShop(gs.ShopInventory, gs.PartyGold))
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(wordwrap.String(m.notice, width))
		b.WriteString("\n\n")
	}

	m.storyViewport.SetContent(b.String())
}

// storyLines formats the visible history. The first entry is the
// synthesized roster prompt and never shown.
func storyLines(gs *state.GameState, width int) []string {
	var lines []string
	for i, entry := range gs.StoryHistory {
		if i == 0 {
			continue
		}
		lines = append(lines, formatEntry(entry, width))
	}
	return lines
}

func formatEntry(entry story.Entry, width int) string {
	wrapped := wordwrap.String(entry.Text, width)
	switch entry.Kind {
	case story.EntryPlayer:
		return playerStyle.Render("> " + wrapped)
	case story.EntryInfo:
		return infoStyle.Render(wrapped)
	default:
		return dmStyle.Render(wrapped)
	}
}

func renderReadable(r *story.Readable, width int) string {
	title := titleStyle.Render(r.Title)
	body := infoStyle.Render(wordwrap.String(r.Text, width))
	return title + "\n" + body
}

func renderShop(items []story.ShopItem, gold int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("For sale"))
	b.WriteString(goldStyle.Render(fmt.Sprintf("  (you have %d gold)", gold)))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("\n  %s — %s", item.Name, item.Cost))
	}
	return b.String()
}

// Sidebar.

func (m Model) renderSidebar(width int) string {
	gs := m.engine.State()
	if gs == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(gs.Name))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(gs.ID.String()))
	b.WriteString("\n\n")

	b.WriteString(goldStyle.Render(fmt.Sprintf("Gold: %d", gs.PartyGold)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Movement: %d", gs.MovementPoints))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Location: %s", locationLabel(gs)))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(fmt.Sprintf("Track: %s", content.TrackFor(gs.Ambiance))))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Party"))
	for _, line := range partyLines(gs.CharacterProfiles) {
		b.WriteString("\n  " + line)
	}

	if len(gs.SuggestedActions) > 0 && !gs.IsGameOver {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Suggestions"))
		for i, action := range gs.SuggestedActions {
			b.WriteString("\n")
			b.WriteString(wordwrap.String(fmt.Sprintf("%d. %s", i+1, action), width))
		}
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("Use /act <n> to take one."))
	}

	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("/help for commands"))
	return b.String()
}

// partyLines renders one sidebar line per party member, with HP and AC
// taken from the character's d20 actor.
func partyLines(profiles []party.CharacterProfile) []string {
	lines := make([]string, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		line := fmt.Sprintf("%s (%s %s)", p.Name, p.Race.Name, p.Class.Name)
		if actor, err := p.BuildActor(); err == nil {
			line += promptStyle.Render(fmt.Sprintf("  HP %d  AC %d", actor.MaxHP(), actor.AC()))
		}
		lines = append(lines, line)
	}
	return lines
}

// locationLabel describes where the party is, for the sidebar.
func locationLabel(gs *state.GameState) string {
	gameMap, ok := gs.CurrentMap()
	if !ok {
		return gs.CurrentMapID
	}
	switch {
	case gs.OnGrid():
		p := *gs.PartyGridPosition
		return fmt.Sprintf("%s (%d,%d)", gameMap.Name, p.X, p.Y)
	case gs.InCityLocation():
		if gameMap.Kind == content.MapKindCity {
			if loc, ok := gameMap.City.Location(gs.CurrentCityLocationID); ok {
				return fmt.Sprintf("%s, %s", loc.Name, gameMap.Name)
			}
		}
		return gameMap.Name
	default:
		return fmt.Sprintf("Streets of %s", gameMap.Name)
	}
}

// Modals.

func (m Model) renderCampaignModal() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("ArcaneDM"))
	b.WriteString("\n\n")

	if m.loadingCampaigns {
		b.WriteString(loadingStyle.Render("Looking for saved campaigns..."))
		return modalStyle.Render(b.String())
	}
	if m.loading {
		frame := progressFrames[m.progressTick%len(progressFrames)]
		b.WriteString(loadingStyle.Render(frame + " Gathering the party..."))
		return modalStyle.Render(b.String())
	}

	for i, c := range m.campaigns {
		label := fmt.Sprintf("%s  (%s)", c.Name, c.LastUpdated.Format("Jan 2 15:04"))
		b.WriteString(renderModalItem(label, i == m.selectedCampaign))
		b.WriteString("\n")
	}
	b.WriteString(renderModalItem(newCampaignOption, m.selectedCampaign == len(m.campaigns)))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("↑/↓ to choose, Enter to confirm, Esc to quit"))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	return modalStyle.Render(b.String())
}

func (m Model) renderToneModal() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Choose a tone"))
	b.WriteString("\n\n")

	if m.loading {
		frame := progressFrames[m.progressTick%len(progressFrames)]
		b.WriteString(loadingStyle.Render(frame + " The Dungeon Master prepares the opening scene..."))
		return modalStyle.Render(b.String())
	}

	b.WriteString(renderModalItem("Normal — classic fantasy peril", m.selectedTone == 0))
	b.WriteString("\n")
	b.WriteString(renderModalItem("Family — lighter themes, gentle language", m.selectedTone == 1))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("↑/↓ to choose, Enter to begin, Esc to go back"))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	return modalStyle.Render(b.String())
}

func (m Model) renderQuitModal() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Leave the table?"))
	b.WriteString("\n\n")
	b.WriteString("The campaign is saved after every turn.\n\n")
	b.WriteString(promptStyle.Render("y/Enter to quit, n to stay"))
	return modalStyle.Render(b.String())
}

func (m Model) renderMapModal() string {
	gs := m.engine.State()
	if gs == nil {
		return modalStyle.Render("No campaign.")
	}
	gameMap, ok := gs.CurrentMap()
	if !ok {
		return modalStyle.Render("Unknown map.")
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(gameMap.Name))
	b.WriteString("\n\n")

	if m.loading {
		frame := progressFrames[m.progressTick%len(progressFrames)]
		b.WriteString(loadingStyle.Render(frame + " Traveling..."))
		return modalStyle.Render(b.String())
	}

	switch gameMap.Kind {
	case content.MapKindGrid:
		for _, line := range gridLines(gameMap.Grid, gs) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("Arrow keys to move, Esc to close"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Movement points: %d", gs.MovementPoints))

	case content.MapKindCity:
		for i, loc := range gameMap.City.Locations {
			label := fmt.Sprintf("%s %s", loc.Icon, loc.Name)
			if loc.ID == gs.CurrentCityLocationID {
				label += "  (here)"
			}
			b.WriteString(renderModalItem(label, i == m.selectedLocation))
			b.WriteString("\n")
		}
		if len(gs.RevealedMapIDs) > 0 {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render("Known maps"))
			for _, id := range gs.RevealedMapIDs {
				if revealed, ok := content.LookupMap(id); ok {
					b.WriteString("\n  " + revealed.Name)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("Enter to travel, L to leave the city"))
		if gs.InCityLocation() {
			b.WriteString(promptStyle.Render(", B back to the streets"))
		}
		b.WriteString(promptStyle.Render(", Esc to close"))
	}

	return modalStyle.Render(b.String())
}

func renderModalItem(label string, selected bool) string {
	if selected {
		return modalSelectedItemStyle.Render("▸ " + label)
	}
	return modalItemStyle.Render("  " + label)
}

const fogGlyph = "·"

// gridLines renders the wilderness grid with fog of war. Only visited
// tiles and the party marker are drawn with their icons.
func gridLines(grid *content.GridMap, gs *state.GameState) []string {
	lines := make([]string, 0, len(grid.Tiles))
	for y, row := range grid.Tiles {
		var b strings.Builder
		for x, tile := range row {
			pos := content.Position{X: x, Y: y}
			switch {
			case gs.PartyGridPosition != nil && *gs.PartyGridPosition == pos:
				b.WriteString(titleStyle.Render("@"))
			case gs.VisitedTiles[state.TileKey(pos)]:
				b.WriteString(tile.Icon)
			default:
				b.WriteString(fogStyle.Render(fogGlyph))
			}
			b.WriteString(" ")
		}
		lines = append(lines, b.String())
	}
	return lines
}
