package services

import (
	"context"
	"errors"
	"strings"

	"github.com/arcanedm/arcanedm/pkg/story"
)

// ErrRateLimited is returned when the narrative backend rejects a
// request because of quota. Callers surface it as an in-story notice
// instead of a generic error.
var ErrRateLimited = errors.New("narrative backend rate limited")

// NarrativeService abstracts the LLM backend that narrates the
// campaign. Implementations exist for Gemini and OpenAI, plus a mock
// for testing.
type NarrativeService interface {
	// GenerateStory produces the next structured turn from the story
	// history. instructionOverride replaces the normal tone
	// instruction when the engine synthesizes a turn (exploration
	// moves, city transitions).
	GenerateStory(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error)

	// GenerateSceneImage renders an illustration for the scene and
	// returns a displayable image reference (data URL or https URL).
	GenerateSceneImage(ctx context.Context, prompt string) (string, error)

	// SummarizeHistory condenses story entries into a recap paragraph.
	SummarizeHistory(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error)

	// GenerateCharacterRecommendations suggests a name and backstory
	// for a character concept.
	GenerateCharacterRecommendations(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error)
}

// imagePromptWrapper frames scene summaries as a consistent art
// direction before they reach the image model.
const imagePromptWrapper = "Epic fantasy digital painting, %s, highly detailed, dramatic lighting, intricate, artstation trending."

// cleanJSONPayload strips markdown fences and leading prose that
// models sometimes wrap around JSON output.
func cleanJSONPayload(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		lines := strings.Split(s, "\n")
		start := 0
		if strings.HasPrefix(lines[0], "```") {
			start = 1
		}
		end := len(lines)
		for i := len(lines) - 1; i > 0; i-- {
			if strings.HasPrefix(lines[i], "```") {
				end = i
				break
			}
		}
		if start < end {
			s = strings.Join(lines[start:end], "\n")
		}
	}

	if !strings.HasPrefix(strings.TrimSpace(s), "{") {
		if idx := strings.Index(s, "{"); idx >= 0 {
			s = s[idx:]
		}
	}

	return strings.TrimSpace(s)
}
