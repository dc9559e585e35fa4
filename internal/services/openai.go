package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arcanedm/arcanedm/pkg/prompts"
	"github.com/arcanedm/arcanedm/pkg/story"
)

const openAIStoryModel = openai.GPT4o

// OpenAIService implements NarrativeService using the OpenAI chat
// completions API and DALL-E 3 for scene illustrations.
type OpenAIService struct {
	client    *openai.Client
	modelName string
	logger    *slog.Logger
}

// NewOpenAIService creates an OpenAI-backed narrative service.
func NewOpenAIService(apiKey string, logger *slog.Logger) *OpenAIService {
	return &OpenAIService{
		client:    openai.NewClient(apiKey),
		modelName: openAIStoryModel,
		logger:    logger,
	}
}

// openAIRole maps a story entry kind to a chat completion role. Info
// entries travel as system messages so the model reads them as
// out-of-band notices rather than narration to imitate.
func openAIRole(kind story.EntryKind) string {
	switch kind {
	case story.EntryPlayer:
		return openai.ChatMessageRoleUser
	case story.EntryDM:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleSystem
	}
}

func buildOpenAIMessages(instruction string, history []story.Entry) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: instruction,
	})
	for _, e := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openAIRole(e.Kind),
			Content: e.Text,
		})
	}
	return messages
}

// mapOpenAIError converts quota rejections to ErrRateLimited and wraps
// everything else.
func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return fmt.Errorf("openai request failed: %w", err)
}

// GenerateStory produces the next structured story turn.
func (o *OpenAIService) GenerateStory(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error) {
	instruction := prompts.StoryInstruction(campaignType, instructionOverride)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.modelName,
		Messages: buildOpenAIMessages(instruction, history),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from API")
	}

	var storyResp story.Response
	if err := json.Unmarshal([]byte(cleanJSONPayload(resp.Choices[0].Message.Content)), &storyResp); err != nil {
		o.logger.Warn("Unparseable story payload, using fallback", "error", err)
		return story.Fallback(), nil
	}

	return &storyResp, nil
}

// SummarizeHistory condenses the story so far into a recap paragraph.
// The first entry (the character roster prompt) is excluded.
func (o *OpenAIService) SummarizeHistory(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error) {
	if len(history) > 0 {
		history = history[1:]
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.modelName,
		Messages: buildOpenAIMessages(prompts.SummarizeInstruction(campaignType), history),
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty summary returned")
	}

	return summary, nil
}

// GenerateSceneImage renders a scene illustration with DALL-E 3 and
// returns its URL.
func (o *OpenAIService) GenerateSceneImage(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("image prompt is empty")
	}

	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         fmt.Sprintf(imagePromptWrapper, prompt),
		Model:          openai.CreateImageModelDallE3,
		Size:           openai.CreateImageSize1792x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image returned")
	}

	return resp.Data[0].URL, nil
}

// GenerateCharacterRecommendations suggests a name and backstory for a
// character concept.
func (o *OpenAIService) GenerateCharacterRecommendations(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.Recommendation},
			{Role: openai.ChatMessageRoleUser, Content: prompts.RecommendationPrompt(race, class, loyalty)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from API")
	}

	var rec story.Recommendation
	if err := json.Unmarshal([]byte(cleanJSONPayload(resp.Choices[0].Message.Content)), &rec); err != nil {
		o.logger.Warn("Unparseable recommendation payload, using fallback", "error", err)
		return story.FallbackRecommendation(), nil
	}
	if rec.SuggestedName == "" {
		return story.FallbackRecommendation(), nil
	}

	return &rec, nil
}
