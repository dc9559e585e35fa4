package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arcanedm/arcanedm/pkg/prompts"
	"github.com/arcanedm/arcanedm/pkg/story"
)

const (
	geminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	geminiStoryModel = "gemini-2.5-flash"
	geminiImageModel = "imagen-3.0-generate-002"
)

// GeminiService implements NarrativeService using Google's Gemini API
// for narration and Imagen for scene illustrations.
type GeminiService struct {
	apiKey     string
	modelName  string
	imageModel string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// GeminiPart is a single content part in a Gemini request or response.
type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiContent is a role-attributed message in a Gemini conversation.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiGenerationConfig carries the subset of generation parameters
// the client uses.
type GeminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// GeminiGenerateRequest is the request body for generateContent.
type GeminiGenerateRequest struct {
	SystemInstruction *GeminiContent          `json:"system_instruction,omitempty"`
	Contents          []GeminiContent         `json:"contents"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiGenerateResponse is the response body for generateContent.
type GeminiGenerateResponse struct {
	Candidates []struct {
		Content GeminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GeminiPredictRequest is the request body for Imagen predict.
type GeminiPredictRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
	Parameters struct {
		SampleCount    int    `json:"sampleCount"`
		AspectRatio    string `json:"aspectRatio,omitempty"`
		OutputMIMEType string `json:"outputMimeType,omitempty"`
	} `json:"parameters"`
}

// GeminiPredictResponse is the response body for Imagen predict.
type GeminiPredictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGeminiService creates a Gemini-backed narrative service.
func NewGeminiService(apiKey string, logger *slog.Logger) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		modelName:  geminiStoryModel,
		imageModel: geminiImageModel,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

// geminiRole maps a story entry kind to a Gemini conversation role.
// Info entries are attributed to the model so the backend treats
// engine notices (rolls, recaps) as part of its own narration.
func geminiRole(kind story.EntryKind) string {
	if kind == story.EntryPlayer {
		return "user"
	}
	return "model"
}

func buildGeminiContents(history []story.Entry) []GeminiContent {
	contents := make([]GeminiContent, 0, len(history))
	for _, e := range history {
		contents = append(contents, GeminiContent{
			Role:  geminiRole(e.Kind),
			Parts: []GeminiPart{{Text: e.Text}},
		})
	}
	return contents
}

// generateContent posts a generateContent request and returns the
// first candidate's text.
func (g *GeminiService) generateContent(ctx context.Context, req GeminiGenerateRequest) (string, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.modelName)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiGenerateResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		if geminiResp.Error.Code == http.StatusTooManyRequests {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}

	var responseText string
	for _, candidate := range geminiResp.Candidates {
		for _, part := range candidate.Content.Parts {
			responseText += part.Text
		}
		break
	}

	return responseText, nil
}

// GenerateStory produces the next structured story turn.
func (g *GeminiService) GenerateStory(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error) {
	instruction := prompts.StoryInstruction(campaignType, instructionOverride)

	req := GeminiGenerateRequest{
		SystemInstruction: &GeminiContent{
			Parts: []GeminiPart{{Text: instruction}},
		},
		Contents: buildGeminiContents(history),
		GenerationConfig: &GeminiGenerationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	text, err := g.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	var storyResp story.Response
	if err := json.Unmarshal([]byte(cleanJSONPayload(text)), &storyResp); err != nil {
		g.logger.Warn("Unparseable story payload, using fallback", "error", err)
		return story.Fallback(), nil
	}

	return &storyResp, nil
}

// SummarizeHistory condenses the story so far into a recap paragraph.
// The first entry (the character roster prompt) is excluded.
func (g *GeminiService) SummarizeHistory(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error) {
	if len(history) > 0 {
		history = history[1:]
	}

	req := GeminiGenerateRequest{
		SystemInstruction: &GeminiContent{
			Parts: []GeminiPart{{Text: prompts.SummarizeInstruction(campaignType)}},
		},
		Contents: buildGeminiContents(history),
	}

	text, err := g.generateContent(ctx, req)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty summary returned")
	}

	return strings.TrimSpace(text), nil
}

// GenerateSceneImage renders a scene illustration with Imagen and
// returns it as a JPEG data URL.
func (g *GeminiService) GenerateSceneImage(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("image prompt is empty")
	}

	var req GeminiPredictRequest
	req.Instances = []struct {
		Prompt string `json:"prompt"`
	}{{Prompt: fmt.Sprintf(imagePromptWrapper, prompt)}}
	req.Parameters.SampleCount = 1
	req.Parameters.AspectRatio = "16:9"
	req.Parameters.OutputMIMEType = "image/jpeg"

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:predict", g.baseURL, g.imageModel)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var predictResp GeminiPredictResponse
	if err := json.Unmarshal(body, &predictResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if predictResp.Error != nil {
		return "", fmt.Errorf("API error: %s", predictResp.Error.Message)
	}
	if len(predictResp.Predictions) == 0 || predictResp.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("no image returned")
	}

	return "data:image/jpeg;base64," + predictResp.Predictions[0].BytesBase64Encoded, nil
}

// GenerateCharacterRecommendations suggests a name and backstory for a
// character concept.
func (g *GeminiService) GenerateCharacterRecommendations(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error) {
	req := GeminiGenerateRequest{
		SystemInstruction: &GeminiContent{
			Parts: []GeminiPart{{Text: prompts.Recommendation}},
		},
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: prompts.RecommendationPrompt(race, class, loyalty)}},
			},
		},
		GenerationConfig: &GeminiGenerationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	text, err := g.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	var rec story.Recommendation
	if err := json.Unmarshal([]byte(cleanJSONPayload(text)), &rec); err != nil {
		g.logger.Warn("Unparseable recommendation payload, using fallback", "error", err)
		return story.FallbackRecommendation(), nil
	}
	if rec.SuggestedName == "" {
		return story.FallbackRecommendation(), nil
	}

	return &rec, nil
}
