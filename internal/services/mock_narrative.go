package services

import (
	"context"
	"sync"

	"github.com/arcanedm/arcanedm/pkg/story"
)

// MockNarrativeService is a mock implementation of NarrativeService
// for testing.
type MockNarrativeService struct {
	GenerateStoryFunc      func(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error)
	GenerateSceneImageFunc func(ctx context.Context, prompt string) (string, error)
	SummarizeHistoryFunc   func(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error)
	RecommendationsFunc    func(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error)

	// Track calls for testing
	GenerateStoryCalls   []GenerateStoryCall
	SceneImageCalls      []string
	SummarizeCalls       []SummarizeCall
	RecommendationsCalls []RecommendationsCall

	mu sync.Mutex // protects all fields above
}

type GenerateStoryCall struct {
	History             []story.Entry
	CampaignType        story.CampaignType
	InstructionOverride string
}

type SummarizeCall struct {
	History      []story.Entry
	CampaignType story.CampaignType
}

type RecommendationsCall struct {
	Race    string
	Class   string
	Loyalty string
}

// NewMockNarrativeService creates a new mock narrative service.
func NewMockNarrativeService() *MockNarrativeService {
	return &MockNarrativeService{
		GenerateStoryCalls:   make([]GenerateStoryCall, 0),
		SceneImageCalls:      make([]string, 0),
		SummarizeCalls:       make([]SummarizeCall, 0),
		RecommendationsCalls: make([]RecommendationsCall, 0),
	}
}

// GenerateStory mocks story generation.
func (m *MockNarrativeService) GenerateStory(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error) {
	m.mu.Lock()
	recorded := make([]story.Entry, len(history))
	copy(recorded, history)
	m.GenerateStoryCalls = append(m.GenerateStoryCalls, GenerateStoryCall{
		History:             recorded,
		CampaignType:        campaignType,
		InstructionOverride: instructionOverride,
	})
	fn := m.GenerateStoryFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, history, campaignType, instructionOverride)
	}

	return &story.Response{
		Scene:            "Mock narration.",
		SummaryForImage:  "a mock scene",
		Ambiance:         "default",
		SuggestedActions: []string{"Continue."},
	}, nil
}

// GenerateSceneImage mocks image generation.
func (m *MockNarrativeService) GenerateSceneImage(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.SceneImageCalls = append(m.SceneImageCalls, prompt)
	fn := m.GenerateSceneImageFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return "data:image/jpeg;base64,bW9jaw==", nil
}

// SummarizeHistory mocks summarization.
func (m *MockNarrativeService) SummarizeHistory(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error) {
	m.mu.Lock()
	recorded := make([]story.Entry, len(history))
	copy(recorded, history)
	m.SummarizeCalls = append(m.SummarizeCalls, SummarizeCall{
		History:      recorded,
		CampaignType: campaignType,
	})
	fn := m.SummarizeHistoryFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, history, campaignType)
	}
	return "Mock summary of the story so far.", nil
}

// GenerateCharacterRecommendations mocks recommendation generation.
func (m *MockNarrativeService) GenerateCharacterRecommendations(ctx context.Context, race, class, loyalty string) (*story.Recommendation, error) {
	m.mu.Lock()
	m.RecommendationsCalls = append(m.RecommendationsCalls, RecommendationsCall{
		Race:    race,
		Class:   class,
		Loyalty: loyalty,
	})
	fn := m.RecommendationsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, race, class, loyalty)
	}
	return &story.Recommendation{
		SuggestedName:      "Mock the Tested",
		SuggestedBackstory: "A backstory written entirely by a test fixture.",
	}, nil
}

// Reset clears all call tracking.
func (m *MockNarrativeService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStoryCalls = make([]GenerateStoryCall, 0)
	m.SceneImageCalls = make([]string, 0)
	m.SummarizeCalls = make([]SummarizeCall, 0)
	m.RecommendationsCalls = make([]RecommendationsCall, 0)
}

// SetGenerateStoryError sets up the mock to fail story generation.
func (m *MockNarrativeService) SetGenerateStoryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStoryFunc = func(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error) {
		return nil, err
	}
}

// SetGenerateStoryResponse sets up the mock to return a fixed response.
func (m *MockNarrativeService) SetGenerateStoryResponse(resp *story.Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateStoryFunc = func(ctx context.Context, history []story.Entry, campaignType story.CampaignType, instructionOverride string) (*story.Response, error) {
		return resp, nil
	}
}

// SetSummarizeError sets up the mock to fail summarization.
func (m *MockNarrativeService) SetSummarizeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummarizeHistoryFunc = func(ctx context.Context, history []story.Entry, campaignType story.CampaignType) (string, error) {
		return "", err
	}
}
