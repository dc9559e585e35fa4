package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arcanedm/arcanedm/pkg/story"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newGeminiTestServer returns a service pointed at a stub backend. The
// handler receives the decoded generateContent request.
func newGeminiTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest)) (*GeminiService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GeminiGenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		handler(w, r, req)
	}))
	t.Cleanup(srv.Close)

	svc := NewGeminiService("test-key", testLogger())
	svc.baseURL = srv.URL
	return svc, srv
}

func candidateBody(text string) string {
	body, _ := json.Marshal(GeminiGenerateResponse{
		Candidates: []struct {
			Content GeminiContent `json:"content"`
		}{
			{Content: GeminiContent{Role: "model", Parts: []GeminiPart{{Text: text}}}},
		},
	})
	return string(body)
}

func TestGeminiRoleMapping(t *testing.T) {
	tests := []struct {
		kind story.EntryKind
		want string
	}{
		{story.EntryPlayer, "user"},
		{story.EntryDM, "model"},
		{story.EntryInfo, "model"},
	}
	for _, tc := range tests {
		if got := geminiRole(tc.kind); got != tc.want {
			t.Errorf("geminiRole(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestGeminiGenerateStory(t *testing.T) {
	payload := `{"scene":"The tavern hushes.","summaryForImage":"a hushed tavern","ambiance":"tavern","isGameOver":false,"suggestedActions":["Listen.","Do something else..."]}`

	var captured GeminiGenerateRequest
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		captured = req
		_, _ = w.Write([]byte(candidateBody(payload)))
	})

	history := []story.Entry{
		{Kind: story.EntryPlayer, Text: "I enter the tavern."},
		{Kind: story.EntryDM, Text: "The door creaks open."},
		{Kind: story.EntryInfo, Text: "The party attempts a stealth check (DC 10). Rolled a d20: 14."},
	}

	resp, err := svc.GenerateStory(context.Background(), history, story.CampaignNormal, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Scene != "The tavern hushes." {
		t.Errorf("unexpected scene %q", resp.Scene)
	}
	if resp.Ambiance != "tavern" {
		t.Errorf("unexpected ambiance %q", resp.Ambiance)
	}

	if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Error("story requests must ask for JSON output")
	}
	if captured.SystemInstruction == nil || len(captured.SystemInstruction.Parts) == 0 {
		t.Fatal("missing system instruction")
	}
	if len(captured.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(captured.Contents))
	}
	wantRoles := []string{"user", "model", "model"}
	for i, want := range wantRoles {
		if captured.Contents[i].Role != want {
			t.Errorf("content %d role = %q, want %q", i, captured.Contents[i].Role, want)
		}
	}
}

func TestGeminiGenerateStoryOverrideInstruction(t *testing.T) {
	var captured GeminiGenerateRequest
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		captured = req
		_, _ = w.Write([]byte(candidateBody(`{"scene":"x","summaryForImage":"y","ambiance":"default","suggestedActions":[]}`)))
	})

	override := "Narrate one step of wilderness travel."
	if _, err := svc.GenerateStory(context.Background(), nil, story.CampaignFamily, override); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.SystemInstruction.Parts[0].Text != override {
		t.Error("instruction override must replace the tone instruction")
	}
}

func TestGeminiGenerateStoryFallbackOnGarbage(t *testing.T) {
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		_, _ = w.Write([]byte(candidateBody("The dragon roars, but I forgot the JSON.")))
	})

	resp, err := svc.GenerateStory(context.Background(), nil, story.CampaignNormal, "")
	if err != nil {
		t.Fatalf("garbled payloads must not surface an error, got %v", err)
	}
	want := story.Fallback()
	if resp.Scene != want.Scene {
		t.Errorf("expected fallback scene, got %q", resp.Scene)
	}
}

func TestGeminiGenerateStoryMarkdownFences(t *testing.T) {
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		_, _ = w.Write([]byte(candidateBody("```json\n{\"scene\":\"Fenced.\",\"summaryForImage\":\"x\",\"ambiance\":\"default\",\"suggestedActions\":[]}\n```")))
	})

	resp, err := svc.GenerateStory(context.Background(), nil, story.CampaignNormal, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Scene != "Fenced." {
		t.Errorf("expected fenced JSON to parse, got scene %q", resp.Scene)
	}
}

func TestGeminiRateLimited(t *testing.T) {
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	})

	_, err := svc.GenerateStory(context.Background(), nil, story.CampaignNormal, "")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestGeminiSummarizeHistory(t *testing.T) {
	var captured GeminiGenerateRequest
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		captured = req
		_, _ = w.Write([]byte(candidateBody("  The party met in a tavern and took a job.\n")))
	})

	history := []story.Entry{
		{Kind: story.EntryPlayer, Text: "roster prompt"},
		{Kind: story.EntryDM, Text: "Narration one."},
		{Kind: story.EntryPlayer, Text: "I look around."},
	}

	summary, err := svc.SummarizeHistory(context.Background(), history, story.CampaignNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "The party met in a tavern and took a job." {
		t.Errorf("unexpected summary %q", summary)
	}

	// The roster prompt is not part of the recap material.
	if len(captured.Contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(captured.Contents))
	}
	if captured.Contents[0].Parts[0].Text != "Narration one." {
		t.Error("first history entry must be excluded from summarization")
	}
	if captured.GenerationConfig != nil {
		t.Error("summaries are plain text, not JSON")
	}
}

func TestGeminiSummarizeErrorPropagates(t *testing.T) {
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom"}}`))
	})

	_, err := svc.SummarizeHistory(context.Background(), []story.Entry{{Kind: story.EntryPlayer, Text: "x"}}, story.CampaignNormal)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGeminiGenerateSceneImage(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GeminiPredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Instances) != 1 {
			t.Fatalf("expected 1 instance, got %d", len(req.Instances))
		}
		gotPrompt = req.Instances[0].Prompt
		if req.Parameters.AspectRatio != "16:9" {
			t.Errorf("unexpected aspect ratio %q", req.Parameters.AspectRatio)
		}
		_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"aW1n"}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("test-key", testLogger())
	svc.baseURL = srv.URL

	url, err := svc.GenerateSceneImage(context.Background(), "a misty forest road")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "data:image/jpeg;base64,aW1n" {
		t.Errorf("unexpected image URL %q", url)
	}
	if !strings.Contains(gotPrompt, "a misty forest road") || !strings.HasPrefix(gotPrompt, "Epic fantasy digital painting") {
		t.Errorf("prompt not wrapped in art direction: %q", gotPrompt)
	}
}

func TestGeminiGenerateSceneImageEmptyPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty prompt")
	}))
	defer srv.Close()

	svc := NewGeminiService("test-key", testLogger())
	svc.baseURL = srv.URL

	if _, err := svc.GenerateSceneImage(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for an empty prompt")
	}
}

func TestGeminiRecommendationsFallback(t *testing.T) {
	svc, _ := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request, req GeminiGenerateRequest) {
		_, _ = w.Write([]byte(candidateBody("not json at all")))
	})

	rec, err := svc.GenerateCharacterRecommendations(context.Background(), "Elf", "Ranger", "The Wildwood Pact")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.SuggestedName != "Aleron the Lost" {
		t.Errorf("expected fallback recommendation, got %q", rec.SuggestedName)
	}
}

func TestCleanJSONPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here you go:\n{\"a\":1}", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanJSONPayload(tc.input); got != tc.want {
				t.Errorf("cleanJSONPayload(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
