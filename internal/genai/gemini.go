package genai

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	googlegenai "google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured for the Gemini provider.
const DefaultGeminiModel = "gemini-2.5-flash"

// contentService is the subset of the Gemini models API used here.
type contentService interface {
	GenerateContent(ctx context.Context, model string, contents []*googlegenai.Content, config *googlegenai.GenerateContentConfig) (*googlegenai.GenerateContentResponse, error)
}

// GeminiClient generates text with Google's Gemini API.
type GeminiClient struct {
	models      contentService
	model       string
	temperature float32
	maxTokens   int32
	debugMode   bool
	stateDir    string
}

// NewGeminiClient creates a Gemini client. The API key comes from WithAPIKey or GEMINI_API_KEY.
func NewGeminiClient(ctx context.Context, opts ...Option) (*GeminiClient, error) {
	cfg := applyOpts(opts)
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY: %w", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := googlegenai.NewClient(ctx, &googlegenai.ClientConfig{
		APIKey:  apiKey,
		Backend: googlegenai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	slog.Debug("genai.NewGeminiClient: Gemini client created", "model", model)
	return &GeminiClient{
		models:      client.Models,
		model:       model,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens),
		debugMode:   cfg.DebugMode,
		stateDir:    cfg.StateDir,
	}, nil
}

// GeneratePromptWithContext sends the system instruction and user text and returns the response text.
func (g *GeminiClient) GeneratePromptWithContext(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := g.temperature
	config := &googlegenai.GenerateContentConfig{
		SystemInstruction: googlegenai.NewContentFromText(systemPrompt, googlegenai.RoleUser),
		Temperature:       &temperature,
	}
	if g.maxTokens > 0 {
		config.MaxOutputTokens = g.maxTokens
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, googlegenai.Text(userPrompt), config)
	if err != nil {
		slog.Error("GeminiClient.GeneratePromptWithContext: generation failed", "error", err, "model", g.model)
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoChoicesReturned
	}
	content := strings.TrimSpace(resp.Text())
	if g.debugMode && g.stateDir != "" {
		writeDebugEntry(g.stateDir, debugEntry{
			Timestamp: time.Now(),
			Method:    "GeneratePromptWithContext",
			Model:     g.model,
			Params:    map[string]string{"system": systemPrompt, "user": userPrompt},
			Response:  content,
		})
	}
	if content == "" {
		return "", ErrEmptyContent
	}
	slog.Debug("GeminiClient.GeneratePromptWithContext: content received", "model", g.model, "chars", len(content), "elapsed", time.Since(start))
	return content, nil
}
