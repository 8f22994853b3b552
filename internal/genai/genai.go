// Package genai provides text generation clients backed by the OpenAI and Gemini APIs.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Default generation parameters.
const (
	DefaultOpenAIModel = openai.ChatModelGPT4oMini
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 700
)

var (
	// ErrNoChoicesReturned is returned when the API answers without any completion choice.
	ErrNoChoicesReturned = errors.New("no choices returned")
	// ErrEmptyContent is returned when the model produced only whitespace.
	ErrEmptyContent = errors.New("empty content returned")
	// ErrMissingAPIKey is returned by constructors when no API key is configured.
	ErrMissingAPIKey = errors.New("API key not set")
)

// Provider generates free text from a system instruction and a user message.
type Provider interface {
	GeneratePromptWithContext(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// chatService defines minimal interface for chat completions.
type chatService interface {
	Create(ctx context.Context, params openai.ChatCompletionNewParams) (openai.ChatCompletion, error)
}

// completionsAdapter adapts the SDK completions service, which returns a pointer, to chatService.
type completionsAdapter struct {
	svc *openai.ChatCompletionService
}

func (a completionsAdapter) Create(ctx context.Context, params openai.ChatCompletionNewParams) (openai.ChatCompletion, error) {
	resp, err := a.svc.New(ctx, params)
	if err != nil {
		return openai.ChatCompletion{}, err
	}
	return *resp, nil
}

// Opts holds configuration for the generation clients.
type Opts struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	DebugMode   bool   // write every request and response to StateDir/debug
	StateDir    string // directory for debug logs
}

// Option defines a functional option for configuring the clients.
type Option func(*Opts)

// WithAPIKey sets the provider API key.
func WithAPIKey(key string) Option {
	return func(o *Opts) { o.APIKey = key }
}

// WithModel overrides the default model name.
func WithModel(model string) Option {
	return func(o *Opts) { o.Model = model }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *Opts) { o.Temperature = t }
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(o *Opts) { o.MaxTokens = n }
}

// WithDebugMode enables request/response dumps under stateDir/debug.
func WithDebugMode(enabled bool, stateDir string) Option {
	return func(o *Opts) {
		o.DebugMode = enabled
		o.StateDir = stateDir
	}
}

func applyOpts(opts []Option) Opts {
	cfg := Opts{Temperature: DefaultTemperature, MaxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Client wraps the OpenAI chat completion service.
type Client struct {
	chat        chatService
	model       string
	temperature float64
	maxTokens   int
	debugMode   bool
	stateDir    string
}

// NewClient initializes an OpenAI client. The API key comes from WithAPIKey or OPENAI_API_KEY.
func NewClient(opts ...Option) (*Client, error) {
	cfg := applyOpts(opts)
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY: %w", ErrMissingAPIKey)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	slog.Debug("genai.NewClient: OpenAI client created", "model", model, "temperature", cfg.Temperature)
	return &Client{
		chat:        completionsAdapter{svc: &cli.Chat.Completions},
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		debugMode:   cfg.DebugMode,
		stateDir:    cfg.StateDir,
	}, nil
}

// GeneratePrompt generates a response with a background context.
func (c *Client) GeneratePrompt(systemPrompt, userPrompt string) (string, error) {
	return c.GeneratePromptWithContext(context.Background(), systemPrompt, userPrompt)
}

// GeneratePromptWithContext sends one system and one user message and returns the first choice.
func (c *Client) GeneratePromptWithContext(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.maxTokens))
	}

	start := time.Now()
	resp, err := c.chat.Create(ctx, params)
	if err != nil {
		slog.Error("Client.GeneratePromptWithContext: completion failed", "error", err, "model", c.model)
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		slog.Warn("Client.GeneratePromptWithContext: no choices", "model", c.model)
		return "", ErrNoChoicesReturned
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.writeDebugLog("GeneratePromptWithContext", systemPrompt, userPrompt, content)
	if content == "" {
		return "", ErrEmptyContent
	}
	slog.Debug("Client.GeneratePromptWithContext: completion received", "model", c.model, "chars", len(content), "elapsed", time.Since(start))
	return content, nil
}

// debugEntry is one request/response dump.
type debugEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Method    string            `json:"method"`
	Model     string            `json:"model"`
	Params    map[string]string `json:"params"`
	Response  string            `json:"response"`
}

func (c *Client) writeDebugLog(method, systemPrompt, userPrompt, response string) {
	if !c.debugMode || c.stateDir == "" {
		return
	}
	writeDebugEntry(c.stateDir, debugEntry{
		Timestamp: time.Now(),
		Method:    method,
		Model:     c.model,
		Params:    map[string]string{"system": systemPrompt, "user": userPrompt},
		Response:  response,
	})
}

// writeDebugEntry stores entry as a JSON file. Failures are logged and otherwise ignored.
func writeDebugEntry(stateDir string, entry debugEntry) {
	dir := filepath.Join(stateDir, "debug")
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Warn("genai debug log: mkdir failed", "error", err, "dir", dir)
		return
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		slog.Warn("genai debug log: marshal failed", "error", err)
		return
	}
	name := fmt.Sprintf("%s_%s.json", entry.Timestamp.Format("20060102T150405.000000000"), entry.Method)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		slog.Warn("genai debug log: write failed", "error", err)
	}
}
