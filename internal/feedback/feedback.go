// Package feedback turns coaching requests into text using a generation provider.
//
// Generation never fails from the caller's point of view: any provider error, timeout or empty
// answer is replaced by the localized feedback_unavailable sentinel.
package feedback

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/genai"
	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 45 * time.Second

// Mode selects the task instruction sent to the provider.
type Mode string

const (
	ModeDiagnose    Mode = "diagnose"
	ModeImprove     Mode = "improve"
	ModeAffirmation Mode = "affirmation"
)

// TradeBundle is the structured postrade input.
type TradeBundle struct {
	Description string
	Emotion     string
	Actions     string
}

// ProfileContext is the profile data included with every request.
type ProfileContext struct {
	Goal                string
	Fear                string
	InconsistencyReason *string
	TodaysPlan          string // optional; set for eod and the pretrade action plan
}

// Request describes one generation call.
type Request struct {
	Locale   models.Locale
	Persona  models.Persona
	Mode     Mode
	Scenario string // catalog key describing the situation, e.g. i18n.KeyScenarioEOD
	Answer   string
	Bundle   *TradeBundle // replaces Answer when set
	Profile  *ProfileContext
}

// Generator produces coaching text. Implementations must not return errors; failures become the
// sentinel text.
type Generator interface {
	Generate(ctx context.Context, req Request) string
}

// Service is the Generator backed by a genai.Provider.
type Service struct {
	provider genai.Provider
	catalog  i18n.Catalog
	timeout  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithCatalog overrides the built-in catalog.
func WithCatalog(c i18n.Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

// NewService creates a feedback service. A nil provider makes every call return the sentinel.
func NewService(provider genai.Provider, opts ...Option) *Service {
	s := &Service{provider: provider, catalog: i18n.Default(), timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unavailable returns the localized sentinel used when generation fails.
func (s *Service) Unavailable(locale models.Locale) string {
	return s.catalog.Resolve(i18n.KeyFeedbackFailed, locale, nil)
}

// Generate builds the prompt, calls the provider once with a bounded timeout and returns its text.
func (s *Service) Generate(ctx context.Context, req Request) string {
	if s.provider == nil {
		slog.Warn("feedback.Service.Generate: no provider configured", "mode", req.Mode)
		return s.Unavailable(req.Locale)
	}
	system, user := BuildPrompt(s.catalog, req)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.provider.GeneratePromptWithContext(callCtx, system, user)
	if err != nil {
		slog.Error("feedback.Service.Generate: provider failed", "error", err, "mode", req.Mode, "elapsed", time.Since(start))
		return s.Unavailable(req.Locale)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		slog.Warn("feedback.Service.Generate: empty response", "mode", req.Mode)
		return s.Unavailable(req.Locale)
	}
	slog.Debug("feedback.Service.Generate: feedback generated", "mode", req.Mode, "chars", len(text), "elapsed", time.Since(start))
	return text
}
