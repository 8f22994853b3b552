// Package flow implements the TradeMentor dialog engine: the per-user state machine driving
// onboarding, profile reset and the four daily rituals.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BTreeMap/TradeMentor/internal/feedback"
	"github.com/BTreeMap/TradeMentor/internal/i18n"
	"github.com/BTreeMap/TradeMentor/internal/models"
	"github.com/BTreeMap/TradeMentor/internal/store"
)

// DefaultCommunityLink is advertised when onboarding completes.
const DefaultCommunityLink = "https://t.me/unitytradersoficialsmc"

// Replier delivers engine output to the user as soon as it is produced.
type Replier interface {
	Reply(ctx context.Context, msg models.OutboundMessage) error
}

// ReplierFunc adapts a function to Replier.
type ReplierFunc func(ctx context.Context, msg models.OutboundMessage) error

func (f ReplierFunc) Reply(ctx context.Context, msg models.OutboundMessage) error {
	return f(ctx, msg)
}

// stateHandler consumes one answer in a given state. A returned error is a repository failure.
type stateHandler func(t *turn, text string) error

// Engine interprets inbound messages against each user's session.
type Engine struct {
	store         store.Store
	sessions      SessionStore
	catalog       i18n.Catalog
	feedback      feedback.Generator
	now           func() time.Time
	location      *time.Location
	dailyLimit    int
	communityLink string
	handlers      map[models.StateType]stateHandler
}

// Option configures an Engine.
type Option func(*Engine)

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(s SessionStore) Option {
	return func(e *Engine) { e.sessions = s }
}

// WithCatalog replaces the built-in text catalog.
func WithCatalog(c i18n.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the time zone that defines calendar days for plans and the daily cap.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithDailyLimit sets the daily interaction cap. Non-positive values keep the default.
func WithDailyLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.dailyLimit = n
		}
	}
}

// WithCommunityLink sets the link shown after onboarding.
func WithCommunityLink(link string) Option {
	return func(e *Engine) {
		if link != "" {
			e.communityLink = link
		}
	}
}

// NewEngine creates a dialog engine over a repository and a feedback generator.
func NewEngine(st store.Store, gen feedback.Generator, opts ...Option) *Engine {
	e := &Engine{
		store:         st,
		catalog:       i18n.Default(),
		feedback:      gen,
		now:           time.Now,
		location:      time.Local,
		dailyLimit:    models.DefaultDailyInteractionLimit,
		communityLink: DefaultCommunityLink,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sessions == nil {
		e.sessions = NewInMemorySessionStore()
	}
	e.handlers = map[models.StateType]stateHandler{
		models.StateAwaitingLanguage:              handleLanguage,
		models.StateAwaitingPersona:               handlePersona,
		models.StateAwaitingName:                  handleName,
		models.StateAwaitingAge:                   handleAge,
		models.StateAwaitingExperience:            handleExperience,
		models.StateAwaitingSatisfaction:          handleSatisfaction,
		models.StateAwaitingReason:                handleReason,
		models.StateAwaitingSource:                handleSource,
		models.StateAwaitingGoal:                  handleGoal,
		models.StateAwaitingFear:                  handleFear,
		models.StateAwaitingResetConfirmation:     handleResetConfirmation,
		models.StateAwaitingPlan:                  handlePlan,
		models.StateAwaitingDiagnosisConfirmation: handleDiagnosisConfirmation,
		models.StateAwaitingFocusChoice:           handleFocusChoice,
		models.StateAwaitingTradeDetails:          handleTradeDetails,
		models.StateAwaitingTradeEmotion:          handleTradeEmotion,
		models.StateAwaitingTradeActions:          handleTradeActions,
		models.StateAwaitingReflection:            handleReflection,
		models.StateAwaitingNightThought:          handleNightThought,
	}
	return e
}

// Sessions exposes the session store.
func (e *Engine) Sessions() SessionStore {
	return e.sessions
}

// turn carries the context of one inbound message.
type turn struct {
	e       *Engine
	ctx     context.Context
	userID  string
	locale  models.Locale
	session *models.Session
	replier Replier
}

func (t *turn) text(key string, params i18n.Params) string {
	return t.e.catalog.Resolve(key, t.locale, params)
}

func (t *turn) send(msg models.OutboundMessage) {
	if msg.Locale == "" {
		msg.Locale = t.locale
	}
	if err := t.replier.Reply(t.ctx, msg); err != nil {
		slog.Warn("Engine reply failed", "error", err, "userID", t.userID)
	}
}

func (t *turn) say(key string, params i18n.Params) {
	t.send(models.Text(t.text(key, params)))
}

// sayWithNextStep sends body followed by the next-step hint.
func (t *turn) sayWithNextStep(body string) {
	t.send(models.Text(body + t.text(i18n.KeyNextStepPrompt, nil)))
}

// advance moves the session to state and sends the prompt for it.
func (t *turn) advance(state models.StateType, key string, params i18n.Params) {
	t.session.State = state
	t.e.sessions.Save(t.session)
	t.say(key, params)
}

// finish ends the active flow.
func (t *turn) finish() {
	t.e.sessions.Delete(t.userID)
	t.session = nil
}

func (t *turn) start(flow models.FlowType, state models.StateType) {
	t.session = t.e.sessions.Start(t.userID, flow, state, t.locale)
}

func (t *turn) today() time.Time {
	return t.e.now().In(t.e.location)
}

// Handle processes one inbound message for its user. Messages of the same user are serialized.
// A non-nil error means a repository failure: the session was discarded and the user was told to retry.
func (e *Engine) Handle(ctx context.Context, msg models.InboundMessage, r Replier) error {
	if msg.UserID == "" {
		return models.ErrEmptyUserID
	}
	unlock := e.sessions.Lock(msg.UserID)
	defer unlock()

	t := &turn{e: e, ctx: ctx, userID: msg.UserID, replier: r}
	if err := e.dispatch(t, msg); err != nil {
		e.sessions.Delete(msg.UserID)
		if t.locale == "" {
			t.locale = models.DefaultLocale
		}
		slog.Error("Engine.Handle: turn aborted", "error", err, "userID", msg.UserID)
		t.say(i18n.KeyGenericError, nil)
		return fmt.Errorf("handle message for %s: %w", msg.UserID, err)
	}
	return nil
}

func (e *Engine) dispatch(t *turn, msg models.InboundMessage) error {
	if err := e.store.EnsureUser(t.ctx, msg.UserID, msg.DisplayName); err != nil {
		return err
	}
	t.session = e.sessions.Get(msg.UserID)
	if t.session != nil {
		t.locale = t.session.Locale
	} else {
		locale, err := e.store.GetLocale(t.ctx, msg.UserID)
		if err != nil {
			return err
		}
		t.locale = locale
	}

	text := strings.TrimSpace(msg.Text)
	cmd := models.ParseCommand(text)
	slog.Debug("Engine.dispatch", "userID", msg.UserID, "command", cmd, "hasSession", t.session != nil)

	switch cmd {
	case models.CommandNone:
		if text == "" {
			return nil
		}
		if t.session == nil {
			t.say(i18n.KeyUnknownCommand, nil)
			return nil
		}
		handler, ok := e.handlers[t.session.State]
		if !ok {
			slog.Warn("Engine.dispatch: no handler for state, discarding session", "userID", msg.UserID, "state", t.session.State)
			t.finish()
			t.say(i18n.KeyUnknownCommand, nil)
			return nil
		}
		return handler(t, text)
	case models.CommandCancel:
		t.finish()
		t.send(models.OutboundMessage{Text: t.text(i18n.KeyCancelConversation, nil), RemoveKeyboard: true})
		return nil
	case models.CommandUnknown:
		t.say(i18n.KeyUnknownCommand, nil)
		return nil
	}

	// Every entry command discards the previous flow before doing anything else.
	t.finish()
	switch cmd {
	case models.CommandStart:
		return startOnboarding(t, false)
	case models.CommandProfile:
		return startOnboarding(t, true)
	case models.CommandReset:
		return startReset(t)
	default:
		return startRitual(t, cmd)
	}
}

// answerTooShort reports whether an answer misses the minimum length for analysis.
func answerTooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < models.MinAnswerLength
}

// profileContext extracts the profile data passed to the feedback generator.
func profileContext(p *models.Profile, todaysPlan string) *feedback.ProfileContext {
	if p == nil {
		if todaysPlan == "" {
			return nil
		}
		return &feedback.ProfileContext{TodaysPlan: todaysPlan}
	}
	return &feedback.ProfileContext{
		Goal:                p.Goal,
		Fear:                p.Fear,
		InconsistencyReason: p.InconsistencyReason,
		TodaysPlan:          todaysPlan,
	}
}
