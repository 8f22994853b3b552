// Package models defines the core data structures for TradeMentor.
//
// It includes the user, profile and ritual record types shared by the store, the dialog engine
// and the chat transports.
package models

import (
	"errors"
	"strings"
	"time"
)

// Locale identifies a supported language for catalog lookups.
type Locale string

const (
	LocalePortuguese Locale = "pt"
	LocaleEnglish    Locale = "en"
	LocaleSpanish    Locale = "es"
)

// DefaultLocale is used for unknown locales and for users who never picked one.
const DefaultLocale = LocalePortuguese

// SupportedLocales lists the locales in the order they are offered to new users.
var SupportedLocales = []Locale{LocalePortuguese, LocaleEnglish, LocaleSpanish}

// IsValid reports whether the locale has a message table.
func (l Locale) IsValid() bool {
	switch l {
	case LocalePortuguese, LocaleEnglish, LocaleSpanish:
		return true
	default:
		return false
	}
}

// Persona is the mentor voice chosen during onboarding.
type Persona string

const (
	PersonaMale   Persona = "male"
	PersonaFemale Persona = "female"
)

// IsValid reports whether the persona is one of the known voices.
func (p Persona) IsValid() bool {
	return p == PersonaMale || p == PersonaFemale
}

// Validation constants shared by the dialog engine.
const (
	// MinAnswerLength is the minimum trimmed length for answers that feed an analysis.
	MinAnswerLength = 15
	// DefaultDailyInteractionLimit caps logged interactions per user per calendar day.
	DefaultDailyInteractionLimit = 10
	// PlanDateLayout is the key format for daily plans.
	PlanDateLayout = "2006-01-02"
)

// Error variables for better error handling and testability
var (
	ErrEmptyUserID      = errors.New("user id cannot be empty")
	ErrInvalidLocale    = errors.New("invalid locale")
	ErrInvalidPersona   = errors.New("invalid persona")
	ErrEmptyProfileName = errors.New("profile name is required")
	ErrEmptyPlanText    = errors.New("plan text cannot be empty")
)

// User is created on first contact and keyed by the chat platform identity.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Locale      Locale    `json:"locale"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile holds the onboarding answers. It is replaced as a whole on every completed onboarding.
type Profile struct {
	Name                string  `json:"name"`
	Age                 string  `json:"age"`
	Experience          string  `json:"experience"`
	Satisfaction        string  `json:"satisfaction"`
	InconsistencyReason *string `json:"inconsistency_reason,omitempty"` // set only for dissatisfied answers
	Source              string  `json:"source"`
	Goal                string  `json:"goal"`
	Fear                string  `json:"fear"`
	Persona             Persona `json:"persona"`
}

// Validate checks the fields the rest of the system depends on.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProfileName
	}
	if !p.Persona.IsValid() {
		return ErrInvalidPersona
	}
	return nil
}

// HasReason reports whether a self-reported inconsistency reason was collected.
func (p *Profile) HasReason() bool {
	return p.InconsistencyReason != nil
}

// DailyPlan is the plan text of one user for one calendar day.
type DailyPlan struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"` // PlanDateLayout
	Text   string `json:"text"`
}

// TradeRecord is an append-only post-session review.
type TradeRecord struct {
	ID               int64     `json:"id,omitempty"`
	UserID           string    `json:"user_id"`
	Description      string    `json:"description"`
	Emotion          string    `json:"emotion"`
	UnplannedActions string    `json:"unplanned_actions"`
	Analysis         string    `json:"analysis"`
	CreatedAt        time.Time `json:"created_at"`
}

// Interaction is one logged generator exchange, used for the daily cap.
type Interaction struct {
	ID        int64     `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Command   string    `json:"command"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// DayBounds returns the [start, end) interval of the calendar day containing t in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
