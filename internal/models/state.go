// Package models defines state management structures for TradeMentor flows.
package models

import "time"

// Session is the transient state of one user's in-progress flow. It is never persisted.
type Session struct {
	UserID    string             `json:"user_id"`
	Flow      FlowType           `json:"flow"`
	State     StateType          `json:"state"`
	Locale    Locale             `json:"locale"`
	Answers   map[DataKey]string `json:"answers,omitempty"`
	PlanText  string             `json:"plan_text,omitempty"` // today's plan, pretrade and eod
	Diagnosis string             `json:"diagnosis,omitempty"` // generator output awaiting confirmation
	Points    []string           `json:"points,omitempty"`    // extracted focus points
	StartedAt time.Time          `json:"started_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewSession creates an empty session for a flow starting at the given state.
func NewSession(userID string, flow FlowType, state StateType, locale Locale, now time.Time) *Session {
	return &Session{
		UserID:    userID,
		Flow:      flow,
		State:     state,
		Locale:    locale,
		Answers:   make(map[DataKey]string),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Answer returns a collected answer and whether it was set.
func (s *Session) Answer(key DataKey) (string, bool) {
	v, ok := s.Answers[key]
	return v, ok
}

// SetAnswer records an answer for the current flow.
func (s *Session) SetAnswer(key DataKey, value string) {
	if s.Answers == nil {
		s.Answers = make(map[DataKey]string)
	}
	s.Answers[key] = value
}

// ClearAnswer removes an answer, making it absent rather than empty.
func (s *Session) ClearAnswer(key DataKey) {
	delete(s.Answers, key)
}
