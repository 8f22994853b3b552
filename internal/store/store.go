// Package store provides storage backends for TradeMentor.
//
// It defines the Store interface consumed by the dialog engine and offers an in-memory store
// plus SQLite and PostgreSQL backed implementations.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("store is closed")

// Store is the durable per-user repository. Absent records are reported as nil values, not errors.
type Store interface {
	// EnsureUser creates the user if it does not exist. Existing users are left untouched.
	EnsureUser(ctx context.Context, userID, displayName string) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// UpsertProfile replaces the whole profile in a single statement.
	UpsertProfile(ctx context.Context, userID string, profile models.Profile) error
	// DeleteUserData removes the profile, daily plans and trade records of a user.
	// The interaction log is kept so the daily cap cannot be bypassed by a reset.
	DeleteUserData(ctx context.Context, userID string) error
	UpsertDailyPlan(ctx context.Context, userID, date, text string) error
	GetDailyPlan(ctx context.Context, userID, date string) (*models.DailyPlan, error)
	AppendTradeRecord(ctx context.Context, record models.TradeRecord) error
	AppendInteractionLog(ctx context.Context, entry models.Interaction) error
	// CountInteractionsToday counts interactions created within [dayStart, dayEnd).
	CountInteractionsToday(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, error)
	// GetLocale returns the stored locale, or the default locale for unknown users.
	GetLocale(ctx context.Context, userID string) (models.Locale, error)
	SetLocale(ctx context.Context, userID string, locale models.Locale) error
	Ping(ctx context.Context) error
	Close() error
}

// Compile-time checks that every backend implements Store.
var (
	_ Store = (*InMemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*PostgresStore)(nil)
)

// InMemoryStore keeps all records in process memory. It is used when no database DSN is configured
// and in tests.
type InMemoryStore struct {
	mu           sync.RWMutex
	users        map[string]models.User
	profiles     map[string]models.Profile
	plans        map[string]map[string]string // userID -> date -> text
	trades       []models.TradeRecord
	interactions []models.Interaction
	closed       bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:    make(map[string]models.User),
		profiles: make(map[string]models.Profile),
		plans:    make(map[string]map[string]string),
	}
}

func (s *InMemoryStore) EnsureUser(ctx context.Context, userID, displayName string) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = models.User{
			ID:          userID,
			DisplayName: displayName,
			Locale:      models.DefaultLocale,
			CreatedAt:   time.Now(),
		}
	}
	return nil
}

func (s *InMemoryStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

func (s *InMemoryStore) UpsertProfile(ctx context.Context, userID string, profile models.Profile) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.profiles[userID] = *cloneProfile(profile)
	return nil
}

func (s *InMemoryStore) DeleteUserData(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.profiles, userID)
	delete(s.plans, userID)
	kept := s.trades[:0]
	for _, t := range s.trades {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	s.trades = kept
	return nil
}

func (s *InMemoryStore) UpsertDailyPlan(ctx context.Context, userID, date, text string) error {
	if userID == "" {
		return models.ErrEmptyUserID
	}
	if text == "" {
		return models.ErrEmptyPlanText
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	if s.plans[userID] == nil {
		s.plans[userID] = make(map[string]string)
	}
	s.plans[userID][date] = text
	return nil
}

func (s *InMemoryStore) GetDailyPlan(ctx context.Context, userID, date string) (*models.DailyPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	text, ok := s.plans[userID][date]
	if !ok {
		return nil, nil
	}
	return &models.DailyPlan{UserID: userID, Date: date, Text: text}, nil
}

func (s *InMemoryStore) AppendTradeRecord(ctx context.Context, record models.TradeRecord) error {
	if record.UserID == "" {
		return models.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	record.ID = int64(len(s.trades) + 1)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	s.trades = append(s.trades, record)
	return nil
}

func (s *InMemoryStore) AppendInteractionLog(ctx context.Context, entry models.Interaction) error {
	if entry.UserID == "" {
		return models.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	entry.ID = int64(len(s.interactions) + 1)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.interactions = append(s.interactions, entry)
	return nil
}

func (s *InMemoryStore) CountInteractionsToday(ctx context.Context, userID string, dayStart, dayEnd time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	count := 0
	for _, in := range s.interactions {
		if in.UserID == userID && !in.CreatedAt.Before(dayStart) && in.CreatedAt.Before(dayEnd) {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryStore) GetLocale(ctx context.Context, userID string) (models.Locale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", ErrStoreClosed
	}
	u, ok := s.users[userID]
	if !ok || !u.Locale.IsValid() {
		return models.DefaultLocale, nil
	}
	return u.Locale, nil
}

func (s *InMemoryStore) SetLocale(ctx context.Context, userID string, locale models.Locale) error {
	if !locale.IsValid() {
		return models.ErrInvalidLocale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	u, ok := s.users[userID]
	if !ok {
		u = models.User{ID: userID, CreatedAt: time.Now()}
	}
	u.Locale = locale
	s.users[userID] = u
	return nil
}

func (s *InMemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

func (s *InMemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// TradeRecords returns a user's trade records in insertion order.
func (s *InMemoryStore) TradeRecords(userID string) []models.TradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TradeRecord
	for _, t := range s.trades {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// Interactions returns a user's interaction log ordered by creation time.
func (s *InMemoryStore) Interactions(userID string) []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Interaction
	for _, in := range s.interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func cloneProfile(p models.Profile) *models.Profile {
	c := p
	if p.InconsistencyReason != nil {
		reason := *p.InconsistencyReason
		c.InconsistencyReason = &reason
	}
	return &c
}
