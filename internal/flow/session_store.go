package flow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

// DefaultSessionTTL is how long an untouched session is kept before it counts as abandoned.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore holds the transient per-user dialog sessions.
type SessionStore interface {
	// Lock serializes work on one user's session. The returned func releases the lock.
	Lock(userID string) func()
	// Get returns the active session, or nil when none exists or it expired.
	Get(userID string) *models.Session
	// Start discards any existing session and creates a new one.
	Start(userID string, flow models.FlowType, state models.StateType, locale models.Locale) *models.Session
	// Save records changes made to a session returned by Get or Start.
	Save(s *models.Session)
	Delete(userID string)
}

// keyLock is a reference counted mutex so idle users do not keep entries alive.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// InMemorySessionStore keeps sessions in a map. Nothing is persisted across restarts.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	locks    map[string]*keyLock
	ttl      time.Duration
	now      func() time.Time
}

// SessionStoreOption configures an InMemorySessionStore.
type SessionStoreOption func(*InMemorySessionStore)

// WithSessionTTL sets the abandonment timeout. Zero or negative disables expiry.
func WithSessionTTL(ttl time.Duration) SessionStoreOption {
	return func(s *InMemorySessionStore) { s.ttl = ttl }
}

// WithSessionClock overrides time.Now, for tests.
func WithSessionClock(now func() time.Time) SessionStoreOption {
	return func(s *InMemorySessionStore) { s.now = now }
}

func NewInMemorySessionStore(opts ...SessionStoreOption) *InMemorySessionStore {
	s := &InMemorySessionStore{
		sessions: make(map[string]*models.Session),
		locks:    make(map[string]*keyLock),
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InMemorySessionStore) Lock(userID string) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &keyLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, userID)
		}
		s.mu.Unlock()
	}
}

func (s *InMemorySessionStore) Get(userID string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	if s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl {
		slog.Debug("SessionStore.Get: dropping abandoned session", "userID", userID, "flow", sess.Flow, "state", sess.State)
		delete(s.sessions, userID)
		return nil
	}
	return sess
}

func (s *InMemorySessionStore) Start(userID string, flow models.FlowType, state models.StateType, locale models.Locale) *models.Session {
	sess := models.NewSession(userID, flow, state, locale, s.now())
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
	slog.Debug("SessionStore.Start", "userID", userID, "flow", flow, "state", state)
	return sess
}

func (s *InMemorySessionStore) Save(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = s.now()
	s.sessions[sess.UserID] = sess
}

func (s *InMemorySessionStore) Delete(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, including expired ones not yet dropped.
func (s *InMemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
