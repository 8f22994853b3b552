package flow

import (
	"sync"
	"testing"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/models"
)

func TestInMemorySessionStore_StartReplacesSession(t *testing.T) {
	s := NewInMemorySessionStore()
	first := s.Start("u1", models.FlowTypeOnboarding, models.StateAwaitingName, models.LocaleEnglish)
	first.SetAnswer(models.DataKeyName, "Ana")
	s.Save(first)

	second := s.Start("u1", models.FlowTypeSleep, models.StateAwaitingNightThought, models.LocaleEnglish)
	got := s.Get("u1")
	if got != second {
		t.Fatal("expected Get to return the latest session")
	}
	if _, ok := got.Answer(models.DataKeyName); ok {
		t.Error("answers from the discarded flow leaked into the new session")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestInMemorySessionStore_Expiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewInMemorySessionStore(
		WithSessionTTL(time.Hour),
		WithSessionClock(func() time.Time { return now }),
	)
	s.Start("u1", models.FlowTypeEOD, models.StateAwaitingReflection, models.LocalePortuguese)

	now = now.Add(59 * time.Minute)
	if s.Get("u1") == nil {
		t.Fatal("session expired too early")
	}
	s.Save(s.Get("u1"))

	now = now.Add(61 * time.Minute)
	if s.Get("u1") != nil {
		t.Fatal("expected abandoned session to be dropped")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestInMemorySessionStore_NoExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewInMemorySessionStore(
		WithSessionTTL(0),
		WithSessionClock(func() time.Time { return now }),
	)
	s.Start("u1", models.FlowTypeEOD, models.StateAwaitingReflection, models.LocalePortuguese)
	now = now.Add(30 * 24 * time.Hour)
	if s.Get("u1") == nil {
		t.Fatal("session should not expire with TTL disabled")
	}
}

func TestInMemorySessionStore_Delete(t *testing.T) {
	s := NewInMemorySessionStore()
	s.Start("u1", models.FlowTypeReset, models.StateAwaitingResetConfirmation, models.LocaleSpanish)
	s.Delete("u1")
	if s.Get("u1") != nil {
		t.Fatal("expected session to be deleted")
	}
	s.Delete("missing")
}

func TestInMemorySessionStore_LockSerializesPerUser(t *testing.T) {
	s := NewInMemorySessionStore()
	const workers = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("u1")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()
	if counter != workers {
		t.Fatalf("counter = %d, want %d", counter, workers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.locks) != 0 {
		t.Errorf("expected idle locks to be released, got %d", len(s.locks))
	}
}

func TestInMemorySessionStore_LocksAreIndependent(t *testing.T) {
	s := NewInMemorySessionStore()
	unlockA := s.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := s.Lock("b")
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind lock on a")
	}
}
