package lockfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestAcquireLock(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireLock(dir, "telegram")
	if err != nil {
		t.Fatalf("AcquireLock() error: %v", err)
	}
	defer lock.Release()

	if lock.Path() != filepath.Join(dir, LockFileName) {
		t.Errorf("Path() = %q", lock.Path())
	}
	data, err := os.ReadFile(lock.Path())
	if err != nil {
		t.Fatalf("failed to read lock file: %v", err)
	}
	info := parseInfo(string(data))
	if info.PID != os.Getpid() || info.Transport != "telegram" || info.StartedAt.IsZero() {
		t.Errorf("unexpected lock info %+v", info)
	}
}

func TestAcquireLock_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	lock, err := AcquireLock(dir, "twilio")
	if err != nil {
		t.Fatalf("AcquireLock() error: %v", err)
	}
	defer lock.Release()
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("state dir not created: %v", err)
	}
}

func TestLockConflict(t *testing.T) {
	dir := t.TempDir()
	first, err := AcquireLock(dir, "telegram")
	if err != nil {
		t.Fatalf("first AcquireLock() error: %v", err)
	}
	defer first.Release()

	_, err = AcquireLock(dir, "whatsapp")
	var lockErr *LockError
	if !errors.As(err, &lockErr) {
		t.Fatalf("expected *LockError, got %v", err)
	}
	if !errors.Is(err, syscall.EWOULDBLOCK) {
		t.Errorf("expected EWOULDBLOCK cause, got %v", lockErr.Cause)
	}
	if !strings.Contains(lockErr.Owner, "(running)") || !strings.Contains(lockErr.Owner, "transport telegram") {
		t.Errorf("owner = %q", lockErr.Owner)
	}

	// The failed attempt must not clobber the owner's information.
	data, _ := os.ReadFile(first.Path())
	if parseInfo(string(data)).Transport != "telegram" {
		t.Errorf("lock file was overwritten: %q", data)
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	dir := t.TempDir()
	lock, err := AcquireLock(dir, "telegram")
	if err != nil {
		t.Fatal(err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("second Release() error: %v", err)
	}
	if _, err := os.Stat(lock.Path()); !os.IsNotExist(err) {
		t.Error("lock file should be removed after release")
	}

	again, err := AcquireLock(dir, "telegram")
	if err != nil {
		t.Fatalf("reacquire error: %v", err)
	}
	again.Release()
}

func TestStaleLockFileIsReused(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LockFileName)
	if err := os.WriteFile(path, []byte("pid=999999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lock, err := AcquireLock(dir, "telegram")
	if err != nil {
		t.Fatalf("AcquireLock() over stale file error: %v", err)
	}
	defer lock.Release()
	data, _ := os.ReadFile(path)
	if parseInfo(string(data)).PID != os.Getpid() {
		t.Errorf("stale content not replaced: %q", data)
	}
}

func TestParseInfo(t *testing.T) {
	started := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := Info{PID: 42, Transport: "whatsapp", StartedAt: started}
	got := parseInfo(in.String())
	if got.PID != 42 || got.Transport != "whatsapp" || !got.StartedAt.Equal(started) {
		t.Errorf("round trip = %+v", got)
	}
	if got := parseInfo("garbage"); got.PID != 0 {
		t.Errorf("garbage parsed as %+v", got)
	}
}

func TestLockErrorMessage(t *testing.T) {
	err := &LockError{LockPath: "/tmp/x.lock", Owner: "PID 1 (running)", Cause: syscall.EWOULDBLOCK}
	msg := err.Error()
	if !strings.Contains(msg, "/tmp/x.lock") || !strings.Contains(msg, "PID 1 (running)") {
		t.Errorf("Error() = %q", msg)
	}
}
