// Package lockfile keeps a single TradeMentor instance per state directory.
//
// Two pollers on one bot token steal each other's updates, so serve refuses to start while
// another process holds the lock. The flock is released by the kernel when the process dies.
package lockfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// LockFileName is the name of the lock file created in the state directory
const LockFileName = "trademento.lock"

// Lock represents an active directory lock
type Lock struct {
	file *os.File
	path string
}

// Info is the owner information written into the lock file.
type Info struct {
	PID       int
	Transport string
	StartedAt time.Time
}

func (i Info) String() string {
	return fmt.Sprintf("pid=%d\ntransport=%s\nstarted=%s\n", i.PID, i.Transport, i.StartedAt.UTC().Format(time.RFC3339))
}

// parseInfo reads the key=value lines written by Info.String. Unknown keys are ignored.
func parseInfo(content string) Info {
	var info Info
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "pid":
			info.PID, _ = strconv.Atoi(value)
		case "transport":
			info.Transport = value
		case "started":
			info.StartedAt, _ = time.Parse(time.RFC3339, value)
		}
	}
	return info
}

// AcquireLock takes an exclusive lock on stateDir, creating the directory if needed.
// A *LockError describes the current owner when the lock is held elsewhere.
func AcquireLock(stateDir, transport string) (*Lock, error) {
	lockPath := filepath.Join(stateDir, LockFileName)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", stateDir, err)
	}

	// O_TRUNC would wipe the owner's info before we know whether we won the lock.
	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", lockPath, err)
	}
	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		file.Close()
		owner := describeOwner(lockPath)
		slog.Error("Failed to acquire lock - another TradeMentor instance is running", "error", err, "lock_path", lockPath, "owner", owner)
		return nil, &LockError{LockPath: lockPath, Owner: owner, Cause: err}
	}

	info := Info{PID: os.Getpid(), Transport: transport, StartedAt: time.Now()}
	if err := writeInfo(file, info); err != nil {
		syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		file.Close()
		return nil, fmt.Errorf("failed to write lock information to %s: %w", lockPath, err)
	}

	slog.Info("Acquired state directory lock", "lock_path", lockPath, "pid", info.PID)
	return &Lock{file: file, path: lockPath}, nil
}

func writeInfo(f *os.File, info Info) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.WriteAt([]byte(info.String()), 0); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		slog.Warn("Failed to sync lock file", "error", err, "lock_path", f.Name())
	}
	return nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	// Remove before unlocking so a new owner never sees its fresh file deleted.
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove lock file", "error", err, "lock_path", l.path)
	}
	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		slog.Warn("Failed to release flock", "error", err, "lock_path", l.path)
	}
	err := l.file.Close()
	l.file = nil
	slog.Info("Released state directory lock", "lock_path", l.path)
	return err
}

// LockError is returned when another process holds the lock.
type LockError struct {
	LockPath string
	Owner    string
	Cause    error
}

func (e *LockError) Error() string {
	msg := fmt.Sprintf("another TradeMentor instance is already running with this state directory (lock file %s)", e.LockPath)
	if e.Owner != "" {
		msg += ": " + e.Owner
	}
	return msg + "; remove the lock file only if no such process exists"
}

func (e *LockError) Unwrap() error {
	return e.Cause
}

// describeOwner summarizes the lock file content for error messages.
func describeOwner(lockPath string) string {
	data, err := os.ReadFile(lockPath)
	if err != nil {
		return "unable to read lock file information"
	}
	info := parseInfo(string(data))
	if info.PID <= 0 {
		return "lock file contains no process information"
	}
	state := "running"
	if !isProcessRunning(info.PID) {
		state = "not running, stale lock"
	}
	desc := fmt.Sprintf("PID %d (%s)", info.PID, state)
	if info.Transport != "" {
		desc += ", transport " + info.Transport
	}
	if !info.StartedAt.IsZero() {
		desc += ", started " + info.StartedAt.Format(time.RFC3339)
	}
	return desc
}

// isProcessRunning sends signal 0, which only checks that the process exists.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
