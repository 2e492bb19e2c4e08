// Package session keeps the signed-in account available to the rest of
// fitpro after a successful signup.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/henrilemoine/fitpro/internal/debug"
	"github.com/henrilemoine/fitpro/internal/signup"
)

// Session is the recorded account.
type Session struct {
	Token      string          `json:"token"`
	User       json.RawMessage `json:"user,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Store records signups and returns the current session.
type Store interface {
	signup.SessionRecorder
	// Current returns the recorded session, or nil if there is none.
	Current() (*Session, error)
}

// FileStore persists the session as JSON, guarded by a lock file so
// concurrent fitpro processes do not interleave writes.
type FileStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the session file path.
func (s *FileStore) Path() string {
	return s.path
}

// RecordSignup writes acc as the current session.
func (s *FileStore) RecordSignup(acc signup.Account) error {
	data, err := json.Marshal(Session{
		Token:      acc.Token,
		User:       acc.User,
		RecordedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	// Acquire exclusive lock - blocks until lock is available
	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock session: %w", err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return err
	}

	debug.Log("session recorded", "path", s.path)
	return nil
}

// Current reads the session file. A missing file is not an error.
func (s *FileStore) Current() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	// Acquire shared (read) lock - blocks if exclusive lock is held
	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("lock session: %w", err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", s.path, err)
	}
	return &sess, nil
}

// Clear removes the session file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock session: %w", err)
	}
	defer fileLock.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStore keeps the session for the lifetime of the process.
type MemoryStore struct {
	mu       sync.Mutex
	sessions []Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// RecordSignup records acc as the current session.
func (s *MemoryStore) RecordSignup(acc signup.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, Session{Token: acc.Token, User: acc.User, RecordedAt: time.Now().UTC()})
	return nil
}

// Current returns the most recently recorded session.
func (s *MemoryStore) Current() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) == 0 {
		return nil, nil
	}
	sess := s.sessions[len(s.sessions)-1]
	return &sess, nil
}

// Count returns how many signups were recorded.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
