// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

var (
	// ErrNoSession is returned when no credential has been stored.
	ErrNoSession = errors.New("no stored session")
	// ErrSessionExpired is returned when the stored token is past its exp claim.
	ErrSessionExpired = errors.New("stored session has expired")
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetSessionLogger()
		log = &l
	})
	return log
}

type storedSession struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore keeps the portal token in a user-only readable file.
type FileStore struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored token. Expired tokens are reported as ErrSessionExpired
// and removed so they are never sent.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		getLog().Warn().Err(err).Str("path", s.path).Msg("Discarding unreadable session file")
		_ = os.Remove(s.path)
		return "", ErrNoSession
	}
	if stored.Token == "" {
		return "", ErrNoSession
	}

	expired, err := s.expired(stored.Token)
	if err != nil {
		getLog().Debug().Err(err).Msg("Stored token is not a readable JWT; letting the portal decide")
	}
	if expired {
		getLog().Info().Str("path", s.path).Msg("Stored session expired")
		_ = os.Remove(s.path)
		return "", ErrSessionExpired
	}

	return stored.Token, nil
}

// Save persists token, replacing any previous one.
func (s *FileStore) Save(token string) error {
	if token == "" {
		return errors.New("refusing to store an empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(storedSession{Token: token, SavedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	getLog().Debug().Str("path", s.path).Msg("Session stored")
	return nil
}

// Clear forgets the stored token. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// expired reads the exp claim without verifying the signature; only the portal
// holds the key.
func (s *FileStore) expired(token string) (bool, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return !s.now().Before(claims.ExpiresAt.Time), nil
}
