// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// SessionStore is the opaque-token session store: a forward token→session
// map with a username index kept consistent under the same mutex. It is
// the sole source of truth for opaque tokens, and Close is a real deletion.
type SessionStore struct {
	mu      sync.RWMutex
	byToken map[string]*auth.Session
	byUser  map[string]string // username → token
}

// NewSessionStore creates an empty opaque-token SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		byToken: make(map[string]*auth.Session),
		byUser:  make(map[string]string),
	}
}

// IsLoggedIn reports whether an active session is bound to the username.
func (s *SessionStore) IsLoggedIn(_ context.Context, username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byUser[username]
	return ok
}

// Lookup resolves a token to the bound username.
func (s *SessionStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.byToken[token]
	if !ok {
		return "", auth.ErrNotFound
	}
	return session.Username, nil
}

// Open binds token to username. Single-session uniqueness is the guard
// chain's job, not re-checked here.
func (s *SessionStore) Open(_ context.Context, username, token string) error {
	// Opaque sessions carry no expiry; they live until closed.
	session, err := auth.NewSession(username, token, time.Time{})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken[token] = session
	s.byUser[username] = token
	return nil
}

// Close removes the binding. A no-op for absent tokens.
func (s *SessionStore) Close(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.byToken[token]
	if !ok {
		return
	}
	delete(s.byToken, token)
	delete(s.byUser, session.Username)
}

// ActiveSessions returns the number of open sessions.
func (s *SessionStore) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byToken)
}
