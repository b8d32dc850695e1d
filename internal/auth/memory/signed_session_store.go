// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/samber/oops"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// SignedSessionStore is the signed-token strategy: Lookup is stateless
// signature verification, while a server-side username set backs
// IsLoggedIn so the single-session invariant stays enforceable.
//
// Each entry carries the session expiry, mirroring the token's own
// lifetime. Expired entries count as logged out, so a user whose token
// lapsed can log in again without an explicit logout.
//
// Known limitation: Close drops the username from the set but cannot
// revoke the signature — the token keeps verifying until its embedded
// expiry. Callers that need true revocation before expiry must use the
// opaque strategy.
type SignedSessionStore struct {
	verifier auth.TokenVerifier
	ttl      time.Duration
	now      func() time.Time

	mu     sync.RWMutex
	active map[string]time.Time // username -> session expiry
}

// NewSignedSessionStore creates a SignedSessionStore over the verifier.
// The ttl must match the issuer's token lifetime; ttl <= 0 falls back to
// auth.DefaultTokenTTL, the same default the issuer applies.
func NewSignedSessionStore(verifier auth.TokenVerifier, ttl time.Duration) (*SignedSessionStore, error) {
	if verifier == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("token verifier is required")
	}
	if ttl <= 0 {
		ttl = auth.DefaultTokenTTL
	}
	return &SignedSessionStore{
		verifier: verifier,
		ttl:      ttl,
		now:      time.Now,
		active:   make(map[string]time.Time),
	}, nil
}

// IsLoggedIn reports whether the username has an open, unexpired session.
func (s *SignedSessionStore) IsLoggedIn(_ context.Context, username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.active[username]
	return ok && s.now().Before(exp)
}

// Lookup verifies the token's signature and expiry and returns its subject.
func (s *SignedSessionStore) Lookup(_ context.Context, token string) (string, error) {
	return s.verifier.Verify(token)
}

// Open records the username as logged in until the session expiry. The
// token itself carries all other session state; nothing token-keyed is
// stored. Lapsed sessions are pruned here, under the write lock.
func (s *SignedSessionStore) Open(_ context.Context, username, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.active[username] = s.now().Add(s.ttl)
	return nil
}

// Close drops the username bound to a still-valid token. Invalid or
// expired tokens are ignored, keeping logout idempotent. The signature
// itself remains valid until expiry.
func (s *SignedSessionStore) Close(_ context.Context, token string) {
	username, err := s.verifier.Verify(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, username)
}

// prune drops lapsed sessions. Callers must hold mu for writing.
func (s *SignedSessionStore) prune() {
	now := s.now()
	for username, exp := range s.active {
		if !now.Before(exp) {
			delete(s.active, username)
		}
	}
}
