// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Session binds an issued token to an authenticated username.
// ExpiresAt is zero for opaque tokens, which stay valid until closed.
type Session struct {
	ID        ulid.ULID
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession creates a validated Session instance.
func NewSession(username, token string, expiresAt time.Time) (*Session, error) {
	if username == "" {
		return nil, oops.Code("SESSION_INVALID_USERNAME").Errorf("username cannot be empty")
	}
	if token == "" {
		return nil, oops.Code("SESSION_INVALID_TOKEN").Errorf("token cannot be empty")
	}
	return &Session{
		ID:        ulid.Make(),
		Token:     token,
		Username:  username,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}, nil
}

// IsExpired returns true if the session carries an expiry that has passed.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// SessionStore maps active tokens to authenticated identity. Two
// strategies implement it: an opaque-token store that is the sole source
// of truth, and a signed-token store that degenerates to stateless
// signature verification.
//
// Open trusts the guard chain for the single-session invariant: the
// store itself does not re-check uniqueness. Keeping the uniqueness
// policy out of the store keeps it a pure map.
type SessionStore interface {
	// IsLoggedIn reports whether an active session is bound to this
	// username. Consistent with the forward token map at the instant of
	// the call.
	IsLoggedIn(ctx context.Context, username string) bool

	// Lookup resolves a token to the bound username.
	// Returns ErrNotFound for unknown tokens, ErrTokenExpired or
	// ErrTokenInvalid for signed tokens that fail verification.
	Lookup(ctx context.Context, token string) (string, error)

	// Open binds token to username. Precondition, enforced by the guard
	// chain and not re-checked here: no existing session for username.
	Open(ctx context.Context, username, token string) error

	// Close removes the binding. A no-op for absent tokens: logout must
	// be idempotent at the store level.
	Close(ctx context.Context, token string)
}
