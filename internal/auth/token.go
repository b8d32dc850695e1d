// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// DefaultTokenTTL is the signed-token validity window when none is configured.
const DefaultTokenTTL = 30 * time.Minute

// TokenIssuer generates session tokens. The strategy is fixed at
// construction; nothing else in the system depends on the representation.
type TokenIssuer interface {
	// Issue generates a token bound to the username.
	Issue(username string) (string, error)
}

// TokenVerifier is implemented by issuers whose tokens carry their own
// identity and expiry, so they can be checked without server-side state.
type TokenVerifier interface {
	// Verify checks the token and returns the bound username.
	// Returns ErrTokenExpired or ErrTokenInvalid on failure.
	Verify(token string) (string, error)
}

// CounterIssuer issues opaque tokens from a process-wide monotonic
// counter. Tokens are unique within one process lifetime, not across
// restarts; the opaque session store is their sole source of truth.
type CounterIssuer struct {
	next atomic.Uint64
}

// NewCounterIssuer creates a new CounterIssuer.
func NewCounterIssuer() *CounterIssuer {
	return &CounterIssuer{}
}

// Issue returns the next opaque token.
func (c *CounterIssuer) Issue(_ string) (string, error) {
	return fmt.Sprintf("token_%d", c.next.Add(1)), nil
}

// SignedIssuer issues HS256-signed tokens carrying the username as
// subject and an expiry claim.
type SignedIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedIssuer creates a SignedIssuer. A missing secret is a
// configuration error and fails here, at construction, never per request.
func NewSignedIssuer(secret string, ttl time.Duration) (*SignedIssuer, error) {
	if secret == "" {
		return nil, oops.Code("AUTH_MISSING_SECRET").Errorf("signed token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &SignedIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue generates a signed token for the username.
func (s *SignedIssuer) Issue(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", oops.Code("AUTH_TOKEN_SIGN_FAILED").
			With("username", username).
			Wrap(err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry, and returns the subject.
func (s *SignedIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
