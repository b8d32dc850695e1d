// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import (
	"context"
	"regexp"
	"slices"

	"github.com/samber/oops"
)

// Username validation constraints.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// usernameRegex matches usernames that start with a letter and contain
// only letters, numbers, and underscores. Usernames are case-sensitive.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Account is an identity record. IDs are allocated monotonically by the
// credential store; the password hash never leaves the auth packages.
type Account struct {
	ID           uint64
	Username     string
	PasswordHash string

	// CompanyIDs and ApplicationIDs are the ownership link sets: the
	// aggregates this account created and may mutate. Links are appended
	// at creation time and never revoked.
	CompanyIDs     []uint64
	ApplicationIDs []uint64
}

// OwnsCompany reports whether the company id is in the ownership set.
func (a *Account) OwnsCompany(id uint64) bool {
	return slices.Contains(a.CompanyIDs, id)
}

// OwnsApplication reports whether the application id is in the ownership set.
func (a *Account) OwnsApplication(id uint64) bool {
	return slices.Contains(a.ApplicationIDs, id)
}

// ValidateUsername validates a username against the account rules:
// MinUsernameLength to MaxUsernameLength characters, starting with a
// letter, containing only letters, numbers, and underscores.
func ValidateUsername(username string) error {
	if username == "" {
		return oops.Code("AUTH_INVALID_USERNAME").Errorf("username cannot be empty")
	}
	if len(username) < MinUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("min", MinUsernameLength).
			Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return oops.Code("AUTH_INVALID_USERNAME").
			With("max", MaxUsernameLength).
			Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return oops.Code("AUTH_INVALID_USERNAME").
			Errorf("username must start with a letter and contain only letters, numbers, and underscores")
	}
	return nil
}

// CredentialStore owns account records. Create is the serialization
// point for concurrent registrations of the same username: exactly one
// succeeds. Read operations have no side effects.
type CredentialStore interface {
	// CreateAccount allocates the next id and stores the record.
	// Returns ErrAlreadyExists if the username is taken.
	CreateAccount(ctx context.Context, username, passwordHash string) (*Account, error)

	// GetAccount retrieves an account by username.
	// Returns ErrNotFound if no such account exists.
	GetAccount(ctx context.Context, username string) (*Account, error)

	// HasAccount reports whether the username is present.
	HasAccount(ctx context.Context, username string) bool

	// Verify applies the one-way verification function against the
	// stored hash. Unknown usernames return false, not an error, so the
	// caller cannot distinguish them from a credential mismatch.
	Verify(ctx context.Context, username, password string) bool

	// LinkCompany appends a company id to the account's ownership set.
	// Returns ErrNotFound if the account cannot be resolved.
	LinkCompany(ctx context.Context, username string, companyID uint64) error

	// LinkApplication appends an application id to the account's
	// ownership set. Returns ErrNotFound if the account cannot be resolved.
	LinkApplication(ctx context.Context, username string, applicationID uint64) error
}
