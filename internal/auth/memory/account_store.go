// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// dummyDigest is verified against when a username is unknown so the
// response time stays uniform with a known-username mismatch. It is a
// fake digest that never matches any password.
//
//nolint:gosec // G101: intentionally fake digest, not a credential.
const dummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AccountStore is the in-memory credential store. Ids are allocated
// monotonically under the store mutex, which is also the serialization
// point for concurrent registrations of the same username.
type AccountStore struct {
	hasher auth.PasswordHasher

	mu       sync.RWMutex
	accounts map[string]*auth.Account
	nextID   uint64
}

// NewAccountStore creates an empty AccountStore verifying with hasher.
func NewAccountStore(hasher auth.PasswordHasher) *AccountStore {
	return &AccountStore{
		hasher:   hasher,
		accounts: make(map[string]*auth.Account),
	}
}

// copyAccount returns a defensive copy so callers cannot mutate the
// stored link sets outside the defined operations.
func copyAccount(a *auth.Account) *auth.Account {
	return &auth.Account{
		ID:             a.ID,
		Username:       a.Username,
		PasswordHash:   a.PasswordHash,
		CompanyIDs:     slices.Clone(a.CompanyIDs),
		ApplicationIDs: slices.Clone(a.ApplicationIDs),
	}
}

// CreateAccount allocates the next id and stores the record. Exactly one
// of two concurrent creates for the same username succeeds.
func (s *AccountStore) CreateAccount(_ context.Context, username, passwordHash string) (*auth.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return nil, auth.ErrAlreadyExists
	}

	s.nextID++
	account := &auth.Account{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.accounts[username] = account

	return copyAccount(account), nil
}

// GetAccount retrieves an account by username.
func (s *AccountStore) GetAccount(_ context.Context, username string) (*auth.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[username]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return copyAccount(account), nil
}

// HasAccount reports whether the username is present.
func (s *AccountStore) HasAccount(_ context.Context, username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accounts[username]
	return ok
}

// Verify applies the one-way verification function against the stored
// digest. Unknown usernames verify against a dummy digest and return
// false, keeping timing and behavior uniform with a wrong password.
func (s *AccountStore) Verify(_ context.Context, username, password string) bool {
	s.mu.RLock()
	account, ok := s.accounts[username]
	digest := dummyDigest
	if ok {
		digest = account.PasswordHash
	}
	s.mu.RUnlock()

	valid, err := s.hasher.Verify(password, digest)
	return ok && err == nil && valid
}

// LinkCompany appends a company id to the account's ownership set.
func (s *AccountStore) LinkCompany(_ context.Context, username string, companyID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[username]
	if !ok {
		return auth.ErrNotFound
	}
	account.CompanyIDs = append(account.CompanyIDs, companyID)
	return nil
}

// LinkApplication appends an application id to the account's ownership set.
func (s *AccountStore) LinkApplication(_ context.Context, username string, applicationID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[username]
	if !ok {
		return auth.ErrNotFound
	}
	account.ApplicationIDs = append(account.ApplicationIDs, applicationID)
	return nil
}
