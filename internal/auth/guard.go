// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import (
	"context"
	"errors"
)

// flow is the explicit context value threaded through a guard chain.
// Guards read the request fields and populate the result fields.
type flow struct {
	ctx context.Context

	// request
	username     string
	password     string
	passwordHash string
	token        string

	// populated by guards on the way through
	account *Account
	issued  string
}

// guard is one stage of a validation chain. StatusOK means pass; any
// other status rejects and stops the chain.
type guard func(f *flow) Status

// runChain evaluates guards in order and returns at the first rejection.
// Stage order is fixed per flow and must not be reordered: existence is
// always checked before credential verification, and credential
// verification precedes the already-logged-in check, so a caller cannot
// learn whether a nonexistent account is logged in.
func runChain(f *flow, guards ...guard) Status {
	for _, g := range guards {
		if st := g(f); st != StatusOK {
			return st
		}
	}
	return StatusOK
}

// accountMustNotExist rejects registration of a taken username.
func (s *AccountService) accountMustNotExist(f *flow) Status {
	if s.accounts.HasAccount(f.ctx, f.username) {
		return StatusAccountAlreadyExists
	}
	return StatusOK
}

// accountMustExist rejects flows against unknown usernames.
func (s *AccountService) accountMustExist(f *flow) Status {
	account, err := s.accounts.GetAccount(f.ctx, f.username)
	if err != nil {
		return StatusAccountDoesNotExist
	}
	f.account = account
	return StatusOK
}

// passwordMustVerify rejects credential mismatches. The rejection status
// is identical to the unknown-account status so the two cases are
// indistinguishable to callers.
func (s *AccountService) passwordMustVerify(f *flow) Status {
	if !s.accounts.Verify(f.ctx, f.username, f.password) {
		return StatusAccountDoesNotExist
	}
	return StatusOK
}

// userMustNotBeLoggedIn enforces the single-session invariant: a second
// login is rejected, never silently replaced.
func (s *AccountService) userMustNotBeLoggedIn(f *flow) Status {
	if s.sessions.IsLoggedIn(f.ctx, f.username) {
		return StatusUserAlreadyLoggedIn
	}
	return StatusOK
}

// createAccount stores the new record. A store allocation failure is a
// register error, not a fatal error.
func (s *AccountService) createAccount(f *flow) Status {
	account, err := s.accounts.CreateAccount(f.ctx, f.username, f.passwordHash)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return StatusAccountAlreadyExists
		}
		return StatusAccountRegisterError
	}
	f.account = account
	return StatusOK
}

// openSession issues a token and binds it. Reused by register and login;
// the already-logged-in check runs here too so the stage stays safe
// wherever the chain places it.
func (s *AccountService) openSession(f *flow) Status {
	if s.sessions.IsLoggedIn(f.ctx, f.username) {
		return StatusUserAlreadyLoggedIn
	}

	token, err := s.issuer.Issue(f.username)
	if err != nil {
		return StatusAccountRegisterError
	}
	if err := s.sessions.Open(f.ctx, f.username, token); err != nil {
		return StatusAccountRegisterError
	}
	f.issued = token
	return StatusOK
}

// sessionMustExist rejects logout of tokens with no active binding.
func (s *AccountService) sessionMustExist(f *flow) Status {
	username, err := s.sessions.Lookup(f.ctx, f.token)
	if err != nil || !s.sessions.IsLoggedIn(f.ctx, username) {
		return StatusUserNotLoggedIn
	}
	f.username = username
	return StatusOK
}

// closeSession removes the binding. Close is a no-op for absent tokens,
// so this stage cannot fail.
func (s *AccountService) closeSession(f *flow) Status {
	s.sessions.Close(f.ctx, f.token)
	return StatusOK
}
