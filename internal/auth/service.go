// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// AccountService orchestrates the credential store, session store, token
// issuer, and guard chains behind the operations exposed to the
// transport layer. It exclusively owns its stores for the process
// lifetime; nothing else mutates them outside these operations.
type AccountService struct {
	accounts CredentialStore
	sessions SessionStore
	issuer   TokenIssuer
	hasher   PasswordHasher
	logger   *slog.Logger
	metrics  *Metrics
}

// NewAccountService creates a new AccountService.
// The metrics parameter may be nil to disable instrumentation.
func NewAccountService(accounts CredentialStore, sessions SessionStore, issuer TokenIssuer, hasher PasswordHasher, logger *slog.Logger, metrics *Metrics) (*AccountService, error) {
	if accounts == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("credential store is required")
	}
	if sessions == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("session store is required")
	}
	if issuer == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("token issuer is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("password hasher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		accounts: accounts,
		sessions: sessions,
		issuer:   issuer,
		hasher:   hasher,
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// Register creates an account and opens its first session.
//
// Account creation and session opening are two store writes, not one
// atomic pair: if the session guard rejects after the account was
// created, the account is kept and returned alongside the rejection
// status. Callers see both outcomes — a non-nil account with a non-OK
// status means "registered, not logged in".
func (s *AccountService) Register(ctx context.Context, username, password string) (Status, *Account, string) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("password hashing failed", "username", username, "error", err)
		return s.registerResult(StatusAccountRegisterError, nil, "")
	}

	f := &flow{ctx: ctx, username: username, password: password, passwordHash: digest}
	st := runChain(f,
		s.accountMustNotExist,
		s.createAccount,
		s.openSession,
	)

	if st == StatusOK {
		s.logger.Info("account registered", "username", username, "account_id", f.account.ID)
	}
	return s.registerResult(st, f.account, f.issued)
}

func (s *AccountService) registerResult(st Status, account *Account, token string) (Status, *Account, string) {
	if s.metrics != nil {
		s.metrics.Registrations.WithLabelValues(st.String()).Inc()
		if st == StatusOK {
			s.metrics.SessionsActive.Inc()
		}
	}
	return st, account, token
}

// Login verifies credentials and opens a session, returning the token.
func (s *AccountService) Login(ctx context.Context, username, password string) (Status, string) {
	f := &flow{ctx: ctx, username: username, password: password}
	st := runChain(f,
		s.accountMustExist,
		s.passwordMustVerify,
		s.userMustNotBeLoggedIn,
		s.openSession,
	)

	if s.metrics != nil {
		s.metrics.Logins.WithLabelValues(st.String()).Inc()
		if st == StatusOK {
			s.metrics.SessionsActive.Inc()
		}
	}
	if st == StatusOK {
		s.logger.Info("user logged in", "username", username)
	}
	return st, f.issued
}

// Logout closes the session bound to the token. Closing an unknown or
// already-closed token returns StatusUserNotLoggedIn without touching
// any state, so repeated calls are deterministic.
func (s *AccountService) Logout(ctx context.Context, token string) Status {
	f := &flow{ctx: ctx, token: token}
	st := runChain(f,
		s.sessionMustExist,
		s.closeSession,
	)

	if st == StatusOK {
		if s.metrics != nil {
			s.metrics.SessionsActive.Dec()
		}
		s.logger.Info("user logged out", "username", f.username)
	}
	return st
}

// CurrentAccount resolves the token to its account. Any failure —
// unknown token, expired signature, closed session, missing account —
// reports StatusUserNotLoggedIn.
func (s *AccountService) CurrentAccount(ctx context.Context, token string) (Status, *Account) {
	username, err := s.sessions.Lookup(ctx, token)
	if err != nil || !s.sessions.IsLoggedIn(ctx, username) {
		return StatusUserNotLoggedIn, nil
	}

	account, err := s.accounts.GetAccount(ctx, username)
	if err != nil {
		return StatusAccountDoesNotExist, nil
	}
	return StatusOK, account
}

// LinkCompany records ownership of a company on the token's account.
func (s *AccountService) LinkCompany(ctx context.Context, token string, companyID uint64) Status {
	st, account := s.CurrentAccount(ctx, token)
	if st != StatusOK {
		return st
	}
	if err := s.accounts.LinkCompany(ctx, account.Username, companyID); err != nil {
		s.logger.Error("company link failed", "username", account.Username, "company_id", companyID, "error", err)
		return StatusErrorCreatingCompany
	}
	return StatusOK
}

// LinkApplication records ownership of an application on the token's account.
func (s *AccountService) LinkApplication(ctx context.Context, token string, applicationID uint64) Status {
	st, account := s.CurrentAccount(ctx, token)
	if st != StatusOK {
		return st
	}
	if err := s.accounts.LinkApplication(ctx, account.Username, applicationID); err != nil {
		s.logger.Error("application link failed", "username", account.Username, "application_id", applicationID, "error", err)
		return StatusApplicationCreateError
	}
	return StatusOK
}
