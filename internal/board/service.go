// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package board

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"

	"github.com/jobdeck/jobdeck/internal/access"
	"github.com/jobdeck/jobdeck/internal/auth"
)

// SessionResolver resolves a bearer token to the account bound to it.
// This mirrors auth.AccountService to avoid coupling board to the
// concrete service.
type SessionResolver interface {
	CurrentAccount(ctx context.Context, token string) (auth.Status, *auth.Account)
}

// OwnershipLedger mirrors access.Ledger for the same reason.
type OwnershipLedger interface {
	Record(ctx context.Context, username, resource string) error
	Owns(ctx context.Context, username, resource string) bool
}

// CompanyService provides session-gated company operations. Update and
// delete are additionally gated by the ownership ledger; a failed
// ownership check reports the same status as a missing company.
type CompanyService struct {
	companies CompanyRepository
	sessions  SessionResolver
	ledger    OwnershipLedger
	logger    *slog.Logger
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companies CompanyRepository, sessions SessionResolver, ledger OwnershipLedger, logger *slog.Logger) (*CompanyService, error) {
	if companies == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("company repository is required")
	}
	if sessions == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("session resolver is required")
	}
	if ledger == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("ownership ledger is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyService{companies: companies, sessions: sessions, ledger: ledger, logger: logger}, nil
}

// Create stores a company and records the ownership link on the
// creating account. The create and the link are two writes; a link
// failure after a successful create is reported as a creation error and
// logged, leaving the unlinked company behind.
func (s *CompanyService) Create(ctx context.Context, token string, fields CompanyFields) (auth.Status, *Company) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	company, err := s.companies.Create(ctx, fields)
	if err != nil {
		return auth.StatusErrorCreatingCompany, nil
	}

	resource := access.FormatResource(access.KindCompany, company.ID)
	if err := s.ledger.Record(ctx, account.Username, resource); err != nil {
		s.logger.Error("ownership record failed", "username", account.Username, "resource", resource, "error", err)
		return auth.StatusErrorCreatingCompany, nil
	}

	s.logger.Info("company created", "company_id", company.ID, "owner", account.Username)
	return auth.StatusOK, company
}

// Get retrieves a company for any logged-in caller.
func (s *CompanyService) Get(ctx context.Context, token string, id uint64) (auth.Status, *Company) {
	st, _ := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	company, err := s.companies.Get(ctx, id)
	if err != nil {
		return auth.StatusCompanyDoesNotExist, nil
	}
	return auth.StatusOK, company
}

// Update replaces the company's mutable fields. Callers that do not own
// the company get the same status as callers naming a missing id.
func (s *CompanyService) Update(ctx context.Context, token string, id uint64, fields CompanyFields) (auth.Status, *Company) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	if !s.ledger.Owns(ctx, account.Username, access.FormatResource(access.KindCompany, id)) {
		return auth.StatusCompanyDoesNotExist, nil
	}

	company, err := s.companies.Update(ctx, id, fields)
	if err != nil {
		return auth.StatusCompanyDoesNotExist, nil
	}
	return auth.StatusOK, company
}

// Delete removes the company, gated like Update.
func (s *CompanyService) Delete(ctx context.Context, token string, id uint64) auth.Status {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st
	}

	if !s.ledger.Owns(ctx, account.Username, access.FormatResource(access.KindCompany, id)) {
		return auth.StatusCompanyDoesNotExist
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.StatusCompanyDoesNotExist
		}
		return auth.StatusErrorDeletingCompany
	}
	return auth.StatusOK
}

// ApplicationService provides session-gated job posting operations.
type ApplicationService struct {
	applications ApplicationRepository
	companies    CompanyRepository
	sessions     SessionResolver
	ledger       OwnershipLedger
	logger       *slog.Logger
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applications ApplicationRepository, companies CompanyRepository, sessions SessionResolver, ledger OwnershipLedger, logger *slog.Logger) (*ApplicationService, error) {
	if applications == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("application repository is required")
	}
	if companies == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("company repository is required")
	}
	if sessions == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("session resolver is required")
	}
	if ledger == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("ownership ledger is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		applications: applications,
		companies:    companies,
		sessions:     sessions,
		ledger:       ledger,
		logger:       logger,
	}, nil
}

// Create publishes a posting under a company the caller owns, records
// the ownership link, and links the posting onto the company.
func (s *ApplicationService) Create(ctx context.Context, token string, companyID uint64, fields ApplicationFields) (auth.Status, *Application) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	if !s.ledger.Owns(ctx, account.Username, access.FormatResource(access.KindCompany, companyID)) {
		return auth.StatusCompanyDoesNotExist, nil
	}

	application, err := s.applications.Create(ctx, companyID, fields)
	if err != nil {
		return auth.StatusApplicationCreateError, nil
	}

	resource := access.FormatResource(access.KindApplication, application.ID)
	if err := s.ledger.Record(ctx, account.Username, resource); err != nil {
		s.logger.Error("ownership record failed", "username", account.Username, "resource", resource, "error", err)
		return auth.StatusApplicationCreateError, nil
	}
	if err := s.companies.LinkApplication(ctx, companyID, application.ID); err != nil {
		s.logger.Error("company posting link failed", "company_id", companyID, "application_id", application.ID, "error", err)
		return auth.StatusApplicationCreateError, nil
	}

	s.logger.Info("application created", "application_id", application.ID, "company_id", companyID, "owner", account.Username)
	return auth.StatusOK, application
}

// Get retrieves a posting for any logged-in caller.
func (s *ApplicationService) Get(ctx context.Context, token string, id uint64) (auth.Status, *Application) {
	st, _ := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	application, err := s.applications.Get(ctx, id)
	if err != nil {
		return auth.StatusApplicationDoesNotExist, nil
	}
	return auth.StatusOK, application
}

// Update replaces the posting's mutable fields, ownership-gated.
func (s *ApplicationService) Update(ctx context.Context, token string, id uint64, fields ApplicationFields) (auth.Status, *Application) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	if !s.ledger.Owns(ctx, account.Username, access.FormatResource(access.KindApplication, id)) {
		return auth.StatusApplicationDoesNotExist, nil
	}

	application, err := s.applications.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.StatusApplicationDoesNotExist, nil
		}
		return auth.StatusApplicationUpdateError, nil
	}
	return auth.StatusOK, application
}

// Delete removes the posting, ownership-gated.
func (s *ApplicationService) Delete(ctx context.Context, token string, id uint64) auth.Status {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st
	}

	if !s.ledger.Owns(ctx, account.Username, access.FormatResource(access.KindApplication, id)) {
		return auth.StatusApplicationDoesNotExist
	}

	if err := s.applications.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.StatusApplicationDoesNotExist
		}
		return auth.StatusApplicationDeleteError
	}
	return auth.StatusOK
}

// Interact records a seeker viewing the posting. Any logged-in caller,
// no ownership required.
func (s *ApplicationService) Interact(ctx context.Context, token string, id uint64) auth.Status {
	st, _ := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st
	}

	if !s.applications.Has(ctx, id) {
		return auth.StatusApplicationDoesNotExist
	}
	if err := s.applications.RecordInteraction(ctx, id); err != nil {
		return auth.StatusApplicationInteractionError
	}
	return auth.StatusOK
}

// UserService maintains seeker profiles for logged-in accounts.
type UserService struct {
	users    UserRepository
	sessions SessionResolver
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users UserRepository, sessions SessionResolver, logger *slog.Logger) (*UserService, error) {
	if users == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("user repository is required")
	}
	if sessions == nil {
		return nil, oops.Code("BOARD_NIL_DEPENDENCY").Errorf("session resolver is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{users: users, sessions: sessions, logger: logger}, nil
}

// Create sets up an empty profile for the caller's own username.
func (s *UserService) Create(ctx context.Context, token string) (auth.Status, *User) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	user, err := s.users.Create(ctx, account.Username)
	if err != nil {
		return auth.StatusUserSetupError, nil
	}
	return auth.StatusOK, user
}

// Get retrieves any user's profile for a logged-in caller.
func (s *UserService) Get(ctx context.Context, token, username string) (auth.Status, *User) {
	st, _ := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	user, err := s.users.Get(ctx, username)
	if err != nil {
		return auth.StatusUserNotFound, nil
	}
	return auth.StatusOK, user
}

// Update replaces the caller's own profile fields.
func (s *UserService) Update(ctx context.Context, token string, fields UserFields) (auth.Status, *User) {
	st, account := s.sessions.CurrentAccount(ctx, token)
	if st != auth.StatusOK {
		return st, nil
	}

	user, err := s.users.Update(ctx, account.Username, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return auth.StatusUserNotFound, nil
		}
		return auth.StatusUserSetupError, nil
	}
	return auth.StatusOK, user
}
