// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package access provides ownership authorization for jobdeck.
//
// Resources use prefixed string format:
//   - "company:12"
//   - "application:7"
//
// The ledger is consulted before any update or delete of an owned
// aggregate. A failed check is reported by callers exactly like a
// missing resource, never as "forbidden", so existence does not leak to
// unauthorized callers.
package access

import (
	"context"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/jobdeck/jobdeck/internal/auth"
)

// Resource kind prefixes.
const (
	KindCompany     = "company"
	KindApplication = "application"
)

// FormatResource builds the prefixed resource name for a kind and id.
func FormatResource(kind string, id uint64) string {
	return kind + ":" + strconv.FormatUint(id, 10)
}

// ParseResource splits a prefixed resource name into kind and id.
// Returns ("", 0, false) for malformed input.
func ParseResource(resource string) (kind string, id uint64, ok bool) {
	parts := strings.SplitN(resource, ":", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return parts[0], id, true
}

// Ledger enforces the ownership-link invariant. It is backed by the
// credential store's link sets, so the account record stays the single
// source of truth for what an account may mutate.
type Ledger struct {
	accounts auth.CredentialStore
}

// NewLedger creates a Ledger over the credential store.
func NewLedger(accounts auth.CredentialStore) (*Ledger, error) {
	if accounts == nil {
		return nil, oops.Code("ACCESS_NIL_DEPENDENCY").Errorf("credential store is required")
	}
	return &Ledger{accounts: accounts}, nil
}

// Record links the resource to the account at creation time.
// Links are never revoked; there is no unlink operation.
func (l *Ledger) Record(ctx context.Context, username, resource string) error {
	kind, id, ok := ParseResource(resource)
	if !ok {
		return oops.Code("ACCESS_BAD_RESOURCE").
			With("resource", resource).
			Errorf("malformed resource name")
	}

	switch kind {
	case KindCompany:
		return l.accounts.LinkCompany(ctx, username, id)
	case KindApplication:
		return l.accounts.LinkApplication(ctx, username, id)
	default:
		return oops.Code("ACCESS_BAD_RESOURCE").
			With("kind", kind).
			Errorf("unknown resource kind")
	}
}

// Owns reports whether the account may mutate the resource.
// Deny by default: unknown accounts, kinds, or malformed names are false.
func (l *Ledger) Owns(ctx context.Context, username, resource string) bool {
	kind, id, ok := ParseResource(resource)
	if !ok {
		return false
	}

	account, err := l.accounts.GetAccount(ctx, username)
	if err != nil {
		return false
	}

	switch kind {
	case KindCompany:
		return account.OwnsCompany(id)
	case KindApplication:
		return account.OwnsApplication(id)
	default:
		return false
	}
}
