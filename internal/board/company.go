// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package board holds the job-board aggregates — companies, job
// applications, and user profiles — and the services that gate their
// mutation behind the ownership ledger.
package board

import (
	"context"

	"github.com/samber/oops"
)

// Industry classifies a company's field.
type Industry string

// Known industries.
const (
	IndustrySoftwareEngineering Industry = "Software Engineering"
	IndustryFinance             Industry = "Finance"
	IndustryHealthcare          Industry = "Healthcare"
)

// OrganizationSize buckets company headcount.
type OrganizationSize string

// Known organization sizes.
const (
	SizeSmall  OrganizationSize = "1-10 employees"
	SizeMedium OrganizationSize = "11-200 employees"
	SizeLarge  OrganizationSize = "200+ employees"
)

// Company is an employer aggregate. ApplicationIDs lists the job
// postings published under it.
type Company struct {
	ID               uint64
	Name             string
	Website          string
	Industry         Industry
	OrganizationSize OrganizationSize
	ApplicationIDs   []uint64
}

// ValidateCompany checks required company fields.
func ValidateCompany(name, website string) error {
	if name == "" {
		return oops.Code("BOARD_INVALID_COMPANY").Errorf("company name cannot be empty")
	}
	if website == "" {
		return oops.Code("BOARD_INVALID_COMPANY").Errorf("company website cannot be empty")
	}
	return nil
}

// CompanyFields carries the mutable company attributes for create and update.
type CompanyFields struct {
	Name             string
	Website          string
	Industry         Industry
	OrganizationSize OrganizationSize
}

// CompanyRepository manages company records.
type CompanyRepository interface {
	// Create allocates the next id and stores the company.
	Create(ctx context.Context, fields CompanyFields) (*Company, error)

	// Get retrieves a company by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id uint64) (*Company, error)

	// Update replaces the mutable fields. Returns ErrNotFound if absent.
	Update(ctx context.Context, id uint64, fields CompanyFields) (*Company, error)

	// Delete removes the company. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id uint64) error

	// LinkApplication appends an application id to the company's posting
	// list. Returns ErrNotFound if the company is absent.
	LinkApplication(ctx context.Context, companyID, applicationID uint64) error
}
