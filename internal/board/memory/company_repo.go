// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

// Package memory provides the in-memory board repositories. Each
// repository serializes its own mutations with a single mutex.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jobdeck/jobdeck/internal/board"
)

// CompanyRepo is the in-memory company repository.
type CompanyRepo struct {
	mu        sync.RWMutex
	companies map[uint64]*board.Company
	nextID    uint64
}

// NewCompanyRepo creates an empty CompanyRepo.
func NewCompanyRepo() *CompanyRepo {
	return &CompanyRepo{companies: make(map[uint64]*board.Company)}
}

func copyCompany(c *board.Company) *board.Company {
	return &board.Company{
		ID:               c.ID,
		Name:             c.Name,
		Website:          c.Website,
		Industry:         c.Industry,
		OrganizationSize: c.OrganizationSize,
		ApplicationIDs:   slices.Clone(c.ApplicationIDs),
	}
}

// Create allocates the next id and stores the company.
func (r *CompanyRepo) Create(_ context.Context, fields board.CompanyFields) (*board.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	company := &board.Company{
		ID:               r.nextID,
		Name:             fields.Name,
		Website:          fields.Website,
		Industry:         fields.Industry,
		OrganizationSize: fields.OrganizationSize,
	}
	r.companies[company.ID] = company

	return copyCompany(company), nil
}

// Get retrieves a company by id.
func (r *CompanyRepo) Get(_ context.Context, id uint64) (*board.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.companies[id]
	if !ok {
		return nil, board.ErrNotFound
	}
	return copyCompany(company), nil
}

// Update replaces the mutable fields.
func (r *CompanyRepo) Update(_ context.Context, id uint64, fields board.CompanyFields) (*board.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	company, ok := r.companies[id]
	if !ok {
		return nil, board.ErrNotFound
	}
	company.Name = fields.Name
	company.Website = fields.Website
	company.Industry = fields.Industry
	company.OrganizationSize = fields.OrganizationSize

	return copyCompany(company), nil
}

// Delete removes the company.
func (r *CompanyRepo) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[id]; !ok {
		return board.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

// LinkApplication appends a posting id to the company's list.
func (r *CompanyRepo) LinkApplication(_ context.Context, companyID, applicationID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	company, ok := r.companies[companyID]
	if !ok {
		return board.ErrNotFound
	}
	company.ApplicationIDs = append(company.ApplicationIDs, applicationID)
	return nil
}
