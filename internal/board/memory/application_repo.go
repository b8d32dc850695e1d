// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jobdeck/jobdeck/internal/board"
)

// ApplicationRepo is the in-memory job posting repository.
type ApplicationRepo struct {
	mu           sync.RWMutex
	applications map[uint64]*board.Application
	nextID       uint64
}

// NewApplicationRepo creates an empty ApplicationRepo.
func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{applications: make(map[uint64]*board.Application)}
}

func copyApplication(a *board.Application) *board.Application {
	return &board.Application{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		Location:        a.Location,
		JobType:         a.JobType,
		ExperienceLevel: a.ExperienceLevel,
		Requirements:    slices.Clone(a.Requirements),
		Benefits:        slices.Clone(a.Benefits),
		Views:           a.Views,
	}
}

// Create allocates the next id and stores the posting.
func (r *ApplicationRepo) Create(_ context.Context, companyID uint64, fields board.ApplicationFields) (*board.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	application := &board.Application{
		ID:              r.nextID,
		CompanyID:       companyID,
		Location:        fields.Location,
		JobType:         fields.JobType,
		ExperienceLevel: fields.ExperienceLevel,
		Requirements:    slices.Clone(fields.Requirements),
		Benefits:        slices.Clone(fields.Benefits),
	}
	r.applications[application.ID] = application

	return copyApplication(application), nil
}

// Get retrieves a posting by id.
func (r *ApplicationRepo) Get(_ context.Context, id uint64) (*board.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	application, ok := r.applications[id]
	if !ok {
		return nil, board.ErrNotFound
	}
	return copyApplication(application), nil
}

// Has reports whether the posting exists.
func (r *ApplicationRepo) Has(_ context.Context, id uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.applications[id]
	return ok
}

// Update replaces the mutable fields.
func (r *ApplicationRepo) Update(_ context.Context, id uint64, fields board.ApplicationFields) (*board.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	application, ok := r.applications[id]
	if !ok {
		return nil, board.ErrNotFound
	}
	application.Location = fields.Location
	application.JobType = fields.JobType
	application.ExperienceLevel = fields.ExperienceLevel
	application.Requirements = slices.Clone(fields.Requirements)
	application.Benefits = slices.Clone(fields.Benefits)

	return copyApplication(application), nil
}

// Delete removes the posting.
func (r *ApplicationRepo) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[id]; !ok {
		return board.ErrNotFound
	}
	delete(r.applications, id)
	return nil
}

// RecordInteraction increments the view counter.
func (r *ApplicationRepo) RecordInteraction(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	application, ok := r.applications[id]
	if !ok {
		return board.ErrNotFound
	}
	application.Views++
	return nil
}
