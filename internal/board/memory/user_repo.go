// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jobdeck/jobdeck/internal/board"
)

// UserRepo is the in-memory seeker profile repository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*board.User
}

// NewUserRepo creates an empty UserRepo.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]*board.User)}
}

func copyUser(u *board.User) *board.User {
	return &board.User{
		Username:   u.Username,
		Education:  slices.Clone(u.Education),
		Skills:     slices.Clone(u.Skills),
		Experience: slices.Clone(u.Experience),
		Preference: board.Preference{
			Industries:       slices.Clone(u.Preference.Industries),
			JobLocations:     slices.Clone(u.Preference.JobLocations),
			JobTypes:         slices.Clone(u.Preference.JobTypes),
			ExperienceLevels: slices.Clone(u.Preference.ExperienceLevels),
		},
	}
}

// Create stores an empty profile for the username.
func (r *UserRepo) Create(_ context.Context, username string) (*board.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return nil, board.ErrAlreadyExists
	}
	user := &board.User{Username: username}
	r.users[username] = user

	return copyUser(user), nil
}

// Get retrieves a profile.
func (r *UserRepo) Get(_ context.Context, username string) (*board.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, board.ErrNotFound
	}
	return copyUser(user), nil
}

// Has reports whether the username has a profile.
func (r *UserRepo) Has(_ context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[username]
	return ok
}

// Update replaces the profile fields.
func (r *UserRepo) Update(_ context.Context, username string, fields board.UserFields) (*board.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, board.ErrNotFound
	}
	user.Education = slices.Clone(fields.Education)
	user.Skills = slices.Clone(fields.Skills)
	user.Experience = slices.Clone(fields.Experience)
	user.Preference = fields.Preference

	return copyUser(user), nil
}
