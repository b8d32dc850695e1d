// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package board

import "context"

// ProfileEntry is a named, described item on a user profile: a degree,
// a skill, a past position.
type ProfileEntry struct {
	Name        string
	Description string
}

// Preference captures what a job seeker is looking for.
type Preference struct {
	Industries       []Industry
	JobLocations     []JobLocation
	JobTypes         []JobType
	ExperienceLevels []ExperienceLevel
}

// User is the seeker profile attached to an account's username.
type User struct {
	Username   string
	Education  []ProfileEntry
	Skills     []ProfileEntry
	Experience []ProfileEntry
	Preference Preference
}

// UserFields carries the mutable profile attributes.
type UserFields struct {
	Education  []ProfileEntry
	Skills     []ProfileEntry
	Experience []ProfileEntry
	Preference Preference
}

// UserRepository manages seeker profiles, keyed by username.
type UserRepository interface {
	// Create stores an empty profile for the username.
	// Returns an error if one is already present.
	Create(ctx context.Context, username string) (*User, error)

	// Get retrieves a profile. Returns ErrNotFound if absent.
	Get(ctx context.Context, username string) (*User, error)

	// Has reports whether the username has a profile.
	Has(ctx context.Context, username string) bool

	// Update replaces the profile fields. Returns ErrNotFound if absent.
	Update(ctx context.Context, username string, fields UserFields) (*User, error)
}
