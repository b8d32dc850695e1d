// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package board

import (
	"context"

	"github.com/samber/oops"
)

// JobLocation is where the work happens.
type JobLocation string

// Job locations.
const (
	LocationOnSite JobLocation = "on-site"
	LocationRemote JobLocation = "remote"
)

// JobType is the employment arrangement.
type JobType string

// Job types.
const (
	JobPartTime JobType = "part-time"
	JobFullTime JobType = "full-time"
)

// ExperienceLevel is the seniority sought by a posting.
type ExperienceLevel string

// Experience levels.
const (
	LevelIntern ExperienceLevel = "intern"
	LevelJunior ExperienceLevel = "junior"
	LevelMiddle ExperienceLevel = "middle"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

// Application is a job posting published under a company. Views counts
// seeker interactions.
type Application struct {
	ID              uint64
	CompanyID       uint64
	Location        JobLocation
	JobType         JobType
	ExperienceLevel ExperienceLevel
	Requirements    []string
	Benefits        []string
	Views           int
}

// ApplicationFields carries the mutable posting attributes.
type ApplicationFields struct {
	Location        JobLocation
	JobType         JobType
	ExperienceLevel ExperienceLevel
	Requirements    []string
	Benefits        []string
}

// Validate checks the enum fields hold known values.
func (f ApplicationFields) Validate() error {
	switch f.Location {
	case LocationOnSite, LocationRemote:
	default:
		return oops.Code("BOARD_INVALID_APPLICATION").
			With("location", string(f.Location)).
			Errorf("unknown job location")
	}
	switch f.JobType {
	case JobPartTime, JobFullTime:
	default:
		return oops.Code("BOARD_INVALID_APPLICATION").
			With("job_type", string(f.JobType)).
			Errorf("unknown job type")
	}
	switch f.ExperienceLevel {
	case LevelIntern, LevelJunior, LevelMiddle, LevelSenior, LevelLead:
	default:
		return oops.Code("BOARD_INVALID_APPLICATION").
			With("experience_level", string(f.ExperienceLevel)).
			Errorf("unknown experience level")
	}
	return nil
}

// ApplicationRepository manages job postings.
type ApplicationRepository interface {
	// Create allocates the next id and stores the posting.
	Create(ctx context.Context, companyID uint64, fields ApplicationFields) (*Application, error)

	// Get retrieves a posting by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id uint64) (*Application, error)

	// Has reports whether the posting exists.
	Has(ctx context.Context, id uint64) bool

	// Update replaces the mutable fields. Returns ErrNotFound if absent.
	Update(ctx context.Context, id uint64, fields ApplicationFields) (*Application, error)

	// Delete removes the posting. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id uint64) error

	// RecordInteraction increments the view counter.
	// Returns ErrNotFound if the posting is absent.
	RecordInteraction(ctx context.Context, id uint64) error
}
